package form

import (
	"context"

	"foodtracker/domain"
	"foodtracker/entities"
	"foodtracker/pkg/attachment"
	"foodtracker/pkg/profile"
)

func ProfileSchema() []Field {
	return []Field{
		{Name: "name", Label: "ชื่อ", Kind: FieldText, Required: true},
		{Name: "email", Label: "อีเมล", Kind: FieldEmail, Required: true},
		{Name: "gender", Label: "เพศ", Kind: FieldSelect, Required: true,
			Options: []string{domain.GenderMale, domain.GenderFemale, domain.GenderUnspecified}},
	}
}

// NewProfileForm builds the profile edit form, pre-loaded with the session's
// profile.
func NewProfileForm(ctx context.Context, profiles profile.ProfileService, nav domain.Navigator) (*Controller, error) {
	loader := func(ctx context.Context, _ string) (Values, *entities.Image, error) {
		res, err := profiles.GetProfile(ctx)
		if err != nil {
			return nil, nil, err
		}
		return Values{"name": res.Name, "email": res.Email, "gender": res.Gender}, res.Image, nil
	}
	sink := func(ctx context.Context, values Values, image *entities.Image) error {
		draft := domain.UserProfileDraft{
			Name:   values["name"],
			Email:  values["email"],
			Gender: values["gender"],
			Image:  image,
		}
		if image != nil && len(image.Data) == 0 {
			// Loaded preview, no new file selected: the stored image stays.
			draft.Image = nil
		}
		return profiles.SaveProfile(ctx, draft)
	}

	c := NewController(ProfileSchema(), attachment.NewPicker(), loader, sink, nav)
	if err := c.LoadForEdit(ctx, ""); err != nil {
		return nil, err
	}
	return c, nil
}
