package form

import (
	"context"

	"foodtracker/domain"
	"foodtracker/entities"
	"foodtracker/pkg/attachment"
	"foodtracker/pkg/entry"
)

func FoodEntrySchema() []Field {
	return []Field{
		{Name: "name", Label: "ชื่ออาหาร", Kind: FieldText, Required: true},
		{Name: "meal", Label: "มื้ออาหาร", Kind: FieldSelect, Required: true,
			Options: []string{domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack}},
		{Name: "date", Label: "วันที่", Kind: FieldDate, Required: true},
	}
}

// NewFoodEntryForm builds the creation form: all fields empty, submit
// creates a new entry.
func NewFoodEntryForm(entries entry.EntryService, nav domain.Navigator) *Controller {
	sink := func(ctx context.Context, values Values, image *entities.Image) error {
		_, err := entries.CreateEntry(ctx, foodEntryDraft(values, image))
		return err
	}
	return NewController(FoodEntrySchema(), attachment.NewPicker(), nil, sink, nav)
}

// NewFoodEntryEditForm builds the edit form for the entry with the given id
// and loads it immediately. When the id does not resolve, the controller
// navigates back to the dashboard and the error is returned.
func NewFoodEntryEditForm(ctx context.Context, entries entry.EntryService, nav domain.Navigator, id string) (*Controller, error) {
	loader := func(ctx context.Context, id string) (Values, *entities.Image, error) {
		res, err := entries.GetEntry(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		return Values{"name": res.Name, "meal": res.Meal, "date": res.Date}, res.Image, nil
	}
	sink := func(ctx context.Context, values Values, image *entities.Image) error {
		draft := foodEntryDraft(values, image)
		if image != nil && len(image.Data) == 0 {
			// Loaded preview, no new file selected: the stored image stays.
			draft.Image = nil
		}
		return entries.UpdateEntry(ctx, id, draft)
	}

	c := NewController(FoodEntrySchema(), attachment.NewPicker(), loader, sink, nav)
	if err := c.LoadForEdit(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

func foodEntryDraft(values Values, image *entities.Image) domain.FoodEntryDraft {
	return domain.FoodEntryDraft{
		Name:  values["name"],
		Meal:  values["meal"],
		Date:  values["date"],
		Image: image,
	}
}
