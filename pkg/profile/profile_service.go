package profile

import (
	"context"

	"github.com/go-playground/validator/v10"

	"foodtracker/domain"
	"foodtracker/entities"
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context) (domain.UserProfileResponse, error)
		SaveProfile(ctx context.Context, req domain.UserProfileDraft) error
	}

	profileService struct {
		profileRepository ProfileRepository
		validator         *validator.Validate
	}
)

func NewProfileService(profileRepository ProfileRepository, validator *validator.Validate) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
	}
}

func (s *profileService) GetProfile(ctx context.Context) (domain.UserProfileResponse, error) {
	userProfile, err := s.profileRepository.Get(ctx)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	return domain.UserProfileResponse{
		Name:   userProfile.Name,
		Email:  userProfile.Email,
		Gender: userProfile.Gender,
		Image:  userProfile.ProfileImage,
	}, nil
}

func (s *profileService) SaveProfile(ctx context.Context, req domain.UserProfileDraft) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	userProfile := &entities.UserProfile{
		Name:   req.Name,
		Email:  req.Email,
		Gender: req.Gender,
	}

	if req.Image != nil {
		userProfile.ProfileImage = req.Image
	} else if existing, err := s.profileRepository.Get(ctx); err == nil {
		userProfile.ProfileImage = existing.ProfileImage
	}

	return s.profileRepository.Save(ctx, userProfile)
}
