package config

import (
	"context"
	"log"

	"foodtracker/domain"
	"foodtracker/entities"
	"foodtracker/internal/utils"
	"foodtracker/pkg/dashboard"
	"foodtracker/pkg/entry"
	"foodtracker/pkg/form"
	"foodtracker/pkg/profile"
)

// App bundles the wired core: the gateway services, the dashboard view
// model and constructors for the three forms. The surrounding UI supplies
// the Navigator and the delete Confirmer.
type App struct {
	Entries   entry.EntryService
	Profiles  profile.ProfileService
	Dashboard *dashboard.ViewModel

	NewAddFoodForm  func() *form.Controller
	NewEditFoodForm func(ctx context.Context, id string) (*form.Controller, error)
	NewProfileForm  func(ctx context.Context) (*form.Controller, error)
}

func NewApp(nav domain.Navigator, confirm dashboard.Confirmer) (*App, error) {
	utils.LoadConfig()
	utils.InitValidator()
	validator := utils.Validate

	// Seed data
	var seed []*entities.FoodEntry
	if path := utils.SeedPath(); path != "" {
		loaded, err := entry.LoadSeedFile(path)
		if err != nil {
			log.Printf("error loading seed file: %v", err)
		} else {
			seed = loaded
		}
	}

	// Repository
	entryRepository := entry.NewMemoryEntryRepository(seed...)
	profileRepository := profile.NewMemoryProfileRepository(demoProfile())

	// Service
	entryService := entry.NewEntryService(entryRepository, validator)
	profileService := profile.NewProfileService(profileRepository, validator)

	// View model and forms
	dashboardVM := dashboard.NewViewModel(entryService, nav, confirm, utils.PageSize())

	app := &App{
		Entries:   entryService,
		Profiles:  profileService,
		Dashboard: dashboardVM,
		NewAddFoodForm: func() *form.Controller {
			return form.NewFoodEntryForm(entryService, nav)
		},
		NewEditFoodForm: func(ctx context.Context, id string) (*form.Controller, error) {
			return form.NewFoodEntryEditForm(ctx, entryService, nav, id)
		},
		NewProfileForm: func(ctx context.Context) (*form.Controller, error) {
			return form.NewProfileForm(ctx, profileService, nav)
		},
	}
	return app, nil
}

func demoProfile() *entities.UserProfile {
	return &entities.UserProfile{
		Name:   "สมชาย รักสุขภาพ",
		Email:  "somchai@example.com",
		Gender: domain.GenderMale,
		ProfileImage: &entities.Image{
			DataURI: "https://placehold.co/300x300/F0F0F0/000?text=Profile",
		},
	}
}
