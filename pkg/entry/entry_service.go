package entry

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"foodtracker/domain"
	"foodtracker/entities"
)

type (
	EntryService interface {
		CreateEntry(ctx context.Context, req domain.FoodEntryDraft) (domain.FoodEntryResponse, error)
		GetEntry(ctx context.Context, id string) (domain.FoodEntryResponse, error)
		UpdateEntry(ctx context.Context, id string, req domain.FoodEntryDraft) error
		DeleteEntry(ctx context.Context, id string) error
		ListEntries(ctx context.Context) ([]domain.FoodEntryResponse, error)
	}

	entryService struct {
		entryRepository EntryRepository
		validator       *validator.Validate
	}
)

func NewEntryService(entryRepository EntryRepository, validator *validator.Validate) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		validator:       validator,
	}
}

func (s *entryService) CreateEntry(ctx context.Context, req domain.FoodEntryDraft) (domain.FoodEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.FoodEntryResponse{}, err
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.FoodEntryResponse{}, domain.ErrInvalidDate
	}

	foodEntry := &entities.FoodEntry{
		Name:  req.Name,
		Meal:  req.Meal,
		Date:  date,
		Image: req.Image,
	}

	if err := s.entryRepository.Create(ctx, foodEntry); err != nil {
		return domain.FoodEntryResponse{}, err
	}

	return toResponse(foodEntry), nil
}

func (s *entryService) GetEntry(ctx context.Context, id string) (domain.FoodEntryResponse, error) {
	foodEntry, err := s.entryRepository.GetByID(ctx, id)
	if err != nil {
		return domain.FoodEntryResponse{}, err
	}
	return toResponse(foodEntry), nil
}

func (s *entryService) UpdateEntry(ctx context.Context, id string, req domain.FoodEntryDraft) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}

	foodEntry, err := s.entryRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	foodEntry.Name = req.Name
	foodEntry.Meal = req.Meal
	foodEntry.Date = date
	if req.Image != nil {
		foodEntry.Image = req.Image
	}

	return s.entryRepository.Update(ctx, foodEntry)
}

func (s *entryService) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepository.Delete(ctx, id)
}

func (s *entryService) ListEntries(ctx context.Context) ([]domain.FoodEntryResponse, error) {
	entries, err := s.entryRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toResponse(e))
	}
	return response, nil
}

func toResponse(e *entities.FoodEntry) domain.FoodEntryResponse {
	return domain.FoodEntryResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Meal:      e.Meal,
		Date:      e.Date.Format(domain.DateLayout),
		Image:     e.Image,
		CreatedAt: e.CreatedAt,
	}
}
