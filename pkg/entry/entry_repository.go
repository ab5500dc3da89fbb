package entry

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"foodtracker/domain"
	"foodtracker/entities"
)

type (
	EntryRepository interface {
		Create(ctx context.Context, foodEntry *entities.FoodEntry) error
		GetByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		Update(ctx context.Context, foodEntry *entities.FoodEntry) error
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*entities.FoodEntry, error)
	}

	// memoryEntryRepository keeps entries in insertion order and stands in
	// for a real database, as the mock dataset did in the original UI.
	memoryEntryRepository struct {
		mu      sync.RWMutex
		entries []*entities.FoodEntry
	}
)

func NewMemoryEntryRepository(seed ...*entities.FoodEntry) EntryRepository {
	r := &memoryEntryRepository{}
	now := time.Now()
	for _, e := range seed {
		stored := cloneEntry(e)
		if stored.ID == uuid.Nil {
			stored.ID = uuid.New()
		}
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
			stored.UpdatedAt = now
		}
		r.entries = append(r.entries, stored)
	}
	return r
}

func (r *memoryEntryRepository) Create(ctx context.Context, foodEntry *entities.FoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	foodEntry.ID = uuid.New()
	now := time.Now()
	foodEntry.CreatedAt = now
	foodEntry.UpdatedAt = now

	r.entries = append(r.entries, cloneEntry(foodEntry))
	return nil
}

func (r *memoryEntryRepository) GetByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID.String() == id {
			return cloneEntry(e), nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (r *memoryEntryRepository) Update(ctx context.Context, foodEntry *entities.FoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == foodEntry.ID {
			foodEntry.CreatedAt = e.CreatedAt
			foodEntry.UpdatedAt = time.Now()
			r.entries[i] = cloneEntry(foodEntry)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *memoryEntryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID.String() == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *memoryEntryRepository) List(ctx context.Context) ([]*entities.FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entities.FoodEntry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, cloneEntry(e))
	}
	return list, nil
}

// cloneEntry copies an entry (and its image) so callers cannot mutate the
// stored record through a shared pointer.
func cloneEntry(e *entities.FoodEntry) *entities.FoodEntry {
	c := *e
	if e.Image != nil {
		img := *e.Image
		c.Image = &img
	}
	return &c
}

type seedEntry struct {
	Name  string `yaml:"name"`
	Meal  string `yaml:"meal"`
	Date  string `yaml:"date"`
	Image string `yaml:"image"`
}

// LoadSeedFile reads a YAML fixture of entries, typically the demo dataset
// referenced by SEED_PATH in config.yaml.
func LoadSeedFile(path string) ([]*entities.FoodEntry, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []seedEntry
	if err := yaml.Unmarshal(file, &seeds); err != nil {
		return nil, err
	}

	entries := make([]*entities.FoodEntry, 0, len(seeds))
	for _, s := range seeds {
		date, err := time.Parse(domain.DateLayout, s.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		e := &entities.FoodEntry{
			Name: s.Name,
			Meal: s.Meal,
			Date: date,
		}
		if s.Image != "" {
			e.Image = &entities.Image{DataURI: s.Image}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
