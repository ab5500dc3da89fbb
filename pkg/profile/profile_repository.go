package profile

import (
	"context"
	"sync"
	"time"

	"foodtracker/domain"
	"foodtracker/entities"
)

type (
	ProfileRepository interface {
		Get(ctx context.Context) (*entities.UserProfile, error)
		Save(ctx context.Context, userProfile *entities.UserProfile) error
	}

	// memoryProfileRepository holds the single profile of the active session.
	memoryProfileRepository struct {
		mu          sync.RWMutex
		userProfile *entities.UserProfile
	}
)

func NewMemoryProfileRepository(initial *entities.UserProfile) ProfileRepository {
	r := &memoryProfileRepository{}
	if initial != nil {
		r.userProfile = cloneProfile(initial)
	}
	return r
}

func (r *memoryProfileRepository) Get(ctx context.Context) (*entities.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.userProfile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(r.userProfile), nil
}

func (r *memoryProfileRepository) Save(ctx context.Context, userProfile *entities.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneProfile(userProfile)
	if r.userProfile != nil {
		stored.ID = r.userProfile.ID
		stored.CreatedAt = r.userProfile.CreatedAt
	}
	stored.UpdatedAt = time.Now()
	r.userProfile = stored
	return nil
}

func cloneProfile(p *entities.UserProfile) *entities.UserProfile {
	c := *p
	if p.ProfileImage != nil {
		img := *p.ProfileImage
		c.ProfileImage = &img
	}
	return &c
}
