package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service implements Lookup against the platform's relational store.
type Service struct {
	db *gorm.DB
}

// NewService creates a new profile lookup service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ResolveProfiles fetches all requested profiles with one IN query.
func (s *Service) ResolveProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Profile, error) {
	result := make(map[uuid.UUID]Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var profiles []Profile
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve profiles: %w", err)
	}

	for _, p := range profiles {
		result[p.ID] = p
	}
	return result, nil
}
