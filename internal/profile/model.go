package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the read-only projection of a platform profile consumed by the
// comment subsystem. Profiles are owned by the account service; this backend
// only resolves display data for comment authors.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `gorm:"column:display_name" json:"displayName"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName overrides the gorm table name
func (Profile) TableName() string {
	return "profiles"
}
