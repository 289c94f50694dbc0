package profile

import (
	"context"

	"github.com/google/uuid"
)

// Lookup resolves profile ids to display data in a single batched call.
// Callers pass the distinct set of ids they need; ids with no matching
// profile are simply absent from the result map.
type Lookup interface {
	ResolveProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Profile, error)
}
