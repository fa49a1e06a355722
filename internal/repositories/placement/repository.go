// Package placement provides persistence for a character's worn apparel
package placement

//go:generate mockgen -destination=mock/mock_repository.go -package=placementmock github.com/KirkDiggler/rpg-apparel/internal/repositories/placement Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
)

// Repository defines the interface for placement persistence
type Repository interface {
	// Get retrieves the placement for a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if nothing has been stored for the character
	// Returns errors.DataLoss if stored data no longer matches the catalog
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update stores the placement for a character, creating it if needed
	// Returns errors.InvalidArgument for empty character IDs or a nil placement
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the stored placement for a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if nothing has been stored for the character
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a placement
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting a placement
type GetOutput struct {
	CharacterID string
	Placement   *apparel.Placement
	UpdatedAt   time.Time
}

// UpdateInput defines the input for updating a placement
type UpdateInput struct {
	CharacterID string
	Placement   *apparel.Placement
	UpdatedAt   time.Time
}

// UpdateOutput defines the output for updating a placement
type UpdateOutput struct {
	CharacterID string
	Placement   *apparel.Placement
	UpdatedAt   time.Time
}

// DeleteInput defines the input for deleting a placement
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a placement
type DeleteOutput struct{}
