package datasets

import (
	"context"

	"github.com/backprop/server/internal/server/models"
)

// Repository reads and writes datasets and their columns. Reads are always
// scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, d *models.Dataset) (*models.Dataset, error)
	GetByID(ctx context.Context, userID, id string) (*models.Dataset, error)
	ListByUser(ctx context.Context, userID string) ([]models.Dataset, error)
	CreateColumn(ctx context.Context, c *models.Column) error
}
