package projects

import (
	"context"

	"github.com/backprop/server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
}
