package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/logging"
	"github.com/backprop/server/internal/server/models"
	"github.com/backprop/server/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ProjectService manages training projects of an authenticated user.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *ProjectService {
	return &ProjectService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "projects"),
	}
}

// Create stores p for userID over one of the user's datasets and returns the
// new project id.
func (s *ProjectService) Create(ctx context.Context, userID string, p models.Project) (string, error) {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Loss) == "" ||
		p.BatchSize <= 0 || !(p.LearningRate > 0) || uuid.Validate(p.DatasetID) != nil {
		return "", common.ErrorValidation
	}

	p.ID = uuid.NewString()
	p.UserID = userID
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Datasets(tx).GetByID(ctx, userID, p.DatasetID); err != nil {
			return err
		}
		_, err := s.repomanager.Projects(tx).Create(ctx, &p)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrDatasetNotFound
		}
		s.log.Error(ctx, "create project failed", "error", err)
		return "", common.ErrorInternal
	}

	s.log.Info(ctx, "project created", "user_id", userID, "project_id", p.ID)
	return p.ID, nil
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]models.Project, error) {
	list, err := s.repomanager.Projects(s.db).ListByUser(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "list projects failed", "error", err)
		return nil, common.ErrorInternal
	}
	return list, nil
}
