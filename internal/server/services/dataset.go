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

// DatasetService manages datasets on behalf of an authenticated user. Every
// method takes the token subject as userID and never sees other users' rows.
type DatasetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewDatasetService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *DatasetService {
	return &DatasetService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "datasets"),
	}
}

// Create stores d for userID and returns the new dataset id. ID, UserID and
// CreatedAt of d are ignored.
func (s *DatasetService) Create(ctx context.Context, userID string, d models.Dataset) (string, error) {
	if strings.TrimSpace(d.Name) == "" {
		return "", common.ErrorValidation
	}

	d.ID = uuid.NewString()
	d.UserID = userID
	if _, err := s.repomanager.Datasets(s.db).Create(ctx, &d); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		s.log.Error(ctx, "create dataset failed", "error", err)
		return "", common.ErrorInternal
	}

	s.log.Info(ctx, "dataset created", "user_id", userID, "dataset_id", d.ID)
	return d.ID, nil
}

func (s *DatasetService) Get(ctx context.Context, userID, datasetID string) (*models.Dataset, error) {
	if uuid.Validate(datasetID) != nil {
		return nil, common.ErrorValidation
	}

	d, err := s.repomanager.Datasets(s.db).GetByID(ctx, userID, datasetID)
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}
	return d, nil
}

func (s *DatasetService) List(ctx context.Context, userID string) ([]models.Dataset, error) {
	list, err := s.repomanager.Datasets(s.db).ListByUser(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "list datasets failed", "error", err)
		return nil, common.ErrorInternal
	}
	return list, nil
}

// CreateColumns adds cols in one transaction. Every referenced dataset must
// belong to userID; otherwise nothing is stored and common.ErrDatasetNotFound
// is returned.
func (s *DatasetService) CreateColumns(ctx context.Context, userID string, cols []models.Column) (int, error) {
	if len(cols) == 0 {
		return 0, common.ErrorValidation
	}
	for _, c := range cols {
		if uuid.Validate(c.DatasetID) != nil || strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Type) == "" || c.Index < 0 {
			return 0, common.ErrorValidation
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Datasets(tx)

		owned := map[string]bool{}
		for _, c := range cols {
			if owned[c.DatasetID] {
				continue
			}
			if _, err := repo.GetByID(ctx, userID, c.DatasetID); err != nil {
				return err
			}
			owned[c.DatasetID] = true
		}

		for i := range cols {
			c := cols[i]
			c.ID = uuid.NewString()
			if err := repo.CreateColumn(ctx, &c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, s.lookupError(ctx, err)
	}

	s.log.Info(ctx, "columns created", "user_id", userID, "count", len(cols))
	return len(cols), nil
}

func (s *DatasetService) lookupError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrDatasetNotFound
	}
	s.log.Error(ctx, "dataset storage failed", "error", err)
	return common.ErrorInternal
}
