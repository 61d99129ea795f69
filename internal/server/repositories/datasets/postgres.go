package datasets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATEs mapped to repository errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Dataset) (*models.Dataset, error) {
	query :=
		`INSERT INTO datasets (datasetid, userid, name, description, filetype, url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		d.ID, d.UserID, d.Name, d.Description, d.FileType, d.URL).Scan(&d.CreatedAt)
	if err != nil {
		return nil, wrapError(err)
	}

	return d, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Dataset, error) {
	query :=
		`SELECT datasetid, userid, name, description, filetype, url, created_at FROM datasets
		 WHERE userid = $1 AND datasetid = $2
		 `

	d := &models.Dataset{}
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.FileType, &d.URL, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Dataset, error) {
	query :=
		`SELECT datasetid, userid, name, description, filetype, url, created_at FROM datasets
		 WHERE userid = $1
		 ORDER BY created_at, datasetid
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Dataset
	for rows.Next() {
		var d models.Dataset
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.FileType, &d.URL, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// CreateColumn inserts c. A missing parent dataset yields common.ErrorNotFound.
func (r *PostgresRepository) CreateColumn(ctx context.Context, c *models.Column) error {
	query :=
		`INSERT INTO columns (columnid, datasetid, name, type, include, position)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.DatasetID, c.Name, c.Type, c.Include, c.Index); err != nil {
		return wrapError(err)
	}
	return nil
}

func wrapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return common.ErrorAlreadyExists
		case foreignKeyViolation:
			return common.ErrorNotFound
		}
	}
	return fmt.Errorf("db error: %w", err)
}
