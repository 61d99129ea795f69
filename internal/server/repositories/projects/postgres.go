package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// foreignKeyViolation is reported when the referenced user or dataset is gone.
const foreignKeyViolation = "23503"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query :=
		`INSERT INTO projects (projectid, userid, datasetid, name, batchsize, learningrate, loss)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.UserID, p.DatasetID, p.Name, p.BatchSize, p.LearningRate, p.Loss).Scan(&p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	query :=
		`SELECT projectid, userid, datasetid, name, batchsize, learningrate, loss, created_at FROM projects
		 WHERE userid = $1
		 ORDER BY created_at, projectid
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.DatasetID, &p.Name, &p.BatchSize, &p.LearningRate, &p.Loss, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
