package projects

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+projects\s*\(projectid,\s*userid,\s*datasetid,\s*name,\s*batchsize,\s*learningrate,\s*loss\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+created_at\s*$`
	byUserQ = `(?s)^SELECT\s+projectid,\s*userid,\s*datasetid,\s*name,\s*batchsize,\s*learningrate,\s*loss,\s*created_at\s+FROM\s+projects\s+WHERE\s+userid\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*projectid\s*$`
)

var projectCols = []string{"projectid", "userid", "datasetid", "name", "batchsize", "learningrate", "loss", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sample() *models.Project {
	return &models.Project{
		ID:           "p-1",
		UserID:       "u-1",
		DatasetID:    "d-1",
		Name:         "iris-mlp",
		BatchSize:    32,
		LearningRate: 0.01,
		Loss:         "cross_entropy",
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQ).
		WithArgs("p-1", "u-1", "d-1", "iris-mlp", int32(32), 0.01, "cross_entropy").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), sample())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "p-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected project: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_MissingDataset(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "projects_datasetid_fkey"})

	if _, err := repo.Create(context.Background(), sample()); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "projects_batchsize_check"})

	_, err := repo.Create(context.Background(), sample())
	if err == nil || errors.Is(err, common.ErrorNotFound) || !regexp.MustCompile(`^db error: `).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(projectCols).
		AddRow("p-1", "u-1", "d-1", "iris-mlp", int64(32), 0.01, "cross_entropy", time.Now()).
		AddRow("p-2", "u-1", "d-1", "iris-deep", int64(64), 0.001, "mse", time.Now())
	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].BatchSize != 32 || got[1].LearningRate != 0.001 || got[1].Loss != "mse" {
		t.Fatalf("unexpected projects: %+v", got)
	}
}

func TestListByUser_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnError(errors.New("db down"))
	_, err := repo.ListByUser(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}

	rows := sqlmock.NewRows(projectCols).
		AddRow("p-1", "u-1", "d-1", "iris-mlp", "not-a-number", 0.01, "mse", time.Now())
	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnRows(rows)
	if _, err := repo.ListByUser(context.Background(), "u-1"); err == nil {
		t.Fatal("expected scan error")
	}
}
