package datasets

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
	insertQ    = `(?s)^INSERT\s+INTO\s+datasets\s*\(datasetid,\s*userid,\s*name,\s*description,\s*filetype,\s*url\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+created_at\s*$`
	byIDQ      = `(?s)^SELECT\s+datasetid,\s*userid,\s*name,\s*description,\s*filetype,\s*url,\s*created_at\s+FROM\s+datasets\s+WHERE\s+userid\s*=\s*\$1\s+AND\s+datasetid\s*=\s*\$2\s*$`
	byUserQ    = `(?s)^SELECT\s+datasetid,\s*userid,\s*name,\s*description,\s*filetype,\s*url,\s*created_at\s+FROM\s+datasets\s+WHERE\s+userid\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*datasetid\s*$`
	insertColQ = `(?s)^INSERT\s+INTO\s+columns\s*\(columnid,\s*datasetid,\s*name,\s*type,\s*include,\s*position\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
)

var datasetCols = []string{"datasetid", "userid", "name", "description", "filetype", "url", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQ).
		WithArgs("d-1", "u-1", "iris", "flowers", "csv", "https://example.com/iris.csv").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	d := &models.Dataset{ID: "d-1", UserID: "u-1", Name: "iris", Description: "flowers", FileType: "csv", URL: "https://example.com/iris.csv"}
	got, err := repo.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "d-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected dataset: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_UnknownOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "datasets_userid_fkey"})

	_, err := repo.Create(context.Background(), &models.Dataset{ID: "d-1", UserID: "ghost"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Dataset{ID: "d-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(datasetCols).
		AddRow("d-1", "u-1", "iris", "flowers", "csv", "https://example.com/iris.csv", time.Now())
	mock.ExpectQuery(byIDQ).WithArgs("u-1", "d-1").WillReturnRows(rows)
	mock.ExpectQuery(byIDQ).WithArgs("u-2", "d-1").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(byIDQ).WithArgs("u-1", "d-2").WillReturnError(errors.New("db err"))

	got, err := repo.GetByID(context.Background(), "u-1", "d-1")
	if err != nil || got.Name != "iris" || got.URL != "https://example.com/iris.csv" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}

	if _, err := repo.GetByID(context.Background(), "u-2", "d-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for foreign owner, got %v", err)
	}

	_, err = repo.GetByID(context.Background(), "u-1", "d-2")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(datasetCols).
		AddRow("d-1", "u-1", "iris", "", "csv", "", time.Now()).
		AddRow("d-2", "u-1", "mnist", "", "npz", "", time.Now())
	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d-1" || got[1].Name != "mnist" {
		t.Fatalf("unexpected datasets: %+v", got)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(datasetCols))

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil || len(got) != 0 {
		t.Fatalf("ListByUser = %+v, %v", got, err)
	}
}

func TestListByUser_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnError(errors.New("db down"))
	if _, err := repo.ListByUser(context.Background(), "u-1"); err == nil {
		t.Fatal("expected error from query")
	}

	rows := sqlmock.NewRows(datasetCols).
		AddRow("d-1", "u-1", "iris", "", "csv", "", time.Now()).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery(byUserQ).WithArgs("u-1").WillReturnRows(rows)
	_, err := repo.ListByUser(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*row broke`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}

func TestCreateColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertColQ).
		WithArgs("c-1", "d-1", "sepal_length", "float", true, int32(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertColQ).
		WithArgs("c-2", "gone", "label", "string", false, int32(4)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.CreateColumn(context.Background(), &models.Column{ID: "c-1", DatasetID: "d-1", Name: "sepal_length", Type: "float", Include: true})
	if err != nil {
		t.Fatalf("CreateColumn error: %v", err)
	}

	err = repo.CreateColumn(context.Background(), &models.Column{ID: "c-2", DatasetID: "gone", Name: "label", Type: "string", Index: 4})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
