package repomanager

import (
	"context"
	"database/sql"

	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/server/repositories/datasets"
	"github.com/backprop/server/internal/server/repositories/projects"
	"github.com/backprop/server/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Datasets(db dbx.DBTX) datasets.Repository
	Projects(db dbx.DBTX) projects.Repository
}
