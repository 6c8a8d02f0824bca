// Package database provides database client helpers for tests.
package database

import (
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/gatherhub/gatherhub/pkg/database"
	"github.com/gatherhub/gatherhub/test/util"
)

// NewTestClient creates a database client bound to an isolated per-test
// schema. In CI it uses the external PostgreSQL service container
// (CI_DATABASE_URL); locally it uses a shared testcontainer. Cleanup is
// registered on t automatically.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
