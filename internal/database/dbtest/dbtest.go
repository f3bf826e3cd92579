// Package dbtest provisions throwaway Postgres databases for store tests. A
// single container is started per test binary, a template database is
// migrated once, and every call to New receives its own copy of that template.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	User           = "postgres"
	Password       = "postgres"
	TemplateDBName = "BOORU_TEMPLATE"
)

type manager struct {
	*sync.Mutex
	pgContainer *postgres.PostgresContainer
	admin       *sqlx.DB
	setupErr    error
	provisioned atomic.Int32
}

var (
	shared = &manager{Mutex: &sync.Mutex{}}
	once   sync.Once
)

// New returns a connection to a freshly provisioned, fully migrated
// database. The test is skipped when running with -short as a docker
// daemon is required.
func New(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	once.Do(func() { shared.setupErr = shared.start() })
	if shared.setupErr != nil {
		t.Fatalf("failed to initialise postgres test container: %s", shared.setupErr)
	}

	return shared.provision(t)
}

func (manager *manager) start() error {
	ctx := context.Background()
	postgresC, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:14.1-alpine"),
		postgres.WithDatabase(TemplateDBName),
		postgres.WithUsername(User),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
		testcontainers.WithHostConfigModifier(func(hostConfig *container.HostConfig) {
			hostConfig.Tmpfs = map[string]string{"/var/lib/postgresql/data": "rw"}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to start container: %w", err)
	}
	manager.pgContainer = postgresC

	templateDsn, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return err
	}

	templateDB, err := sqlx.Open(database.SqlDialect, templateDsn)
	if err != nil {
		return err
	}
	if err := database.Migrate(templateDB.DB); err != nil {
		return err
	}
	if err := templateDB.Close(); err != nil {
		return err
	}

	admin, err := sqlx.Open(database.SqlDialect, strings.Replace(templateDsn, "/"+TemplateDBName, "/postgres", 1))
	if err != nil {
		return err
	}
	if _, err := admin.Exec(fmt.Sprintf(`ALTER DATABASE "%s" WITH is_template TRUE`, TemplateDBName)); err != nil {
		return fmt.Errorf("failed to mark template database: %w", err)
	}

	manager.admin = admin
	return nil
}

func (manager *manager) provision(t *testing.T) *sqlx.DB {
	manager.Lock()
	defer manager.Unlock()

	name := fmt.Sprintf("booru_test_%d", manager.provisioned.Add(1))
	if _, err := manager.admin.Exec(fmt.Sprintf(`CREATE DATABASE "%s" TEMPLATE "%s"`, name, TemplateDBName)); err != nil {
		t.Fatalf("failed to provision database '%s' from template: %s", name, err)
	}

	dsn, err := manager.pgContainer.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to derive connection string: %s", err)
	}

	db, err := sqlx.Open(database.SqlDialect, strings.Replace(dsn, "/"+TemplateDBName, "/"+name, 1))
	if err != nil {
		t.Fatalf("failed to open connection to '%s': %s", name, err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
