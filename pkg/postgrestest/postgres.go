package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/goto/folio/internal/store"
	"github.com/goto/folio/internal/store/postgres"
	"github.com/goto/folio/pkg/log"
)

const (
	pgUser     = "test_user"
	pgPassword = "test_pass"
	pgDBName   = "test_db"
)

// NewTestStore starts a disposable postgres container and returns a
// migrated store connected to it. Callers purge the container with
// PurgeTestDocker.
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	opts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDBName,
		},
	}
	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	cfg := store.Config{
		Host:            "localhost",
		User:            pgUser,
		Password:        pgPassword,
		Name:            pgDBName,
		Port:            resource.GetPort("5432/tcp"),
		SslMode:         "disable",
		LogLevel:        "silent",
		MaxIdleConns:    2,
		MaxOpenConns:    5,
		ConnMaxLifetime: time.Minute,
	}

	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	pool.MaxWait = 60 * time.Second
	var st *postgres.Store
	if err := pool.Retry(func() error {
		var err error
		st, err = postgres.NewStore(cfg)
		if err != nil {
			return err
		}
		db, err := st.DB().DB()
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	if err := st.Migrate(); err != nil {
		return nil, nil, nil, fmt.Errorf("migrating test database: %w", err)
	}
	logger.Info(context.Background(), "test database ready", "port", cfg.Port)

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}
