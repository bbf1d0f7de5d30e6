package postgres

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goto/folio/internal/store"
)

//go:embed migrations/*.sql
var migrationFs embed.FS

type Store struct {
	db     *gorm.DB
	config store.Config
}

func NewStore(c store.Config) (*Store, error) {
	gormDB, err := gorm.Open(postgres.Open(toDSN(c)), &gorm.Config{
		Logger: logger.Default.LogMode(toLogLevel(c.LogLevel)),
	})
	if err != nil {
		return nil, err
	}

	if c.Tracing {
		if err := gormDB.Use(otelgorm.NewPlugin(otelgorm.WithDBName(c.Name))); err != nil {
			return nil, fmt.Errorf("registering otelgorm plugin: %w", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	}

	return &Store{db: gormDB, config: c}, nil
}

// NewStoreFromDB wraps an open connection, used by tests running against
// go-sqlmock.
func NewStoreFromDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate applies every pending migration embedded in the binary.
func (s *Store) Migrate() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Rollback reverts the last applied migration.
func (s *Store) Rollback() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func (s *Store) migrator() (*migrate.Migrate, error) {
	iofsDriver, err := iofs.New(migrationFs, "migrations")
	if err != nil {
		return nil, err
	}
	m, err := migrate.NewWithSourceInstance("iofs", iofsDriver, toConnectionString(s.config))
	if err != nil {
		return nil, fmt.Errorf("initializing migration: %w", err)
	}
	return m, nil
}

func toDSN(c store.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SslMode,
	)
}

func toConnectionString(c store.Config) string {
	pgURL := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SslMode}}.Encode(),
	}
	return pgURL.String()
}

func toLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}
