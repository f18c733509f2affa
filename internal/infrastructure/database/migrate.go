package database

import (
	"embed"
	"errors"
	"fmt"

	"go-prescription-portal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration
func MigrateUp(cfg config.DBConfig, log *logrus.Logger) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}

	log.Info("Migrations applied successfully")
	return nil
}

// MigrateDown rolls back the given number of migrations
func MigrateDown(cfg config.DBConfig, log *logrus.Logger, steps int) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Nothing to roll back")
			return nil
		}
		return fmt.Errorf("migration down failed: %w", err)
	}

	log.Infof("Rolled back %d migration(s)", steps)
	return nil
}
