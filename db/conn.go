// Package db opens the relational store and keeps the schema migrated
package db

import (
	"fmt"

	"fdict/dictation-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected by db.driver (sqlite for single-box
// installs, postgres otherwise) and automigrates the schema.
func New() (*gorm.DB, error) {
	var (
		d   *gorm.DB
		err error
	)

	dsn := viper.GetString("db.dsn")

	// TranslateError maps driver errors onto gorm's sentinels so callers
	// can check for gorm.ErrDuplicatedKey regardless of the driver.
	cfg := &gorm.Config{TranslateError: true}

	switch viper.GetString("db.driver") {
	case "postgres":
		d, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		d, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = d.AutoMigrate(model.User{}, model.VideoClip{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return d, nil
}
