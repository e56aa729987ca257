package database

import (
	"fmt"
	"strings"

	"justco/internal/config"
	"justco/internal/microservices/http-api/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite://"

// ConnectDB opens the chat database, applies the pool settings and, when
// enabled, migrates the schema. DATABASE_URL may be a PostgreSQL URL/DSN or
// sqlite://<path> for local runs.
func ConnectDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the handle if ping fails to avoid a leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		log.Info().Msg("Database migrations applied successfully")
	} else if err := CheckSchema(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Info().Msg("Connected to the database successfully")
	return db, nil
}

// Migrate creates or updates chat_rooms and messages with their indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ChatRoom{}, &models.Message{}); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// requiredColumns are the columns the repositories read and write. The
// chat_rooms type column is optional; listing falls back without it.
var requiredColumns = []struct {
	model  interface{}
	table  string
	column string
}{
	{&models.ChatRoom{}, "chat_rooms", "chat_name"},
	{&models.ChatRoom{}, "chat_rooms", "secret_code"},
	{&models.Message{}, "messages", "id"},
	{&models.Message{}, "messages", "secret_code"},
	{&models.Message{}, "messages", "user_name"},
	{&models.Message{}, "messages", "user_logo"},
	{&models.Message{}, "messages", "text"},
	{&models.Message{}, "messages", "created_at"},
}

// CheckSchema verifies an unmigrated database has what the repositories
// need, so a missing column fails startup instead of every request.
func CheckSchema(db *gorm.DB) error {
	m := db.Migrator()
	for _, rc := range requiredColumns {
		if !m.HasTable(rc.model) {
			return fmt.Errorf("schema check: table %s is missing, enable DB_AUTO_MIGRATE", rc.table)
		}
		if !m.HasColumn(rc.model, rc.column) {
			return fmt.Errorf("schema check: column %s.%s is missing, enable DB_AUTO_MIGRATE", rc.table, rc.column)
		}
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(url string) gorm.Dialector {
	if path, ok := strings.CutPrefix(url, sqlitePrefix); ok {
		return sqlite.Open(path)
	}
	return postgres.Open(url)
}
