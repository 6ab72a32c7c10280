package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"hrbridge/internal/config"
)

type Database struct {
	DB     *sql.DB
	logger *zap.Logger
}

func NewDatabase(cfg *config.Config, logger *zap.Logger) (*Database, error) {
	// Build PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	db, err := sql.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connected successfully",
		zap.String("driver", cfg.Database.Driver),
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("dbname", cfg.Database.DBName),
	)

	database := &Database{
		DB:     db,
		logger: logger,
	}

	// Run migrations
	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

func (d *Database) migrate() error {
	// Create api_logs table (PostgreSQL syntax)
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS api_logs (
		id SERIAL PRIMARY KEY,
		endpoint TEXT NOT NULL,
		method VARCHAR(10) NOT NULL,
		request_body TEXT DEFAULT '',
		response_body TEXT DEFAULT '',
		status_code INT NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := d.DB.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create api_logs table: %w", err)
	}

	// Create index separately (PostgreSQL doesn't support IF NOT EXISTS in same statement)
	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_api_logs_created_at ON api_logs(created_at);
	`
	_, err = d.DB.Exec(createIndexSQL)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	d.logger.Info("Database migrations completed successfully")
	return nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}
