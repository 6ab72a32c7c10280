package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hrbridge/internal/domain/entity"
	"hrbridge/internal/infrastructure/database"
)

// APILogRepository persists and reads the outbound request audit trail.
type APILogRepository interface {
	Save(ctx context.Context, log *entity.APILog) error
	Recent(ctx context.Context, limit int) ([]entity.APILog, error)
}

type apiLogRepository struct {
	db     *database.Database
	logger *zap.Logger
}

// NewAPILogRepository creates a new API log repository
func NewAPILogRepository(db *database.Database, logger *zap.Logger) APILogRepository {
	return &apiLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save appends one audit entry
func (r *apiLogRepository) Save(ctx context.Context, log *entity.APILog) error {
	query := `
		INSERT INTO api_logs (endpoint, method, request_body, response_body, status_code, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		log.Endpoint,
		log.Method,
		log.RequestBody,
		log.ResponseBody,
		log.StatusCode,
		log.Duration,
		log.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save API log",
			zap.String("endpoint", log.Endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save API log: %w", err)
	}

	return nil
}

// Recent returns the newest audit entries, newest first
func (r *apiLogRepository) Recent(ctx context.Context, limit int) ([]entity.APILog, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, endpoint, method, request_body, response_body, status_code, duration_ms, created_at
		FROM api_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query API logs: %w", err)
	}
	defer rows.Close()

	var logs []entity.APILog
	for rows.Next() {
		var log entity.APILog
		if err := rows.Scan(
			&log.ID,
			&log.Endpoint,
			&log.Method,
			&log.RequestBody,
			&log.ResponseBody,
			&log.StatusCode,
			&log.Duration,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan API log row: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read API log rows: %w", err)
	}

	return logs, nil
}
