package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
	"docstamp/internal/infrastructure/database"
)

// PlacementLogRepository persists placement diagnostic rows
type PlacementLogRepository interface {
	Save(ctx context.Context, log *entity.PlacementLog) error
	Recent(ctx context.Context, limit int) ([]entity.PlacementLog, error)
	FindByDocument(ctx context.Context, documentID string, limit int) ([]entity.PlacementLog, error)
}

type placementLogRepository struct {
	db     *database.Database
	logger *zap.Logger
}

// NewPlacementLogRepository creates a new placement log repository
func NewPlacementLogRepository(db *database.Database, logger *zap.Logger) PlacementLogRepository {
	return &placementLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save saves a placement log entry to the database
func (r *placementLogRepository) Save(ctx context.Context, log *entity.PlacementLog) error {
	query := `
		INSERT INTO placement_logs (document_id, page, rotation, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		log.DocumentID,
		log.Page,
		log.Rotation,
		log.Detail,
		log.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save placement log",
			zap.String("document_id", log.DocumentID),
			zap.Int("page", log.Page),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save placement log: %w", err)
	}

	return nil
}

// Recent returns the most recent placement log entries
func (r *placementLogRepository) Recent(ctx context.Context, limit int) ([]entity.PlacementLog, error) {
	query := `
		SELECT id, document_id, page, rotation, detail, created_at
		FROM placement_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query placement logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// FindByDocument returns placement log entries for one document
func (r *placementLogRepository) FindByDocument(ctx context.Context, documentID string, limit int) ([]entity.PlacementLog, error) {
	query := `
		SELECT id, document_id, page, rotation, detail, created_at
		FROM placement_logs
		WHERE document_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.DB.QueryContext(ctx, query, documentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query placement logs for document %s: %w", documentID, err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

func scanLogs(rows *sql.Rows) ([]entity.PlacementLog, error) {
	var logs []entity.PlacementLog
	for rows.Next() {
		var l entity.PlacementLog
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.Page, &l.Rotation, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan placement log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate placement logs: %w", err)
	}
	return logs, nil
}
