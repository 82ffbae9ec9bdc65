package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
)

type EmergencyRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyRepository(db *pgxpool.Pool) service.EmergencyRepository {
	return &EmergencyRepository{
		db: db,
	}
}

// SaveEvent сохраняет экстренное событие вместе с результатами рассылки
// в одной транзакции. Порядок результатов фиксируется колонкой position.
func (r *EmergencyRepository) SaveEvent(ctx context.Context, event *models.EmergencyEvent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	suggestions, err := json.Marshal(event.SafeZoneSuggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal safe zone suggestions: %w", err)
	}

	var lat, lng *float64
	if event.Location != nil {
		lat = &event.Location.Lat
		lng = &event.Location.Lng
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO emergency_events (id, user_id, triggered_at, trigger_source, originating_message, latitude, longitude, status, safe_zone_suggestions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		event.ID,
		event.UserID,
		event.TriggeredAt,
		event.TriggerSource,
		event.OriginatingMessage,
		lat,
		lng,
		event.Status,
		suggestions,
	)
	if err != nil {
		return fmt.Errorf("failed to create emergency event: %w", err)
	}

	for i, result := range event.DispatchResults {
		_, err = tx.Exec(ctx, `
			INSERT INTO dispatch_results (event_id, position, channel, target_name, attempted_at, outcome, retry_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, event.ID, i, result.Channel, result.TargetName, result.AttemptedAt, result.Outcome, result.RetryCount)
		if err != nil {
			return fmt.Errorf("failed to create dispatch result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// GetEvent возвращает экстренное событие с результатами рассылки
// в порядке диспетчеризации
func (r *EmergencyRepository) GetEvent(ctx context.Context, id uuid.UUID) (*models.EmergencyEvent, error) {
	event := &models.EmergencyEvent{}
	var lat, lng *float64
	var suggestions []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, triggered_at, trigger_source, originating_message, latitude, longitude, status, safe_zone_suggestions
		FROM emergency_events
		WHERE id = $1;
	`, id).Scan(
		&event.ID,
		&event.UserID,
		&event.TriggeredAt,
		&event.TriggerSource,
		&event.OriginatingMessage,
		&lat,
		&lng,
		&event.Status,
		&suggestions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency event %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency event: %w", err)
	}

	if lat != nil && lng != nil {
		event.Location = &models.Location{Lat: *lat, Lng: *lng}
	}
	if len(suggestions) > 0 {
		if err := json.Unmarshal(suggestions, &event.SafeZoneSuggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal safe zone suggestions: %w", err)
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT channel, target_name, attempted_at, outcome, retry_count
		FROM dispatch_results
		WHERE event_id = $1
		ORDER BY position ASC;
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result models.AlertDispatchResult
		if err := rows.Scan(&result.Channel, &result.TargetName, &result.AttemptedAt, &result.Outcome, &result.RetryCount); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch result row: %w", err)
		}
		event.DispatchResults = append(event.DispatchResults, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error dispatch results iteration: %w", err)
	}

	return event, nil
}

// UpdateEventStatus переводит событие из active в терминальный статус.
// Повторный перевод уже завершенного события не проходит.
func (r *EmergencyRepository) UpdateEventStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE emergency_events SET
			status = $1
		WHERE id = $2 AND status = 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update emergency event status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency event %s not found or already terminal: %w", id, service.ErrNotFound)
	}
	return nil
}
