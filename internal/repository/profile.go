package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
)

type ProfileRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewProfileRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ProfileRepository {
	return &ProfileRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateProfile создает профиль вместе с экстренными контактами в одной
// транзакции
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.UserSafetyProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin profile transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO profiles (user_id, name, safety_keyword, preferred_language, current_lat, current_lng)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at;
	`
	var lat, lng *float64
	if profile.CurrentLocation != nil {
		lat = &profile.CurrentLocation.Lat
		lng = &profile.CurrentLocation.Lng
	}
	err = tx.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.SafetyKeyword,
		profile.PreferredLanguage,
		lat,
		lng,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	for _, contact := range profile.EmergencyContacts {
		_, err = tx.Exec(ctx, `
			INSERT INTO emergency_contacts (user_id, name, phone, relation, priority)
			VALUES ($1, $2, $3, $4, $5);
		`, profile.UserID, contact.Name, contact.Phone, contact.Relation, contact.Priority)
		if err != nil {
			return fmt.Errorf("failed to create emergency contact: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile transaction: %w", err)
	}
	return nil
}

// GetByUserID возвращает профиль с контактами, упорядоченными по приоритету
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserSafetyProfile, error) {
	profile := &models.UserSafetyProfile{}
	var lat, lng *float64

	query := `
		SELECT user_id, name, safety_keyword, preferred_language, current_lat, current_lng, created_at, updated_at
		FROM profiles
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.SafetyKeyword,
		&profile.PreferredLanguage,
		&lat,
		&lng,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile for user %s: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	if lat != nil && lng != nil {
		profile.CurrentLocation = &models.Location{Lat: *lat, Lng: *lng}
	}

	rows, err := r.db.Query(ctx, `
		SELECT name, phone, relation, priority
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY priority ASC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contact models.EmergencyContact
		if err := rows.Scan(&contact.Name, &contact.Phone, &contact.Relation, &contact.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan emergency contact row: %w", err)
		}
		profile.EmergencyContacts = append(profile.EmergencyContacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contacts iteration: %w", err)
	}

	return profile, nil
}

// UpdateLocation обновляет текущее местоположение в профиле
func (r *ProfileRepository) UpdateLocation(ctx context.Context, userID string, lat, lng float64) error {
	query := `
		UPDATE profiles SET
			current_lat = $1,
			current_lng = $2,
			updated_at = NOW()
		WHERE user_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lng, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s: %w", userID, service.ErrNotFound)
	}
	return nil
}

// SaveLocationUpdate сохраняет запись об обновлении местоположения в бд
func (r *ProfileRepository) SaveLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	query := `
		INSERT INTO location_updates (user_id, latitude, longitude)
		VALUES ($1, $2, $3) RETURNING id, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		update.UserID,
		update.Latitude,
		update.Longitude,
	).Scan(&update.ID, &update.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save location update: %w", err)
	}
	return nil
}

// GetProfileFromCache пытается получить профиль из Redis
func (r *ProfileRepository) GetProfileFromCache(ctx context.Context, userID string) (*models.UserSafetyProfile, error) {
	key := fmt.Sprintf("profile:%s", userID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile from cache: %w", err)
	}

	profile := &models.UserSafetyProfile{}
	if err := json.Unmarshal(val, profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile from cache: %w", err)
	}
	return profile, nil
}

// SetProfileCache сохраняет профиль в Redis
func (r *ProfileRepository) SetProfileCache(ctx context.Context, profile *models.UserSafetyProfile) error {
	key := fmt.Sprintf("profile:%s", profile.UserID)
	val, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set profile in cache: %w", err)
	}
	return nil
}

// InvalidateProfileCache удаляет профиль из Redis кэша
func (r *ProfileRepository) InvalidateProfileCache(ctx context.Context, userID string) error {
	key := fmt.Sprintf("profile:%s", userID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate profile cache: %w", err)
	}
	return nil
}
