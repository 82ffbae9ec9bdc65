package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
)

const safeZoneCatalogKey = "safe_zones:catalog"

type SafeZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSafeZoneRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SafeZoneRepository {
	return &SafeZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListSafeZones возвращает каталог безопасных зон в стабильном порядке
func (r *SafeZoneRepository) ListSafeZones(ctx context.Context) ([]models.SafeZone, error) {
	query := `
		SELECT
			id,
			name,
			category,
			latitude,
			longitude,
			address,
			phone,
			open_hours,
			verification,
			base_safety_score
		FROM safe_zones
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list safe zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.SafeZone, 0)
	for rows.Next() {
		var zone models.SafeZone
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Category,
			&zone.Location.Lat,
			&zone.Location.Lng,
			&zone.Address,
			&zone.Phone,
			&zone.OpenHours,
			&zone.Verification,
			&zone.BaseSafetyScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safe zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error safe zone iteration: %w", err)
	}
	return zones, nil
}

// GetCatalogFromCache пытается получить каталог зон из Redis
func (r *SafeZoneRepository) GetCatalogFromCache(ctx context.Context) ([]models.SafeZone, error) {
	val, err := r.redisClient.Get(ctx, safeZoneCatalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get safe zone catalog from cache: %w", err)
	}

	var zones []models.SafeZone
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal safe zone catalog from cache: %w", err)
	}
	return zones, nil
}

// SetCatalogCache сохраняет каталог зон в Redis. Справочник меняется редко,
// поэтому живет в кеше дольше профилей.
func (r *SafeZoneRepository) SetCatalogCache(ctx context.Context, zones []models.SafeZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal safe zone catalog for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, safeZoneCatalogKey, val, 30*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set safe zone catalog in cache: %w", err)
	}
	return nil
}
