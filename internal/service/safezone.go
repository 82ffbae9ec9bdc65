package service

import (
	"context"
	"fmt"

	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SafeZoneService определяет контракт выборки безопасных зон
type SafeZoneService interface {
	QuerySafeZones(ctx context.Context, ref *models.Location, category string) ([]models.RankedSafeZone, error)
}

type safeZoneService struct {
	zones  SafeZoneRepository
	logger *logrus.Logger
}

func NewSafeZoneService(zones SafeZoneRepository, logger *logrus.Logger) SafeZoneService {
	return &safeZoneService{
		zones:  zones,
		logger: logger,
	}
}

// QuerySafeZones возвращает зоны каталога. С опорной точкой - ранжированные
// по удаленности, без нее - в стабильном порядке реестра, без дистанций.
func (s *safeZoneService) QuerySafeZones(ctx context.Context, ref *models.Location, category string) ([]models.RankedSafeZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safezone",
		"method":   "QuerySafeZones",
		"category": category,
	})

	zones, err := s.zones.GetCatalogFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Safe zone cache read failed")
	}
	if zones == nil {
		zones, err = s.zones.ListSafeZones(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list safe zones from repository")
			return nil, fmt.Errorf("service: could not list safe zones: %w", err)
		}
		if cacheErr := s.zones.SetCatalogCache(ctx, zones); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to cache safe zone catalog")
		}
	}

	if ref == nil {
		return FilterSafeZones(zones, category), nil
	}

	ranked := RankSafeZones(*ref, zones, category)
	log.WithField("count", len(ranked)).Info("Safe zones ranked")
	return ranked, nil
}
