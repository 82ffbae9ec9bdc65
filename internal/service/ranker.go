package service

import (
	"math"
	"sort"

	"github.com/shenikar/travel_guardian_system/internal/models"
)

// kmPerDegree - пересчет градусов в километры на экваторе
const kmPerDegree = 111.0

// planarDistanceKm - плоское приближение дистанции между точками.
// Намеренно дешевое вместо дуги большого круга: используется только для
// ранжирования ближайших мест, не для навигации.
func planarDistanceKm(ref models.Location, loc models.Location) float64 {
	dLat := loc.Lat - ref.Lat
	dLng := loc.Lng - ref.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * kmPerDegree
}

// RankSafeZones ранжирует безопасные зоны по удаленности от опорной точки.
// Порядок: дистанция по возрастанию, при равенстве - BaseSafetyScore по
// убыванию, затем ID по возрастанию для полной детерминированности.
// category, если задана, ограничивает входной набор до ранжирования;
// пустой результат после фильтра допустим. Чистая функция: входной срез
// не изменяется.
func RankSafeZones(ref models.Location, zones []models.SafeZone, category string) []models.RankedSafeZone {
	ranked := make([]models.RankedSafeZone, 0, len(zones))
	for _, zone := range zones {
		if category != "" && zone.Category != category {
			continue
		}
		ranked = append(ranked, models.RankedSafeZone{
			SafeZone:   zone,
			DistanceKm: planarDistanceKm(ref, zone.Location),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		if ranked[i].BaseSafetyScore != ranked[j].BaseSafetyScore {
			return ranked[i].BaseSafetyScore > ranked[j].BaseSafetyScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}

// FilterSafeZones возвращает зоны выбранной категории в исходном порядке
// реестра, без ранжирования. Используется, когда опорная точка не задана.
func FilterSafeZones(zones []models.SafeZone, category string) []models.RankedSafeZone {
	result := make([]models.RankedSafeZone, 0, len(zones))
	for _, zone := range zones {
		if category != "" && zone.Category != category {
			continue
		}
		result = append(result, models.RankedSafeZone{SafeZone: zone})
	}
	return result
}
