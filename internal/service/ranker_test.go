package service

import (
	"testing"

	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bangkokZones - зоны из стартового реестра, в произвольном порядке,
// чтобы ранжирование не зависело от порядка входа.
func bangkokZones() []models.SafeZone {
	return []models.SafeZone{
		{ID: "3", Name: "U.S. Embassy Bangkok", Category: models.SafeZoneEmbassy, Location: models.Location{Lat: 13.7376, Lng: 100.5322}, BaseSafetyScore: 99},
		{ID: "1", Name: "International Hospital Bangkok", Category: models.SafeZoneHospital, Location: models.Location{Lat: 13.7563, Lng: 100.5018}, BaseSafetyScore: 98},
		{ID: "5", Name: "Starbucks Siam Paragon", Category: models.SafeZoneCafe, Location: models.Location{Lat: 13.7466, Lng: 100.5347}, BaseSafetyScore: 90},
		{ID: "4", Name: "Tourist Police Station", Category: models.SafeZonePolice, Location: models.Location{Lat: 13.7469, Lng: 100.5349}, BaseSafetyScore: 97},
		{ID: "2", Name: "Women's Café & Co-working", Category: models.SafeZoneCafe, Location: models.Location{Lat: 13.7308, Lng: 100.5340}, BaseSafetyScore: 95},
	}
}

func TestRankSafeZones_OrderByDistance(t *testing.T) {
	// Опорная точка совпадает с Tourist Police Station
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}

	ranked := RankSafeZones(ref, bangkokZones(), "")

	require.Len(t, ranked, 5)
	gotIDs := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID, ranked[3].ID, ranked[4].ID}
	assert.Equal(t, []string{"4", "5", "3", "2", "1"}, gotIDs)
	assert.Equal(t, "Tourist Police Station", ranked[0].Name)
	assert.Zero(t, ranked[0].DistanceKm)
}

func TestRankSafeZones_DistancesMonotonic(t *testing.T) {
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}

	ranked := RankSafeZones(ref, bangkokZones(), "")

	require.Len(t, ranked, 5)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
}

func TestRankSafeZones_TieBreakScoreThenID(t *testing.T) {
	ref := models.Location{Lat: 0, Lng: 0}
	zones := []models.SafeZone{
		{ID: "b", Location: models.Location{Lat: 1, Lng: 0}, BaseSafetyScore: 90},
		{ID: "a", Location: models.Location{Lat: 1, Lng: 0}, BaseSafetyScore: 90},
		{ID: "c", Location: models.Location{Lat: 1, Lng: 0}, BaseSafetyScore: 99},
	}

	ranked := RankSafeZones(ref, zones, "")

	require.Len(t, ranked, 3)
	// Дистанции равны: сначала больший балл, при равных баллах - меньший ID
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "b", ranked[2].ID)
}

func TestRankSafeZones_CategoryFilter(t *testing.T) {
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}

	ranked := RankSafeZones(ref, bangkokZones(), models.SafeZoneCafe)

	require.Len(t, ranked, 2)
	assert.Equal(t, "5", ranked[0].ID)
	assert.Equal(t, "2", ranked[1].ID)
}

func TestRankSafeZones_CategoryFilter_NoMatches(t *testing.T) {
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}

	ranked := RankSafeZones(ref, bangkokZones(), "shelter")

	assert.Empty(t, ranked)
}

func TestRankSafeZones_InputOrderIndependent(t *testing.T) {
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}
	forward := bangkokZones()
	reversed := bangkokZones()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	assert.Equal(t, RankSafeZones(ref, forward, ""), RankSafeZones(ref, reversed, ""))
}

func TestRankSafeZones_DoesNotMutateInput(t *testing.T) {
	ref := models.Location{Lat: 13.7469, Lng: 100.5349}
	zones := bangkokZones()
	original := bangkokZones()

	RankSafeZones(ref, zones, "")

	assert.Equal(t, original, zones)
}

func TestFilterSafeZones_KeepsRegistryOrder(t *testing.T) {
	zones := bangkokZones()

	result := FilterSafeZones(zones, models.SafeZoneCafe)

	require.Len(t, result, 2)
	// Порядок реестра, без ранжирования и без дистанций
	assert.Equal(t, "5", result[0].ID)
	assert.Equal(t, "2", result[1].ID)
	assert.Zero(t, result[0].DistanceKm)
}
