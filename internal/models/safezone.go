package models

// Категории безопасных зон
const (
	SafeZoneHospital = "hospital"
	SafeZoneEmbassy  = "embassy"
	SafeZonePolice   = "police"
	SafeZoneCafe     = "cafe"
	SafeZoneHotel    = "hotel"
	SafeZoneOther    = "other"
)

// SafeZone - проверенное безопасное место. Справочные данные,
// ядро их только читает.
type SafeZone struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Location        Location `json:"location"`
	Address         string   `json:"address,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	OpenHours       string   `json:"open_hours,omitempty"`
	Verification    string   `json:"verification"`
	BaseSafetyScore int      `json:"base_safety_score"`
}

// RankedSafeZone - SafeZone с вычисленной дистанцией до опорной точки.
// Представление, а не хранимая сущность: пересчитывается на каждый запрос.
type RankedSafeZone struct {
	SafeZone
	DistanceKm float64 `json:"distance_km"`
}
