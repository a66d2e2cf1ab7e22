package fleetservice

// Ship модель судна из FleetService
type Ship struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	IMONumber    string  `json:"imo_number"`
	LengthMeters float64 `json:"length_meters"`
	DraftMeters  float64 `json:"draft_meters"`
	CapacityTEU  int     `json:"capacity_teu"`
}

// Container модель контейнера из FleetService
type Container struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	SizeFt int    `json:"size_ft"` // 20 или 40 футов
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от FleetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
