package get_berth_availability

import (
	"time"

	getBerthAvailability "github.com/m04kA/SMC-BerthService/internal/usecase/get_berth_availability"
)

// OccupiedWindowResponse занятое окно причала
type OccupiedWindowResponse struct {
	AssignmentID   int64  `json:"assignmentId"`
	Start          string `json:"start"` // RFC 3339
	End            string `json:"end"`   // RFC 3339
	Status         string `json:"status"`
	ContainerCount int    `json:"containerCount"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BerthID           int64                    `json:"berthId"`
	BerthName         string                   `json:"berthName"`
	Capacity          int                      `json:"capacity"`
	CurrentLoad       int                      `json:"currentLoad"`
	RemainingCapacity int                      `json:"remainingCapacity"`
	UnderMaintenance  bool                     `json:"underMaintenance"`
	Occupied          []OccupiedWindowResponse `json:"occupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBerthAvailability.Response) *AvailabilityResponse {
	occupied := make([]OccupiedWindowResponse, 0, len(resp.Occupied))
	for _, w := range resp.Occupied {
		occupied = append(occupied, OccupiedWindowResponse{
			AssignmentID:   w.AssignmentID,
			Start:          w.Window.Start.Format(time.RFC3339),
			End:            w.Window.End.Format(time.RFC3339),
			Status:         string(w.Status),
			ContainerCount: w.ContainerCount,
		})
	}

	return &AvailabilityResponse{
		BerthID:           resp.Berth.ID,
		BerthName:         resp.Berth.Name,
		Capacity:          resp.Berth.Capacity,
		CurrentLoad:       resp.Berth.CurrentLoad,
		RemainingCapacity: resp.RemainingCapacity,
		UnderMaintenance:  resp.Berth.UnderMaintenance,
		Occupied:          occupied,
	}
}
