package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе назначения
	ErrInvalidStatus = errors.New("invalid assignment status")
)

// Request модели

// ListAssignmentsRequest запрос на получение назначений с фильтрацией
type ListAssignmentsRequest struct {
	BerthID         *int64     `json:"berthId,omitempty"`         // Фильтр по причалу (опционально)
	ShipID          *int64     `json:"shipId,omitempty"`          // Фильтр по судну (опционально)
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeTerminal bool       `json:"includeTerminal,omitempty"` // Включить завершённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAssignmentsRequest) ToDomainFilter() (domain.AssignmentFilter, error) {
	filter := domain.AssignmentFilter{
		BerthID:         r.BerthID,
		ShipID:          r.ShipID,
		From:            r.From,
		To:              r.To,
		IncludeTerminal: r.IncludeTerminal,
	}

	if r.Status != nil {
		status, err := ToDomainAssignmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainAssignmentStatus конвертирует строку в domain.AssignmentStatus
func ToDomainAssignmentStatus(s string) (domain.AssignmentStatus, error) {
	switch status := domain.AssignmentStatus(s); status {
	case domain.StatusScheduled, domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// AssignmentResponse ответ с данными назначения
type AssignmentResponse struct {
	ID                 int64  `json:"id"`
	BerthID            int64  `json:"berthId"`
	ShipID             *int64 `json:"shipId,omitempty"`
	ContainerID        *int64 `json:"containerId,omitempty"`
	AssignmentType     string `json:"assignmentType"`
	Priority           string `json:"priority"`
	Status             string `json:"status"`
	ScheduledArrival   string `json:"scheduledArrival"`   // ISO 8601
	ScheduledDeparture string `json:"scheduledDeparture"` // ISO 8601
	ActualArrival      *string `json:"actualArrival,omitempty"`
	ActualDeparture    *string `json:"actualDeparture,omitempty"`
	AssignedAt         string  `json:"assignedAt"`
	ReleasedAt         *string `json:"releasedAt,omitempty"`
	ContainerCount     int     `json:"containerCount"`
	Cost               *string `json:"cost,omitempty"` // Decimal строкой

	// Денормализованные данные
	ShipName        *string `json:"shipName,omitempty"`
	ContainerNumber *string `json:"containerNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssignmentListResponse ответ со списком назначений
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// ChargeResponse ответ с данными начисления
type ChargeResponse struct {
	ID                int64  `json:"id"`
	BerthAssignmentID int64  `json:"berthAssignmentId"`
	HourlyRate        string `json:"hourlyRate"`
	TotalHours        int64  `json:"totalHours"`
	BaseCharges       string `json:"baseCharges"`
	ServiceCharges    string `json:"serviceCharges"`
	TotalCharges      string `json:"totalCharges"`
	ChargedAt         string `json:"chargedAt"` // ISO 8601
	PaymentStatus     string `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainAssignment конвертирует domain модель в DTO
func FromDomainAssignment(a *domain.BerthAssignment) *AssignmentResponse {
	if a == nil {
		return nil
	}

	resp := &AssignmentResponse{
		ID:                 a.ID,
		BerthID:            a.BerthID,
		ShipID:             a.ShipID,
		ContainerID:        a.ContainerID,
		AssignmentType:     string(a.AssignmentType),
		Priority:           string(a.Priority),
		Status:             string(a.Status),
		ScheduledArrival:   a.ScheduledArrival.Format(time.RFC3339),
		ScheduledDeparture: a.ScheduledDeparture.Format(time.RFC3339),
		AssignedAt:         a.AssignedAt.Format(time.RFC3339),
		ContainerCount:     a.ContainerCount,
		ShipName:           a.ShipName,
		ContainerNumber:    a.ContainerNumber,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.ActualArrival != nil {
		s := a.ActualArrival.Format(time.RFC3339)
		resp.ActualArrival = &s
	}
	if a.ActualDeparture != nil {
		s := a.ActualDeparture.Format(time.RFC3339)
		resp.ActualDeparture = &s
	}
	if a.ReleasedAt != nil {
		s := a.ReleasedAt.Format(time.RFC3339)
		resp.ReleasedAt = &s
	}
	if a.Cost != nil {
		s := a.Cost.StringFixed(2)
		resp.Cost = &s
	}

	return resp
}

// FromDomainAssignmentList конвертирует список domain моделей в DTO
func FromDomainAssignmentList(assignments []*domain.BerthAssignment) *AssignmentListResponse {
	resp := &AssignmentListResponse{
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, *FromDomainAssignment(a))
	}
	return resp
}

// FromDomainCharge конвертирует domain модель начисления в DTO
func FromDomainCharge(c *domain.BerthUsageCharge) *ChargeResponse {
	if c == nil {
		return nil
	}

	return &ChargeResponse{
		ID:                c.ID,
		BerthAssignmentID: c.BerthAssignmentID,
		HourlyRate:        c.HourlyRate.StringFixed(2),
		TotalHours:        c.TotalHours,
		BaseCharges:       c.BaseCharges.StringFixed(2),
		ServiceCharges:    c.ServiceCharges.StringFixed(2),
		TotalCharges:      c.TotalCharges.StringFixed(2),
		ChargedAt:         c.ChargedAt.Format(time.RFC3339),
		PaymentStatus:     string(c.PaymentStatus),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
