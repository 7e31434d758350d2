// Package models - модели ответов сервиса броней и конвертация из domain.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ReservationResponse модель брони для внешних потребителей
type ReservationResponse struct {
	ID             int64  `json:"id"`
	ConfirmationID string `json:"confirmationId"`
	Status         string `json:"status"`

	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	DurationHours int       `json:"durationHours"`
	Timezone      string    `json:"timezone"`

	DecorID     *int64  `json:"decorId,omitempty"`
	PackOfferID int64   `json:"packOfferId"`
	ThemeID     *int64  `json:"themeId,omitempty"`
	CustomTheme *string `json:"customTheme,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Notes    *string         `json:"notes,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`

	TotalPrice float64 `json:"totalPrice"`

	AssignedAdminID    *int64 `json:"assignedAdminId,omitempty"`
	ConfirmedByAdminID *int64 `json:"confirmedByAdminId,omitempty"`

	Supplements []SupplementResponse `json:"supplements"`
	Answers     []AnswerResponse     `json:"answers"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// SupplementResponse снапшот доплаты с ценой на момент брони
type SupplementResponse struct {
	SupplementID   int64   `json:"supplementId"`
	PriceAtBooking float64 `json:"priceAtBooking"`
}

// AnswerResponse денормализованный снапшот ответа клиента
type AnswerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StatusHistoryResponse строка журнала переходов статуса
type StatusHistoryResponse struct {
	OldStatus *string   `json:"oldStatus,omitempty"`
	NewStatus string    `json:"newStatus"`
	Notes     *string   `json:"notes,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}

// NoteResponse внутренняя заметка администратора
type NoteResponse struct {
	ID        int64     `json:"id"`
	NoteText  string    `json:"noteText"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	supplements := make([]SupplementResponse, 0, len(r.Supplements))
	for _, s := range r.Supplements {
		supplements = append(supplements, SupplementResponse{
			SupplementID:   s.SupplementID,
			PriceAtBooking: s.PriceAtBooking,
		})
	}

	answers := make([]AnswerResponse, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, AnswerResponse{Question: a.Question, Answer: a.Answer})
	}

	return &ReservationResponse{
		ID:                 r.ID,
		ConfirmationID:     r.ConfirmationID,
		Status:             string(r.Status),
		StartAt:            r.StartAt,
		EndAt:              r.EndAt,
		DurationHours:      r.DurationHours,
		Timezone:           r.Timezone,
		DecorID:            r.DecorID,
		PackOfferID:        r.PackOfferID,
		ThemeID:            r.ThemeID,
		CustomTheme:        r.CustomTheme,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		Notes:              r.Notes,
		Metadata:           r.Metadata,
		TotalPrice:         r.TotalPrice,
		AssignedAdminID:    r.AssignedAdminID,
		ConfirmedByAdminID: r.ConfirmedByAdminID,
		Supplements:        supplements,
		Answers:            answers,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		ConfirmedAt:        r.ConfirmedAt,
	}
}

// FromDomainHistory конвертирует журнал переходов статуса
func FromDomainHistory(history []*domain.StatusHistory) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(history))
	for _, h := range history {
		var oldStatus *string
		if h.OldStatus != nil {
			s := string(*h.OldStatus)
			oldStatus = &s
		}
		out = append(out, StatusHistoryResponse{
			OldStatus: oldStatus,
			NewStatus: string(h.NewStatus),
			Notes:     h.Notes,
			ChangedAt: h.ChangedAt,
		})
	}
	return out
}

// FromDomainNotes конвертирует заметки администратора
func FromDomainNotes(notes []*domain.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteResponse{
			ID:        n.ID,
			NoteText:  n.NoteText,
			CreatedBy: n.CreatedBy,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

// ToDomainStatus валидирует и конвертирует строковый статус
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !domain.ValidReservationStatus(status) {
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
	return status, nil
}
