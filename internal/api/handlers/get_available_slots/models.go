package get_available_slots

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	getSlots "github.com/m04kA/Studio-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// GetAvailableSlotsResponse HTTP response model
type GetAvailableSlotsResponse struct {
	Date          string         `json:"date"`
	PackOfferID   int64          `json:"packOfferId"`
	DurationHours int            `json:"durationHours"`
	Slots         []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{StartAt: s.Start, EndAt: s.End})
	}

	return &GetAvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		PackOfferID:   resp.PackOfferID,
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}
