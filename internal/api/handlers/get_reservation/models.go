package get_reservation

import "github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"

// GetReservationResponse HTTP response model: бронь с журналом и заметками
type GetReservationResponse struct {
	Reservation   *models.ReservationResponse    `json:"reservation"`
	StatusHistory []models.StatusHistoryResponse `json:"statusHistory"`
	Notes         []models.NoteResponse          `json:"notes"`
}
