package create_reservation

import (
	"encoding/json"
	"time"

	createReservation "github.com/m04kA/Studio-ReservationService/internal/usecase/create_reservation"
)

// AnswerInput пара вопрос/ответ клиентской анкеты
type AnswerInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	StartAt     time.Time `json:"startAt"` // RFC 3339
	PackOfferID int64     `json:"packOfferId"`

	DecorID       *int64  `json:"decorId,omitempty"`
	ThemeID       *int64  `json:"themeId,omitempty"`
	CustomTheme   *string `json:"customTheme,omitempty"`
	SupplementIDs []int64 `json:"supplementIds,omitempty"`

	Notes    *string         `json:"notes,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
	Answers  []AnswerInput   `json:"answers,omitempty"`

	CreatedAsConfirmed bool `json:"createdAsConfirmed,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(adminID *int64) createReservation.Request {
	answers := make([]createReservation.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, createReservation.AnswerInput{
			Question: a.Question,
			Answer:   a.Answer,
		})
	}

	return createReservation.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,

		StartAt:     r.StartAt,
		PackOfferID: r.PackOfferID,

		DecorID:       r.DecorID,
		ThemeID:       r.ThemeID,
		CustomTheme:   r.CustomTheme,
		SupplementIDs: r.SupplementIDs,

		Notes:    r.Notes,
		Metadata: r.Metadata,
		Answers:  answers,

		CreatedAsConfirmed: r.CreatedAsConfirmed,
		AdminID:            adminID,
	}
}
