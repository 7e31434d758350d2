package create_reservation

import (
	"encoding/json"
	"time"
)

// AnswerInput денормализованная пара вопрос/ответ клиентской анкеты
type AnswerInput struct {
	Question string
	Answer   string
}

// Request модель запроса на создание брони
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	StartAt     time.Time // Начало сессии, выровненное по границе часа
	PackOfferID int64

	DecorID       *int64
	ThemeID       *int64
	CustomTheme   *string
	SupplementIDs []int64

	Notes    *string
	Metadata json.RawMessage
	Answers  []AnswerInput

	// CreatedAsConfirmed создает бронь сразу в статусе confirmed.
	// Требует AdminID
	CreatedAsConfirmed bool
	AdminID            *int64
}
