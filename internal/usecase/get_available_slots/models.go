package get_available_slots

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date        time.Time // Календарная дата (без времени)
	PackOfferID int64     // Пакет определяет длительность сессии
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date          time.Time     // Дата, на которую запрашивались слоты
	PackOfferID   int64         // ID пакета
	DurationHours int           // Длительность сессии в часах
	Slots         []domain.Slot // Свободные слоты по возрастанию начала
}
