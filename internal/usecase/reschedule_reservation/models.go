package reschedule_reservation

import "time"

// Request модель запроса на перенос брони
type Request struct {
	ReservationID int64
	NewStartAt    time.Time // Новое начало сессии, выровненное по границе часа
	NewEndAt      time.Time // Новый конец сессии; длительность может отличаться от прежней
	AdminID       int64     // Администратор, выполняющий перенос
}
