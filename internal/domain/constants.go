package domain

// Default configuration values
const (
	DefaultTimezone            = "Europe/Paris"
	DefaultSlotDurationMinutes = 60
	DefaultAdvanceBookingDays  = 90
	DefaultMinimumNoticeDays   = 2
)

// Business validation constants
const (
	MinSlotDurationMinutes = 60
	MaxSlotDurationMinutes = 480 // 8 hours
	MinAdvanceBookingDays  = 1
	MaxAdvanceBookingDays  = 365 // 1 year
	MinMinimumNoticeDays   = 0
	MaxMinimumNoticeDays   = 30
	MaxNotesLength         = 2000
	MaxCustomerNameLength  = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ActiveStatuses - статусы, при которых бронь занимает свой интервал
// (участвует в проверке пересечений)
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses - статусы, из которых нет дальнейших переходов
var TerminalStatuses = []ReservationStatus{
	StatusCancelled,
	StatusRejected,
	StatusCompleted,
}
