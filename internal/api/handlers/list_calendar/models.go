package list_calendar

import "github.com/m04kA/Studio-ReservationService/internal/service/calendar"

// ListCalendarResponse HTTP response model
type ListCalendarResponse struct {
	Bucket  string           `json:"bucket"`
	From    string           `json:"from"`
	To      string           `json:"to"`
	Entries []calendar.Entry `json:"entries"`
}
