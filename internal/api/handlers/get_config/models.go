package get_config

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// DayHoursModel рабочие часы одного дня недели
type DayHoursModel struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// WeekScheduleModel недельное расписание; отсутствующий день - выходной
type WeekScheduleModel struct {
	Monday    *DayHoursModel `json:"monday,omitempty"`
	Tuesday   *DayHoursModel `json:"tuesday,omitempty"`
	Wednesday *DayHoursModel `json:"wednesday,omitempty"`
	Thursday  *DayHoursModel `json:"thursday,omitempty"`
	Friday    *DayHoursModel `json:"friday,omitempty"`
	Saturday  *DayHoursModel `json:"saturday,omitempty"`
	Sunday    *DayHoursModel `json:"sunday,omitempty"`
}

// ConfigResponse HTTP response model
type ConfigResponse struct {
	Timezone            string            `json:"timezone"`
	BusinessHours       WeekScheduleModel `json:"businessHours"`
	SlotDurationMinutes int               `json:"slotDurationMinutes"`
	AdvanceBookingDays  int               `json:"advanceBookingDays"`
	MinimumNoticeDays   int               `json:"minimumNoticeDays"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// FromDomainConfig конвертирует доменную конфигурацию в HTTP response
func FromDomainConfig(cfg *domain.AvailabilityConfig) *ConfigResponse {
	return &ConfigResponse{
		Timezone: cfg.Timezone,
		BusinessHours: WeekScheduleModel{
			Monday:    dayFromDomain(cfg.BusinessHours.Monday),
			Tuesday:   dayFromDomain(cfg.BusinessHours.Tuesday),
			Wednesday: dayFromDomain(cfg.BusinessHours.Wednesday),
			Thursday:  dayFromDomain(cfg.BusinessHours.Thursday),
			Friday:    dayFromDomain(cfg.BusinessHours.Friday),
			Saturday:  dayFromDomain(cfg.BusinessHours.Saturday),
			Sunday:    dayFromDomain(cfg.BusinessHours.Sunday),
		},
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		AdvanceBookingDays:  cfg.AdvanceBookingDays,
		MinimumNoticeDays:   cfg.MinimumNoticeDays,
		UpdatedAt:           cfg.UpdatedAt,
	}
}

func dayFromDomain(d *domain.DayHours) *DayHoursModel {
	if d == nil {
		return nil
	}
	return &DayHoursModel{Start: d.Start.String(), End: d.End.String()}
}
