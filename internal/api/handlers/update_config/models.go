package update_config

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/pkg/types"
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

// UpdateConfigRequest HTTP request model. Nil поля сохраняют текущее
// значение; businessHours заменяет недельное расписание целиком
type UpdateConfigRequest struct {
	Timezone            *string            `json:"timezone,omitempty"`
	BusinessHours       *WeekScheduleModel `json:"businessHours,omitempty"`
	SlotDurationMinutes *int               `json:"slotDurationMinutes,omitempty"`
	AdvanceBookingDays  *int               `json:"advanceBookingDays,omitempty"`
	MinimumNoticeDays   *int               `json:"minimumNoticeDays,omitempty"`
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

// ToDomainUpdate конвертирует HTTP запрос в доменную модель обновления
func (r *UpdateConfigRequest) ToDomainUpdate() (domain.AvailabilityConfigUpdate, error) {
	upd := domain.AvailabilityConfigUpdate{
		Timezone:            r.Timezone,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		MinimumNoticeDays:   r.MinimumNoticeDays,
	}

	if r.BusinessHours == nil {
		return upd, nil
	}

	schedule := domain.WeekSchedule{}
	days := []struct {
		src *DayHoursModel
		dst **domain.DayHours
	}{
		{r.BusinessHours.Monday, &schedule.Monday},
		{r.BusinessHours.Tuesday, &schedule.Tuesday},
		{r.BusinessHours.Wednesday, &schedule.Wednesday},
		{r.BusinessHours.Thursday, &schedule.Thursday},
		{r.BusinessHours.Friday, &schedule.Friday},
		{r.BusinessHours.Saturday, &schedule.Saturday},
		{r.BusinessHours.Sunday, &schedule.Sunday},
	}
	for _, d := range days {
		if d.src == nil {
			continue
		}
		start, err := types.NewTimeStringFromString(d.src.Start)
		if err != nil {
			return domain.AvailabilityConfigUpdate{}, err
		}
		end, err := types.NewTimeStringFromString(d.src.End)
		if err != nil {
			return domain.AvailabilityConfigUpdate{}, err
		}
		*d.dst = &domain.DayHours{Start: start, End: end}
	}
	upd.BusinessHours = &schedule

	return upd, nil
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
