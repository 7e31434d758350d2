package get_available_slots

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// generateDaySlots генерирует кандидатов-слотов на день: от времени открытия
// с шагом slotStepMinutes, пока конец сессии не выходит за время закрытия.
// Валидация конфигурации гарантирует, что границы дня и шаг кратны целому
// часу, поэтому каждый слот начинается и заканчивается в ":00"
func generateDaySlots(
	date time.Time,
	hours *domain.DayHours,
	slotStepMinutes int,
	durationHours int,
	loc *time.Location,
) []domain.Slot {
	if hours == nil {
		return []domain.Slot{}
	}

	openMin := hours.Start.MinutesFromMidnight()
	closeMin := hours.End.MinutesFromMidnight()
	durationMin := durationHours * 60

	slots := make([]domain.Slot, 0)
	for startMin := openMin; startMin+durationMin <= closeMin; startMin += slotStepMinutes {
		start := time.Date(date.Year(), date.Month(), date.Day(), startMin/60, startMin%60, 0, 0, loc)
		slots = append(slots, domain.Slot{
			Start: start,
			End:   start.Add(time.Duration(durationMin) * time.Minute),
		})
	}

	return slots
}

// filterConflicting убирает слоты, пересекающиеся с активными бронями.
// Интервалы полуоткрытые: брони "впритык" не считаются пересечением
func filterConflicting(slots []domain.Slot, reservations []*domain.Reservation) []domain.Slot {
	free := make([]domain.Slot, 0, len(slots))

	for _, slot := range slots {
		conflict := false
		for _, r := range reservations {
			if !r.IsActive() {
				continue
			}
			if r.Overlaps(slot.Start, slot.End) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, slot)
		}
	}

	return free
}

// startOfDay обнуляет время, оставляя только дату в указанной зоне
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	return startOfDay(date, loc).Before(startOfDay(now, loc))
}

// satisfiesNotice проверяет ограничение minimumNoticeDays: между "сегодня"
// и датой брони должно быть не меньше noticeDays суток
func satisfiesNotice(date, now time.Time, noticeDays int, loc *time.Location) bool {
	earliest := startOfDay(now, loc).AddDate(0, 0, noticeDays)
	return !startOfDay(date, loc).Before(earliest)
}

// withinAdvanceWindow проверяет ограничение advanceBookingDays
func withinAdvanceWindow(date, now time.Time, advanceDays int, loc *time.Location) bool {
	latest := startOfDay(now, loc).AddDate(0, 0, advanceDays)
	return !startOfDay(date, loc).After(latest)
}
