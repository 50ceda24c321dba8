package calendar

import (
	"time"

	"github.com/salonhub/booking-calendar/internal/model"
)

// Размер месячной матрицы: 6 полных недель.
const (
	gridWeeks = 6
	weekDays  = 7
	gridCells = gridWeeks * weekDays
)

// DefaultWeekStart — день, с которого начинается неделя в сетке.
// Это презентационная договорённость, поэтому она передаётся
// параметром, а не зашивается в алгоритм.
const DefaultWeekStart = time.Sunday

// Cell — одна ячейка месячной сетки.
type Cell struct {
	Date           time.Time           `json:"date"`
	InCurrentMonth bool                `json:"inCurrentMonth"`
	IsToday        bool                `json:"isToday"`
	IsPast         bool                `json:"isPast"`
	Status         DayStatus           `json:"status,omitempty"`
	Appointments   []model.Appointment `json:"appointments"`
}

// MonthStatusSet — статусы дней запрашиваемого месяца и двух соседних.
// Любой срез может быть nil или короче месяца: тогда статус ячейки
// остаётся пустым (данные ещё в пути — это не ошибка).
type MonthStatusSet struct {
	Current  []DayStatus
	Previous []DayStatus
	Next     []DayStatus
}

// BuildMonthGrid строит матрицу месяца: 6 недель по 7 ячеек начиная с
// ближайшего weekStart перед первым числом. Если последняя неделя
// целиком состоит из дней чужого месяца, она отбрасывается.
//
// today задаёт "сегодня" для IsToday/IsPast (сравнение с точностью до
// дня); ячейки строятся в локации today. appointments раскладываются
// по ячейкам точным совпадением календарного дня.
func BuildMonthGrid(
	year int,
	month time.Month,
	today time.Time,
	statuses MonthStatusSet,
	appointments []model.Appointment,
	weekStart time.Weekday,
) [][]Cell {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	offset := (int(first.Weekday()) - int(weekStart) + weekDays) % weekDays
	start := first.AddDate(0, 0, -offset)

	ty, tm, td := today.Date()
	todayDate := time.Date(ty, tm, td, 0, 0, 0, 0, loc)

	// Раскладываем встречи по календарным дням один раз.
	buckets := make(map[[3]int][]model.Appointment, len(appointments))
	for _, a := range appointments {
		ay, am, ad := a.At.Date()
		key := [3]int{ay, int(am), ad}
		buckets[key] = append(buckets[key], a)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	cells := make([]Cell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		d := start.AddDate(0, 0, i)
		dy, dm, dd := d.Date()

		cell := Cell{
			Date:           d,
			InCurrentMonth: dy == year && dm == month,
			IsToday:        d.Equal(todayDate),
			IsPast:         d.Before(todayDate),
			Appointments:   buckets[[3]int{dy, int(dm), dd}],
		}
		if cell.Appointments == nil {
			cell.Appointments = []model.Appointment{}
		}

		// Статус берём из среза того месяца, которому принадлежит
		// день; декабрь/январь на границе года попадают в Previous и
		// Next естественным образом.
		switch {
		case cell.InCurrentMonth:
			cell.Status = statusAt(statuses.Current, dd)
		case dy == prev.Year() && dm == prev.Month():
			cell.Status = statusAt(statuses.Previous, dd)
		case dy == next.Year() && dm == next.Month():
			cell.Status = statusAt(statuses.Next, dd)
		}

		cells = append(cells, cell)
	}

	weeks := make([][]Cell, 0, gridWeeks)
	for i := 0; i < len(cells); i += weekDays {
		weeks = append(weeks, cells[i:i+weekDays])
	}

	// Полностью чужая последняя неделя лишь дублирует начало
	// следующего месяца — не показываем её.
	last := weeks[len(weeks)-1]
	foreign := true
	for _, c := range last {
		if c.InCurrentMonth {
			foreign = false
			break
		}
	}
	if foreign {
		weeks = weeks[:len(weeks)-1]
	}

	return weeks
}

// statusAt достаёт статус дня day (с 1) из среза, толерантно к
// отсутствующим данным.
func statusAt(statuses []DayStatus, day int) DayStatus {
	idx := day - 1
	if idx < 0 || idx >= len(statuses) {
		return ""
	}
	return statuses[idx]
}
