package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/salonhub/booking-calendar/internal/model"
)

func gridAppointment(t *testing.T, name string, at time.Time) model.Appointment {
	t.Helper()
	return model.Appointment{
		ID:           uuid.New(),
		CustomerName: name,
		At:           at,
		Service:      datatypes.NewJSONType(model.ServiceSnapshot{ID: uuid.New(), Name: "svc"}),
		Master:       datatypes.NewJSONType(model.MasterSnapshot{ID: uuid.New(), Name: "mst"}),
		Status:       model.AppointmentStatusNew,
	}
}

func flatten(weeks [][]Cell) []Cell {
	var cells []Cell
	for _, w := range weeks {
		cells = append(cells, w...)
	}
	return cells
}

func TestBuildMonthGrid_ContiguousAndComplete(t *testing.T) {
	today := mustTime(t, 2025, time.January, 10, 0, 0)
	weeks := BuildMonthGrid(2025, time.January, today, MonthStatusSet{}, nil, DefaultWeekStart)

	for i, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("week %d has %d cells, want 7", i, len(w))
		}
	}

	cells := flatten(weeks)
	// 1 января 2025 — среда, при старте недели с воскресенья сетка
	// начинается с 29 декабря 2024.
	wantStart := mustTime(t, 2024, time.December, 29, 0, 0)
	if !cells[0].Date.Equal(wantStart) {
		t.Fatalf("first cell: got %v, want %v", cells[0].Date, wantStart)
	}

	for i := 1; i < len(cells); i++ {
		want := cells[i-1].Date.AddDate(0, 0, 1)
		if !cells[i].Date.Equal(want) {
			t.Fatalf("cell %d: got %v, want %v (gap or duplicate)", i, cells[i].Date, want)
		}
	}
}

func TestBuildMonthGrid_TrailingForeignWeekDropped(t *testing.T) {
	today := mustTime(t, 2025, time.February, 1, 0, 0)

	// Февраль 2025 помещается в 5 недель: шестая целиком мартовская
	// и должна отбрасываться.
	weeks := BuildMonthGrid(2025, time.February, today, MonthStatusSet{}, nil, DefaultWeekStart)
	if len(weeks) != 5 {
		t.Fatalf("February 2025: got %d weeks, want 5", len(weeks))
	}

	// Март 2025 заканчивается в шестой неделе (30 и 31 марта),
	// отбрасывать её нельзя.
	weeks = BuildMonthGrid(2025, time.March, today, MonthStatusSet{}, nil, DefaultWeekStart)
	if len(weeks) != 6 {
		t.Fatalf("March 2025: got %d weeks, want 6", len(weeks))
	}

	last := weeks[len(weeks)-1]
	foreign := true
	for _, c := range last {
		if c.InCurrentMonth {
			foreign = false
		}
	}
	if foreign {
		t.Fatalf("last week is fully foreign-month")
	}
}

func TestBuildMonthGrid_TodayAndPastFlags(t *testing.T) {
	// "Сегодня" с временем суток: сравнение должно идти по дню.
	today := mustTime(t, 2025, time.January, 15, 18, 45)
	weeks := BuildMonthGrid(2025, time.January, today, MonthStatusSet{}, nil, DefaultWeekStart)

	var todayCount int
	for _, c := range flatten(weeks) {
		if c.IsToday {
			todayCount++
			if c.Date.Day() != 15 || c.Date.Month() != time.January {
				t.Fatalf("wrong cell marked today: %v", c.Date)
			}
			if c.IsPast {
				t.Fatalf("today must not be past")
			}
		}
		if c.Date.Month() == time.January && c.Date.Day() == 14 && !c.IsPast {
			t.Fatalf("Jan 14 must be past when today is Jan 15")
		}
		if c.Date.Month() == time.January && c.Date.Day() == 16 && c.IsPast {
			t.Fatalf("Jan 16 must not be past when today is Jan 15")
		}
	}
	if todayCount != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todayCount)
	}
}

func TestBuildMonthGrid_StatusStitchingAcrossYearWrap(t *testing.T) {
	today := mustTime(t, 2025, time.January, 1, 0, 0)

	statuses := MonthStatusSet{
		Current:  MonthStatuses(2025, time.January),
		Previous: MonthStatuses(2024, time.December),
		Next:     MonthStatuses(2025, time.February),
	}

	weeks := BuildMonthGrid(2025, time.January, today, statuses, nil, DefaultWeekStart)
	for _, c := range flatten(weeks) {
		var want DayStatus
		switch {
		case c.Date.Year() == 2025 && c.Date.Month() == time.January:
			want = statuses.Current[c.Date.Day()-1]
		case c.Date.Year() == 2024 && c.Date.Month() == time.December:
			want = statuses.Previous[c.Date.Day()-1]
		case c.Date.Year() == 2025 && c.Date.Month() == time.February:
			want = statuses.Next[c.Date.Day()-1]
		default:
			t.Fatalf("unexpected month in grid: %v", c.Date)
		}
		if c.Status != want {
			t.Fatalf("%v: got status %q, want %q", c.Date, c.Status, want)
		}
	}
}

func TestBuildMonthGrid_MissingStatusesTolerated(t *testing.T) {
	today := mustTime(t, 2025, time.January, 1, 0, 0)

	// Соседние месяцы ещё не загружены — их ячейки остаются без
	// статуса, это не ошибка.
	statuses := MonthStatusSet{Current: MonthStatuses(2025, time.January)}

	weeks := BuildMonthGrid(2025, time.January, today, statuses, nil, DefaultWeekStart)
	for _, c := range flatten(weeks) {
		if c.InCurrentMonth && c.Status == "" {
			t.Fatalf("%v: current-month cell lost its status", c.Date)
		}
		if !c.InCurrentMonth && c.Status != "" {
			t.Fatalf("%v: foreign cell got status %q without data", c.Date, c.Status)
		}
	}
}

func TestBuildMonthGrid_AppointmentBucketing(t *testing.T) {
	today := mustTime(t, 2025, time.January, 1, 0, 0)

	appointments := []model.Appointment{
		gridAppointment(t, "morning", mustTime(t, 2025, time.January, 15, 8, 0)),
		gridAppointment(t, "evening", mustTime(t, 2025, time.January, 15, 23, 0)),
		gridAppointment(t, "foreign day", mustTime(t, 2024, time.December, 30, 12, 0)),
		gridAppointment(t, "outside grid", mustTime(t, 2025, time.June, 1, 12, 0)),
	}

	weeks := BuildMonthGrid(2025, time.January, today, MonthStatusSet{}, appointments, DefaultWeekStart)

	seen := map[string]int{}
	for _, c := range flatten(weeks) {
		for _, a := range c.Appointments {
			seen[a.CustomerName]++
			ay, am, ad := a.At.Date()
			cy, cm, cd := c.Date.Date()
			if ay != cy || am != cm || ad != cd {
				t.Fatalf("appointment %q bucketed into wrong day %v", a.CustomerName, c.Date)
			}
		}
	}

	if seen["morning"] != 1 || seen["evening"] != 1 {
		t.Fatalf("same-day appointments missing: %v", seen)
	}
	if seen["foreign day"] != 1 {
		t.Fatalf("adjacent-month appointment must land in its grid cell: %v", seen)
	}
	if seen["outside grid"] != 0 {
		t.Fatalf("appointment outside the grid must not appear: %v", seen)
	}
}

func TestBuildMonthGrid_ConfigurableWeekStart(t *testing.T) {
	today := mustTime(t, 2025, time.January, 1, 0, 0)

	weeks := BuildMonthGrid(2025, time.January, today, MonthStatusSet{}, nil, time.Monday)
	first := weeks[0][0]
	// При старте с понедельника сетка января 2025 начинается
	// с 30 декабря 2024.
	want := mustTime(t, 2024, time.December, 30, 0, 0)
	if !first.Date.Equal(want) {
		t.Fatalf("week start Monday: first cell %v, want %v", first.Date, want)
	}
	for _, w := range weeks {
		if w[0].Date.Weekday() != time.Monday {
			t.Fatalf("week starts on %v, want Monday", w[0].Date.Weekday())
		}
	}
}
