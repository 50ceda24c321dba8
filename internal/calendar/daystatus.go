package calendar

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// DayStatus — статус календарного дня.
// Пустое значение означает "статус неизвестен" (например, пока не
// доехали данные соседнего месяца).
type DayStatus string

const (
	DayStatusWorking DayStatus = "working"
	DayStatusClosed  DayStatus = "closed"
	DayStatusBlocked DayStatus = "blocked"
)

// Вероятность, с которой будний день оказывается заблокированным.
const blockedProbability = 0.1

// dateKeyLayout — нормализованное представление дня, от которого
// сеется генератор. Оно одинаково для любого времени суток и любого
// процесса, поэтому сервер и клиент всегда сходятся в вердикте.
const dateKeyLayout = "2006-01-02"

// ClassifyDay классифицирует календарный день: выходные (суббота и
// воскресенье) всегда closed; остальные дни детерминированно
// blocked с вероятностью 0.1, иначе working.
//
// Функция чистая и идемпотентная: время суток в t отбрасывается,
// одинаковая дата всегда даёт одинаковый результат.
func ClassifyDay(t time.Time) DayStatus {
	year, month, day := t.Date()
	d := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return DayStatusClosed
	}

	if dayRand(d) < blockedProbability {
		return DayStatusBlocked
	}
	return DayStatusWorking
}

// dayRand возвращает детерминированное псевдослучайное число [0, 1)
// для календарного дня: FNV-1a от "YYYY-MM-DD" сеет math/rand.
func dayRand(d time.Time) float64 {
	h := fnv.New64a()
	h.Write([]byte(d.Format(dateKeyLayout)))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return rng.Float64()
}

// DaysIn возвращает количество дней в месяце.
func DaysIn(year int, month time.Month) int {
	// Нулевой день следующего месяца — последний день текущего.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStatuses возвращает статусы всех дней месяца по порядку,
// по одному элементу на день.
func MonthStatuses(year int, month time.Month) []DayStatus {
	days := DaysIn(year, month)
	statuses := make([]DayStatus, days)
	for i := range statuses {
		statuses[i] = ClassifyDay(time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC))
	}
	return statuses
}
