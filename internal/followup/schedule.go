// Package followup — чистая логика трекера: расписание контактов,
// операция "связался" и агрегация воронки. Работает над уже загруженными
// сделками, хранилище не мутирует (кроме Touch, который делает один Update).
package followup

import (
	"sort"
	"strings"
	"time"

	"followup/internal/models"
)

// DaysIdleUnknown — сентинел для "дата последнего контакта неизвестна".
// Большое, но конечное число: сортировки и пороги работают без спецслучаев.
const DaysIdleUnknown = 999

// DefaultHorizonDays — горизонт списка "скоро дедлайн" на дашборде.
const DefaultHorizonDays = 7

// DaysSince возвращает число полных дней от даты YYYY-MM-DD до today
// (положительное = в прошлом). Пустая или кривая дата — DaysIdleUnknown.
func DaysSince(s string, today time.Time) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return DaysIdleUnknown
	}

	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return DaysIdleUnknown
	}

	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(d).Hours() / 24)
}

// AnnotateIdle проставляет DaysIdle по last_contact каждой сделки.
func AnnotateIdle(deals []models.Deal, today time.Time) []models.Deal {
	out := make([]models.Deal, len(deals))
	for i, d := range deals {
		d.DaysIdle = DaysSince(d.LastContact, today)
		out[i] = d
	}
	return out
}

// DueToday — активные сделки с next_contact <= today, по next_contact
// по возрастанию. Сделки без next_contact не попадают.
func DueToday(deals []models.Deal, today time.Time) []models.Deal {
	t := today.Format(models.DateLayout)

	var due []models.Deal
	for _, d := range deals {
		if d.Status != models.StatusActive {
			continue
		}
		if d.NextContact == "" || d.NextContact > t {
			continue
		}
		d.DaysIdle = DaysSince(d.LastContact, today)
		due = append(due, d)
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextContact < due[j].NextContact
	})
	return due
}

// UpcomingDeadlines — активные сделки с deadline <= today+horizonDays,
// по deadline по возрастанию. Нижней границы нет: просроченные дедлайны
// остаются в списке, пока по ним не отработали.
func UpcomingDeadlines(deals []models.Deal, today time.Time, horizonDays int) []models.Deal {
	limit := today.AddDate(0, 0, horizonDays).Format(models.DateLayout)

	var upcoming []models.Deal
	for _, d := range deals {
		if d.Status != models.StatusActive {
			continue
		}
		if d.Deadline == "" || d.Deadline > limit {
			continue
		}
		d.DaysIdle = DaysSince(d.LastContact, today)
		upcoming = append(upcoming, d)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Deadline < upcoming[j].Deadline
	})
	return upcoming
}
