package handlers

import (
	"strconv"
	"strings"
	"time"

	"followup/internal/models"
)

// Поля формы приходят строками и могут быть пустыми или кривыми —
// нормализуем к безопасным дефолтам вместо ошибки.

// intOrDefault: пустое или нечисловое значение -> def.
func intOrDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// normDate: валидная дата YYYY-MM-DD проходит как есть, всё остальное
// превращается в "нет даты".
func normDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return ""
	}
	return s
}

// optional: пустое значение формы означает "не менять", а не "очистить".
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
