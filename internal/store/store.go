package store

import (
	"errors"

	"followup/internal/models"
)

var (
	ErrNotFound   = errors.New("deal not found")
	ErrValidation = errors.New("validation failed")
)

// Filter — конъюнкция предикатов для списка сделок. Пустое поле = без фильтра.
// Area проверяется как подстрока (LIKE %...%), остальные — точное совпадение.
type Filter struct {
	LeadType string
	Stage    string
	Area     string
	Status   string
}

// Order — сортировка по одной из разрешённых колонок (см. orderColumns).
// Нулевой Order означает "без сортировки".
type Order struct {
	Field string
	Desc  bool
}

// колонки, по которым разрешён ORDER BY; всё остальное молча игнорируем,
// чтобы не склеивать произвольные строки в SQL
var orderColumns = map[string]struct{}{
	"name":         {},
	"price_yen":    {},
	"deadline":     {},
	"last_contact": {},
	"next_contact": {},
	"created_at":   {},
	"updated_at":   {},
}

// DealStore — хранилище сделок. Конструируется явно в main с нужной
// конфигурацией, никакого глобального соединения.
type DealStore interface {
	Create(d *models.Deal) (uint, error)
	GetByID(id uint) (*models.Deal, error)
	Update(d *models.Deal) error
	List(f Filter, o Order) ([]models.Deal, error)
}
