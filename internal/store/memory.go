package store

import (
	"strings"
	"sync"
	"time"

	"followup/internal/models"
)

// Memory — хранилище сделок в памяти. Используется, когда DB_DSN не задан
// (локальный запуск без постгреса), и в тестах. Семантика один в один с Gorm.
type Memory struct {
	mu    sync.RWMutex
	seq   uint
	deals []models.Deal

	now func() time.Time // подменяется в тестах
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) Create(d *models.Deal) (uint, error) {
	if err := normalize(d); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	d.ID = m.seq

	now := m.now().Format(models.TimeLayout)
	d.CreatedAt = now
	d.UpdatedAt = now

	m.deals = append(m.deals, *d)
	return d.ID, nil
}

func (m *Memory) GetByID(id uint) (*models.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.deals {
		if d.ID == id {
			out := d
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Update(d *models.Deal) error {
	if err := normalize(d); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.deals {
		if m.deals[i].ID == d.ID {
			d.CreatedAt = m.deals[i].CreatedAt
			d.UpdatedAt = m.now().Format(models.TimeLayout)
			m.deals[i] = *d
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) List(f Filter, o Order) ([]models.Deal, error) {
	m.mu.RLock()
	out := make([]models.Deal, 0, len(m.deals))
	for _, d := range m.deals {
		if f.matches(d) {
			out = append(out, d)
		}
	}
	m.mu.RUnlock()

	if _, ok := orderColumns[o.Field]; ok {
		sortDeals(out, o)
	}
	return out, nil
}

func (f Filter) matches(d models.Deal) bool {
	if f.LeadType != "" && string(d.LeadType) != f.LeadType {
		return false
	}
	if f.Stage != "" && d.DealStage != f.Stage {
		return false
	}
	if f.Area != "" && !strings.Contains(d.Area, f.Area) {
		return false
	}
	if f.Status != "" && string(d.Status) != f.Status {
		return false
	}
	return true
}
