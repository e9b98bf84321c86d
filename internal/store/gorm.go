package store

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"followup/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Gorm — хранилище сделок поверх Postgres.
type Gorm struct {
	db *gorm.DB
}

// OpenGorm подключается к БД (с ретраями — контейнер с постгресом может
// подниматься дольше приложения) и прогоняет миграции.
func OpenGorm(dsn string) (*Gorm, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		slog.Info("connecting to DB", "attempt", i, "max", maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			slog.Info("connected to DB")
			break
		}

		slog.Warn("failed to connect to DB", "err", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := db.AutoMigrate(&models.Deal{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Gorm{db: db}, nil
}

func (s *Gorm) Create(d *models.Deal) (uint, error) {
	if err := normalize(d); err != nil {
		return 0, err
	}

	now := time.Now().Format(models.TimeLayout)
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.db.Create(d).Error; err != nil {
		return 0, fmt.Errorf("create deal: %w", err)
	}
	return d.ID, nil
}

func (s *Gorm) GetByID(id uint) (*models.Deal, error) {
	var deal models.Deal
	if err := s.db.First(&deal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load deal %d: %w", id, err)
	}
	return &deal, nil
}

// Update — полная перезапись редактируемых полей. created_at не трогаем,
// updated_at штампуем заново.
func (s *Gorm) Update(d *models.Deal) error {
	if err := normalize(d); err != nil {
		return err
	}

	var existing models.Deal
	if err := s.db.First(&existing, d.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load deal %d: %w", d.ID, err)
	}

	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().Format(models.TimeLayout)

	if err := s.db.Save(d).Error; err != nil {
		return fmt.Errorf("save deal %d: %w", d.ID, err)
	}
	return nil
}

func (s *Gorm) List(f Filter, o Order) ([]models.Deal, error) {
	q := s.db.Model(&models.Deal{})

	if f.LeadType != "" {
		q = q.Where("lead_type = ?", f.LeadType)
	}
	if f.Stage != "" {
		q = q.Where("deal_stage = ?", f.Stage)
	}
	if f.Area != "" {
		q = q.Where("area LIKE ?", "%"+f.Area+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if _, ok := orderColumns[o.Field]; ok {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		q = q.Order(o.Field + " " + dir)
	}

	var deals []models.Deal
	if err := q.Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}
