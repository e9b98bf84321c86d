package store

import (
	"fmt"
	"strings"

	"followup/internal/models"
)

// normalize — валидация на границе хранилища: обязательное имя, закрытые
// enum'ы с дефолтами, неотрицательная цена. Вызывается и на Create, и на
// Update (инвариант "имя не пустое" действует на каждую запись).
func normalize(d *models.Deal) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if d.LeadType == "" {
		d.LeadType = models.LeadSeller
	}
	if !d.LeadType.Valid() {
		return fmt.Errorf("%w: unknown lead_type %q", ErrValidation, d.LeadType)
	}

	if d.Status == "" {
		d.Status = models.StatusActive
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, d.Status)
	}

	if d.DealStage == "" {
		d.DealStage = models.StageNew
	}

	if d.PriceYen < 0 {
		return fmt.Errorf("%w: negative price_yen %d", ErrValidation, d.PriceYen)
	}

	return nil
}
