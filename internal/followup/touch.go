package followup

import (
	"time"

	"followup/internal/models"
	"followup/internal/store"
)

// TouchInput — параметры операции "связался с лидом". Stage и NextAction —
// указатели: nil (или пустая строка) означает "оставить как есть", а не
// "очистить поле". HTTP-адаптер переводит пустые значения формы в nil.
type TouchInput struct {
	NextDays   int
	Stage      *string
	NextAction *string
	Note       string
}

// Touch фиксирует контакт: last_contact = today, next_contact = today+N,
// опциональная смена этапа/следующего действия, заметка с датой в
// append-only журнал. Всё применяется одним Update — либо целиком, либо
// никак.
func Touch(s store.DealStore, id uint, in TouchInput, today time.Time) (*models.Deal, error) {
	d, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	t := today.Format(models.DateLayout)
	d.LastContact = t
	// NextDays не валидируем: 0 и отрицательные значения легальны,
	// за вменяемость отвечает вызывающий
	d.NextContact = today.AddDate(0, 0, in.NextDays).Format(models.DateLayout)

	if in.Stage != nil && *in.Stage != "" {
		d.DealStage = *in.Stage
	}
	if in.NextAction != nil && *in.NextAction != "" {
		d.NextAction = *in.NextAction
	}

	if in.Note != "" {
		stamped := "[" + t + "] " + in.Note
		if d.Notes == "" {
			d.Notes = stamped
		} else {
			d.Notes = d.Notes + " / " + stamped
		}
	}

	if err := s.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}
