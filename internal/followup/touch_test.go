package followup

import (
	"testing"

	"followup/internal/models"
	"followup/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithDeal(t *testing.T) (*store.Memory, uint) {
	t.Helper()

	s := store.NewMemory()
	id, err := s.Create(&models.Deal{Name: "田中"})
	require.NoError(t, err)
	return s, id
}

func strPtr(s string) *string { return &s }

func TestTouchSetsContactDates(t *testing.T) {
	s, id := newStoreWithDeal(t)

	d, err := Touch(s, id, TouchInput{NextDays: 7}, today)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", d.LastContact)
	assert.Equal(t, "2025-03-17", d.NextContact)

	// изменения реально записаны
	got, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", got.LastContact)
	assert.Equal(t, "2025-03-17", got.NextContact)
}

func TestTouchNegativeNextDays(t *testing.T) {
	s, id := newStoreWithDeal(t)

	// диапазон не валидируем: 0 и отрицательные значения легальны
	d, err := Touch(s, id, TouchInput{NextDays: -1}, today)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", d.NextContact)
}

func TestTouchStageReplacement(t *testing.T) {
	s, id := newStoreWithDeal(t)

	// nil = не менять
	d, err := Touch(s, id, TouchInput{NextDays: 7}, today)
	require.NoError(t, err)
	assert.Equal(t, "new", d.DealStage)

	// пустая строка тоже означает "не менять", а не "очистить"
	d, err = Touch(s, id, TouchInput{NextDays: 7, Stage: strPtr("")}, today)
	require.NoError(t, err)
	assert.Equal(t, "new", d.DealStage)

	d, err = Touch(s, id, TouchInput{NextDays: 7, Stage: strPtr("negotiating")}, today)
	require.NoError(t, err)
	assert.Equal(t, "negotiating", d.DealStage)
}

func TestTouchNextActionReplacement(t *testing.T) {
	s, id := newStoreWithDeal(t)

	d, err := Touch(s, id, TouchInput{NextDays: 7, NextAction: strPtr("査定書を送る")}, today)
	require.NoError(t, err)
	assert.Equal(t, "査定書を送る", d.NextAction)

	// без нового значения прежнее остаётся
	d, err = Touch(s, id, TouchInput{NextDays: 7}, today)
	require.NoError(t, err)
	assert.Equal(t, "査定書を送る", d.NextAction)
}

func TestTouchAppendsNotes(t *testing.T) {
	s, id := newStoreWithDeal(t)

	d, err := Touch(s, id, TouchInput{NextDays: 7, Note: "A"}, today)
	require.NoError(t, err)
	assert.Equal(t, "[2025-03-10] A", d.Notes)

	d, err = Touch(s, id, TouchInput{NextDays: 7, Note: "B"}, today)
	require.NoError(t, err)
	assert.Equal(t, "[2025-03-10] A / [2025-03-10] B", d.Notes)

	// пустая заметка журнал не трогает
	d, err = Touch(s, id, TouchInput{NextDays: 7}, today)
	require.NoError(t, err)
	assert.Equal(t, "[2025-03-10] A / [2025-03-10] B", d.Notes)
}

func TestTouchNotFound(t *testing.T) {
	s := store.NewMemory()

	_, err := Touch(s, 42, TouchInput{NextDays: 7}, today)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
