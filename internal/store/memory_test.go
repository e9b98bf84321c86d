package store

import (
	"testing"
	"time"

	"followup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(models.TimeLayout, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestCreateStampsTimestampsAndDefaults(t *testing.T) {
	s := NewMemory()
	s.now = fixedClock("2025-03-10 09:00:00")

	id, err := s.Create(&models.Deal{Name: "  田中  "})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := s.GetByID(id)
	require.NoError(t, err)

	assert.Equal(t, "田中", got.Name)
	assert.Equal(t, "2025-03-10 09:00:00", got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	// дефолты закрытых enum'ов и этапа
	assert.Equal(t, models.LeadSeller, got.LeadType)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, "new", got.DealStage)
}

func TestCreateValidation(t *testing.T) {
	s := NewMemory()

	cases := []struct {
		name string
		deal models.Deal
	}{
		{"empty name", models.Deal{Name: "   "}},
		{"unknown lead_type", models.Deal{Name: "X", LeadType: "tenant"}},
		{"unknown status", models.Deal{Name: "X", Status: "archived"}},
		{"negative price", models.Deal{Name: "X", PriceYen: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(&tc.deal)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// невалидные записи не сохраняются
	deals, err := s.List(Filter{}, Order{})
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestGetByIDNotFound(t *testing.T) {
	s := NewMemory()

	_, err := s.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	s := NewMemory()
	s.now = fixedClock("2025-03-10 09:00:00")

	id, err := s.Create(&models.Deal{Name: "田中"})
	require.NoError(t, err)

	s.now = fixedClock("2025-03-11 10:30:00")

	d, err := s.GetByID(id)
	require.NoError(t, err)
	d.DealStage = "negotiating"
	require.NoError(t, s.Update(d))

	got, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "negotiating", got.DealStage)
	assert.Equal(t, "2025-03-10 09:00:00", got.CreatedAt)
	assert.Equal(t, "2025-03-11 10:30:00", got.UpdatedAt)
	assert.Greater(t, got.UpdatedAt, got.CreatedAt)
}

func TestUpdateNotFound(t *testing.T) {
	s := NewMemory()

	err := s.Update(&models.Deal{ID: 42, Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateKeepsNameInvariant(t *testing.T) {
	s := NewMemory()

	id, err := s.Create(&models.Deal{Name: "田中"})
	require.NoError(t, err)

	err = s.Update(&models.Deal{ID: id, Name: ""})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "田中", got.Name)
}

func seedDeals(t *testing.T, s *Memory) {
	t.Helper()

	deals := []models.Deal{
		{Name: "田中", LeadType: models.LeadSeller, DealStage: "new", Area: "世田谷区", PriceYen: 50000000},
		{Name: "鈴木", LeadType: models.LeadBuyer, DealStage: "negotiating", Area: "杉並区", PriceYen: 30000000},
		{Name: "佐藤", LeadType: models.LeadSeller, DealStage: "closing", Area: "世田谷区深沢", PriceYen: 80000000},
		{Name: "高橋", LeadType: models.LeadOwner, DealStage: "new", Area: "横浜市", Status: models.StatusInactive},
	}
	for i := range deals {
		_, err := s.Create(&deals[i])
		require.NoError(t, err)
	}
}

func TestListFilters(t *testing.T) {
	s := NewMemory()
	seedDeals(t, s)

	got, err := s.List(Filter{LeadType: "seller"}, Order{})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.List(Filter{Stage: "negotiating"}, Order{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "鈴木", got[0].Name)

	// area — подстрока, регистрозависимая
	got, err = s.List(Filter{Area: "世田谷"}, Order{})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.List(Filter{Status: "inactive"}, Order{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "高橋", got[0].Name)

	// конъюнкция
	got, err = s.List(Filter{LeadType: "seller", Area: "深沢"}, Order{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "佐藤", got[0].Name)

	// без фильтра — все строки
	got, err = s.List(Filter{}, Order{})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestListOrdering(t *testing.T) {
	s := NewMemory()
	seedDeals(t, s)

	got, err := s.List(Filter{}, Order{Field: "price_yen", Desc: true})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, int64(80000000), got[0].PriceYen)
	assert.Equal(t, int64(0), got[3].PriceYen)

	got, err = s.List(Filter{}, Order{Field: "name"})
	require.NoError(t, err)
	assert.Equal(t, "佐藤", got[0].Name)

	// неизвестная колонка молча игнорируется
	got, err = s.List(Filter{}, Order{Field: "id; drop table deals"})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestListOrderByUpdatedAt(t *testing.T) {
	s := NewMemory()

	s.now = fixedClock("2025-03-10 09:00:00")
	id1, err := s.Create(&models.Deal{Name: "старая"})
	require.NoError(t, err)

	s.now = fixedClock("2025-03-12 09:00:00")
	id2, err := s.Create(&models.Deal{Name: "новая"})
	require.NoError(t, err)

	// трогаем старую позже всех
	s.now = fixedClock("2025-03-13 09:00:00")
	d, err := s.GetByID(id1)
	require.NoError(t, err)
	require.NoError(t, s.Update(d))

	got, err := s.List(Filter{}, Order{Field: "updated_at", Desc: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, id2, got[1].ID)
}
