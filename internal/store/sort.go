package store

import (
	"sort"

	"followup/internal/models"
)

// sortDeals сортирует in-place по колонке из orderColumns. Даты и таймстемпы
// хранятся текстом YYYY-MM-DD[..], поэтому строкового сравнения достаточно.
func sortDeals(deals []models.Deal, o Order) {
	less := func(a, b models.Deal) bool {
		if o.Field == "price_yen" {
			return a.PriceYen < b.PriceYen
		}
		return fieldText(a, o.Field) < fieldText(b, o.Field)
	}

	sort.SliceStable(deals, func(i, j int) bool {
		if o.Desc {
			return less(deals[j], deals[i])
		}
		return less(deals[i], deals[j])
	})
}

func fieldText(d models.Deal, field string) string {
	switch field {
	case "name":
		return d.Name
	case "deadline":
		return d.Deadline
	case "last_contact":
		return d.LastContact
	case "next_contact":
		return d.NextContact
	case "created_at":
		return d.CreatedAt
	case "updated_at":
		return d.UpdatedAt
	}
	return ""
}
