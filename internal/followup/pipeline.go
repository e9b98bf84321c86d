package followup

import (
	"sort"

	"followup/internal/models"
)

type StageCount struct {
	Stage string
	Count int
}

// StagePipeline считает сделки по этапам. Порядок детерминированный:
// по убыванию количества, при равенстве — по имени этапа.
func StagePipeline(deals []models.Deal) []StageCount {
	counts := map[string]int{}
	for _, d := range deals {
		counts[d.DealStage]++
	}

	items := make([]StageCount, 0, len(counts))
	for stage, n := range counts {
		items = append(items, StageCount{Stage: stage, Count: n})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Stage < items[j].Stage
	})
	return items
}
