package handlers

import (
	"net/http"

	"followup/internal/followup"
	"followup/internal/models"
	"followup/internal/store"

	"github.com/gin-gonic/gin"
)

// Dashboard — "кого сегодня трогать": просроченные next_contact и
// приближающиеся дедлайны.
func (h *Handler) Dashboard(c *gin.Context) {
	deals, err := h.Store.List(
		store.Filter{Status: string(models.StatusActive)},
		store.Order{},
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "案件の読み込みに失敗しました")
		return
	}

	today := h.Now()
	due := followup.DueToday(deals, today)
	upcoming := followup.UpcomingDeadlines(deals, today, followup.DefaultHorizonDays)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"due":      due,
		"upcoming": upcoming,
		"today":    today.Format(models.DateLayout),
	})
}
