package handlers

import (
	"net/http"
	"strings"

	"followup/internal/followup"
	"followup/internal/models"
	"followup/internal/store"

	"github.com/gin-gonic/gin"
)

// Pipeline — воронка: количество активных сделок по этапам,
// опционально в разрезе одного lead_type.
func (h *Handler) Pipeline(c *gin.Context) {
	leadType := strings.TrimSpace(c.Query("lead_type"))

	deals, err := h.Store.List(
		store.Filter{Status: string(models.StatusActive), LeadType: leadType},
		store.Order{},
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "案件の読み込みに失敗しました")
		return
	}

	render(c, http.StatusOK, "pipeline.html", gin.H{
		"items":    followup.StagePipeline(deals),
		"leadType": leadType,
	})
}
