package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"followup/internal/followup"
	"followup/internal/models"
	"followup/internal/store"

	"github.com/gin-gonic/gin"
)

//
// СПИСОК / СОЗДАНИЕ / РЕДАКТИРОВАНИЕ / TOUCH
//

// Список сделок + фильтры lead_type / stage / area (area — подстрока).
func (h *Handler) ListDeals(c *gin.Context) {
	leadType := strings.TrimSpace(c.Query("lead_type"))
	stage := strings.TrimSpace(c.Query("stage"))
	area := strings.TrimSpace(c.Query("area"))

	deals, err := h.Store.List(
		store.Filter{LeadType: leadType, Stage: stage, Area: area},
		store.Order{Field: "updated_at", Desc: true},
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "案件の読み込みに失敗しました")
		return
	}

	deals = followup.AnnotateIdle(deals, h.Now())

	render(c, http.StatusOK, "deals.html", gin.H{
		"rows":     deals,
		"leadType": leadType,
		"stage":    stage,
		"area":     area,
	})
}

func (h *Handler) ShowNewDeal(c *gin.Context) {
	render(c, http.StatusOK, "deal_form.html", gin.H{"error": ""})
}

// dealFromForm собирает сделку из полей формы с дефолтами:
// пустая цена -> 0, кривая дата -> "нет даты".
func dealFromForm(c *gin.Context) models.Deal {
	return models.Deal{
		LeadType:    models.LeadType(strings.TrimSpace(c.DefaultPostForm("lead_type", "seller"))),
		Name:        strings.TrimSpace(c.PostForm("name")),
		Phone:       strings.TrimSpace(c.PostForm("phone")),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Source:      strings.TrimSpace(c.PostForm("source")),
		Area:        strings.TrimSpace(c.PostForm("area")),
		AssetType:   strings.TrimSpace(c.PostForm("asset_type")),
		PriceYen:    int64(intOrDefault(c.PostForm("price_yen"), 0)),
		Deadline:    normDate(c.PostForm("deadline")),
		DealStage:   strings.TrimSpace(c.DefaultPostForm("deal_stage", "new")),
		Status:      models.DealStatus(strings.TrimSpace(c.DefaultPostForm("status", "active"))),
		LastContact: normDate(c.PostForm("last_contact")),
		NextContact: normDate(c.PostForm("next_contact")),
		NextAction:  strings.TrimSpace(c.PostForm("next_action")),
		Notes:       strings.TrimSpace(c.PostForm("notes")),
	}
}

func (h *Handler) CreateDeal(c *gin.Context) {
	deal := dealFromForm(c)

	if _, err := h.Store.Create(&deal); err != nil {
		if errors.Is(err, store.ErrValidation) {
			render(c, http.StatusBadRequest, "deal_form.html", gin.H{"error": validationMessage(deal)})
			return
		}
		c.String(http.StatusInternalServerError, "案件の保存に失敗しました")
		return
	}

	c.Redirect(http.StatusFound, "/deals")
}

func validationMessage(d models.Deal) string {
	if strings.TrimSpace(d.Name) == "" {
		return "名前は必須です。"
	}
	return "入力内容に誤りがあります。"
}

func dealID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) ShowEditDeal(c *gin.Context) {
	id, ok := dealID(c)
	if !ok {
		c.String(http.StatusBadRequest, "不正なIDです")
		return
	}

	deal, err := h.Store.GetByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "案件が見つかりません。")
		return
	}

	render(c, http.StatusOK, "deal_edit.html", gin.H{"row": deal, "error": ""})
}

// Полная перезапись редактируемых полей.
func (h *Handler) UpdateDeal(c *gin.Context) {
	id, ok := dealID(c)
	if !ok {
		c.String(http.StatusBadRequest, "不正なIDです")
		return
	}

	existing, err := h.Store.GetByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "案件が見つかりません。")
		return
	}

	deal := dealFromForm(c)
	deal.ID = id

	if err := h.Store.Update(&deal); err != nil {
		if errors.Is(err, store.ErrValidation) {
			render(c, http.StatusBadRequest, "deal_edit.html", gin.H{
				"row":   existing,
				"error": validationMessage(deal),
			})
			return
		}
		c.String(http.StatusInternalServerError, "案件の保存に失敗しました")
		return
	}

	c.Redirect(http.StatusFound, "/deals")
}

// Кнопка «連絡した»: last_contact = сегодня, next_contact = сегодня + N дней.
func (h *Handler) TouchDeal(c *gin.Context) {
	id, ok := dealID(c)
	if !ok {
		c.String(http.StatusBadRequest, "不正なIDです")
		return
	}

	in := followup.TouchInput{
		NextDays:   intOrDefault(c.PostForm("next_days"), 7),
		Stage:      optional(c.PostForm("deal_stage")),
		NextAction: optional(c.PostForm("next_action")),
		Note:       strings.TrimSpace(c.PostForm("note")),
	}

	if _, err := followup.Touch(h.Store, id, in, h.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "案件が見つかりません。")
			return
		}
		c.String(http.StatusInternalServerError, "追客の更新に失敗しました")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
