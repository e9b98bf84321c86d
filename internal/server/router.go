package server

import (
	"html/template"
	"net/http"
	"strconv"

	"followup/internal/config"
	"followup/internal/handlers"
	"followup/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// fmtYen — 12345678 -> "12,345,678" для шаблонов.
func fmtYen(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"fmtYen": fmtYen,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("followup_session", store))

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// ДАШБОРД
	auth.GET("/", h.Dashboard)

	// СДЕЛКИ
	auth.GET("/deals", h.ListDeals)
	auth.GET("/deals/new", h.ShowNewDeal)
	auth.POST("/deals/new", h.CreateDeal)
	auth.GET("/deals/:id/edit", h.ShowEditDeal)
	auth.POST("/deals/:id/edit", h.UpdateDeal)
	auth.POST("/deals/:id/touch", h.TouchDeal)

	// ВОРОНКА
	auth.GET("/pipeline", h.Pipeline)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
