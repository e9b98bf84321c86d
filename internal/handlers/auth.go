package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "ログイン情報が違います。"})
		return
	}

	if form.Username != h.Operator {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "ログイン情報が違います。"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.PasswordHash, []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "ログイン情報が違います。"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user", form.Username)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
