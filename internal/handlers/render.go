package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML, прокидывает имя залогиненного оператора
// во все шаблоны.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	if u, ok := sess.Get("user").(string); ok {
		data["CurrentUser"] = u
	}

	c.HTML(status, tmpl, data)
}
