package handler

import (
	"errors"
	"net/http"

	"github.com/buttonicons/internal/db"
	"github.com/buttonicons/internal/locale"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login 校验账号密码并写入会话，支持 JSON 与表单提交。
func (a *API) Login(c *gin.Context) {
	language := a.requestLanguage(c)

	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondError(c, http.StatusBadRequest, locale.Pick(language, "Invalid login request", "登录请求格式不正确"))
		return
	}

	user, err := db.Authenticate(a.db, payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, locale.Pick(language, "Wrong username or password", "用户名或密码错误"))
			return
		}
		respondError(c, http.StatusInternalServerError, locale.Pick(language, "Login failed, please retry", "登录失败，请稍后重试"))
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, locale.Pick(language, "Failed to save session", "会话保存失败"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

// AuthRequired 是一个简单的认证中间件
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			respondError(c, http.StatusUnauthorized, locale.Pick(a.requestLanguage(c), "Login required", "请先登录"))
			c.Abort()
			return
		}
		c.Next()
	}
}
