package router

import (
	"github.com/buttonicons/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("buttonicons_session", store))
	r.Use(api.LocaleMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 前台渲染
	r.GET("/blocks/:id", api.RenderBlock)

	// 后台编辑路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			apiGroup := auth.Group("/api")
			{
				apiGroup.GET("/icons", api.ListIcons)
				apiGroup.GET("/icons/:value", api.GetIcon)
				apiGroup.GET("/block-types/:namespace/:name", api.GetBlockType)
				apiGroup.POST("/encode-svg", api.EncodeSVG)

				apiGroup.GET("/blocks", api.ListBlocks)
				apiGroup.POST("/blocks", api.CreateBlock)
				apiGroup.GET("/blocks/:id", api.GetBlock)
				apiGroup.DELETE("/blocks/:id", api.DeleteBlock)
				apiGroup.PATCH("/blocks/:id/attributes", api.UpdateBlockAttributes)
				apiGroup.POST("/blocks/:id/actions", api.ApplyBlockAction)
				apiGroup.GET("/blocks/:id/presentation", api.GetBlockPresentation)
			}
		}
	}

	return r
}
