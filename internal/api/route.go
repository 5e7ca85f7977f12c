package api

import (
	"Mizan/internal/api/middleware"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 公开站点接口
		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.List)
			postGroup.GET("/categories", group.PostHandler.Categories)
			postGroup.GET("/:slug", group.PostHandler.GetBySlug)
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("", group.CommentHandler.List)
			commentGroup.POST("", group.CommentHandler.Create)
			commentGroup.POST("/:id/like", group.CommentHandler.ToggleLike)
		}

		caseGroup := apiGroup.Group("/cases")
		{
			caseGroup.GET("", group.CaseHandler.List)
			caseGroup.GET("/:id", group.CaseHandler.Get)
		}

		teamGroup := apiGroup.Group("/team")
		{
			teamGroup.GET("", group.TeamHandler.List)
			teamGroup.GET("/:id", group.TeamHandler.Get)
		}

		apiGroup.POST("/contact", group.ContactHandler.Submit)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.UserHandler.Login)

			authed := authGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("/logout", group.UserHandler.Logout)
				authed.GET("/profile", group.UserHandler.Profile)
			}
		}

		// 后台接口：需要登录且角色为 admin/editor，账号管理仅 admin
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware())
		adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleEditor))
		{
			adminGroup.GET("/posts", group.PostHandler.AdminList)
			adminGroup.GET("/posts/:id", group.PostHandler.AdminGet)
			adminGroup.POST("/posts", group.PostHandler.Create)
			adminGroup.PUT("/posts/:id", group.PostHandler.Update)
			adminGroup.DELETE("/posts/:id", group.PostHandler.Delete)

			adminGroup.GET("/comments", group.CommentHandler.AdminList)
			adminGroup.GET("/comments/:id", group.CommentHandler.AdminGet)
			adminGroup.PUT("/comments/:id", group.CommentHandler.AdminUpdate)
			adminGroup.DELETE("/comments/:id", group.CommentHandler.AdminDelete)
			adminGroup.POST("/comments/:id/reply", group.CommentHandler.AdminReply)

			adminGroup.GET("/cases/:id", group.CaseHandler.Get)
			adminGroup.POST("/cases", group.CaseHandler.Create)
			adminGroup.PUT("/cases/:id", group.CaseHandler.Update)
			adminGroup.DELETE("/cases/:id", group.CaseHandler.Delete)

			adminGroup.GET("/team", group.TeamHandler.AdminList)
			adminGroup.POST("/team", group.TeamHandler.Create)
			adminGroup.PUT("/team/:id", group.TeamHandler.Update)
			adminGroup.DELETE("/team/:id", group.TeamHandler.Delete)

			adminGroup.GET("/messages", group.ContactHandler.AdminList)
			adminGroup.PUT("/messages/:id/read", group.ContactHandler.MarkRead)

			adminGroup.POST("/media/upload", group.MediaHandler.Upload)
			adminGroup.DELETE("/media", group.MediaHandler.Delete)

			// 账号管理仅 admin
			usersGroup := adminGroup.Group("/users")
			usersGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				usersGroup.GET("", group.UserHandler.List)
				usersGroup.POST("", group.UserHandler.Create)
			}
		}
	}

	return r
}
