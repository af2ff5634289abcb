package api

import (
	"net/http"
	"skillshare/internal/api/config"
	"skillshare/internal/api/middleware"
	"skillshare/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & CORS & Logger
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// Uploaded media is served straight from the upload root.
	r.Static("/uploads", config.Cfg.Upload.Dir)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)

			authed := postGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.GET("/feed", group.PostHandler.ListFeed)
				authed.POST("", group.PostHandler.CreatePost)
				authed.PUT("/:post_id", group.PostHandler.UpdatePost)
				authed.DELETE("/:post_id", group.PostHandler.DeletePost)
				authed.POST("/:post_id/like", group.PostActionHandler.LikePost)
				authed.DELETE("/:post_id/like", group.PostActionHandler.UnlikePost)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.Use(middleware.AuthMiddleware())
			{
				userGroup.POST("/:user_id/follow", group.UserFollowHandler.Follow)
				userGroup.DELETE("/:user_id/follow", group.UserFollowHandler.Unfollow)
			}
		}
	}

	return r
}
