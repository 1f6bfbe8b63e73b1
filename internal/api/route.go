package api

import (
	"Marquee/internal/api/middleware"
	"Marquee/internal/pkg/logger"
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

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.DELETE("/:user_id", group.UserHandler.PurgeUser)
			}
		}

		walletGroup := apiGroup.Group("/wallet")
		walletGroup.Use(middleware.AuthMiddleware())
		{
			walletGroup.GET("/balance", group.WalletHandler.GetBalance)
			walletGroup.POST("/deposit", group.WalletHandler.Deposit)
		}

		orderGroup := apiGroup.Group("/orders")
		orderGroup.Use(middleware.AuthMiddleware())
		{
			orderGroup.POST("", group.OrderHandler.Purchase)
			orderGroup.GET("/cart", group.OrderHandler.GetCart)
		}

		videoGroup := apiGroup.Group("/videos")
		{
			videoGroup.GET("/search", group.VideoHandler.SearchVideos)
			videoGroup.GET("/:video_id", group.VideoHandler.GetVideoDetail)

			authGroup := videoGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:video_id/watch", group.ConsumptionHandler.Watch)
				authGroup.POST("/:video_id/like", group.ConsumptionHandler.Like)
				authGroup.POST("/:video_id/rate", group.ConsumptionHandler.Rate)
				authGroup.POST("/:video_id/comments", group.ConsumptionHandler.Comment)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("", group.VideoHandler.CreateVideo)
				adminGroup.DELETE("/:video_id", group.VideoHandler.DeleteVideo)
				adminGroup.POST("/:video_id/poster", group.VideoHandler.UploadPoster)
			}
		}

		favoriteGroup := apiGroup.Group("/favorites")
		favoriteGroup.Use(middleware.AuthMiddleware())
		{
			favoriteGroup.POST("", group.ConsumptionHandler.AddFavorite)
			favoriteGroup.GET("", group.ConsumptionHandler.ListFavorites)
		}

		feedGroup := apiGroup.Group("/feed")
		feedGroup.Use(middleware.AuthMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
		}

		userFollowGroup := apiGroup.Group("/user-relation")
		{
			userFollowGroup.Use(middleware.AuthMiddleware())
			{
				userFollowGroup.GET("/followers", group.UserFollowHandler.GetUserFollowers)
				userFollowGroup.GET("/followers/count", group.UserFollowHandler.GetUserFollowersCount)
				userFollowGroup.GET("/followings", group.UserFollowHandler.GetUserFollowings)
				userFollowGroup.GET("/followings/count", group.UserFollowHandler.GetUserFollowingCount)
				userFollowGroup.POST("/follow/:following_id", group.UserFollowHandler.Follow)
				userFollowGroup.DELETE("/follow/:following_id", group.UserFollowHandler.Unfollow)
			}
		}

		permissionGroup := apiGroup.Group("/permissions")
		permissionGroup.Use(middleware.AuthMiddleware())
		{
			permissionGroup.GET("", group.PermissionHandler.GetPermission)
			permissionGroup.PUT("", group.PermissionHandler.UpdatePermission)
		}
	}

	return r
}
