package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the /api/v1 surface on r
func RegisterRoutes(r gin.IRouter, h *Handlers, authHandlers *AuthHandlers) {
	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandlers.Register)
		authGroup.POST("/login", authHandlers.Login)
		authGroup.POST("/logout", authHandlers.AuthMiddleware(), authHandlers.Logout)
		authGroup.GET("/me", authHandlers.AuthMiddleware(), authHandlers.Me)
	}

	protected := api.Group("")
	protected.Use(authHandlers.AuthMiddleware())
	{
		protected.GET("/profile-pictures", authHandlers.ProfilePictures)

		posts := protected.Group("/posts")
		{
			posts.POST("", h.CreatePost)
			posts.GET("", h.ListPosts)
			posts.GET("/:id", h.GetPost)

			posts.PUT("/:id/like", h.LikePost)
			posts.DELETE("/:id/like", h.UnlikePost)
			posts.GET("/:id/like", h.GetLikeStatus)
			posts.GET("/:id/likes/count", h.CountLikes)

			posts.POST("/:id/comments", h.CreateComment)
			posts.GET("/:id/comments", h.ListComments)
			posts.GET("/:id/comments/count", h.CountComments)
		}

		users := protected.Group("/users")
		{
			users.GET("/me", authHandlers.Me)
			users.PATCH("/me", authHandlers.UpdateProfile)
			users.GET("/:id", authHandlers.GetUser)
			users.GET("/:id/posts", h.ListUserPosts)
		}
	}
}
