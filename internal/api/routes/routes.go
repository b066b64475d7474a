package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/api/handlers"
)

type Deps struct {
	Auth         *handlers.AuthHandler
	Blog         *handlers.BlogHandler
	Category     *handlers.CategoryHandler
	Service      *handlers.ServiceHandler
	Job          *handlers.JobHandler
	Application  *handlers.ApplicationHandler
	CV           *handlers.CVHandler
	Chat         *handlers.ChatHandler
	RequireAuth  gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/profile", d.RequireAuth, d.Auth.Profile)
	auth.PUT("/profile", d.RequireAuth, d.Auth.UpdateProfile)
	auth.PUT("/change-password", d.RequireAuth, d.Auth.ChangePassword)
	auth.POST("/logout", d.RequireAuth, d.Auth.Logout)
	auth.GET("/users", d.RequireAuth, d.RequireAdmin, d.Auth.ListUsers)
	auth.DELETE("/users/:id", d.RequireAuth, d.RequireAdmin, d.Auth.DeleteUser)

	blog := api.Group("/blog")
	blog.GET("", d.Blog.List)
	blog.GET("/:id", d.Blog.Get)
	blog.POST("", d.RequireAuth, d.RequireAdmin, d.Blog.Create)
	blog.PUT("/:id", d.RequireAuth, d.RequireAdmin, d.Blog.Update)
	blog.DELETE("/:id", d.RequireAuth, d.RequireAdmin, d.Blog.Delete)

	category := api.Group("/category")
	category.GET("", d.Category.List)
	category.GET("/:id", d.Category.Get)
	category.POST("", d.RequireAuth, d.RequireAdmin, d.Category.Create)
	category.PUT("/:id", d.RequireAuth, d.RequireAdmin, d.Category.Update)
	category.DELETE("/:id", d.RequireAuth, d.RequireAdmin, d.Category.Delete)

	service := api.Group("/service")
	service.GET("", d.Service.List)
	service.GET("/:id", d.Service.Get)
	service.POST("", d.RequireAuth, d.RequireAdmin, d.Service.Create)
	service.PUT("/:id", d.RequireAuth, d.RequireAdmin, d.Service.Update)
	service.DELETE("/:id", d.RequireAuth, d.RequireAdmin, d.Service.Delete)

	career := api.Group("/career")
	career.GET("/jobs", d.Job.List)
	career.GET("/jobs/:id", d.Job.Get)
	career.GET("/get-job-by-slug/:slug", d.Job.GetBySlug)
	career.POST("/jobs", d.RequireAuth, d.RequireAdmin, d.Job.Create)
	career.PUT("/jobs/:id", d.RequireAuth, d.RequireAdmin, d.Job.Update)
	career.DELETE("/jobs/:id", d.RequireAuth, d.RequireAdmin, d.Job.Delete)

	// Public, but logged with the caller's identity when a token is sent.
	career.POST("/apply", d.OptionalAuth, d.Application.Apply)
	career.POST("/upload-cv", d.OptionalAuth, d.CV.Upload)
	career.GET("/applications", d.RequireAuth, d.RequireAdmin, d.Application.List)
	career.GET("/applications/:id", d.RequireAuth, d.RequireAdmin, d.Application.Get)
	career.PUT("/applications/:id", d.RequireAuth, d.RequireAdmin, d.Application.Update)

	chat := api.Group("/chat")
	chat.POST("", d.OptionalAuth, d.Chat.Chat)
	chat.GET("/health", d.Chat.Health)
}
