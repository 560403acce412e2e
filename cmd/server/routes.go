package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pikxora.backend/internal/interfaces/http/handlers"
	"pikxora.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	profileHandler    *handlers.ProfileHandler
	wallHandler       *handlers.WallHandler
	projectHandler    *handlers.ProjectHandler
	teamHandler       *handlers.TeamHandler
	connectionHandler *handlers.ConnectionHandler
	adminHandler      *handlers.AdminHandler
	mediaHandler      *handlers.MediaHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Profile directory (public read, owner write)
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", d.profileHandler.List)
			profiles.GET("/me", d.authMiddleware, d.profileHandler.Me)
			profiles.PUT("/me", d.authMiddleware, d.profileHandler.UpdateMe)
			profiles.GET("/:id", d.profileHandler.Get)
		}

		// Wall routes (public read of published walls, owner write)
		walls := v1.Group("/walls")
		{
			walls.GET("", d.wallHandler.ListPublished)
			walls.GET("/my", d.authMiddleware, d.wallHandler.ListMine)
			walls.GET("/:id", d.wallHandler.Get)
			walls.POST("", d.authMiddleware, middleware.IdempotencyMiddleware(), d.wallHandler.Create)
			walls.PUT("/:id", d.authMiddleware, d.wallHandler.Update)
			walls.DELETE("/:id", d.authMiddleware, d.wallHandler.Delete)
			walls.PUT("/:id/view", d.wallHandler.IncrementView)
			walls.GET("/:id/projects", d.wallHandler.ListProjects)
			walls.GET("/:id/team", d.teamHandler.ListByWall)
		}

		// Project routes (wall owner only)
		projects := v1.Group("/projects")
		projects.Use(d.authMiddleware)
		{
			projects.POST("", d.projectHandler.Create)
			projects.PUT("/:id", d.projectHandler.Update)
			projects.DELETE("/:id", d.projectHandler.Delete)
		}

		// Team roster routes (wall owner only)
		team := v1.Group("/team")
		team.Use(d.authMiddleware)
		{
			team.POST("", d.teamHandler.Add)
			team.DELETE("/:id", d.teamHandler.Remove)
		}

		// Connection routes (protected)
		connections := v1.Group("/connections")
		connections.Use(d.authMiddleware)
		{
			connections.POST("", d.connectionHandler.Create)
			connections.GET("", d.connectionHandler.List)
			connections.PUT("/:id/status", d.connectionHandler.UpdateStatus)
		}

		// Media upload (protected)
		v1.POST("/media", d.authMiddleware, d.mediaHandler.Upload)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/verifications", d.adminHandler.ListVerifications)
			admin.PUT("/verifications/:id", d.adminHandler.DecideVerification)
			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pikxora-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerUploadRoute serves stored media files from the upload root.
func registerUploadRoute(r *gin.Engine, root string) {
	r.Static("/uploads", root)
}
