package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpus-backend/internal/shared/middleware"
	"corpus-backend/pkg/container"
)

// SetupRouter wires all routes. Paths are served at the root (no version
// prefix) to stay compatible with the existing editor frontend.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	setupAuthRoutes(router, c)
	setupWorkRoutes(router, c)
	setupReviewRoutes(router, c)
	setupExportRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.GET("/csrf", c.UserHandler.CSRF)
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
	}

	router.GET("/me", middleware.AuthMiddleware(c.UserService), c.UserHandler.Me)
}

// ========================================
// WORK / VERSE / COMMENTARY ROUTES
// ========================================
// Reads are public; every mutation requires a session for the audit trail.
func setupWorkRoutes(router *gin.Engine, c *container.Container) {
	authed := middleware.AuthMiddleware(c.UserService)

	works := router.Group("/works")
	{
		works.GET("", c.WorkHandler.ListWorks)
		works.GET("/:work_id", c.WorkHandler.GetWork)
		works.PUT("/:work_id", authed, c.WorkHandler.ReplaceWork)

		works.GET("/:work_id/verses", c.VerseHandler.ListVerses)
		works.POST("/:work_id/verses", authed, c.VerseHandler.CreateVerse)
		works.GET("/:work_id/verses/:verse_id", c.VerseHandler.GetVerse)
		works.PUT("/:work_id/verses/:verse_id", authed, c.VerseHandler.UpdateVerse)
		works.DELETE("/:work_id/verses/:verse_id", authed, c.VerseHandler.DeleteVerse)

		works.GET("/:work_id/verses/:verse_id/commentary", c.CommentaryHandler.ListForVerse)
		works.POST("/:work_id/verses/:verse_id/commentary", authed, c.CommentaryHandler.CreateCommentary)
		works.GET("/:work_id/commentary/:commentary_id", c.CommentaryHandler.GetCommentary)
		works.PUT("/:work_id/commentary/:commentary_id", authed, c.CommentaryHandler.UpdateCommentary)
		works.DELETE("/:work_id/commentary/:commentary_id", authed, c.CommentaryHandler.DeleteCommentary)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(router *gin.Engine, c *container.Container) {
	review := router.Group("/review")
	review.Use(middleware.AuthMiddleware(c.UserService))
	{
		review.POST("/verse/:verse_id/approve", c.ReviewHandler.ApproveVerse)
		review.POST("/verse/:verse_id/reject", c.ReviewHandler.RejectVerse)
		review.POST("/verse/:verse_id/flag", c.ReviewHandler.FlagVerse)
		review.POST("/verse/:verse_id/lock", c.ReviewHandler.LockVerse)

		review.POST("/commentary/:commentary_id/approve", c.ReviewHandler.ApproveCommentary)
		review.POST("/commentary/:commentary_id/reject", c.ReviewHandler.RejectCommentary)
		review.POST("/commentary/:commentary_id/flag", c.ReviewHandler.FlagCommentary)
		review.POST("/commentary/:commentary_id/lock", c.ReviewHandler.LockCommentary)
	}
}

// ========================================
// BUILD / EXPORT ROUTES
// ========================================
func setupExportRoutes(router *gin.Engine, c *container.Container) {
	authed := middleware.AuthMiddleware(c.UserService)

	router.POST("/build/merge", authed, c.ExportHandler.Merge)
	router.POST("/export/clean", authed, c.ExportHandler.Clean)
	router.POST("/export/train", authed, c.ExportHandler.Train)
}
