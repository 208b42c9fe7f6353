package main

import (
	"log"

	"contest-judge-backend/internal/config"
	"contest-judge-backend/internal/database"
	"contest-judge-backend/internal/handlers"
	"contest-judge-backend/internal/middleware"
	"contest-judge-backend/internal/models"
	"contest-judge-backend/internal/services"
	"contest-judge-backend/internal/ws"

	_ "contest-judge-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Contest Judge API
// @version         1.0
// @description     API for a programming-contest platform with manual judging
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	problemService := services.NewProblemService(db)
	contestService := services.NewContestService(db)
	submissionService := services.NewSubmissionService(db, hub)
	queueService := services.NewQueueService(db, hub)

	authHandler := handlers.NewAuthHandler(authService)
	problemHandler := handlers.NewProblemHandler(problemService)
	contestHandler := handlers.NewContestHandler(contestService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	queueHandler := handlers.NewQueueHandler(queueService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/contest/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/me", middleware.JWTAuth(authService), authHandler.Profile)
		api.GET("/standings", middleware.JWTAuth(authService), contestHandler.Standings)

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleAdmin))
		{
			users.POST("/:id/promote", authHandler.PromoteToAdmin)
		}

		problems := api.Group("/problems")
		problems.Use(middleware.JWTAuth(authService))
		{
			problems.GET("", problemHandler.ListProblems)
			problems.GET("/:id", problemHandler.GetProblem)

			admin := problems.Group("")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("", problemHandler.CreateProblem)
				admin.PUT("/:id", problemHandler.UpdateProblem)
				admin.DELETE("/:id", problemHandler.DeleteProblem)
			}
		}

		contests := api.Group("/contests")
		contests.Use(middleware.JWTAuth(authService))
		{
			contests.GET("", contestHandler.ListContests)
			contests.GET("/:id", contestHandler.GetContest)
			contests.GET("/:id/problems", contestHandler.ListProblems)
			contests.GET("/:id/leaderboard", contestHandler.Leaderboard)
			contests.POST("/:id/enroll", contestHandler.Enroll)
			contests.POST("/:id/withdraw", contestHandler.Withdraw)
			contests.GET("/:id/submissions",
				middleware.RequireRole(models.RoleJudge, models.RoleAdmin),
				submissionHandler.ListContestSubmissions)

			admin := contests.Group("")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("", contestHandler.CreateContest)
				admin.PUT("/:id/status", contestHandler.UpdateStatus)
				admin.POST("/:id/problems", contestHandler.AddProblem)
			}
		}

		submissions := api.Group("/submissions")
		submissions.Use(middleware.JWTAuth(authService))
		{
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.GET("/mine", submissionHandler.ListMySubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
			submissions.GET("/:id/review", submissionHandler.GetReview)
			submissions.POST("/:id/review",
				middleware.RequireRole(models.RoleJudge, models.RoleAdmin),
				submissionHandler.FinalizeReview)
		}

		queue := api.Group("/queue")
		queue.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleJudge, models.RoleAdmin))
		{
			queue.GET("", queueHandler.ListQueue)
			queue.GET("/active", queueHandler.MyActive)
			queue.GET("/stats", queueHandler.Statistics)
			queue.POST("/:id/claim", queueHandler.Claim)
			queue.POST("/:id/release", queueHandler.Release)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
