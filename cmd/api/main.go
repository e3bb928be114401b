package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/config"
	"github.com/yourusername/question-bank-api/internal/handler"
	"github.com/yourusername/question-bank-api/internal/middleware"
	pgRepo "github.com/yourusername/question-bank-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/question-bank-api/internal/repository/redis"
	"github.com/yourusername/question-bank-api/internal/service"
	"github.com/yourusername/question-bank-api/internal/storage"
	"github.com/yourusername/question-bank-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем объектное хранилище изображений
	objectStorage, err := storage.NewMinioStorage(&cfg.Storage)
	if err != nil {
		log.Printf("Failed to initialize object storage: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	questionRepo := pgRepo.NewQuestionRepo(db, cacheRepo)
	choiceRepo := pgRepo.NewChoiceRepo(db)
	solutionRepo := pgRepo.NewSolutionRepo(db)
	contentRepo := pgRepo.NewQuestionContentRepo(db)
	questionSourceRepo := pgRepo.NewQuestionSourceRepo(db)
	areaRepo := pgRepo.NewAreaRepo(db)
	sourceRepo := pgRepo.NewSourceRepo(db)
	referenceRepo := pgRepo.NewReferenceRepo(db)
	courseRepo := pgRepo.NewCourseRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	subtopicRepo := pgRepo.NewSubtopicRepo(db)
	institutionRepo := pgRepo.NewInstitutionRepo(db)

	// Инициализируем сервисы
	validator := service.NewQuestionValidator(referenceRepo)
	resolver := service.NewImageResolver(objectStorage)
	guard := service.NewQuestionGuard(questionRepo)

	questionService := service.NewQuestionService(questionRepo, areaRepo, referenceRepo, validator, resolver)
	choiceService := service.NewChoiceService(choiceRepo, guard, resolver)
	solutionService := service.NewSolutionService(solutionRepo, guard, resolver)
	contentService := service.NewQuestionContentService(contentRepo, guard, resolver)
	questionSourceService := service.NewQuestionSourceService(questionSourceRepo, referenceRepo, guard)
	areaService := service.NewAreaService(areaRepo)
	sourceService := service.NewSourceService(sourceRepo)
	taxonomyService := service.NewTaxonomyService(courseRepo, topicRepo, subtopicRepo, institutionRepo)
	imageService := service.NewImageService(objectStorage)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, choiceService, solutionService, contentService, questionSourceService)
	areaHandler := handler.NewAreaHandler(areaService)
	sourceHandler := handler.NewSourceHandler(sourceService)
	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	imageHandler := handler.NewImageHandler(imageService)

	isProduction := gin.Mode() == gin.ReleaseMode

	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api/v1")
	{
		questions := api.Group("/questions")
		{
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("", questionHandler.GetQuestions)
			questions.GET("/export", questionHandler.ExportQuestions)

			questionWithID := questions.Group("/:id", middleware.ExtractUintParam("id", "questionID"))
			{
				questionWithID.GET("", questionHandler.GetQuestion)
				questionWithID.DELETE("", questionHandler.DeleteQuestion)
				questionWithID.PATCH("/question-type", questionHandler.UpdateQuestionType)
				questionWithID.PATCH("/subtopic", questionHandler.UpdateSubtopic)
				questionWithID.PATCH("/difficulty", questionHandler.UpdateDifficulty)
				questionWithID.PATCH("/areas", questionHandler.ReplaceAreas)
				questionWithID.PATCH("/contents/:contentID",
					middleware.ExtractUintParam("contentID", "contentID"), questionHandler.UpdateContent)
				questionWithID.PATCH("/choices/:choiceID",
					middleware.ExtractUintParam("choiceID", "choiceID"), questionHandler.UpdateChoice)
				questionWithID.PATCH("/solutions/:solutionID",
					middleware.ExtractUintParam("solutionID", "solutionID"), questionHandler.ReplaceSolutionContents)
				questionWithID.PATCH("/sources/:questionSourceID",
					middleware.ExtractUintParam("questionSourceID", "questionSourceID"), questionHandler.UpdateQuestionSource)
			}
		}

		api.POST("/images", imageHandler.UploadImage)

		areas := api.Group("/areas")
		{
			areas.GET("", areaHandler.GetAreas)
			areas.POST("", areaHandler.CreateArea)
		}

		sources := api.Group("/sources")
		{
			sources.GET("", sourceHandler.GetSources)
			sources.POST("", sourceHandler.CreateSource)
			sourceWithID := sources.Group("/:id", middleware.ExtractUintParam("id", "sourceID"))
			{
				sourceWithID.GET("", sourceHandler.GetSource)
				sourceWithID.PATCH("", sourceHandler.UpdateSource)
				sourceWithID.DELETE("", sourceHandler.DeleteSource)
			}
		}

		courses := api.Group("/courses")
		{
			courses.GET("", taxonomyHandler.GetCourses)
			courses.POST("", taxonomyHandler.CreateCourse)
			courseWithID := courses.Group("/:id", middleware.ExtractUintParam("id", "courseID"))
			{
				courseWithID.GET("", taxonomyHandler.GetCourse)
				courseWithID.PATCH("", taxonomyHandler.UpdateCourse)
				courseWithID.DELETE("", taxonomyHandler.DeleteCourse)
			}
		}

		topics := api.Group("/topics")
		{
			topics.GET("", taxonomyHandler.GetTopics)
			topics.POST("", taxonomyHandler.CreateTopic)
			topicWithID := topics.Group("/:id", middleware.ExtractUintParam("id", "topicID"))
			{
				topicWithID.GET("", taxonomyHandler.GetTopic)
				topicWithID.PATCH("", taxonomyHandler.UpdateTopic)
				topicWithID.DELETE("", taxonomyHandler.DeleteTopic)
			}
		}

		subtopics := api.Group("/subtopics")
		{
			subtopics.GET("", taxonomyHandler.GetSubtopics)
			subtopics.POST("", taxonomyHandler.CreateSubtopic)
			subtopicWithID := subtopics.Group("/:id", middleware.ExtractUintParam("id", "subtopicID"))
			{
				subtopicWithID.GET("", taxonomyHandler.GetSubtopic)
				subtopicWithID.PATCH("", taxonomyHandler.UpdateSubtopic)
				subtopicWithID.DELETE("", taxonomyHandler.DeleteSubtopic)
			}
		}

		institutions := api.Group("/institutions")
		{
			institutions.GET("", taxonomyHandler.GetInstitutions)
			institutions.POST("", taxonomyHandler.CreateInstitution)
			institutionWithID := institutions.Group("/:id", middleware.ExtractUintParam("id", "institutionID"))
			{
				institutionWithID.GET("", taxonomyHandler.GetInstitution)
				institutionWithID.PATCH("", taxonomyHandler.UpdateInstitution)
				institutionWithID.DELETE("", taxonomyHandler.DeleteInstitution)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
