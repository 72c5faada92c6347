package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/arvind1901/GLoan-App/configs"
	"github.com/arvind1901/GLoan-App/internal/app/handlers"
	"github.com/arvind1901/GLoan-App/internal/app/middleware"
	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/db"
	"github.com/arvind1901/GLoan-App/internal/pkg/gcs"
	"github.com/arvind1901/GLoan-App/internal/pkg/identity"
	"github.com/arvind1901/GLoan-App/internal/pkg/kafka/producer"
	"github.com/arvind1901/GLoan-App/internal/pkg/notification"
	"github.com/arvind1901/GLoan-App/internal/pkg/pubsub"
	"github.com/arvind1901/GLoan-App/internal/pkg/services"
	"github.com/arvind1901/GLoan-App/internal/pkg/store"
	"github.com/arvind1901/GLoan-App/internal/pkg/store/repository"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher, gcsClient gcs.GcsInterface) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	usersRepo := store.NewUsersRepository()
	applicationStore := store.NewApplicationRecordStore(db.MDB.Client, db.MDB.Database.Name())

	tokenProvider := identity.NewTokenProvider(configs.JWT_SECRET, configs.JWT_TTL_HOURS)
	notificationService := notification.NewNotificationService(usersRepo, pubsubPublisher)

	accountService := services.NewAccountService(usersRepo, tokenProvider)
	loanApplicationService := services.NewLoanApplicationService(applicationStore, producer.KafkaProducer, redisAdapter)
	loanStatusService := services.NewLoanStatusService(applicationStore, redisAdapter)
	adminService := services.NewAdminService(applicationStore, producer.KafkaProducer, redisAdapter, notificationService, workerPool)
	reportService := services.NewReportService(applicationStore, gcsClient)

	authHandler := handlers.NewAuthHandler(accountService)
	loanHandler := handlers.NewLoanHandler(loanApplicationService, loanStatusService)
	adminHandler := handlers.NewAdminHandler(adminService, reportService)

	api := r.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	authed := api.Group("", middleware.BearerAuth(tokenProvider))
	authed.POST("/apply-loan", loanHandler.ApplyLoan)
	authed.GET("/loan-status", loanHandler.LoanStatus)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.GET("/applications", adminHandler.Applications)
	admin.PUT("/applications/:id/status", adminHandler.UpdateStatus)
	admin.GET("/applications/report", adminHandler.Report)

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": consts.HealthCheckMessage})
	})

	// Everything else falls through to the static bundle, with unknown /api
	// paths kept as JSON 404s.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		file := filepath.Join(configs.STATIC_DIR, filepath.Clean(path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(configs.STATIC_DIR, "index.html"))
	})

	return r
}
