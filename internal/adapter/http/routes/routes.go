package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campo_direto/internal/adapter/http/handlers"
	"campo_direto/internal/adapter/http/middleware"
	"campo_direto/internal/adapter/persistence/repository"
	"campo_direto/internal/infrastructure/cache"
	"campo_direto/internal/infrastructure/database"
	"campo_direto/internal/infrastructure/notifications"
	"campo_direto/internal/infrastructure/rates"
	"campo_direto/internal/usecase"
	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		logger.S().Fatalw("failed to startup the application", "error", err)
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	proposalRepo := repository.NewProposalDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	catalogRepo := cache.NewCatalogCache(repository.NewCatalogDynamoRepository(ddb))

	notifier := notifications.NewLogNotifier()

	var rateGateway interfaces.IFreightRateGateway
	gw, err := rates.NewFreightRateGateway(os.Getenv("FREIGHT_RATE_URL"))
	if err != nil {
		logger.S().Warnw("freight rate gateway not configured", "error", err)
	} else {
		rateGateway = gw
	}

	cartUseCase := usecase.NewCartUseCase(orderRepo, catalogRepo)
	proposalUseCase := usecase.NewProposalUseCase(orderRepo, proposalRepo, notifier)
	freightUseCase := usecase.NewFreightUseCase(orderRepo, bookingRepo, rateGateway, notifier)

	cartHandler := handlers.NewCartHandler(cartUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	freightHandler := handlers.NewFreightHandler(freightUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNegotiationRoutes(v1, cartHandler, proposalHandler)
	addFreightRoutes(v1, freightHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.S().Errorw("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
