package routes

import (
	"context"
	"log"
	"strconv"

	_ "commerce_engine/docs" // generated by swag init
	"commerce_engine/internal/infrastructure/config"
	"commerce_engine/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var router = gin.New()

// Run will start the server
func Run() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("[routes] telemetry disabled err=%v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("[routes] telemetry shutdown err=%v", err)
		}
	}()

	setMiddlewares(cfg.Telemetry.ServiceName)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}
	getRoutes(router.Group("/v1"), deps)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Printf("Failed to startup the application: %v", err)
	}
}

func getRoutes(v1 *gin.RouterGroup, deps dependencies) {
	addPingRoutes(v1)
	addProposalRoutes(v1, deps.proposals)
	addOrderRoutes(v1, deps.orders)
	addWebhookRoutes(v1, deps.webhooks)
}

func setMiddlewares(serviceName string) {
	router.Use(gin.Logger())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
