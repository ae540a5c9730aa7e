package routes

import (
	"log"
	"strconv"

	_ "restoration_billing/docs" // This will be auto-generated
	"restoration_billing/internal/adapter/http/handlers"
	repository2 "restoration_billing/internal/adapter/persistence/repository"
	"restoration_billing/internal/infrastructure/database"
	"restoration_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDocumentDynamoRepository(ddb)
	estimateUseCase := usecase.NewEstimateDocumentUseCase(estimateRepo)

	estimateHandler := handlers.NewEstimateDocumentHandler(estimateUseCase)
	debrisHandler := handlers.NewDebrisHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler)
	addDebrisRoutes(v1, debrisHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
