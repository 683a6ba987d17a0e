package routes

import (
	"log"
	"strconv"

	_ "github.com/bushboy/bookingswap-sub016/docs"
	"github.com/bushboy/bookingswap-sub016/internal/adapter/http/handlers"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the HTTP surface over the auction engine.
func NewRouter(engine usecase.IAuctionUseCase, alerter usecase.IRollbackAlerter) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuctionRoutes(v1, handlers.NewAuctionHandler(engine), handlers.NewProposalHandler(engine))
	addAlertRoutes(v1, handlers.NewAlertHandler(alerter))
	return router
}

// Run will start the server
func Run(router *gin.Engine, port int) error {
	log.Printf("[http][server] listening port=%d", port)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Printf("Failed to startup the application: %v", err)
		return err
	}
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[http][recovery] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
