package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jibli-app/jibli-backend/internal/adapter/config"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	productHandler *ProductHandler,
	broadcastHandler *BroadcastHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
			user.POST("/device-token", authCheck(tokenService), userHandler.RegisterDeviceToken)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/user/:id", orderHandler.ListOrdersByUser)
			orders.GET("/company/:id", orderHandler.ListOrdersByCompany)
			orders.GET("/courier/:id", orderHandler.ListOrdersByCourier)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)

			writes := products.Group("")
			writes.Use(authCheck(tokenService))
			writes.POST("", productHandler.CreateProduct)
			writes.PATCH("/:id", productHandler.UpdateProduct)
			writes.DELETE("/:id", productHandler.DeleteProduct)
		}

		broadcasts := api.Group("/broadcasts")
		{
			broadcasts.Use(authCheck(tokenService), roleCheck(domain.RoleAdmin))
			broadcasts.POST("", broadcastHandler.CreateBroadcast)
			broadcasts.POST("/schedule", broadcastHandler.ScheduleBroadcast)
			broadcasts.GET("", broadcastHandler.ListBroadcasts)
			broadcasts.PATCH("/:id/deactivate", broadcastHandler.DeactivateBroadcast)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
