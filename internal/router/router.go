package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JacobSsozi/JadeDelight/internal/middleware"
	"github.com/JacobSsozi/JadeDelight/internal/order"
)

// New wires the order form routes onto a gin engine.
func New(orderService *order.Service) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	orderHandler := order.NewHandler(orderService)

	r.POST("/orders", orderHandler.Create)

	orders := r.Group("/orders/:id")
	orders.Use(middleware.OrderSession(orderService))
	{
		orders.GET("", orderHandler.Get)
		orders.PATCH("/items/:index", orderHandler.SetQuantity)
		orders.PATCH("/fulfillment", orderHandler.SelectFulfillment)
		orders.PATCH("/customer", orderHandler.UpdateCustomer)
		orders.POST("/submit", orderHandler.Submit)
		orders.GET("/confirmation", orderHandler.Confirmation)
	}

	return r
}
