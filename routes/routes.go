package routes

import (
	"net/http"

	"freelancerdash-backend/controllers"
	"freelancerdash-backend/middleware"
	"freelancerdash-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(store storage.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// Each router owns its metrics registry so tests can build routers
	// freely without duplicate registration panics.
	registry := prometheus.NewRegistry()
	if metrics, err := middleware.NewMetrics(registry); err == nil {
		r.Use(metrics.Handler())
	} else {
		logger.Warn("metrics disabled", zap.Error(err))
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	clientController := controllers.NewClientController(store)
	projectController := controllers.NewProjectController(store)
	invoiceController := controllers.NewInvoiceController(store)
	dashboardController := controllers.NewDashboardController(store)

	api := r.Group("/api")
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.GET("/:id", clientController.GetClient)
			clients.PATCH("/:id", clientController.UpdateClient)
			clients.DELETE("/:id", clientController.DeleteClient)
			clients.GET("/:id/projects", projectController.GetProjectsByClient)
			clients.GET("/:id/invoices", invoiceController.GetInvoicesByClient)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.POST("", projectController.CreateProject)
			projects.GET("", projectController.GetProjects)
			projects.GET("/:id", projectController.GetProject)
			projects.PATCH("/:id", projectController.UpdateProject)
			projects.DELETE("/:id", projectController.DeleteProject)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.PATCH("/:id", invoiceController.UpdateInvoice)
			invoices.DELETE("/:id", invoiceController.DeleteInvoice)
		}

		// Dashboard routes
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
			dashboard.GET("/top-clients", dashboardController.GetTopClients)
			dashboard.GET("/monthly-earnings", dashboardController.GetMonthlyEarnings)
		}
	}

	return r
}
