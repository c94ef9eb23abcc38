package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/logger"
	"backend/internal/meta"
	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/notify"
)

const settingsRetiredMessage = "admin settings have been permanently removed"
const fakeOrderSettingsRetiredMessage = "fake-order detection settings have been permanently removed"

func main() {
	config.Load()
	logger.Initialize(config.AppEnv.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(config.AppEnv.Postgres, logger.Log)
	if err != nil {
		logger.Log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.CustomerAddress{},
		&models.CustomerNote{},
		&models.Order{},
		&models.Product{},
		&models.Notification{},
		&models.WebsiteContent{},
		&models.FraudPattern{},
		&models.FraudUnblockHistory{},
	); err != nil {
		logger.Log.Warn("auto-migrate warning", zap.Error(err))
	}

	notifier := notify.New(db, logger.Log)
	metaClient := meta.NewClient(config.AppEnv.Meta)
	if !metaClient.Enabled() {
		logger.Log.Warn("meta conversions api not configured; tracking events will fail")
	}

	if config.AppEnv.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(middleware.CORS(config.AppEnv.AllowedOrigins))

	r.LoadHTMLGlob("templates/**/*")
	r.Static("/public", "./public")

	r.GET("/", handlers.Home(db))
	r.POST("/orders", handlers.CreateOrder(db, notifier))

	r.POST("/tracking/lead", handlers.TrackLead(metaClient))
	r.POST("/tracking/purchase", handlers.TrackPurchase(metaClient))
	r.POST("/tracking/vitals", handlers.TrackVitals())

	admin := r.Group("/admin")
	{
		admin.GET("/customers", handlers.GetCustomers(db))
		admin.GET("/customers/:id", handlers.GetCustomer(db))
		admin.PATCH("/customers/:id", handlers.UpdateCustomer(db))
		admin.DELETE("/customers/:id", handlers.DeleteCustomer(db))
		admin.GET("/customers/:id/addresses", handlers.GetCustomerAddresses(db))
		admin.GET("/customers/:id/notes", handlers.GetCustomerNotes(db))
		admin.POST("/customers/:id/notes", handlers.CreateCustomerNote(db))

		admin.GET("/orders", handlers.GetOrders(db))
		admin.GET("/orders/:id", handlers.GetOrder(db))
		admin.PUT("/orders/:id", handlers.UpdateOrder(db))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))

		admin.GET("/products", handlers.GetProducts(db))
		admin.GET("/products/:id", handlers.GetProduct(db))
		admin.POST("/products", handlers.CreateProduct(db, notifier))
		admin.PATCH("/products/:id", handlers.UpdateProduct(db, notifier))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db, notifier))

		admin.GET("/notifications", handlers.GetNotifications(db))
		admin.POST("/notifications/read-all", handlers.MarkAllNotificationsRead(db))
		admin.GET("/notifications/:id", handlers.GetNotification(db))
		admin.PATCH("/notifications/:id", handlers.UpdateNotification(db))
		admin.DELETE("/notifications/:id", handlers.DeleteNotification(db))

		admin.GET("/website-content", handlers.GetWebsiteContent(db))
		admin.PUT("/website-content", handlers.PutWebsiteContent(db))

		admin.GET("/statistics", handlers.GetStatistics(db))

		admin.GET("/settings", handlers.Retired(settingsRetiredMessage))
		admin.POST("/settings", handlers.Retired(settingsRetiredMessage))

		fakeOrders := admin.Group("/fake-orders")
		{
			fakeOrders.GET("/settings", handlers.Retired(fakeOrderSettingsRetiredMessage))
			fakeOrders.POST("/settings", handlers.Retired(fakeOrderSettingsRetiredMessage))
			fakeOrders.GET("/stats", handlers.GetFraudStats(db))
			fakeOrders.GET("/unblock-history", handlers.GetFraudUnblockHistory(db))
		}
	}

	logger.Log.Info("server starting", zap.String("port", config.AppEnv.Port))
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
