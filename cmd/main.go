package main

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-restaurants/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const indexPage = "<h1>Code challenge</h1>"

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	config.LoadDotenv()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	router := setupRouter(db)

	// Start the server
	log.Infof("Starting server on %s", configuration.Address())
	if err := router.Run(configuration.Address()); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// setUpLogger initializes the logger with a JSON formatter. LOG_LEVEL wins
// when it is set explicitly, otherwise the level follows APP_ENV.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level := config.LevelForEnvironment(conf.Environment)
	if config.GetEnvWithDefault("LOG_LEVEL", "") != "" {
		if parsed, err := log.ParseLevel(conf.LogLevel); err == nil {
			level = parsed
		}
	}
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the store, migrates the schema and seeds an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := conf.Database()
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	_, err = database.Seed(db)
	checkPanicErr(err)
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()))

	setupRoutes(router, db)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, db *gorm.DB) {
	router.GET("/", indexHandler)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router,
		controllers.NewRestaurantController(services.NewRestaurantService(db)),
		controllers.NewPizzaController(services.NewPizzaService(db)),
		controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler serves the static landing page
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-restaurants",
	})
}
