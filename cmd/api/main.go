package main

import (
	"context"
	"log"
	"os"
	"time"

	_ "finadmin/api/swagger" // swagger docs
	"finadmin/internal/database"
	"finadmin/internal/handler"
	"finadmin/internal/middleware"
	"finadmin/internal/repository"
	"finadmin/internal/service"
	"finadmin/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Platform Administration API
// @version         1.0
// @description     Lookup-code and client-address administration for the financial platform.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "postgres")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.SeedSystemCodes(db); err != nil {
		log.Fatalf("Failed to seed system codes: %v", err)
	}

	// Tenant-local dates for address create/update stamps
	tenantTZ, err := time.LoadLocation(envOr("TENANT_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatalf("Invalid TENANT_TIMEZONE: %v", err)
	}

	// Set up WebSocket Hub for the command activity feed
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	codeRepo := repository.NewCodeRepository(db)
	codeValueRepo := repository.NewCodeValueRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	clientRepo := repository.NewClientRepository(db)
	clientAddressRepo := repository.NewClientAddressRepository(db)
	userRepo := repository.NewUserRepository(db)

	commandLog := service.NewCommandLogService(db, wsHub)
	resolver := service.NewCodeValueResolver(codeValueRepo)
	codeService := service.NewCodeService(codeRepo, commandLog, txManager)
	codeValueService := service.NewCodeValueService(codeRepo, codeValueRepo, commandLog, txManager)
	clientAddressService := service.NewClientAddressService(resolver, addressRepo, clientAddressRepo, clientRepo, commandLog, txManager, tenantTZ)
	clientService := service.NewClientService(clientRepo, clientAddressService, commandLog, txManager)
	authService := service.NewAuthService(userRepo)

	if err := authService.SeedAdmin(context.Background(), envOr("ADMIN_USERNAME", "admin"), envOr("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	codeHandler := handler.NewCodeHandler(codeService)
	codeValueHandler := handler.NewCodeValueHandler(codeValueService)
	clientHandler := handler.NewClientHandler(clientService)
	clientAddressHandler := handler.NewClientAddressHandler(clientAddressService)
	auditHandler := handler.NewAuditHandler(commandLog)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint (command activity feed)
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	codeHandler.RegisterRoutes(router.Group(""))
	codeValueHandler.RegisterRoutes(router.Group(""))
	clientHandler.RegisterRoutes(router.Group(""))
	clientAddressHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := envOr("PORT", "8080")

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
