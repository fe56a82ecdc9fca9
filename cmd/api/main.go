package main

import (
	"log"
	"os"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/database"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/middleware"
	routes "github.com/CryptoXApp/CryptoX_Api.git/internal/server"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del verificador de alertas
var alertChecker *services.AlertChecker

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{allowedOrigin}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Configurar las rutas (inicializa repositorios y clientes)
	routes.RegisterRoutes(router)

	// Iniciar el verificador de alertas de precio (cada 60 segundos)
	alertChecker = services.NewAlertChecker(60*time.Second, middleware.AlertRepo(), middleware.MarketClient())
	alertChecker.Start()
	defer alertChecker.Stop()

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
