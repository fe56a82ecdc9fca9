package routes

import (
	"github.com/CryptoXApp/CryptoX_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar repositorios y clientes de APIs externas
	middleware.InitAuth()
	middleware.InitMarket()
	middleware.InitCollections()

	// Autenticación
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", middleware.Signup)
		auth.POST("/login", middleware.Login)
		auth.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)
		auth.GET("/user/:id", middleware.GetUserById)
	}

	// Datos de mercado (públicos, denominados en vs_currency)
	api := router.Group("/api")
	{
		api.GET("/coins", middleware.GetCoins)
		api.GET("/coins/:id", middleware.GetCoinDetail)
		api.GET("/coins/:id/chart", middleware.GetCoinChart)
		api.GET("/search", middleware.SearchCoins)
		api.GET("/news", middleware.GetNews)
		api.GET("/currencies", middleware.GetCurrencies)
	}

	// Rutas protegidas por token bearer
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.GET("/settings", middleware.GetSettings)
		protected.PUT("/settings/currency", middleware.UpdateCurrency)

		protected.POST("/portfolio", middleware.CreatePortfolioEntry)
		protected.GET("/portfolio", middleware.GetPortfolio)
		protected.GET("/portfolio/summary", middleware.GetPortfolioSummary)
		protected.PUT("/portfolio/:id", middleware.UpdatePortfolioEntry)
		protected.DELETE("/portfolio/:id", middleware.DeletePortfolioEntry)

		protected.POST("/alerts", middleware.CreateAlert)
		protected.GET("/alerts", middleware.GetAlerts)
		protected.PUT("/alerts/:id", middleware.UpdateAlert)
		protected.DELETE("/alerts/:id", middleware.DeleteAlert)

		protected.POST("/watchlist", middleware.AddToWatchlist)
		protected.GET("/watchlist", middleware.GetWatchlist)
		protected.DELETE("/watchlist/:coinId", middleware.RemoveFromWatchlist)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
	}

	router.POST("/api/auth/request-reset-password", middleware.RequestResetPassword)
	router.POST("/api/auth/reset-password", middleware.ResetPassword)
}
