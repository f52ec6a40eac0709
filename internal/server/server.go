package server

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lcombes/olympass/config"
	"github.com/lcombes/olympass/internal/handlers"
	"github.com/lcombes/olympass/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Use(cors.Default())

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("Starting server", zap.String("port", port))
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.GET("/sports", handlers.ListSports)
		public.GET("/events", handlers.ListEvents)
		public.GET("/competitions/:eventId", handlers.ListCompetitions)
		public.POST("/cart", handlers.CartDetails)

		public.GET("/offers", handlers.ListOffers)
		public.GET("/seats", handlers.ListSeats)

		public.POST("/check-email", handlers.CheckEmail)
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/token/refresh", handlers.RefreshToken)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/me", handlers.Me)
		protected.POST("/logout", handlers.Logout)
		protected.POST("/payment", handlers.ProcessPayment)
	}

	staff := protected.Group("")
	staff.Use(middleware.StaffRequired())
	{
		staff.POST("/sports", handlers.CreateSport)
		staff.DELETE("/sports/:id", handlers.DeleteSport)
	}
}
