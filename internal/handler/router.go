package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookit/internal/handler/api"
	"bookit/internal/handler/middleware"
	"bookit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	experienceHandler *api.ExperienceHandler,
	bookingHandler *api.BookingHandler,
	promoHandler *api.PromoHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, experienceHandler, bookingHandler, promoHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	experienceHandler *api.ExperienceHandler,
	bookingHandler *api.BookingHandler,
	promoHandler *api.PromoHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		experiences := apiGroup.Group("/experiences")
		{
			addRoutes(experiences, []route{
				{Method: http.MethodGet, Path: "", Handler: experienceHandler.ListExperiences},
				{Method: http.MethodGet, Path: "/:id", Handler: experienceHandler.GetExperience},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: experienceHandler.ListSlots},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:referenceId", Handler: bookingHandler.GetBooking},
			})
		}

		apiGroup.POST("/promo/validate", promoHandler.Validate)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
