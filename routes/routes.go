package routes

import (
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/utils"
)

// Handlers bundles the wired-up controllers for SetupRouter.
type Handlers struct {
	Auth     *controllers.AuthController
	Salons   *controllers.SalonController
	Services *controllers.ServiceController
	Bookings *controllers.BookingController
	Public   *controllers.PublicController
	Profile  *controllers.ProfileController
}

var localOrigin = regexp.MustCompile(`^http://localhost:\d+$`)

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// Local dev plus the comma-separated ALLOWED_ORIGINS list
	allowed := map[string]bool{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return localOrigin.MatchString(origin) || allowed[origin]
		},
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Salon booking API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", h.Auth.Me)
	}

	authRequired := utils.AuthMiddleware()

	salons := r.Group("/salons", authRequired)
	{
		salons.GET("", h.Salons.GetSalons)
		salons.POST("", h.Salons.CreateSalon)
		salons.GET("/:salonId", h.Salons.GetSalon)
		salons.PATCH("/:salonId", h.Salons.UpdateSalon)
		salons.DELETE("/:salonId", h.Salons.DeleteSalon)

		salons.GET("/:salonId/services", h.Services.GetServices)
		salons.POST("/:salonId/services", h.Services.CreateService)

		salons.GET("/:salonId/bookings", h.Bookings.GetBookings)
		salons.POST("/:salonId/bookings", h.Bookings.CreateBooking)
	}
	// Lookup by slug lives under its own prefix: gin panics when a static
	// segment shares a position with :salonId, so /salons/by-slug/:slug (and
	// any /salons/... variant) cannot be registered. Clients must call
	// /salons-by-slug/:slug.
	r.GET("/salons-by-slug/:slug", authRequired, h.Salons.GetSalonBySlug)

	services := r.Group("/services", authRequired)
	{
		services.PATCH("/:id", h.Services.UpdateService)
		services.DELETE("/:id", h.Services.DeleteService)
	}

	bookings := r.Group("/bookings", authRequired)
	{
		bookings.PATCH("/:id", h.Bookings.UpdateBooking)
		bookings.DELETE("/:id", h.Bookings.DeleteBooking)
	}

	profile := r.Group("/profile", authRequired)
	{
		profile.GET("", h.Profile.GetProfile)
		profile.PUT("/update-salon", h.Profile.UpdateSalonProfile)
		profile.PUT("/update-hours", h.Profile.UpdateWorkingHours)
	}

	// Unauthenticated booking page endpoints
	public := r.Group("/public/salons/:id")
	{
		public.GET("", h.Public.GetSalon)
		public.GET("/services", h.Public.GetServices)
		public.GET("/availability", h.Public.GetAvailability)
		public.POST("/bookings", h.Public.CreateBooking)
	}

	return r
}
