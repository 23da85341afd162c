package routes

import (
	"time"

	"tutormatch/handlers"
	"tutormatch/middleware"
	"tutormatch/services/session"
	"tutormatch/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configure the global middleware chain.
type Options struct {
	Logger            *zap.Logger
	Sessions          session.Provider
	MaxRequestsPerMin int
}

// NewRouter builds an engine with the global middleware and every route.
func NewRouter(hb *handlers.HandlerBundle, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = utils.GetLogger()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(handlers.Templates())

	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if opts.Sessions != nil {
		r.Use(middleware.SessionMiddleware(opts.Sessions))
	}

	r.NoMethod(handlers.WrongMethodHandler)
	r.NoRoute(handlers.NotFoundHandler)

	RegisterRoutes(r, hb)
	return r
}

// RegisterUserRoutes registers user directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/user", hb.CreateUserHandler)
	r.GET("/user/:email", hb.GetUserByEmailHandler)
	r.GET("/teacher/:id", hb.GetTeacherByIDHandler)
}

// RegisterSearchRoutes registers course search endpoints and the search page.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/search", hb.SearchByCourseHandler)
	r.GET("/search/:courses", hb.SearchByCoursePrefixHandler)
	r.GET("/app/search", hb.SearchPageHandler)
}

// RegisterBookingRoutes registers the appointment endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/appointment", hb.CreateAppointmentHandler)
}

// RegisterSessionRoutes registers sign-out.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.DELETE("/session", hb.SignOutHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterUserRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
