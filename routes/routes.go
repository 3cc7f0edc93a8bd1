package routes

import (
	"net/http"

	"vibin_web/auth"
	"vibin_web/controllers"
	"vibin_web/middleware"
	"vibin_web/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP surface is built from
type Dependencies struct {
	Store   *services.SessionStore
	JWT     *auth.JWTManager
	Limiter *middleware.LimiterStore
	Photos  *services.PhotoService
	Socket  http.Handler
	Logger  *zap.Logger
}

// NewRouter builds the full route table: public routes, auth, the socket.io transport,
// and the session-guarded /api routes
func NewRouter(d Dependencies) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logger(d.Logger))

	RegisterRoutes(r)
	requireSession := middleware.RequireSession(d.JWT, d.Store, d.Logger)
	RegisterAuthRoutes(r, controllers.NewAuthController(d.Store, d.JWT, d.Limiter, d.Logger), requireSession)

	if d.Socket != nil {
		r.PathPrefix("/socket.io/").Handler(d.Socket)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(requireSession)

	RegisterDiscoverRoutes(api)
	RegisterMatchRoutes(api, d.Logger)
	RegisterChatRoutes(api, d.Logger, middleware.RateLimitSession(d.Limiter, d.Logger))
	RegisterNotificationRoutes(api, d.Logger)
	RegisterSearchRoutes(api, d.Logger)
	RegisterActionRoutes(api, d.Logger)
	RegisterS3Routes(api, d.Photos, d.Logger)
	RegisterUserProfileRoutes(api, d.Logger)

	return r
}

// RegisterRoutes sets up the public routes of the application
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/privacy-policy", PrivacyPolicyHandler).Methods("GET")
}

// RegisterDiscoverRoutes sets up the discovery feed under /api/discover
func RegisterDiscoverRoutes(api *mux.Router) {
	api.HandleFunc("/discover", controllers.HandleDiscover).Methods("GET")
}
