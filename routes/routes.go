package routes

import (
	"heartwave_server/controllers"
	"heartwave_server/services"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies collects what the route groups need
type Dependencies struct {
	Sessions *services.SessionStore
	Catalog  *services.CatalogService
	Images   *services.ImageService
	Logger   *zap.Logger
}

// NewRouter registers every route group on a fresh router
func NewRouter(deps Dependencies) *mux.Router {
	r := mux.NewRouter()

	health := &controllers.HealthController{Sessions: deps.Sessions, Catalog: deps.Catalog}
	r.HandleFunc("/health", health.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	RegisterPageRoutes(r, deps.Sessions, deps.Logger)
	RegisterSessionRoutes(r, deps.Sessions, deps.Logger)
	RegisterCatalogRoutes(r, deps.Catalog, deps.Images, deps.Logger)
	return r
}
