package routes

import (
	"heartwave_server/controllers"
	"heartwave_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterCatalogRoutes sets up read-only catalog, hero and image routes
func RegisterCatalogRoutes(r *mux.Router, catalog *services.CatalogService, images *services.ImageService, logger *zap.Logger) {
	controller := controllers.NewCatalogController(catalog, images, logger)

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/catalog", controller.GetCatalog).Methods("GET")
	apiRouter.HandleFunc("/catalog/{profileId}", controller.GetProfile).Methods("GET")
	apiRouter.HandleFunc("/hero", controller.GetHero).Methods("GET")
	apiRouter.HandleFunc("/images/read-url", controller.GetPresignedReadURL).Methods("POST")
}
