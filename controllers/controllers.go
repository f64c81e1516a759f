package controllers

import (
	"net/http"

	"heartwave_server/services"
	"heartwave_server/utils"
)

// HealthController reports liveness plus a few counts
type HealthController struct {
	Sessions *services.SessionStore
	Catalog  *services.CatalogService
}

// HealthCheckHandler provides a basic health check
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"sessions": c.Sessions.Len(),
		"profiles": c.Catalog.Len(),
	})
}
