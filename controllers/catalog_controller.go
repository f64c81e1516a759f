package controllers

import (
	"net/http"

	"heartwave_server/apperrors"
	"heartwave_server/services"
	"heartwave_server/utils"
	"heartwave_server/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CatalogController exposes the read-only catalog, banner copy and image URLs
type CatalogController struct {
	Catalog *services.CatalogService
	Images  *services.ImageService
	Logger  *zap.Logger
}

func NewCatalogController(catalog *services.CatalogService, images *services.ImageService, logger *zap.Logger) *CatalogController {
	return &CatalogController{Catalog: catalog, Images: images, Logger: logger}
}

// GetCatalog lists every profile in deck order
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, c.Catalog.Profiles())
}

// GetProfile fetches one profile by id
func (c *CatalogController) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Catalog.Get(mux.Vars(r)["profileId"])
	if err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// GetHero returns the banner copy and live stats
func (c *CatalogController) GetHero(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, views.BuildHero())
}

// GetPresignedReadURL generates a presigned URL for a cover or avatar key
func (c *CatalogController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}
	if payload.Key == "" {
		utils.WriteError(w, c.Logger, apperrors.InvalidRequest("key is required"))
		return
	}

	url, err := c.Images.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
