package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"heartwave_server/apperrors"
	"heartwave_server/models"
)

// CatalogService holds the read-only profile catalog every deck starts from.
type CatalogService struct {
	profiles []models.Profile
	byID     map[string]int
}

// NewCatalogService validates profiles and takes its own copy of them.
func NewCatalogService(profiles []models.Profile) (*CatalogService, error) {
	cs := &CatalogService{
		profiles: make([]models.Profile, 0, len(profiles)),
		byID:     make(map[string]int, len(profiles)),
	}
	for i, p := range profiles {
		if p.ID == "" {
			return nil, apperrors.New(apperrors.CodeCatalogInvalid, http.StatusInternalServerError,
				fmt.Sprintf("profile at index %d has no id", i))
		}
		if _, dup := cs.byID[p.ID]; dup {
			return nil, apperrors.New(apperrors.CodeCatalogInvalid, http.StatusInternalServerError,
				fmt.Sprintf("duplicate profile id %q", p.ID))
		}
		p.Interests = append([]string(nil), p.Interests...)
		cs.byID[p.ID] = len(cs.profiles)
		cs.profiles = append(cs.profiles, p)
	}
	return cs, nil
}

// DecodeProfiles parses a JSON array of profiles, rejecting unknown fields.
func DecodeProfiles(raw []byte) ([]models.Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var profiles []models.Profile
	if err := dec.Decode(&profiles); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCatalogInvalid, http.StatusInternalServerError,
			"failed to decode profile catalog")
	}
	return profiles, nil
}

// Profiles returns a copy of the catalog in deck order.
func (cs *CatalogService) Profiles() []models.Profile {
	out := make([]models.Profile, len(cs.profiles))
	copy(out, cs.profiles)
	return out
}

// Get looks a profile up by id.
func (cs *CatalogService) Get(id string) (models.Profile, error) {
	i, ok := cs.byID[id]
	if !ok {
		return models.Profile{}, apperrors.ProfileNotFound(id)
	}
	return cs.profiles[i], nil
}

func (cs *CatalogService) Len() int {
	return len(cs.profiles)
}
