package handlers

import (
	"net/http"

	"github.com/oac-maputo/supertaca/services"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
}

func NewFixtureHandler(fs services.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fs}
}

// GroupFixtures godoc
// @Summary      Round-robin schedule per group with recorded results
// @Tags         fixtures
// @Produce      json
// @Success      200 {object} services.FixtureList
// @Router       /fixtures [get]
func (h *FixtureHandler) GroupFixtures(w http.ResponseWriter, r *http.Request) {
	list, err := h.fixtureService.GroupFixtures(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, list, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// KnockoutProjection godoc
// @Summary      Knockout bracket seeded from the current standings
// @Tags         fixtures
// @Produce      json
// @Success      200 {object} services.KnockoutProjection
// @Router       /knockout [get]
func (h *FixtureHandler) KnockoutProjection(w http.ResponseWriter, r *http.Request) {
	proj, err := h.fixtureService.KnockoutProjection(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, proj, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
