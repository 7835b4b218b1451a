package handlers

import (
	"net/http"

	"github.com/oac-maputo/supertaca/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	referenceService services.ReferenceService
}

func NewDashboardHandler(ds services.DashboardService, rs services.ReferenceService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds, referenceService: rs}
}

// Overview godoc
// @Summary      Tournament overview counters
// @Tags         overview
// @Produce      json
// @Success      200 {object} models.Overview
// @Failure      500 {object} map[string]string
// @Router       /overview [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"overview": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reference godoc
// @Summary      Teams and non-staff players
// @Description  Always answers 200. A collection that failed to load is returned empty.
// @Tags         overview
// @Produce      json
// @Success      200 {object} services.ReferenceData
// @Router       /reference [get]
func (h *DashboardHandler) Reference(w http.ResponseWriter, r *http.Request) {
	data := h.referenceService.Load(r.Context())
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
