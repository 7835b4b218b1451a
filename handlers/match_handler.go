package handlers

import "net/http"

// ListMatches godoc
// @Summary      Recorded matches
// @Tags         matches
// @Produce      json
// @Success      200 {array} models.Match
// @Router       /matches [get]
func (h *StatsHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.statsService.Matches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
