package handlers

import (
	"net/http"

	"github.com/oac-maputo/supertaca/services"
)

type StatsHandler struct {
	statsService       services.StatsService
	publicationService services.PublicationService
}

func NewStatsHandler(ss services.StatsService, ps services.PublicationService) *StatsHandler {
	return &StatsHandler{statsService: ss, publicationService: ps}
}

// TopScorers godoc
// @Summary      Top scorers
// @Tags         stats
// @Produce      json
// @Param        limit query int false "Entries to return (1-100)" default(10)
// @Success      200 {object} services.Leaderboard
// @Failure      400 {object} map[string]string
// @Router       /stats/scorers [get]
func (h *StatsHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	limit, err := getLimitFromQuery(r, services.DefaultLeaderboardLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	board, err := h.statsService.TopScorers(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, board, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TopAssists godoc
// @Summary      Top assist providers
// @Tags         stats
// @Produce      json
// @Param        limit query int false "Entries to return (1-100)" default(10)
// @Success      200 {object} services.Leaderboard
// @Failure      400 {object} map[string]string
// @Router       /stats/assists [get]
func (h *StatsHandler) TopAssists(w http.ResponseWriter, r *http.Request) {
	limit, err := getLimitFromQuery(r, services.DefaultLeaderboardLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	board, err := h.statsService.TopAssists(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, board, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Standings godoc
// @Summary      Group standings
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.Standings
// @Router       /standings [get]
func (h *StatsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.statsService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Publish godoc
// @Summary      Publish a standings snapshot to the public bucket
// @Tags         stats
// @Produce      json
// @Success      201 {object} services.PublishResult
// @Failure      502 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Security     BearerAuth
// @Router       /publications [post]
func (h *StatsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	result, err := h.publicationService.Publish(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"publication": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
