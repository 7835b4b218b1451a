package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/services"
)

type RegistrationHandler struct {
	drafts       *services.DraftStore
	registration services.RegistrationService
	reference    services.ReferenceService
}

func NewRegistrationHandler(
	drafts *services.DraftStore,
	registration services.RegistrationService,
	reference services.ReferenceService,
) *RegistrationHandler {
	return &RegistrationHandler{
		drafts:       drafts,
		registration: registration,
		reference:    reference,
	}
}

type fieldUpdateInput struct {
	Field string    `json:"field"`
	Value formValue `json:"value" swaggertype:"string"`
}

// formValue is a form input sent either as a JSON string or a JSON number.
// null clears the field.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = formValue(x)
	case json.Number:
		*v = formValue(x.String())
	default:
		return fmt.Errorf("value must be a string or a number, got %s", data)
	}
	return nil
}

type registerMatchInput struct {
	Match models.MatchDraft  `json:"match"`
	Goals []models.GoalDraft `json:"goals"`
}

// CreateDraft godoc
// @Summary      Start a match draft
// @Tags         drafts
// @Produce      json
// @Success      201 {object} services.DraftView
// @Security     BearerAuth
// @Router       /drafts [post]
func (h *RegistrationHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	draft := h.drafts.Create()
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDraft godoc
// @Summary      Get a match draft
// @Tags         drafts
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Success      200 {object} services.DraftView
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID} [get]
func (h *RegistrationHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.drafts.Get(chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteDraft godoc
// @Summary      Discard a match draft
// @Tags         drafts
// @Param        draftID path string true "Draft ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID} [delete]
func (h *RegistrationHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Delete(chi.URLParam(r, "draftID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMatchField godoc
// @Summary      Set one field of the draft match
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Param        input body fieldUpdateInput true "Field and value"
// @Success      200 {object} services.DraftView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID}/match [patch]
func (h *RegistrationHandler) UpdateMatchField(w http.ResponseWriter, r *http.Request) {
	var input fieldUpdateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draft, err := h.drafts.SetMatchField(chi.URLParam(r, "draftID"), input.Field, string(input.Value))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddGoalRow godoc
// @Summary      Append a blank goal row
// @Tags         drafts
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Success      200 {object} services.DraftView
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID}/goals [post]
func (h *RegistrationHandler) AddGoalRow(w http.ResponseWriter, r *http.Request) {
	draft, err := h.drafts.AddGoalRow(chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGoalRow godoc
// @Summary      Set one field of a goal row
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Param        index path int true "Goal row index"
// @Param        input body fieldUpdateInput true "Field and value"
// @Success      200 {object} services.DraftView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID}/goals/{index} [patch]
func (h *RegistrationHandler) UpdateGoalRow(w http.ResponseWriter, r *http.Request) {
	index, err := getIndexFromURL(r, "index")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input fieldUpdateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draft, err := h.drafts.UpdateGoal(chi.URLParam(r, "draftID"), index, input.Field, string(input.Value))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListEligiblePlayers godoc
// @Summary      Players of the teams selected in the draft
// @Tags         drafts
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Success      200 {array} models.Player
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID}/players [get]
func (h *RegistrationHandler) ListEligiblePlayers(w http.ResponseWriter, r *http.Request) {
	data := h.reference.Load(r.Context())

	players, err := h.drafts.EligiblePlayers(chi.URLParam(r, "draftID"), data.Players)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitDraft godoc
// @Summary      Register the drafted match and its goals
// @Description  Writes the match, then each goal row with a scorer. The draft is reset on success.
// @Tags         drafts
// @Produce      json
// @Param        draftID path string true "Draft ID"
// @Success      201 {object} services.SubmitResult
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /drafts/{draftID}/submit [post]
func (h *RegistrationHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	draft, result, err := h.drafts.Submit(r.Context(), chi.URLParam(r, "draftID"), h.registration)
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) || errors.Is(err, services.ErrSubmissionInProgress) {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			serverErrorResponse(w, r, err)
			return
		}
		if err := writeJSON(w, status, jsonResponse{"error": draft.Message, "draft": draft}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	response := jsonResponse{
		"draft":  draft,
		"result": result,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterMatch godoc
// @Summary      Register a match in one request
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        input body registerMatchInput true "Match and goal rows"
// @Success      201 {object} services.SubmitResult
// @Failure      400 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /matches [post]
func (h *RegistrationHandler) RegisterMatch(w http.ResponseWriter, r *http.Request) {
	var input registerMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.registration.Submit(r.Context(), input.Match, input.Goals)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
