package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oac-maputo/supertaca/services"
)

type jsonResponse map[string]interface{}

// maxRequestBody caps request bodies; draft edits and match submissions are small.
const maxRequestBody = 64 << 10

// readJSON decodes exactly one JSON value into dst, rejecting unknown fields.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return describeDecodeError(err)
	}
	if dec.More() {
		return errors.New("request body holds more than one JSON value")
	}
	return nil
}

func describeDecodeError(err error) error {
	var (
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		tooLarge   *http.MaxBytesError
		invalidDst *json.InvalidUnmarshalError
	)
	switch {
	case errors.As(err, &invalidDst):
		panic(err)
	case errors.Is(err, io.EOF):
		return errors.New("request body is empty")
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("malformed JSON: unexpected end of body")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("field %q has the wrong type, expected %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &typeErr):
		return fmt.Errorf("wrong JSON type at offset %d", typeErr.Offset)
	case errors.As(err, &tooLarge):
		return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return fmt.Errorf("unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
	default:
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Default().Error("failed to write error response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Default().Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSubmissionInProgress):
		return http.StatusConflict
	case services.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidDraftField),
		errors.Is(err, services.ErrGoalRowOutOfRange),
		errors.Is(err, services.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrMatchPersistence),
		errors.Is(err, services.ErrPublishFailed):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrPublishingDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// mapServiceErrorToHTTP turns a service error into an HTTP response.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch status := statusForError(err); status {
	case http.StatusNotFound:
		notFoundResponse(w, r)
	case http.StatusConflict:
		conflictResponse(w, r, err.Error())
	case http.StatusUnprocessableEntity:
		failedValidationResponse(w, r, err)
	case http.StatusBadRequest:
		badRequestResponse(w, r, err)
	case http.StatusBadGateway:
		slog.Default().Error("backend write failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		if errors.Is(err, services.ErrMatchPersistence) {
			errorResponse(w, r, status, services.MessageRegistrationFail)
			return
		}
		errorResponse(w, r, status, "the backend could not complete the request")
	case http.StatusServiceUnavailable:
		errorResponse(w, r, status, err.Error())
	default:
		serverErrorResponse(w, r, err)
	}
}

func getIndexFromURL(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid %s value: %q", paramName, raw)
	}
	return idx, nil
}

func getLimitFromQuery(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: %q", raw)
	}
	return limit, nil
}
