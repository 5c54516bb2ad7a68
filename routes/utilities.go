package routes

import (
	"log/slog"
	"net/http"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database/schemas"
	"github.com/garethreakes/drama-tracker/modules"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Authorize resolves the session cookie to a person.
func Authorize(r *http.Request) (*schemas.Person, error) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, common.Unauthenticated("Not authenticated")
	}

	person, err := modules.GetSessionPerson(cookie.Value)
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Error writes a structured error response, mapping the taxonomy kind to an
// HTTP status. Unclassified errors become opaque 500s.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := common.AsApiError(err)
	if !ok {
		slog.Error("internal error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		common.SendStructResponse(w, Response{Message: "An Error occurred"})
		return
	}

	switch apiErr.Kind {
	case common.ErrKindInvalidInput:
		w.WriteHeader(http.StatusBadRequest)
	case common.ErrKindNotFound:
		w.WriteHeader(http.StatusNotFound)
	case common.ErrKindUnauthenticated:
		w.WriteHeader(http.StatusUnauthorized)
	case common.ErrKindForbidden:
		w.WriteHeader(http.StatusForbidden)
	case common.ErrKindConflict:
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	common.SendStructResponse(w, Response{Message: apiErr.Message, Error: apiErr.Kind})
}
