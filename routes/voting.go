package routes

import (
	"encoding/json"
	"net/http"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/modules"

	"github.com/go-chi/chi/v5"
)

// SubmitVote handles POST /api/dramas/{id}/vote. The voter identity comes
// from the session, never from the payload.
func SubmitVote(w http.ResponseWriter, r *http.Request) {
	caller, err := Authorize(r)
	if err != nil {
		Error(w, err)
		return
	}

	var data modules.VoteRequestData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		Error(w, common.InvalidInput("Severity must be a number between 1 and 5"))
		return
	}

	result, err := modules.SubmitVote(caller, chi.URLParam(r, "id"), data)
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, result)
}

func GetVotingState(w http.ResponseWriter, r *http.Request) {
	callerID := ""
	if caller, err := Authorize(r); err == nil {
		callerID = caller.ID
	}

	state, err := modules.GetVotingState(chi.URLParam(r, "id"), callerID)
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, state)
}
