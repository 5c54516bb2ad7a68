package routes

import (
	"encoding/json"
	"net/http"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/modules"

	"github.com/go-chi/chi/v5"
)

func GetDramas(w http.ResponseWriter, r *http.Request) {
	dramas, err := modules.GetDramas()
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, dramas)
}

func GetDrama(w http.ResponseWriter, r *http.Request) {
	drama, err := modules.GetDrama(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, drama)
}

func AddDrama(w http.ResponseWriter, r *http.Request) {
	caller, err := Authorize(r)
	if err != nil {
		Error(w, err)
		return
	}

	var data modules.DramaRequestData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		Error(w, common.InvalidInput("Invalid request body"))
		return
	}

	drama, err := modules.CreateDrama(caller, data)
	if err != nil {
		Error(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	common.SendStructResponse(w, drama)
}

func UpdateDrama(w http.ResponseWriter, r *http.Request) {
	caller, err := Authorize(r)
	if err != nil {
		Error(w, err)
		return
	}

	var data modules.DramaRequestData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		Error(w, common.InvalidInput("Invalid request body"))
		return
	}

	drama, err := modules.UpdateDrama(caller, chi.URLParam(r, "id"), data)
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, drama)
}

func FinishDrama(w http.ResponseWriter, r *http.Request) {
	if _, err := Authorize(r); err != nil {
		Error(w, err)
		return
	}

	var data struct {
		IsFinished *bool `json:"isFinished"`
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || data.IsFinished == nil {
		Error(w, common.InvalidInput("isFinished must be a boolean"))
		return
	}

	drama, err := modules.SetDramaFinished(chi.URLParam(r, "id"), *data.IsFinished)
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, drama)
}

func DeleteDrama(w http.ResponseWriter, r *http.Request) {
	if _, err := Authorize(r); err != nil {
		Error(w, err)
		return
	}

	if err := modules.DeleteDrama(chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, Response{Success: true, Message: "Deleted drama"})
}
