package routes

import (
	"encoding/json"
	"net/http"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/modules"

	"github.com/go-chi/chi/v5"
)

type PersonRequestData struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type PasswordRequestData struct {
	Password string `json:"password"`
}

func GetPeople(w http.ResponseWriter, r *http.Request) {
	people, err := modules.GetPeople()
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, people)
}

func GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := modules.GetPerson(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, person)
}

func AddPerson(w http.ResponseWriter, r *http.Request) {
	// the admin token covers first-run roster creation, before any person
	// exists who could log in
	if _, err := Authorize(r); err != nil {
		token := r.Header.Get("Authorization")
		if common.Config.AdminToken == "" || token != common.Config.AdminToken {
			Error(w, err)
			return
		}
	}

	var data PersonRequestData
	json.NewDecoder(r.Body).Decode(&data)

	person, err := modules.CreatePerson(data.Name, data.Icon)
	if err != nil {
		Error(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	common.SendStructResponse(w, person)
}

func UpdatePerson(w http.ResponseWriter, r *http.Request) {
	if _, err := Authorize(r); err != nil {
		Error(w, err)
		return
	}

	var data PersonRequestData
	json.NewDecoder(r.Body).Decode(&data)

	person, err := modules.UpdatePerson(chi.URLParam(r, "id"), data.Name, data.Icon)
	if err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, person)
}

func DeletePerson(w http.ResponseWriter, r *http.Request) {
	if _, err := Authorize(r); err != nil {
		Error(w, err)
		return
	}

	if err := modules.DeletePerson(chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, Response{Success: true, Message: "Deleted person"})
}

func ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, err := Authorize(r)
	if err != nil {
		Error(w, err)
		return
	}

	var data PasswordRequestData
	json.NewDecoder(r.Body).Decode(&data)

	if err := modules.ChangePassword(caller, chi.URLParam(r, "id"), data.Password); err != nil {
		Error(w, err)
		return
	}
	common.SendStructResponse(w, Response{Success: true, Message: "Password updated"})
}
