package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/modules"
)

type LoginRequestData struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SessionUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	IsAdmin bool   `json:"isAdmin"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var data LoginRequestData
	json.NewDecoder(r.Body).Decode(&data)

	if data.Name == "" || data.Password == "" {
		Error(w, common.InvalidInput("Name and password are required"))
		return
	}

	person, err := modules.AuthenticateUser(data.Name, data.Password)
	if err != nil {
		Error(w, err)
		return
	}

	token, err := modules.CreateSession(person.ID, r.UserAgent())
	if err != nil {
		Error(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   common.Config.SessionDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response := struct {
		Response
		User SessionUser `json:"user"`
	}{}
	response.Success = true
	response.User = SessionUser{ID: person.ID, Name: person.Name, Icon: person.Icon, IsAdmin: person.IsAdmin}
	common.SendStructResponse(w, response)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err == nil && cookie.Value != "" {
		modules.DestroySession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	common.SendStructResponse(w, Response{Success: true, Message: "Logged out"})
}

func Me(w http.ResponseWriter, r *http.Request) {
	person, err := Authorize(r)
	if err != nil {
		Error(w, err)
		return
	}

	common.SendStructResponse(w, SessionUser{ID: person.ID, Name: person.Name, Icon: person.Icon, IsAdmin: person.IsAdmin})
}
