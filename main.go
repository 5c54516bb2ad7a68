package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/routes"
)

func main() {
	common.InitCache()
	database.InitDB()

	router := routes.NewRouter()

	slog.Info("Listening", "port", common.Config.Port)
	err := http.ListenAndServe(":"+common.Config.Port, router)
	if errors.Is(err, http.ErrServerClosed) {
		slog.Info("server closed")
	} else if err != nil {
		slog.Error("error starting server", "error", err)
		os.Exit(1)
	}
}
