package routes

import (
	"encoding/json"
	"net/http"

	"github.com/garethreakes/drama-tracker/common"

	"golang.org/x/exp/slices"
)

const (
	ProfaneFilter = "profane"
	BanFilter     = "ban"
)

var FilterTypes = []string{ProfaneFilter, BanFilter}

type FilterStruct struct {
	Word string `json:"word"`
	Type string `json:"type"`
}

func GetFilters(w http.ResponseWriter, r *http.Request) {
	response := struct {
		ProfaneWords []string `json:"profaneWords"`
		BanWords     []string `json:"banWords"`
	}{
		ProfaneWords: common.Config.ProfaneWordList,
		BanWords:     common.Config.BanWordList,
	}

	common.SendStructResponse(w, response)
}

func AddFilter(w http.ResponseWriter, r *http.Request) {
	var data FilterStruct
	json.NewDecoder(r.Body).Decode(&data)

	if !slices.Contains(FilterTypes, data.Type) {
		Error(w, common.InvalidInput("Unknown filter type"))
		return
	}

	switch data.Type {
	case ProfaneFilter:
		common.Config.ProfaneWordList = append(common.Config.ProfaneWordList, data.Word)
	case BanFilter:
		common.Config.BanWordList = append(common.Config.BanWordList, data.Word)
	}

	common.SaveConfig()
	common.LoadConfig()
	w.WriteHeader(http.StatusOK)
}

func DeleteFilter(w http.ResponseWriter, r *http.Request) {
	var data FilterStruct
	json.NewDecoder(r.Body).Decode(&data)

	if !slices.Contains(FilterTypes, data.Type) {
		Error(w, common.InvalidInput("Unknown filter type"))
		return
	}

	switch data.Type {
	case ProfaneFilter:
		common.Config.ProfaneWordList = removeWord(common.Config.ProfaneWordList, data.Word)
	case BanFilter:
		common.Config.BanWordList = removeWord(common.Config.BanWordList, data.Word)
	}

	common.SaveConfig()
	common.LoadConfig()
	w.WriteHeader(http.StatusOK)
}

func removeWord(words []string, word string) []string {
	for i, w := range words {
		if w == word {
			return append(words[:i], words[i+1:]...)
		}
	}
	return words
}
