package common

import (
	"encoding/json"
	"net/http"
	"regexp"
)

var urlPattern = regexp.MustCompile(`(?i)\bhttps?://|\bwww\.\S+\.\S+`)

func ContainsURL(text string) bool {
	return urlPattern.MatchString(text)
}

func SendStructResponse(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
