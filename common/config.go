package common

import (
	"encoding/json"
	"fmt"
	"os"

	goaway "github.com/TwiN/go-away"
)

const SessionCookieName = "drama_tracker_session"

type ConfigStr struct {
	DB              *ConfigDB `json:"db"`
	Origin          string    `json:"origin"`
	Port            string    `json:"port"`
	AdminToken      string    `json:"admin_token"`
	SessionDays     int       `json:"session_days"`
	Debug           bool      `json:"debug"`
	ProfaneWordList []string  `json:"profane_word_list"`
	BanWordList     []string  `json:"ban_word_list"`
}

type ConfigDB struct {
	IP       string `json:"ip"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"db"`
}

var Config *ConfigStr

var ProfanityDetector *goaway.ProfanityDetector
var BanWordDetector *goaway.ProfanityDetector

func LoadConfig() {
	Config = &ConfigStr{
		DB:          &ConfigDB{IP: "localhost:5432", User: "dramatracker", Name: "dramatracker"},
		Port:        "8080",
		SessionDays: 30,
	}

	f, err := os.Open("config.json")
	if err == nil {
		_ = json.NewDecoder(f).Decode(Config)
		f.Close()
	}

	if len(Config.ProfaneWordList) != 0 {
		ProfanityDetector = goaway.NewProfanityDetector().WithCustomDictionary(Config.ProfaneWordList, nil, nil)
	} else {
		ProfanityDetector = goaway.NewProfanityDetector()
	}
	BanWordDetector = goaway.NewProfanityDetector().WithCustomDictionary(Config.BanWordList, nil, nil)
}

func SaveConfig() {
	data, err := json.MarshalIndent(*Config, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}

	err = os.WriteFile("config.json", data, 0644)
	if err != nil {
		fmt.Println(err)
	}
}

func init() {
	LoadConfig()
}
