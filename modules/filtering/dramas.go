package filtering

import (
	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database/schemas"
)

// DramaFilter rejects drama text before it is written. Admins skip the URL
// rule; the word-list rules apply to everyone.
type DramaFilter func(caller *schemas.Person, title string, details string) error

// VoteFilter rejects vote comments before the vote upsert.
type VoteFilter func(caller *schemas.Person, comment string) error

var Dramas []DramaFilter
var Votes []VoteFilter

func init() {
	Dramas = []DramaFilter{
		func(caller *schemas.Person, title string, details string) (err error) {
			if len(title) > 200 {
				err = common.InvalidInput("Title too long")
			}
			return
		},

		func(caller *schemas.Person, title string, details string) (err error) {
			if len(details) > 2000 {
				err = common.InvalidInput("Details too long")
			}
			return
		},

		func(caller *schemas.Person, title string, details string) (err error) {
			if common.BanWordDetector.IsProfane(title) || common.BanWordDetector.IsProfane(details) {
				err = common.InvalidInput("Drama contains blocked words")
			}
			return
		},

		func(caller *schemas.Person, title string, details string) (err error) {
			if !caller.IsAdmin && common.ContainsURL(title) {
				err = common.InvalidInput("Titles cannot contain URLs")
			}
			return
		},
	}

	Votes = []VoteFilter{
		func(caller *schemas.Person, comment string) (err error) {
			if len(comment) > 1000 {
				err = common.InvalidInput("Comment too long")
			}
			return
		},

		func(caller *schemas.Person, comment string) (err error) {
			if comment != "" && common.ProfanityDetector.IsProfane(comment) {
				err = common.InvalidInput("Your comment contains profanity")
			}
			return
		},

		func(caller *schemas.Person, comment string) (err error) {
			if !caller.IsAdmin && common.ContainsURL(comment) {
				err = common.InvalidInput("Comments cannot contain URLs")
			}
			return
		},
	}
}
