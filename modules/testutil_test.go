package modules

import (
	"testing"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/database/schemas"
)

// setupTest gives every test a fresh in-memory store and cache.
func setupTest(t *testing.T) {
	t.Helper()

	common.InitCache()
	if err := database.InitTestDB(); err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
}

func addPerson(t *testing.T, name string) schemas.Person {
	t.Helper()

	person, err := CreatePerson(name, "")
	if err != nil {
		t.Fatalf("failed to create person %q: %v", name, err)
	}
	return person
}

func addDrama(t *testing.T, creator *schemas.Person, title string, participantIDs ...string) schemas.Drama {
	t.Helper()

	drama, err := CreateDrama(creator, DramaRequestData{
		Title:          title,
		Details:        "some details",
		ParticipantIDs: participantIDs,
	})
	if err != nil {
		t.Fatalf("failed to create drama %q: %v", title, err)
	}
	return drama
}

func participants(people ...schemas.Person) []*schemas.Person {
	result := make([]*schemas.Person, len(people))
	for i := range people {
		result[i] = &people[i]
	}
	return result
}

func dramaAt(created time.Time, people ...schemas.Person) schemas.Drama {
	return schemas.Drama{
		Title:        "drama",
		CreatedAt:    created,
		Participants: participants(people...),
	}
}
