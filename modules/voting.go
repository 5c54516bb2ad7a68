package modules

import (
	"context"
	"math"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/database/schemas"
	"github.com/garethreakes/drama-tracker/modules/filtering"

	"github.com/google/uuid"
)

type VoteRequestData struct {
	Severity int    `json:"severity"`
	Comment  string `json:"comment"`
}

type VoteResult struct {
	Vote schemas.DramaSeverityVote `json:"vote"`
	// rounded mean of all votes, also written back as the drama's severity
	AverageSeverity int `json:"averageSeverity"`
	TotalVotes      int `json:"totalVotes"`
}

type VoterInfo struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type DistributionEntry struct {
	Severity   int         `json:"severity"`
	Count      int         `json:"count"`
	Percentage int         `json:"percentage"`
	Voters     []VoterInfo `json:"voters"`
}

type VotingState struct {
	Votes []schemas.DramaSeverityVote `json:"votes"`
	// unrounded display average, 0 when nobody has voted
	AverageSeverity float64                    `json:"averageSeverity"`
	TotalVotes      int                        `json:"totalVotes"`
	TotalPeople     int                        `json:"totalPeople"`
	PendingVoters   []schemas.Person           `json:"pendingVoters"`
	Distribution    []DistributionEntry        `json:"distribution"`
	CurrentUserVote *schemas.DramaSeverityVote `json:"currentUserVote"`
}

// SubmitVote records the caller's severity judgment for a drama. A person has
// at most one vote per drama: resubmitting replaces severity and comment via
// a conflict-resolving upsert keyed on (drama_id, person_id), so concurrent
// double-submission cannot create a duplicate row. After the write the
// drama's canonical severity is re-derived from the full vote set.
func SubmitVote(caller *schemas.Person, dramaID string, data VoteRequestData) (VoteResult, error) {
	if data.Severity < 1 || data.Severity > 5 {
		return VoteResult{}, common.InvalidInput("Severity must be a number between 1 and 5")
	}

	exists, err := database.DB.NewSelect().Model((*schemas.Drama)(nil)).
		Where("id = ?", dramaID).
		Exists(context.Background())
	if err != nil {
		return VoteResult{}, err
	}
	if !exists {
		return VoteResult{}, common.NotFound("Drama not found")
	}

	for _, filterFunction := range filtering.Votes {
		if err := filterFunction(caller, data.Comment); err != nil {
			return VoteResult{}, err
		}
	}

	vote := &schemas.DramaSeverityVote{
		ID:        uuid.NewString(),
		DramaID:   dramaID,
		PersonID:  caller.ID,
		Severity:  data.Severity,
		Comment:   data.Comment,
		CreatedAt: time.Now(),
	}

	// the update arm leaves id and created_at untouched
	_, err = database.DB.NewInsert().Model(vote).
		On("CONFLICT (drama_id, person_id) DO UPDATE").
		Set("severity = EXCLUDED.severity").
		Set("comment = EXCLUDED.comment").
		Exec(context.Background())
	if err != nil {
		return VoteResult{}, err
	}

	stored := schemas.DramaSeverityVote{}
	err = database.DB.NewSelect().Model(&stored).
		Relation("Person").
		Where("v.drama_id = ? AND v.person_id = ?", dramaID, caller.ID).
		Scan(context.Background())
	if err != nil {
		return VoteResult{}, err
	}

	average, total, err := recomputeSeverity(dramaID)
	if err != nil {
		return VoteResult{}, err
	}

	common.Cache.Delete(common.StatisticsCacheKey)

	return VoteResult{Vote: stored, AverageSeverity: average, TotalVotes: total}, nil
}

// recomputeSeverity re-derives the rounded average from every vote currently
// attached to the drama and writes it back. No incremental counters: the full
// recompute is bounded by the friend-group size and self-heals after any
// missed update.
func recomputeSeverity(dramaID string) (int, int, error) {
	votes := []schemas.DramaSeverityVote{}
	err := database.DB.NewSelect().Model(&votes).
		Where("drama_id = ?", dramaID).
		Scan(context.Background())
	if err != nil {
		return 0, 0, err
	}
	if len(votes) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, vote := range votes {
		sum += vote.Severity
	}
	// ties round half away from zero
	average := int(math.Round(float64(sum) / float64(len(votes))))

	_, err = database.DB.NewUpdate().Model((*schemas.Drama)(nil)).
		Set("severity = ?", average).
		Where("id = ?", dramaID).
		Exec(context.Background())
	if err != nil {
		return 0, 0, err
	}

	return average, len(votes), nil
}

// GetVotingState composes the full voting picture for a drama. Pending voters
// are computed against the entire roster rather than the drama's participant
// list, so the UI can show every friend who has not weighed in yet.
func GetVotingState(dramaID string, callerID string) (VotingState, error) {
	exists, err := database.DB.NewSelect().Model((*schemas.Drama)(nil)).
		Where("id = ?", dramaID).
		Exists(context.Background())
	if err != nil {
		return VotingState{}, err
	}
	if !exists {
		return VotingState{}, common.NotFound("Drama not found")
	}

	votes := []schemas.DramaSeverityVote{}
	err = database.DB.NewSelect().Model(&votes).
		Relation("Person").
		Where("v.drama_id = ?", dramaID).
		Order("v.created_at DESC").
		Scan(context.Background())
	if err != nil {
		return VotingState{}, err
	}

	people, err := GetPeople()
	if err != nil {
		return VotingState{}, err
	}

	state := VotingState{
		Votes:       votes,
		TotalVotes:  len(votes),
		TotalPeople: len(people),
	}

	sum := 0
	voted := make(map[string]bool, len(votes))
	for _, vote := range votes {
		sum += vote.Severity
		voted[vote.PersonID] = true
	}
	if len(votes) > 0 {
		state.AverageSeverity = float64(sum) / float64(len(votes))
	}

	state.PendingVoters = []schemas.Person{}
	for _, person := range people {
		if !voted[person.ID] {
			state.PendingVoters = append(state.PendingVoters, person)
		}
	}

	// all five levels are always present, zero-vote levels included
	state.Distribution = make([]DistributionEntry, 0, 5)
	for severity := 1; severity <= 5; severity++ {
		entry := DistributionEntry{Severity: severity, Voters: []VoterInfo{}}
		for _, vote := range votes {
			if vote.Severity != severity {
				continue
			}
			entry.Count++
			if vote.Person != nil {
				entry.Voters = append(entry.Voters, VoterInfo{Name: vote.Person.Name, Icon: vote.Person.Icon})
			}
		}
		if len(votes) > 0 {
			entry.Percentage = int(math.Round(float64(entry.Count) / float64(len(votes)) * 100))
		}
		state.Distribution = append(state.Distribution, entry)
	}

	if callerID != "" {
		for i := range votes {
			if votes[i].PersonID == callerID {
				state.CurrentUserVote = &votes[i]
				break
			}
		}
	}

	return state, nil
}
