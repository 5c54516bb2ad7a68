package schemas

import (
	"time"

	"github.com/uptrace/bun"
)

type Drama struct {
	bun.BaseModel `bun:"table:dramas,alias:d"`

	ID         string     `bun:"id,pk" json:"id"`
	Title      string     `bun:"title,notnull" json:"title"`
	Details    string     `bun:"details" json:"details"`
	Severity   int        `bun:"severity,notnull" json:"severity"` // baseline at creation, overwritten by the vote average
	IsFinished bool       `bun:"is_finished" json:"isFinished"`
	FinishedAt *time.Time `bun:"finished_at" json:"finishedAt"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Participants []*Person            `bun:"m2m:drama_participants,join:Drama=Person" json:"participants"`
	Votes        []*DramaSeverityVote `bun:"rel:has-many,join:id=drama_id" json:"votes,omitempty"`
}

type DramaParticipant struct {
	bun.BaseModel `bun:"table:drama_participants"`

	DramaID  string `bun:"drama_id,pk" json:"dramaId"`
	PersonID string `bun:"person_id,pk" json:"personId"`

	Drama  *Drama  `bun:"rel:belongs-to,join:drama_id=id" json:"-"`
	Person *Person `bun:"rel:belongs-to,join:person_id=id" json:"-"`
}

type DramaSeverityVote struct {
	bun.BaseModel `bun:"table:drama_severity_votes,alias:v"`

	ID        string    `bun:"id,pk" json:"id"`
	DramaID   string    `bun:"drama_id,notnull,unique:one_vote_per_person" json:"dramaId"`
	PersonID  string    `bun:"person_id,notnull,unique:one_vote_per_person" json:"personId"`
	Severity  int       `bun:"severity,notnull" json:"severity"`
	Comment   string    `bun:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Person *Person `bun:"rel:belongs-to,join:person_id=id" json:"person,omitempty"`
}
