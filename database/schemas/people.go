package schemas

import (
	"time"

	"github.com/uptrace/bun"
)

type Person struct {
	bun.BaseModel `bun:"table:people,alias:p"`

	ID           string    `bun:"id,pk" json:"id"`
	Name         string    `bun:"name,notnull,unique" json:"name"`
	Icon         string    `bun:"icon" json:"icon"`
	PasswordHash string    `bun:"password_hash" json:"-"`
	IsAdmin      bool      `bun:"is_admin" json:"isAdmin"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Dramas []*Drama `bun:"m2m:drama_participants,join:Person=Drama" json:"dramas,omitempty"`
}

type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	TokenHash string    `bun:"token_hash,notnull,unique" json:"-"`
	PersonID  string    `bun:"person_id,notnull" json:"personId"`
	Client    string    `bun:"client" json:"client"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	ExpiresAt time.Time `bun:"expires_at,notnull" json:"expiresAt"`

	Person *Person `bun:"rel:belongs-to,join:person_id=id" json:"-"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
