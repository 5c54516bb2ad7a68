package modules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/database/schemas"

	"github.com/mileusna/useragent"
)

// HashPassword hashes the given password the same way session tokens are
// hashed at rest.
func HashPassword(password string) string {
	return CalculateHash("dt-password:" + password)
}

// AuthenticateUser matches the name case-insensitively against the roster and
// verifies the password. The small friend-group roster makes the in-memory
// scan cheap, and it sidesteps per-dialect ILIKE quirks.
func AuthenticateUser(name string, password string) (schemas.Person, error) {
	people, err := GetPeople()
	if err != nil {
		return schemas.Person{}, err
	}

	for _, person := range people {
		if !strings.EqualFold(person.Name, name) {
			continue
		}
		if person.PasswordHash == "" || person.PasswordHash != HashPassword(password) {
			break
		}
		return person, nil
	}

	return schemas.Person{}, common.Unauthenticated("Invalid name or password")
}

// CreateSession stores a new session for the person and returns the cleartext
// token that goes into the cookie. Only the hash is persisted.
func CreateSession(personID string, userAgentHeader string) (string, error) {
	token := GenerateToken()
	if token == "" {
		return "", errors.New("could not generate session token")
	}

	session := &schemas.Session{
		TokenHash: CalculateHash(token),
		PersonID:  personID,
		Client:    describeClient(userAgentHeader),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().AddDate(0, 0, common.Config.SessionDays),
	}

	if _, err := database.DB.NewInsert().Model(session).Exec(context.Background()); err != nil {
		return "", err
	}
	return token, nil
}

func describeClient(userAgentHeader string) string {
	if userAgentHeader == "" {
		return ""
	}
	ua := useragent.Parse(userAgentHeader)
	if ua.Name == "" {
		return userAgentHeader
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s / %s", ua.Name, ua.Version, ua.OS))
}

// GetSessionPerson resolves a session token to its person. Expired sessions
// are removed on sight.
func GetSessionPerson(token string) (schemas.Person, error) {
	session := schemas.Session{}

	err := database.DB.NewSelect().Model(&session).
		Relation("Person").
		Where("token_hash = ?", CalculateHash(token)).
		Scan(context.Background())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return schemas.Person{}, err
	}
	if err != nil || session.Person == nil {
		return schemas.Person{}, common.Unauthenticated("Not authenticated")
	}

	if session.IsExpired() {
		database.DB.NewDelete().Model((*schemas.Session)(nil)).Where("id = ?", session.ID).Exec(context.Background())
		return schemas.Person{}, common.Unauthenticated("Session expired")
	}

	return *session.Person, nil
}

func DestroySession(token string) error {
	_, err := database.DB.NewDelete().Model((*schemas.Session)(nil)).
		Where("token_hash = ?", CalculateHash(token)).
		Exec(context.Background())
	return err
}

// ChangePassword updates a person's password. A person may change their own;
// admins may change anyone's.
func ChangePassword(caller *schemas.Person, targetID string, password string) error {
	if password == "" {
		return common.InvalidInput("Password is required")
	}
	if len(password) < 4 {
		return common.InvalidInput("Password must be at least 4 characters")
	}

	if _, err := GetPerson(targetID); err != nil {
		return err
	}

	if caller.ID != targetID && !caller.IsAdmin {
		return common.Forbidden("You can only update your own password")
	}

	_, err := database.DB.NewUpdate().Model((*schemas.Person)(nil)).
		Set("password_hash = ?", HashPassword(password)).
		Where("id = ?", targetID).
		Exec(context.Background())
	return err
}
