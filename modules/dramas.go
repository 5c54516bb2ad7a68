package modules

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/database/schemas"
	"github.com/garethreakes/drama-tracker/modules/filtering"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const BaselineSeverity = 3

type DramaRequestData struct {
	Title          string   `json:"title"`
	Details        string   `json:"details"`
	Severity       *int     `json:"severity"`
	ParticipantIDs []string `json:"participantIds"`
}

func sortDramasNewestFirst(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("created_at DESC")
}

func sortPeopleByName(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("name ASC")
}

func GetDramas() ([]schemas.Drama, error) {
	dramas := []schemas.Drama{}

	err := database.DB.NewSelect().Model(&dramas).
		Relation("Participants", sortPeopleByName).
		Relation("Votes").
		Relation("Votes.Person").
		Order("d.created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return dramas, nil
}

func GetDrama(id string) (schemas.Drama, error) {
	drama := schemas.Drama{}

	err := database.DB.NewSelect().Model(&drama).
		Relation("Participants", sortPeopleByName).
		Where("d.id = ?", id).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return schemas.Drama{}, common.NotFound("Drama not found")
	}
	if err != nil {
		return schemas.Drama{}, err
	}
	return drama, nil
}

func CreateDrama(creator *schemas.Person, data DramaRequestData) (schemas.Drama, error) {
	severity := BaselineSeverity
	if err := validateDramaData(creator, &data, &severity); err != nil {
		return schemas.Drama{}, err
	}

	drama := schemas.Drama{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(data.Title),
		Details:   strings.TrimSpace(data.Details),
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	if _, err := database.DB.NewInsert().Model(&drama).Exec(context.Background()); err != nil {
		return schemas.Drama{}, err
	}
	if err := insertParticipants(drama.ID, data.ParticipantIDs); err != nil {
		return schemas.Drama{}, err
	}

	common.Cache.Delete(common.StatisticsCacheKey)
	return GetDrama(drama.ID)
}

func UpdateDrama(caller *schemas.Person, id string, data DramaRequestData) (schemas.Drama, error) {
	existing, err := GetDrama(id)
	if err != nil {
		return schemas.Drama{}, err
	}

	severity := existing.Severity
	if err := validateDramaData(caller, &data, &severity); err != nil {
		return schemas.Drama{}, err
	}

	_, err = database.DB.NewUpdate().Model((*schemas.Drama)(nil)).
		Set("title = ?", strings.TrimSpace(data.Title)).
		Set("details = ?", strings.TrimSpace(data.Details)).
		Set("severity = ?", severity).
		Where("id = ?", id).
		Exec(context.Background())
	if err != nil {
		return schemas.Drama{}, err
	}

	// replace the participant set
	if _, err := database.DB.NewDelete().Model((*schemas.DramaParticipant)(nil)).Where("drama_id = ?", id).Exec(context.Background()); err != nil {
		return schemas.Drama{}, err
	}
	if err := insertParticipants(id, data.ParticipantIDs); err != nil {
		return schemas.Drama{}, err
	}

	common.Cache.Delete(common.StatisticsCacheKey)
	return GetDrama(id)
}

func SetDramaFinished(id string, finished bool) (schemas.Drama, error) {
	if _, err := GetDrama(id); err != nil {
		return schemas.Drama{}, err
	}

	var finishedAt *time.Time
	if finished {
		now := time.Now()
		finishedAt = &now
	}

	_, err := database.DB.NewUpdate().Model((*schemas.Drama)(nil)).
		Set("is_finished = ?", finished).
		Set("finished_at = ?", finishedAt).
		Where("id = ?", id).
		Exec(context.Background())
	if err != nil {
		return schemas.Drama{}, err
	}

	return GetDrama(id)
}

// DeleteDrama removes a drama together with its votes and participant links.
func DeleteDrama(id string) error {
	exists, err := database.DB.NewSelect().Model((*schemas.Drama)(nil)).
		Where("id = ?", id).
		Exists(context.Background())
	if err != nil {
		return err
	}
	if !exists {
		return common.NotFound("Drama not found")
	}

	if _, err := database.DB.NewDelete().Model((*schemas.DramaSeverityVote)(nil)).Where("drama_id = ?", id).Exec(context.Background()); err != nil {
		return err
	}
	if _, err := database.DB.NewDelete().Model((*schemas.DramaParticipant)(nil)).Where("drama_id = ?", id).Exec(context.Background()); err != nil {
		return err
	}
	if _, err := database.DB.NewDelete().Model((*schemas.Drama)(nil)).Where("id = ?", id).Exec(context.Background()); err != nil {
		return err
	}

	common.Cache.Delete(common.StatisticsCacheKey)
	return nil
}

func GetDramaCount() (int, error) {
	return database.DB.NewSelect().Model((*schemas.Drama)(nil)).Count(context.Background())
}

func GetVoteCount() (int, error) {
	return database.DB.NewSelect().Model((*schemas.DramaSeverityVote)(nil)).Count(context.Background())
}

func validateDramaData(caller *schemas.Person, data *DramaRequestData, severity *int) error {
	if strings.TrimSpace(data.Title) == "" {
		return common.InvalidInput("Title cannot be empty")
	}

	if data.Severity != nil {
		if *data.Severity < 1 || *data.Severity > 5 {
			return common.InvalidInput("Severity must be a number between 1 and 5")
		}
		*severity = *data.Severity
	}

	if len(data.ParticipantIDs) < 2 {
		return common.InvalidInput("Drama must have at least 2 participants")
	}

	count, err := database.DB.NewSelect().Model((*schemas.Person)(nil)).
		Where("id IN (?)", bun.In(data.ParticipantIDs)).
		Count(context.Background())
	if err != nil {
		return err
	}
	if count != len(data.ParticipantIDs) {
		return common.InvalidInput("One or more participant IDs are invalid")
	}

	for _, filterFunction := range filtering.Dramas {
		if err := filterFunction(caller, data.Title, data.Details); err != nil {
			return err
		}
	}
	return nil
}

func insertParticipants(dramaID string, participantIDs []string) error {
	links := make([]schemas.DramaParticipant, 0, len(participantIDs))
	for _, personID := range participantIDs {
		links = append(links, schemas.DramaParticipant{DramaID: dramaID, PersonID: personID})
	}

	_, err := database.DB.NewInsert().Model(&links).Exec(context.Background())
	return err
}
