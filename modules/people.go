package modules

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/database"
	"github.com/garethreakes/drama-tracker/database/schemas"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const DefaultIcon = "👤"

// GetPeople returns the full roster sorted by name. The roster backs the
// pending-voter computation and the leaderboard, so it is cached briefly and
// invalidated on every people mutation.
func GetPeople() ([]schemas.Person, error) {
	if cached, found := common.Cache.Get(common.PeopleCacheKey); found {
		return cached.([]schemas.Person), nil
	}

	people := []schemas.Person{}
	err := database.DB.NewSelect().Model(&people).Order("name ASC").Scan(context.Background())
	if err != nil {
		return nil, err
	}

	common.Cache.Set(common.PeopleCacheKey, people, cache.DefaultExpiration)
	return people, nil
}

func GetPerson(id string) (schemas.Person, error) {
	person := schemas.Person{}

	err := database.DB.NewSelect().Model(&person).
		Relation("Dramas", sortDramasNewestFirst).
		Where("p.id = ?", id).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return schemas.Person{}, common.NotFound("Person not found")
	}
	if err != nil {
		return schemas.Person{}, err
	}
	return person, nil
}

func CreatePerson(name string, icon string) (schemas.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return schemas.Person{}, common.InvalidInput("Name cannot be empty")
	}

	if err := checkDuplicateName(name, ""); err != nil {
		return schemas.Person{}, err
	}

	if icon == "" {
		icon = DefaultIcon
	}

	person := schemas.Person{
		ID:   uuid.NewString(),
		Name: name,
		Icon: icon,
	}

	if _, err := database.DB.NewInsert().Model(&person).Exec(context.Background()); err != nil {
		return schemas.Person{}, err
	}

	invalidatePeopleCaches()
	return person, nil
}

func UpdatePerson(id string, name string, icon string) (schemas.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return schemas.Person{}, common.InvalidInput("Name cannot be empty")
	}

	existing := schemas.Person{}
	err := database.DB.NewSelect().Model(&existing).Where("id = ?", id).Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return schemas.Person{}, common.NotFound("Person not found")
	}
	if err != nil {
		return schemas.Person{}, err
	}

	if err := checkDuplicateName(name, id); err != nil {
		return schemas.Person{}, err
	}

	if icon == "" {
		icon = existing.Icon
	}

	existing.Name = name
	existing.Icon = icon

	_, err = database.DB.NewUpdate().Model(&existing).
		Column("name", "icon").
		Where("id = ?", id).
		Exec(context.Background())
	if err != nil {
		return schemas.Person{}, err
	}

	invalidatePeopleCaches()
	return existing, nil
}

// DeletePerson removes a person from the roster. People who participate in
// any drama cannot be deleted, matching how dramas keep their history intact.
func DeletePerson(id string) error {
	exists, err := database.DB.NewSelect().Model((*schemas.Person)(nil)).
		Where("id = ?", id).
		Exists(context.Background())
	if err != nil {
		return err
	}
	if !exists {
		return common.NotFound("Person not found")
	}

	involved, err := database.DB.NewSelect().Model((*schemas.DramaParticipant)(nil)).
		Where("person_id = ?", id).
		Count(context.Background())
	if err != nil {
		return err
	}
	if involved > 0 {
		return common.InvalidInput("Cannot delete person who is involved in dramas")
	}

	if _, err := database.DB.NewDelete().Model((*schemas.Session)(nil)).Where("person_id = ?", id).Exec(context.Background()); err != nil {
		return err
	}
	if _, err := database.DB.NewDelete().Model((*schemas.Person)(nil)).Where("id = ?", id).Exec(context.Background()); err != nil {
		return err
	}

	invalidatePeopleCaches()
	return nil
}

func GetPersonCount() (int, error) {
	return database.DB.NewSelect().Model((*schemas.Person)(nil)).Count(context.Background())
}

// names are unique case-insensitively; excludeID skips the person being
// renamed
func checkDuplicateName(name string, excludeID string) error {
	people := []schemas.Person{}
	err := database.DB.NewSelect().Model(&people).Scan(context.Background())
	if err != nil {
		return err
	}

	for _, person := range people {
		if person.ID != excludeID && strings.EqualFold(person.Name, name) {
			return common.Conflict("A person with this name already exists")
		}
	}
	return nil
}

func invalidatePeopleCaches() {
	common.Cache.Delete(common.PeopleCacheKey)
	common.Cache.Delete(common.StatisticsCacheKey)
}
