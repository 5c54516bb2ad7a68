package modules

import (
	"testing"
	"time"

	"github.com/garethreakes/drama-tracker/database/schemas"
)

func person(id, name string) schemas.Person {
	return schemas.Person{ID: id, Name: name, Icon: "👤"}
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGroupByWeek_Empty(t *testing.T) {
	result := GroupByWeek(nil)
	if len(result) != 0 {
		t.Errorf("expected no buckets, got %d", len(result))
	}
}

func TestGroupByWeek_MondayAlignedBuckets(t *testing.T) {
	alice := person("1", "Alice")
	bob := person("2", "Bob")

	dramas := []schemas.Drama{
		dramaAt(date("2025-10-20"), alice, bob), // Monday
		dramaAt(date("2025-10-22"), alice, bob), // Wednesday, same week
		dramaAt(date("2025-10-27"), alice, bob), // next Monday
	}

	result := GroupByWeek(dramas)

	if len(result) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(result))
	}
	if result[0].WeekStart != "2025-10-20" || result[0].Count != 2 {
		t.Errorf("first bucket = {%s %d}, want {2025-10-20 2}", result[0].WeekStart, result[0].Count)
	}
	if result[1].WeekStart != "2025-10-27" || result[1].Count != 1 {
		t.Errorf("second bucket = {%s %d}, want {2025-10-27 1}", result[1].WeekStart, result[1].Count)
	}
}

func TestGroupByWeek_SundayBelongsToPrecedingMonday(t *testing.T) {
	dramas := []schemas.Drama{
		dramaAt(date("2025-10-26")), // Sunday
	}

	result := GroupByWeek(dramas)

	if len(result) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(result))
	}
	if result[0].WeekStart != "2025-10-20" {
		t.Errorf("weekStart = %s, want 2025-10-20", result[0].WeekStart)
	}
}

func TestCalculatePersonInvolvement(t *testing.T) {
	alice := person("1", "Alice")
	bob := person("2", "Bob")
	charlie := person("3", "Charlie")

	dramas := []schemas.Drama{
		dramaAt(date("2025-01-10"), alice, bob),
		dramaAt(date("2025-01-11"), alice, charlie),
		dramaAt(date("2025-02-01"), alice, bob),
	}

	result := CalculatePersonInvolvement(dramas)

	if len(result) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result))
	}
	if result[0].Name != "Alice" || result[0].Count != 3 {
		t.Errorf("top entry = {%s %d}, want {Alice 3}", result[0].Name, result[0].Count)
	}
	// Bob and Charlie tie on 1; name breaks the tie
	if result[1].Name != "Bob" || result[2].Name != "Charlie" {
		t.Errorf("tie order = %s, %s; want Bob, Charlie", result[1].Name, result[2].Name)
	}
}

func TestCalculatePersonInvolvement_OmitsUninvolved(t *testing.T) {
	result := CalculatePersonInvolvement([]schemas.Drama{})
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d entries", len(result))
	}
}

func TestCalculateMonthlyQueens(t *testing.T) {
	x := person("1", "Xenia")
	y := person("2", "Yara")
	now := date("2025-03-15")

	dramas := []schemas.Drama{
		dramaAt(date("2025-02-03"), x, y),
		dramaAt(date("2025-02-10"), x, y),
		dramaAt(date("2025-02-20"), x, person("3", "Zoe")),
		dramaAt(date("2025-03-01"), y, x),
	}

	result := CalculateMonthlyQueens(dramas, now)

	if len(result) != 2 {
		t.Fatalf("expected 2 months, got %d", len(result))
	}

	// newest first
	if result[0].Month != "2025-03" {
		t.Errorf("first month = %s, want 2025-03", result[0].Month)
	}
	if !result[0].IsCurrentMonth {
		t.Error("2025-03 should be flagged as the current month")
	}
	if result[1].IsCurrentMonth {
		t.Error("2025-02 should not be flagged as the current month")
	}

	february := result[1]
	if february.Name != "Xenia" || february.Count != 3 {
		t.Errorf("february winner = {%s %d}, want {Xenia 3}", february.Name, february.Count)
	}
	if february.MonthLabel != "February 2025" {
		t.Errorf("monthLabel = %s, want February 2025", february.MonthLabel)
	}
}

func TestCalculateMonthlyQueens_TieGoesToFirstName(t *testing.T) {
	a := person("1", "Amy")
	b := person("2", "Beth")
	now := date("2025-06-01")

	dramas := []schemas.Drama{
		dramaAt(date("2025-05-01"), a, b),
	}

	result := CalculateMonthlyQueens(dramas, now)

	if len(result) != 1 {
		t.Fatalf("expected 1 month, got %d", len(result))
	}
	if result[0].Name != "Amy" {
		t.Errorf("tie winner = %s, want Amy", result[0].Name)
	}
}

func TestCurrentMonthLeaderboard_CompetitionRanking(t *testing.T) {
	now := date("2025-03-15")

	people := []schemas.Person{
		person("1", "Amy"), person("2", "Beth"), person("3", "Cleo"),
		person("4", "Dora"), person("5", "Elle"), person("6", "Fay"),
	}

	// counts by person: Amy 5, Beth 5, Cleo 3, Dora 3, Elle 3, Fay 1
	var dramas []schemas.Drama
	addN := func(p schemas.Person, n int) {
		for i := 0; i < n; i++ {
			dramas = append(dramas, dramaAt(date("2025-03-10"), p))
		}
	}
	addN(people[0], 5)
	addN(people[1], 5)
	addN(people[2], 3)
	addN(people[3], 3)
	addN(people[4], 3)
	addN(people[5], 1)

	result := CalculateCurrentMonthLeaderboard(dramas, people, now)

	wantRanks := []int{1, 1, 3, 3, 3, 6}
	if len(result) != len(wantRanks) {
		t.Fatalf("expected %d entries, got %d", len(wantRanks), len(result))
	}
	for i, want := range wantRanks {
		if result[i].Rank != want {
			t.Errorf("entry %d (%s): rank = %d, want %d", i, result[i].Name, result[i].Rank, want)
		}
	}
}

func TestCurrentMonthLeaderboard_RosterComplete(t *testing.T) {
	now := date("2025-03-15")

	a := person("1", "Amy")
	b := person("2", "Beth")
	c := person("3", "Cleo")
	d := person("4", "Dora")
	roster := []schemas.Person{a, b, c, d}

	// Amy 5, Beth 5, Cleo 3, Dora 1 — via one drama per involvement
	var dramas []schemas.Drama
	for i := 0; i < 5; i++ {
		dramas = append(dramas, dramaAt(date("2025-03-01"), a, b))
	}
	for i := 0; i < 3; i++ {
		dramas = append(dramas, dramaAt(date("2025-03-02"), c))
	}
	dramas = append(dramas, dramaAt(date("2025-03-03"), d))
	// out-of-month drama must not count
	dramas = append(dramas, dramaAt(date("2025-02-01"), d))

	result := CalculateCurrentMonthLeaderboard(dramas, roster, now)

	if len(result) != len(roster) {
		t.Fatalf("leaderboard length = %d, want roster length %d", len(result), len(roster))
	}
	wantRanks := map[string]int{"Amy": 1, "Beth": 1, "Cleo": 3, "Dora": 4}
	for _, entry := range result {
		if entry.Rank != wantRanks[entry.Name] {
			t.Errorf("%s: rank = %d, want %d", entry.Name, entry.Rank, wantRanks[entry.Name])
		}
	}
}

func TestCurrentMonthLeaderboard_ZeroCountsIncluded(t *testing.T) {
	now := date("2025-03-15")
	a := person("1", "Amy")
	b := person("2", "Beth")

	dramas := []schemas.Drama{dramaAt(date("2025-03-01"), a)}

	result := CalculateCurrentMonthLeaderboard(dramas, []schemas.Person{a, b}, now)

	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}
	if result[1].Name != "Beth" || result[1].Count != 0 || result[1].Rank != 2 {
		t.Errorf("zero-count entry = {%s count=%d rank=%d}, want {Beth 0 2}", result[1].Name, result[1].Count, result[1].Rank)
	}
}

func TestCalculateStatistics(t *testing.T) {
	a := person("1", "Amy")
	b := person("2", "Beth")
	now := date("2025-03-15")

	dramas := []schemas.Drama{
		dramaAt(date("2025-03-03"), a, b),
		dramaAt(date("2025-03-05"), a, b),
	}

	stats := CalculateStatistics(dramas, []schemas.Person{a, b}, now)

	if stats.TotalDramas != 2 {
		t.Errorf("totalDramas = %d, want 2", stats.TotalDramas)
	}
	if len(stats.PerPerson) != 2 {
		t.Errorf("perPerson length = %d, want 2", len(stats.PerPerson))
	}
	if len(stats.PerWeek) != 1 {
		t.Errorf("perWeek length = %d, want 1", len(stats.PerWeek))
	}
	if len(stats.MonthlyQueens) != 1 {
		t.Errorf("monthlyQueens length = %d, want 1", len(stats.MonthlyQueens))
	}
	if len(stats.CurrentMonthLeaderboard) != 2 {
		t.Errorf("leaderboard length = %d, want 2", len(stats.CurrentMonthLeaderboard))
	}
}

func TestCalculateStatistics_NoRoster(t *testing.T) {
	stats := CalculateStatistics(nil, nil, date("2025-03-15"))

	if stats.CurrentMonthLeaderboard == nil {
		t.Error("leaderboard should be an empty slice, not nil")
	}
	if len(stats.CurrentMonthLeaderboard) != 0 {
		t.Errorf("leaderboard length = %d, want 0", len(stats.CurrentMonthLeaderboard))
	}
}
