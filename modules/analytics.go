package modules

import (
	"sort"
	"time"

	"github.com/garethreakes/drama-tracker/database/schemas"
)

// Analytics are pure functions over already-fetched dramas and roster. They
// mutate nothing and take the clock as an argument, so every aggregate can be
// tested without a store.

type WeeklyCount struct {
	WeekStart string `json:"weekStart"`
	Count     int    `json:"count"`
}

type PersonInvolvement struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Count    int    `json:"count"`
}

type MonthlyQueen struct {
	Month          string `json:"month"`      // "2006-01"
	MonthLabel     string `json:"monthLabel"` // "January 2006"
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Count          int    `json:"count"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
}

type LeaderboardEntry struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Count    int    `json:"count"`
	Rank     int    `json:"rank"`
}

type Statistics struct {
	TotalDramas             int                 `json:"totalDramas"`
	PerPerson               []PersonInvolvement `json:"perPerson"`
	PerWeek                 []WeeklyCount       `json:"perWeek"`
	MonthlyQueens           []MonthlyQueen      `json:"monthlyQueens"`
	CurrentMonthLeaderboard []LeaderboardEntry  `json:"currentMonthLeaderboard"`
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	year, month, day := t.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// GroupByWeek buckets dramas into Monday-aligned weeks by creation time.
// Weeks with no dramas are omitted; buckets come back sorted ascending.
func GroupByWeek(dramas []schemas.Drama) []WeeklyCount {
	weekCounts := map[string]int{}
	for _, drama := range dramas {
		weekKey := startOfWeek(drama.CreatedAt).Format("2006-01-02")
		weekCounts[weekKey]++
	}

	result := make([]WeeklyCount, 0, len(weekCounts))
	for weekStart, count := range weekCounts {
		result = append(result, WeeklyCount{WeekStart: weekStart, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart < result[j].WeekStart
	})
	return result
}

// CalculatePersonInvolvement counts how many dramas each person participated
// in, over the full history. People with zero involvement are absent. Sorted
// by count descending with name as the tie-break so equal counts come back in
// a stable order.
func CalculatePersonInvolvement(dramas []schemas.Drama) []PersonInvolvement {
	involvement := map[string]*PersonInvolvement{}
	for _, drama := range dramas {
		for _, person := range drama.Participants {
			entry, ok := involvement[person.ID]
			if !ok {
				entry = &PersonInvolvement{PersonID: person.ID, Name: person.Name, Icon: person.Icon}
				involvement[person.ID] = entry
			}
			entry.Count++
		}
	}

	result := make([]PersonInvolvement, 0, len(involvement))
	for _, entry := range involvement {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// CalculateMonthlyQueens picks the most-involved person for every calendar
// month that had at least one drama. Ties go to the first name in ascending
// order. Months come back newest first.
func CalculateMonthlyQueens(dramas []schemas.Drama, now time.Time) []MonthlyQueen {
	currentMonth := now.Format("2006-01")

	monthly := map[string][]schemas.Drama{}
	for _, drama := range dramas {
		monthKey := drama.CreatedAt.Format("2006-01")
		monthly[monthKey] = append(monthly[monthKey], drama)
	}

	queens := make([]MonthlyQueen, 0, len(monthly))
	for monthKey, monthDramas := range monthly {
		candidates := CalculatePersonInvolvement(monthDramas)
		if len(candidates) == 0 {
			continue
		}
		winner := candidates[0]

		// every drama in the bucket shares the month, so the first one
		// supplies the label
		queens = append(queens, MonthlyQueen{
			Month:          monthKey,
			MonthLabel:     monthDramas[0].CreatedAt.Format("January 2006"),
			PersonID:       winner.PersonID,
			Name:           winner.Name,
			Icon:           winner.Icon,
			Count:          winner.Count,
			IsCurrentMonth: monthKey == currentMonth,
		})
	}

	sort.Slice(queens, func(i, j int) bool {
		return queens[i].Month > queens[j].Month
	})
	return queens
}

// CalculateCurrentMonthLeaderboard ranks the entire roster by involvement in
// the current calendar month. Every person appears, zero counts included.
// Competition ranking: ties share a rank and the next distinct count jumps to
// its 1-based position, e.g. counts [5,5,3,3,3,1] get ranks [1,1,3,3,3,6].
func CalculateCurrentMonthLeaderboard(dramas []schemas.Drama, people []schemas.Person, now time.Time) []LeaderboardEntry {
	currentMonth := now.Format("2006-01")

	counts := map[string]int{}
	for _, drama := range dramas {
		if drama.CreatedAt.Format("2006-01") != currentMonth {
			continue
		}
		for _, person := range drama.Participants {
			counts[person.ID]++
		}
	}

	entries := make([]LeaderboardEntry, 0, len(people))
	for _, person := range people {
		entries = append(entries, LeaderboardEntry{
			PersonID: person.ID,
			Name:     person.Name,
			Icon:     person.Icon,
			Count:    counts[person.ID],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	// single forward pass carrying the rank across ties
	for i := range entries {
		if i == 0 {
			entries[i].Rank = 1
		} else if entries[i].Count < entries[i-1].Count {
			entries[i].Rank = i + 1
		} else {
			entries[i].Rank = entries[i-1].Rank
		}
	}
	return entries
}

// CalculateStatistics composes the aggregate views into one bundle. The
// leaderboard is only built when a roster is supplied.
func CalculateStatistics(dramas []schemas.Drama, people []schemas.Person, now time.Time) Statistics {
	stats := Statistics{
		TotalDramas:             len(dramas),
		PerPerson:               CalculatePersonInvolvement(dramas),
		PerWeek:                 GroupByWeek(dramas),
		MonthlyQueens:           CalculateMonthlyQueens(dramas, now),
		CurrentMonthLeaderboard: []LeaderboardEntry{},
	}
	if people != nil {
		stats.CurrentMonthLeaderboard = CalculateCurrentMonthLeaderboard(dramas, people, now)
	}
	return stats
}
