// Package results derives read models from store snapshots: the results
// dashboard, review counters and the assignment overview.
//
// Everything here is a pure function of its arguments. Nothing is cached;
// callers pass a fresh snapshot each time.
package results

import (
	"cmp"
	"slices"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
	platformstrings "escrutinio/pkg/platform/strings"
)

// Filter narrows the tables a summary covers. Empty fields match everything.
// Province, District and Locale match the table's names exactly; TableNumber
// matches the table number.
type Filter struct {
	Province    string `json:"province,omitempty"`
	District    string `json:"district,omitempty"`
	Locale      string `json:"locale,omitempty"`
	TableNumber string `json:"table_number,omitempty"`
}

func (f Filter) matches(t models.Table) bool {
	switch {
	case f.Province != "" && t.Province != f.Province:
		return false
	case f.District != "" && t.District != f.District:
		return false
	case f.Locale != "" && t.Locale != f.Locale:
		return false
	case f.TableNumber != "" && t.Number != f.TableNumber:
		return false
	}
	return true
}

// FilterTables returns the tables matching f, in their original order.
func FilterTables(tables []models.Table, f Filter) []models.Table {
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// CandidateTotal is one row of the results table.
type CandidateTotal struct {
	CandidateID id.CandidateID `json:"candidate_id"`
	Name        string         `json:"name"`
	Party       string         `json:"party"`
	Number      int            `json:"number"`
	Color       string         `json:"color"`
	Logo        string         `json:"logo,omitempty"`
	Votes       int            `json:"votes"`
}

// Summary aggregates the tally sheets filed for a set of tables.
type Summary struct {
	TotalTables     int              `json:"total_tables"`
	ReportedTables  int              `json:"reported_tables"`
	ProgressPercent float64          `json:"progress_percent"`
	Candidates      []CandidateTotal `json:"candidates"`
	BlankVotes      int              `json:"blank_votes"`
	NullVotes       int              `json:"null_votes"`
	ChallengedVotes int              `json:"challenged_votes"`
	ValidVotes      int              `json:"valid_votes"`
	TotalVotes      int              `json:"total_votes"`
	ValidityPercent float64          `json:"validity_percent"`
	Locales         []string         `json:"locales"`
}

// Summarize builds the dashboard for the tables matching f.
//
// Every current candidate gets a row, even with zero votes. Vote entries for
// candidates that no longer exist are ignored. Rows are ordered by votes,
// highest first, with ties broken by ballot number.
func Summarize(candidates []models.Candidate, tables []models.Table, sheets []models.TallySheet, f Filter) Summary {
	selected := FilterTables(tables, f)
	inScope := make(map[id.TableID]struct{}, len(selected))
	for _, t := range selected {
		inScope[t.ID] = struct{}{}
	}

	votes := make(map[id.CandidateID]int, len(candidates))
	for _, c := range candidates {
		votes[c.ID] = 0
	}

	s := Summary{TotalTables: len(selected), Locales: Locales(selected)}
	for _, sh := range sheets {
		if _, ok := inScope[sh.TableID]; !ok {
			continue
		}
		s.ReportedTables++
		s.BlankVotes += sh.BlankVotes
		s.NullVotes += sh.NullVotes
		s.ChallengedVotes += sh.ChallengedVotes
		for cid, n := range sh.VotesByCandidate {
			if _, known := votes[cid]; known {
				votes[cid] += n
			}
		}
	}

	s.Candidates = make([]CandidateTotal, 0, len(candidates))
	for _, c := range candidates {
		color := c.Color
		if color == "" {
			color = models.DefaultCandidateColor
		}
		s.Candidates = append(s.Candidates, CandidateTotal{
			CandidateID: c.ID,
			Name:        c.Name,
			Party:       c.Party,
			Number:      c.Number,
			Color:       color,
			Logo:        c.Logo,
			Votes:       votes[c.ID],
		})
		s.ValidVotes += votes[c.ID]
	}
	slices.SortStableFunc(s.Candidates, func(a, b CandidateTotal) int {
		if c := cmp.Compare(b.Votes, a.Votes); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})

	s.TotalVotes = s.ValidVotes + s.BlankVotes + s.NullVotes + s.ChallengedVotes
	s.ProgressPercent = percent(s.ReportedTables, s.TotalTables)
	s.ValidityPercent = percent(s.ValidVotes, s.TotalVotes)
	return s
}

// Locales lists the distinct voting locales of tables in first-seen order.
func Locales(tables []models.Table) []string {
	return platformstrings.DistinctFunc(tables, func(t models.Table) string { return t.Locale })
}

// DistrictsOf returns the districts of the province named provinceName. An
// unknown or empty name yields none.
func DistrictsOf(provinces []models.Province, districts []models.District, provinceName string) []models.District {
	out := make([]models.District, 0)
	if provinceName == "" {
		return out
	}
	i := slices.IndexFunc(provinces, func(p models.Province) bool { return p.Name == provinceName })
	if i < 0 {
		return out
	}
	for _, d := range districts {
		if d.ProvinceID == provinces[i].ID {
			out = append(out, d)
		}
	}
	return out
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
