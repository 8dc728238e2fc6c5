package results

import (
	"strings"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
)

// StatusCounts is the review screen header.
type StatusCounts struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Flagged   int `json:"flagged"`
	Validated int `json:"validated"`
}

func CountByStatus(sheets []models.TallySheet) StatusCounts {
	c := StatusCounts{Total: len(sheets)}
	for _, sh := range sheets {
		switch sh.Status {
		case id.TallyStatusSubmitted:
			c.Submitted++
		case id.TallyStatusFlagged:
			c.Flagged++
		case id.TallyStatusValidated:
			c.Validated++
		}
	}
	return c
}

// SheetFilter narrows the review list. Empty fields match everything.
type SheetFilter struct {
	Province string         `json:"province,omitempty"`
	Status   id.TallyStatus `json:"status,omitempty"`
}

// FilterTallySheets returns the sheets matching f. Sheets whose table no
// longer exists are left out.
func FilterTallySheets(sheets []models.TallySheet, tables []models.Table, f SheetFilter) []models.TallySheet {
	byID := make(map[id.TableID]models.Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}

	out := make([]models.TallySheet, 0, len(sheets))
	for _, sh := range sheets {
		t, ok := byID[sh.TableID]
		if !ok {
			continue
		}
		if f.Province != "" && t.Province != f.Province {
			continue
		}
		if f.Status != "" && sh.Status != f.Status {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// AssignmentState selects agents by whether they hold a table.
type AssignmentState string

const (
	AssignmentAny        AssignmentState = ""
	AssignmentAssigned   AssignmentState = "assigned"
	AssignmentUnassigned AssignmentState = "unassigned"
)

// AgentFilter narrows the assignment list.
//
// Search matches a case-insensitive substring of the name or a substring of
// the national ID. Province only excludes assigned agents whose table is in
// another province; unassigned agents always pass it.
type AgentFilter struct {
	Search   string          `json:"search,omitempty"`
	State    AssignmentState `json:"state,omitempty"`
	Province string          `json:"province,omitempty"`
}

func FilterAgents(agents []models.Agent, tables []models.Table, f AgentFilter) []models.Agent {
	byID := make(map[id.TableID]models.Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}
	search := strings.ToLower(f.Search)

	out := make([]models.Agent, 0, len(agents))
	for _, a := range agents {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(string(a.NationalID), f.Search) {
			continue
		}
		if f.State == AssignmentAssigned && !a.HasTable() {
			continue
		}
		if f.State == AssignmentUnassigned && a.HasTable() {
			continue
		}
		if f.Province != "" && a.HasTable() {
			t, ok := byID[a.TableID]
			if !ok || t.Province != f.Province {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// AvailableTables returns the tables no agent holds.
func AvailableTables(tables []models.Table, agents []models.Agent) []models.Table {
	held := make(map[id.TableID]struct{}, len(agents))
	for _, a := range agents {
		if a.HasTable() {
			held[a.TableID] = struct{}{}
		}
	}
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if _, ok := held[t.ID]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// Assignments is the assignment screen: agents, counters and the tables
// still free.
type Assignments struct {
	Agents           []models.Agent `json:"agents"`
	AssignedTables   int            `json:"assigned_tables"`
	UnassignedTables int            `json:"unassigned_tables"`
	Available        []models.Table `json:"available_tables"`
}

// AssignmentOverview builds the assignment screen for the agents matching f.
// Counters always cover every agent and table.
func AssignmentOverview(agents []models.Agent, tables []models.Table, f AgentFilter) Assignments {
	available := AvailableTables(tables, agents)
	return Assignments{
		Agents:           FilterAgents(agents, tables, f),
		AssignedTables:   len(tables) - len(available),
		UnassignedTables: len(available),
		Available:        available,
	}
}
