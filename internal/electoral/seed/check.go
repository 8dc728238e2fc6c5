package seed

import (
	"errors"
	"fmt"
	"strings"

	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/validation"
	id "escrutinio/pkg/domain"
)

// ErrInvalidSeed marks a seed that would start the store in a state its own
// operations could never produce.
var ErrInvalidSeed = errors.New("invalid seed")

// Check verifies the structural invariants of a seed: unique identifiers,
// unique candidate and table numbers, well-formed and unique national IDs,
// at most one agent per table, at most one sheet per table, and references
// that resolve.
//
// Seeded tally sheets are historical records and are not reconciled against
// their table.
func (d *Data) Check() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSeed}, args...)...))
	}

	if len(d.Admins) == 0 {
		fail("at least one administrator account is required")
	}
	admins := make(map[string]struct{}, len(d.Admins))
	for _, a := range d.Admins {
		u := strings.ToLower(strings.TrimSpace(a.Username))
		if u == "" || a.Password == "" {
			fail("administrator %q needs a username and password", a.ID)
			continue
		}
		if _, dup := admins[u]; dup {
			fail("duplicate administrator username %q", u)
		}
		admins[u] = struct{}{}
	}

	provinces := make(map[id.ProvinceID]struct{}, len(d.Provinces))
	for _, p := range d.Provinces {
		provinces[p.ID] = struct{}{}
	}
	for _, dist := range d.Districts {
		if _, ok := provinces[dist.ProvinceID]; !ok {
			fail("district %s references unknown province %s", dist.ID, dist.ProvinceID)
		}
	}

	candidateIDs := make(map[id.CandidateID]struct{}, len(d.Candidates))
	for i, c := range d.Candidates {
		if _, dup := candidateIDs[c.ID]; dup || c.ID == "" {
			fail("candidate id %q is empty or repeated", c.ID)
		}
		candidateIDs[c.ID] = struct{}{}
		if c.Number < 1 {
			fail("candidate %s has non-positive number %d", c.ID, c.Number)
		}
		if !validation.IsCandidateNumberUnique(d.Candidates[:i], c.Number, c.ID) {
			fail("candidate number %d is repeated", c.Number)
		}
	}

	tableIDs := make(map[id.TableID]struct{}, len(d.Tables))
	for i, t := range d.Tables {
		if _, dup := tableIDs[t.ID]; dup || t.ID == "" {
			fail("table id %q is empty or repeated", t.ID)
		}
		tableIDs[t.ID] = struct{}{}
		if t.TotalVoters < 1 {
			fail("table %s has non-positive voter count", t.ID)
		}
		if !validation.IsTableNumberUnique(d.Tables[:i], t.Number, t.ID) {
			fail("table number %s is repeated", t.Number)
		}
	}

	agentIDs := make(map[id.AgentID]struct{}, len(d.Agents))
	for i, a := range d.Agents {
		if _, dup := agentIDs[a.ID]; dup || a.ID == "" {
			fail("agent id %q is empty or repeated", a.ID)
		}
		agentIDs[a.ID] = struct{}{}
		if !validation.IsNationalIDValid(string(a.NationalID)) {
			fail("agent %s: %v", a.ID, models.ErrInvalidNationalID)
		}
		if !validation.IsNationalIDUnique(d.Agents[:i], string(a.NationalID), a.ID) {
			fail("agent %s: %v", a.ID, models.ErrDuplicateNationalID)
		}
		if a.HasTable() {
			if _, ok := tableIDs[a.TableID]; !ok {
				fail("agent %s references unknown table %s", a.ID, a.TableID)
			}
			if !validation.IsTableAssignable(d.Agents[:i], a.TableID, a.ID) {
				fail("agent %s: %v", a.ID, models.ErrTableAlreadyAssigned)
			}
		}
	}

	sheetIDs := make(map[id.TallySheetID]struct{}, len(d.TallySheets))
	sheetTables := make(map[id.TableID]struct{}, len(d.TallySheets))
	for _, s := range d.TallySheets {
		if _, dup := sheetIDs[s.ID]; dup || s.ID == "" {
			fail("tally sheet id %q is empty or repeated", s.ID)
		}
		sheetIDs[s.ID] = struct{}{}
		if _, ok := tableIDs[s.TableID]; !ok {
			fail("tally sheet %s references unknown table %s", s.ID, s.TableID)
		}
		if _, dup := sheetTables[s.TableID]; dup {
			fail("tally sheet %s: %v %s", s.ID, models.ErrTallyAlreadyExists, s.TableID)
		}
		sheetTables[s.TableID] = struct{}{}
	}

	return errors.Join(errs...)
}
