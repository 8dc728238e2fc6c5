// Package validation holds the pure predicates behind the electoral
// invariants. Each predicate reads the collections it is given and nothing
// else, so the store can run them inside its critical section and tests can
// call them without building a store.
package validation

import (
	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
)

// IsCandidateNumberUnique reports whether no candidate other than excludeID
// uses number. Pass an empty excludeID when creating.
func IsCandidateNumberUnique(candidates []models.Candidate, number int, excludeID id.CandidateID) bool {
	for _, c := range candidates {
		if c.Number == number && c.ID != excludeID {
			return false
		}
	}
	return true
}

// IsTableNumberUnique compares table numbers as stored (already trimmed).
func IsTableNumberUnique(tables []models.Table, number string, excludeID id.TableID) bool {
	for _, t := range tables {
		if t.Number == number && t.ID != excludeID {
			return false
		}
	}
	return true
}

// IsNationalIDValid reports whether s is exactly eight ASCII digits.
func IsNationalIDValid(s string) bool {
	return id.NationalID(s).IsValid()
}

func IsNationalIDUnique(agents []models.Agent, nationalID string, excludeID id.AgentID) bool {
	for _, a := range agents {
		if string(a.NationalID) == nationalID && a.ID != excludeID {
			return false
		}
	}
	return true
}

// IsTallySumValid reports whether the counted categories add up to exactly
// totalVoters. Any negative component makes the sheet invalid. The running sum
// never exceeds totalVoters, so large components cannot overflow into a match.
func IsTallySumValid(votes models.VotesByCandidate, blank, null, challenged, totalVoters int) bool {
	if totalVoters < 0 {
		return false
	}
	sum := 0
	add := func(n int) bool {
		if n < 0 || n > totalVoters-sum {
			return false
		}
		sum += n
		return true
	}
	if !add(blank) || !add(null) || !add(challenged) {
		return false
	}
	for _, n := range votes {
		if !add(n) {
			return false
		}
	}
	return sum == totalVoters
}

// IsTableAssignable reports whether no agent other than excludeAgentID holds
// tableID.
func IsTableAssignable(agents []models.Agent, tableID id.TableID, excludeAgentID id.AgentID) bool {
	for _, a := range agents {
		if a.TableID == tableID && a.ID != excludeAgentID {
			return false
		}
	}
	return true
}

// IsPasswordValid applies the minimum length rule.
func IsPasswordValid(password string) bool {
	return len([]rune(password)) >= models.MinPasswordLength
}
