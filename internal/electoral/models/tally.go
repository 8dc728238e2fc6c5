package models

import (
	"maps"
	"time"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
)

// VotesByCandidate maps a candidate to the votes counted for them.
type VotesByCandidate map[id.CandidateID]int

// Total sums every entry, including entries for candidates that no longer
// exist. Reconciliation is checked against what the agent counted.
func (v VotesByCandidate) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// TallySheet is the vote-count record (acta) for one table.
//
// Invariants:
//   - at most one sheet per table
//   - sum(VotesByCandidate) + Blank + Null + Challenged == table.TotalVoters at creation
//   - only Status changes after creation
//   - SubmittedAt and SourceAddress are stamped by the store
type TallySheet struct {
	ID               id.TallySheetID  `json:"id"`
	TableID          id.TableID       `json:"table_id"`
	TotalVoters      int              `json:"total_voters"`
	BlankVotes       int              `json:"blank_votes"`
	NullVotes        int              `json:"null_votes"`
	ChallengedVotes  int              `json:"challenged_votes"`
	VotesByCandidate VotesByCandidate `json:"votes_by_candidate"`
	ImageURL         string           `json:"image_url,omitempty"`
	Status           id.TallyStatus   `json:"status"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	SourceAddress    string           `json:"source_address"`
}

// Clone returns a copy that shares no map with the receiver.
func (t TallySheet) Clone() TallySheet {
	t.VotesByCandidate = maps.Clone(t.VotesByCandidate)
	if t.VotesByCandidate == nil {
		t.VotesByCandidate = VotesByCandidate{}
	}
	return t
}

// CandidateVotes sums only the entries whose candidate is in known.
func (t TallySheet) CandidateVotes(known map[id.CandidateID]struct{}) int {
	total := 0
	for cid, n := range t.VotesByCandidate {
		if _, ok := known[cid]; ok {
			total += n
		}
	}
	return total
}

// TallySheetRequest is what an agent submits. TotalVoters is not accepted
// from the caller; the store copies it from the table.
type TallySheetRequest struct {
	TableID          id.TableID       `json:"table_id"`
	BlankVotes       int              `json:"blank_votes"`
	NullVotes        int              `json:"null_votes"`
	ChallengedVotes  int              `json:"challenged_votes"`
	VotesByCandidate VotesByCandidate `json:"votes_by_candidate"`
	ImageURL         string           `json:"image_url,omitempty"`
}

// Validate rejects negative components. Reconciliation against the table is
// the store's job.
func (r *TallySheetRequest) Validate() error {
	if r.TableID == "" {
		return dErrors.New(dErrors.CodeValidation, "table id is required")
	}
	if r.BlankVotes < 0 || r.NullVotes < 0 || r.ChallengedVotes < 0 {
		return dErrors.New(dErrors.CodeValidation, "vote counts cannot be negative")
	}
	for _, n := range r.VotesByCandidate {
		if n < 0 {
			return dErrors.New(dErrors.CodeValidation, "vote counts cannot be negative")
		}
	}
	return nil
}
