package models

import (
	"strings"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
)

// DefaultCandidateColor is used when a candidate has no display color.
const DefaultCandidateColor = "#94A3B8"

// Candidate is a contender on the ballot.
//
// Invariants:
//   - Number is positive and unique across candidates
//   - Color is never empty once stored
type Candidate struct {
	ID     id.CandidateID `json:"id"`
	Name   string         `json:"name"`
	Party  string         `json:"party"`
	Number int            `json:"number"`
	Color  string         `json:"color"`
	Logo   string         `json:"logo,omitempty"`
}

// CandidateRequest carries the editable fields of a candidate.
type CandidateRequest struct {
	Name   string `json:"name"`
	Party  string `json:"party"`
	Number int    `json:"number"`
	Color  string `json:"color,omitempty"`
	Logo   string `json:"logo,omitempty"`
}

func (r *CandidateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Party = strings.TrimSpace(r.Party)
	r.Color = strings.TrimSpace(r.Color)
	if r.Color == "" {
		r.Color = DefaultCandidateColor
	}
}

func (r *CandidateRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "candidate name is required")
	}
	if r.Party == "" {
		return dErrors.New(dErrors.CodeValidation, "party is required")
	}
	if r.Number < 1 {
		return dErrors.New(dErrors.CodeValidation, "candidate number must be greater than 0")
	}
	return nil
}

// Apply builds the stored candidate for id from the request.
func (r CandidateRequest) Apply(candidateID id.CandidateID) Candidate {
	return Candidate{
		ID:     candidateID,
		Name:   r.Name,
		Party:  r.Party,
		Number: r.Number,
		Color:  r.Color,
		Logo:   r.Logo,
	}
}
