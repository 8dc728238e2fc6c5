package models

import (
	"strings"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
)

// MinPasswordLength is the shortest password accepted for an agent.
const MinPasswordLength = 4

// Agent is a field representative (personero).
//
// Invariants:
//   - NationalID is exactly 8 digits and unique across agents
//   - TableID, when set, is held by no other agent
//   - TableID changes only through table assignment, never through edits
//
// Password is stored and compared in plain text.
type Agent struct {
	ID         id.AgentID    `json:"id"`
	Name       string        `json:"name"`
	NationalID id.NationalID `json:"national_id"`
	TableID    id.TableID    `json:"table_id,omitempty"`
	Password   string        `json:"-"`
}

// HasTable reports whether the agent holds a table.
func (a Agent) HasTable() bool {
	return a.TableID != ""
}

// AgentRequest carries the editable fields of an agent. It has no table
// field: assignment is a separate operation.
type AgentRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

func (r *AgentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.NationalID = strings.TrimSpace(r.NationalID)
}

// Validate checks required fields only. National ID format and password
// length are checked by the store so a malformed ID always surfaces as
// ErrInvalidNationalID.
func (r *AgentRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "agent name is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

func (r AgentRequest) Apply(agentID id.AgentID, tableID id.TableID) Agent {
	return Agent{
		ID:         agentID,
		Name:       r.Name,
		NationalID: id.NationalID(r.NationalID),
		TableID:    tableID,
		Password:   r.Password,
	}
}
