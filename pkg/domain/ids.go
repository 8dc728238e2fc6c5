// Package domain holds the identifier and value primitives shared by the
// electoral packages.
//
// Entity identifiers are plain strings on the wire (candidates use "1", "2",
// tables "m1", agents "p1", tally sheets "a1") but are typed here so a table ID
// cannot be passed where an agent ID is expected.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "escrutinio/pkg/domain-errors"
)

type (
	CandidateID  string
	TableID      string
	AgentID      string
	TallySheetID string
	ProvinceID   string
	DistrictID   string
)

func (id CandidateID) String() string  { return string(id) }
func (id TableID) String() string      { return string(id) }
func (id AgentID) String() string      { return string(id) }
func (id TallySheetID) String() string { return string(id) }
func (id ProvinceID) String() string   { return string(id) }
func (id DistrictID) String() string   { return string(id) }

// maxIDLength bounds identifiers accepted from external input.
const maxIDLength = 64

func parseID(kind, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be empty")
	}
	if len(s) > maxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, kind+" id is too long")
	}
	for _, r := range s {
		if !isIDRune(r) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
		}
	}
	return s, nil
}

func isIDRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func ParseCandidateID(s string) (CandidateID, error) {
	v, err := parseID("candidate", s)
	return CandidateID(v), err
}

func ParseTableID(s string) (TableID, error) {
	v, err := parseID("table", s)
	return TableID(v), err
}

func ParseAgentID(s string) (AgentID, error) {
	v, err := parseID("agent", s)
	return AgentID(v), err
}

func ParseTallySheetID(s string) (TallySheetID, error) {
	v, err := parseID("tally sheet", s)
	return TallySheetID(v), err
}

// SessionToken is the opaque bearer handle of an authenticated session.
type SessionToken uuid.UUID

func NewSessionToken() SessionToken {
	return SessionToken(uuid.New())
}

func (t SessionToken) String() string {
	return uuid.UUID(t).String()
}

func (t SessionToken) IsNil() bool {
	return uuid.UUID(t) == uuid.Nil
}

func (t SessionToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SessionToken) UnmarshalText(b []byte) error {
	parsed, err := ParseSessionToken(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseSessionToken rejects malformed and nil UUIDs.
func ParseSessionToken(s string) (SessionToken, error) {
	if s == "" {
		return SessionToken{}, dErrors.New(dErrors.CodeInvalidInput, "session token cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return SessionToken{}, dErrors.New(dErrors.CodeInvalidInput, "invalid session token")
	}
	if u == uuid.Nil {
		return SessionToken{}, dErrors.New(dErrors.CodeInvalidInput, "session token cannot be nil")
	}
	return SessionToken(u), nil
}
