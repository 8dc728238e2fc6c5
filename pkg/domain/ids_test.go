package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "escrutinio/pkg/domain-errors"
)

// TestNationalID_Invariants validates the DNI format rule:
// "exactly 8 ASCII digits, nothing else"
func TestNationalID_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "12345678", false},
		{"leading zeros", "00000001", false},
		{"seven digits", "1234567", true},
		{"nine digits", "123456789", true},
		{"letter", "1234567a", true},
		{"surrounding space", " 12345678", true},
		{"empty", "", true},
		{"full-width digits", "１２３４５６７８", true},
		{"sign", "+1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNationalID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
		})
	}
}

func TestParseEntityIDs(t *testing.T) {
	t.Run("trims and accepts generated shapes", func(t *testing.T) {
		id, err := ParseTableID(" m1700000000000 ")
		require.NoError(t, err)
		assert.Equal(t, TableID("m1700000000000"), id)

		cid, err := ParseCandidateID("7")
		require.NoError(t, err)
		assert.Equal(t, CandidateID("7"), cid)
	})

	t.Run("rejects empty, oversized and odd runes", func(t *testing.T) {
		for _, input := range []string{"", "   ", strings.Repeat("a", 65), "../etc", "a b"} {
			_, err := ParseAgentID(input)
			require.Error(t, err, input)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})
}

func TestParseSessionToken(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		tok := NewSessionToken()
		parsed, err := ParseSessionToken(tok.String())
		require.NoError(t, err)
		assert.Equal(t, tok, parsed)
		assert.False(t, parsed.IsNil())
	})

	t.Run("rejects nil and malformed tokens", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", uuid.Nil.String()} {
			_, err := ParseSessionToken(input)
			require.Error(t, err, input)
		}
	})

	t.Run("encodes as a JSON string", func(t *testing.T) {
		tok := NewSessionToken()
		raw, err := json.Marshal(map[string]SessionToken{"token": tok})
		require.NoError(t, err)
		assert.JSONEq(t, `{"token":"`+tok.String()+`"}`, string(raw))

		var back map[string]SessionToken
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, tok, back["token"])
	})
}

func TestParseTallyStatus(t *testing.T) {
	for _, st := range TallyStatuses() {
		parsed, err := ParseTallyStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	_, err := ParseTallyStatus("")
	require.Error(t, err)
	_, err = ParseTallyStatus("archived")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
