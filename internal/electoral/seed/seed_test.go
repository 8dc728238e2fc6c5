package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "escrutinio/pkg/domain"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	assert.Len(t, data.Admins, 2)
	assert.Len(t, data.Provinces, 1)
	assert.Len(t, data.Districts, 6)
	assert.Len(t, data.Candidates, 7)
	assert.Len(t, data.Tables, 7)
	assert.Len(t, data.Agents, 7)
	require.Len(t, data.TallySheets, 3)

	t.Run("tally sheets take voter totals from their table", func(t *testing.T) {
		sheet := data.TallySheets[0]
		assert.Equal(t, id.TableID("m1"), sheet.TableID)
		assert.Equal(t, 300, sheet.TotalVoters)
		assert.Equal(t, id.TallyStatusValidated, sheet.Status)
		assert.Equal(t, 85, sheet.VotesByCandidate["1"])
		assert.Equal(t, "192.168.1.101", sheet.SourceAddress)

		lima := time.FixedZone("PET", -5*60*60)
		assert.True(t, sheet.SubmittedAt.Equal(time.Date(2026, 1, 31, 10, 30, 0, 0, lima)))
	})

	t.Run("agents keep their assignment and plain password", func(t *testing.T) {
		agent := data.Agents[0]
		assert.Equal(t, id.NationalID("12345678"), agent.NationalID)
		assert.Equal(t, id.TableID("m1"), agent.TableID)
		assert.Equal(t, "1234", agent.Password)
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to the embedded set", func(t *testing.T) {
		data, err := Load("")
		require.NoError(t, err)
		assert.Len(t, data.Candidates, 7)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalSeed), 0o600))

		data, err := Load(path)
		require.NoError(t, err)
		require.Len(t, data.Candidates, 1)
		assert.Equal(t, "#94A3B8", data.Candidates[0].Color, "color defaults when absent")
		assert.Empty(t, data.TallySheets)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestParse_RejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", minimalSeed + "\nextra: true\n"},
		{"no admins", `
candidates: []
`},
		{"duplicate candidate number", minimalSeed + `
  - { id: "2", name: B, party: Q, number: 1 }
`},
		{"malformed national id", `
admins: [{ username: admin, password: admin, id: "1", name: A }]
agents:
  - { id: p1, name: A, national_id: "1234", password: "1234" }
`},
		{"two agents on one table", `
admins: [{ username: admin, password: admin, id: "1", name: A }]
tables:
  - { id: m1, number: "1", locale: L, province: P, district: D, total_voters: 10 }
agents:
  - { id: p1, name: A, national_id: "12345678", table_id: m1, password: "1234" }
  - { id: p2, name: B, national_id: "23456789", table_id: m1, password: "1234" }
`},
		{"two sheets on one table", `
admins: [{ username: admin, password: admin, id: "1", name: A }]
tables:
  - { id: m1, number: "1", locale: L, province: P, district: D, total_voters: 10 }
tally_sheets:
  - { id: a1, table_id: m1, blank_votes: 10, status: submitted }
  - { id: a2, table_id: m1, blank_votes: 10, status: submitted }
`},
		{"unknown status", `
admins: [{ username: admin, password: admin, id: "1", name: A }]
tables:
  - { id: m1, number: "1", locale: L, province: P, district: D, total_voters: 10 }
tally_sheets:
  - { id: a1, table_id: m1, blank_votes: 10, status: archived }
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

const minimalSeed = `
admins:
  - { username: admin, password: admin, id: "1", name: Admin }
candidates:
  - { id: "1", name: A, party: P, number: 1 }`
