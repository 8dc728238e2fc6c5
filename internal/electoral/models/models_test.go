package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/platform/sentinel"
)

func TestCandidateRequest(t *testing.T) {
	t.Run("normalize trims and defaults the color", func(t *testing.T) {
		req := CandidateRequest{Name: "  Ana Ruiz ", Party: " Frente ", Number: 4, Color: "  "}
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, Candidate{ID: "4", Name: "Ana Ruiz", Party: "Frente", Number: 4, Color: DefaultCandidateColor}, req.Apply("4"))
	})

	tests := []struct {
		name string
		req  CandidateRequest
	}{
		{"missing name", CandidateRequest{Party: "P", Number: 1}},
		{"missing party", CandidateRequest{Name: "N", Number: 1}},
		{"zero number", CandidateRequest{Name: "N", Party: "P"}},
		{"negative number", CandidateRequest{Name: "N", Party: "P", Number: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestTableRequest(t *testing.T) {
	valid := TableRequest{Number: " 000123 ", Locale: "I.E. San Miguel", Province: "Sechura", District: "Vice", TotalVoters: 300}
	valid.Normalize()
	require.NoError(t, valid.Validate())
	assert.Equal(t, "000123", valid.Apply("m1").Number)

	for _, mutate := range []func(*TableRequest){
		func(r *TableRequest) { r.Number = "" },
		func(r *TableRequest) { r.Locale = "" },
		func(r *TableRequest) { r.Province = "" },
		func(r *TableRequest) { r.District = "" },
		func(r *TableRequest) { r.TotalVoters = 0 },
	} {
		req := valid
		mutate(&req)
		assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))
	}
}

func TestAgentRequest(t *testing.T) {
	req := AgentRequest{Name: " Ana ", NationalID: " 12345678 ", Password: "clave"}
	req.Normalize()
	require.NoError(t, req.Validate())

	agent := req.Apply("p9", "m2")
	assert.Equal(t, id.NationalID("12345678"), agent.NationalID)
	assert.True(t, agent.HasTable())
	assert.False(t, req.Apply("p9", "").HasTable())

	blank := AgentRequest{Name: "Ana", Password: "   "}
	assert.Error(t, blank.Validate())
}

func TestTallySheet(t *testing.T) {
	sheet := TallySheet{
		ID:               "a1",
		TableID:          "m1",
		VotesByCandidate: VotesByCandidate{"1": 120, "2": 80, "9": 5},
	}

	t.Run("total counts every entry", func(t *testing.T) {
		assert.Equal(t, 205, sheet.VotesByCandidate.Total())
		assert.Zero(t, VotesByCandidate(nil).Total())
	})

	t.Run("candidate votes ignore unknown candidates", func(t *testing.T) {
		known := map[id.CandidateID]struct{}{"1": {}, "2": {}}
		assert.Equal(t, 200, sheet.CandidateVotes(known))
	})

	t.Run("clone does not share the vote map", func(t *testing.T) {
		c := sheet.Clone()
		c.VotesByCandidate["1"] = 0
		assert.Equal(t, 120, sheet.VotesByCandidate["1"])

		empty := TallySheet{}.Clone()
		assert.NotNil(t, empty.VotesByCandidate)
	})
}

func TestTallySheetRequest_Validate(t *testing.T) {
	ok := TallySheetRequest{TableID: "m1", BlankVotes: 1, VotesByCandidate: VotesByCandidate{"1": 0}}
	require.NoError(t, ok.Validate())

	noTable := ok
	noTable.TableID = ""
	assert.Error(t, noTable.Validate())

	negative := ok
	negative.VotesByCandidate = VotesByCandidate{"1": -1}
	assert.Error(t, negative.Validate())

	negativeBlank := ok
	negativeBlank.BlankVotes = -1
	assert.Error(t, negativeBlank.Validate())
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrDuplicateCandidateNumber, ErrDuplicateNumber))
	assert.True(t, errors.Is(ErrDuplicateTableNumber, sentinel.ErrConflict))
	assert.True(t, errors.Is(ErrAgentNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrAgentNotFound, ErrTableNotFound))
	assert.True(t, errors.Is(ErrTallyAlreadyExists, sentinel.ErrAlreadyExists))
}

func TestIdentityRoles(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleAdmin}.IsAgent())
	assert.True(t, Identity{Role: RoleAgent}.IsAgent())
}
