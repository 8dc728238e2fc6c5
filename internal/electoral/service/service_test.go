package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"escrutinio/internal/electoral/metrics"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/results"
	"escrutinio/internal/electoral/seed"
	"escrutinio/internal/electoral/service/mocks"
	"escrutinio/internal/electoral/session"
	"escrutinio/internal/electoral/store"
	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.Store
	service *Service
	metrics *metrics.Metrics
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	data, err := seed.Default()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.store = store.New(data, store.WithClock(func() time.Time {
		return time.Date(2026, 4, 12, 17, 0, 0, 0, time.UTC)
	}))
	s.metrics = metrics.New(prometheus.NewRegistry())
	registry := session.NewRegistry(session.NewResolver(data.Admins, s.store))
	s.service = New(s.store, registry,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

// as logs in and returns a context carrying the session token.
func (s *ServiceSuite) as(user, password string) context.Context {
	res, err := s.service.Login(s.ctx, user, password)
	s.Require().NoError(err)
	return requestcontext.WithSessionToken(s.ctx, res.Token)
}

func (s *ServiceSuite) admin() context.Context {
	return s.as("admin", "admin")
}

func (s *ServiceSuite) TestLogin() {
	s.Run("agent login carries the assigned table", func() {
		res, err := s.service.Login(s.ctx, "12345678", "1234")
		s.Require().NoError(err)
		s.Equal(models.RoleAgent, res.Identity.Role)
		s.Equal(id.TableID("m1"), res.Identity.TableID)
		s.False(res.Token.IsNil())
	})

	s.Run("wrong password leaves no session", func() {
		_, err := s.service.Login(s.ctx, "admin", "wrong")
		s.Require().ErrorIs(err, models.ErrInvalidCredentials)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.InDelta(1, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues("unknown", "failure")), 0)
	})

	s.Run("logout ends the session", func() {
		ctx := s.admin()
		_, err := s.service.CurrentIdentity(ctx)
		s.Require().NoError(err)

		s.service.Logout(ctx)
		_, err = s.service.CurrentIdentity(ctx)
		s.Require().ErrorIs(err, models.ErrNoSession)
	})

	s.Run("logout without a session is a no-op", func() {
		s.NotPanics(func() { s.service.Logout(s.ctx) })
	})
}

func (s *ServiceSuite) TestRoleGating() {
	agent := s.as("12345678", "1234")
	admin := s.admin()

	s.Run("no session is unauthorized", func() {
		_, err := s.service.ListTables(s.ctx)
		s.Require().ErrorIs(err, models.ErrNoSession)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("agents cannot administer", func() {
		_, err := s.service.AddCandidate(agent, models.CandidateRequest{Name: "X", Party: "Y", Number: 99})
		s.Require().ErrorIs(err, models.ErrForbidden)
		_, err = s.service.AssignTable(agent, "p1", "m2")
		s.Require().ErrorIs(err, models.ErrForbidden)
		_, err = s.service.Results(agent, results.Filter{})
		s.Require().ErrorIs(err, models.ErrForbidden)
		_, err = s.service.SetTallySheetStatus(agent, "a2", id.TallyStatusValidated)
		s.Require().ErrorIs(err, models.ErrForbidden)
	})

	s.Run("admins cannot submit tally sheets", func() {
		_, err := s.service.SubmitTallySheet(admin, models.TallySheetRequest{})
		s.Require().ErrorIs(err, models.ErrForbidden)
		_, err = s.service.MyTallySheet(admin)
		s.Require().ErrorIs(err, models.ErrForbidden)
	})

	s.Run("both roles read the ballot", func() {
		for _, ctx := range []context.Context{agent, admin} {
			cs, err := s.service.ListCandidates(ctx)
			s.Require().NoError(err)
			s.Len(cs, 7)
		}
	})

	s.Run("reference data needs no session", func() {
		s.Len(s.service.ListProvinces(s.ctx), 1)
		s.Len(s.service.ListDistricts(s.ctx, ""), 6)
		s.Len(s.service.ListDistricts(s.ctx, "Sechura"), 6)
		s.Empty(s.service.ListDistricts(s.ctx, "Lima"))
	})
}

func (s *ServiceSuite) TestAdminCRUD() {
	ctx := s.admin()

	c, err := s.service.AddCandidate(ctx, models.CandidateRequest{Name: "Nuevo", Party: "Partido", Number: 8})
	s.Require().NoError(err)
	s.Equal(id.CandidateID("8"), c.ID)

	_, err = s.service.AddCandidate(ctx, models.CandidateRequest{Name: "Otro", Party: "Partido", Number: 8})
	s.Require().ErrorIs(err, models.ErrDuplicateNumber)

	_, err = s.service.EditCandidate(ctx, c.ID, models.CandidateRequest{Name: "Nuevo", Party: "Partido", Number: 9})
	s.Require().NoError(err)
	s.Require().NoError(s.service.DeleteCandidate(ctx, c.ID))

	t, err := s.service.AddTable(ctx, models.TableRequest{Number: "000999", Locale: "L", Province: "Sechura", District: "Vice", TotalVoters: 10})
	s.Require().NoError(err)
	_, err = s.service.EditTable(ctx, t.ID, models.TableRequest{Number: "000998", Locale: "L", Province: "Sechura", District: "Vice", TotalVoters: 12})
	s.Require().NoError(err)

	a, err := s.service.AddAgent(ctx, models.AgentRequest{Name: "Nuevo Personero", NationalID: "99999999", Password: "clave"})
	s.Require().NoError(err)
	_, err = s.service.EditAgent(ctx, a.ID, models.AgentRequest{Name: "Nuevo Personero", NationalID: "99999999", Password: "clave2"})
	s.Require().NoError(err)

	a, err = s.service.AssignTable(ctx, a.ID, t.ID)
	s.Require().NoError(err)
	s.Equal(t.ID, a.TableID)

	s.Require().NoError(s.service.DeleteTable(ctx, t.ID))
	s.Require().NoError(s.service.DeleteAgent(ctx, a.ID))

	s.InDelta(1, testutil.ToFloat64(s.metrics.EntityMutations.WithLabelValues("candidate", "create")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.EntityMutations.WithLabelValues("assignment", "update")), 0)
}

func (s *ServiceSuite) TestSubmitTallySheet() {
	admin := s.admin()

	// fresh table for agent p2 (Ana Flores), who already filed for m2
	t, err := s.service.AddTable(admin, models.TableRequest{Number: "000500", Locale: "L", Province: "Sechura", District: "Sechura", TotalVoters: 300})
	s.Require().NoError(err)
	_, err = s.service.AssignTable(admin, "p2", t.ID)
	s.Require().NoError(err)

	agent := s.as("23456789", "1234")

	s.Run("assignment made after login is used", func() {
		ws, err := s.service.MyTallySheet(agent)
		s.Require().NoError(err)
		s.Equal(t.ID, ws.Table.ID)
		s.Nil(ws.TallySheet)
		s.Len(ws.Candidates, 7)
	})

	s.Run("sum one short is rejected", func() {
		_, err := s.service.SubmitTallySheet(agent, models.TallySheetRequest{
			BlankVotes: 3, NullVotes: 1, ChallengedVotes: 1,
			VotesByCandidate: models.VotesByCandidate{"1": 200, "2": 94},
		})
		s.Require().ErrorIs(err, models.ErrTallySumMismatch)
		s.InDelta(1, testutil.ToFloat64(s.metrics.TallySheetsRejected.WithLabelValues("sum_mismatch")), 0)
	})

	s.Run("table in the payload is ignored", func() {
		sheet, err := s.service.SubmitTallySheet(agent, models.TallySheetRequest{
			TableID:    "m7",
			BlankVotes: 3, NullVotes: 1, ChallengedVotes: 1,
			VotesByCandidate: models.VotesByCandidate{"1": 200, "2": 95},
		})
		s.Require().NoError(err)
		s.Equal(t.ID, sheet.TableID)
		s.Equal(id.TallyStatusSubmitted, sheet.Status)
		s.Equal(time.Date(2026, 4, 12, 17, 0, 0, 0, time.UTC), sheet.SubmittedAt)
	})

	s.Run("second submission is rejected", func() {
		_, err := s.service.SubmitTallySheet(agent, models.TallySheetRequest{BlankVotes: 300})
		s.Require().ErrorIs(err, models.ErrTallyAlreadyExists)

		ws, err := s.service.MyTallySheet(agent)
		s.Require().NoError(err)
		s.Require().NotNil(ws.TallySheet)
		s.Equal(3, ws.TallySheet.BlankVotes)
	})

	s.Run("released agent has no table", func() {
		_, err := s.service.AssignTable(admin, "p2", "")
		s.Require().NoError(err)

		_, err = s.service.MyTallySheet(agent)
		s.Require().ErrorIs(err, models.ErrNoTableAssigned)
		_, err = s.service.SubmitTallySheet(agent, models.TallySheetRequest{BlankVotes: 1})
		s.Require().ErrorIs(err, models.ErrNoTableAssigned)
	})

	s.Run("deleted agent loses the session", func() {
		s.Require().NoError(s.service.DeleteAgent(admin, "p2"))
		_, err := s.service.MyTallySheet(agent)
		s.Require().ErrorIs(err, models.ErrNoSession)
	})
}

func (s *ServiceSuite) TestReview() {
	ctx := s.admin()

	review, err := s.service.ReviewTallySheets(ctx, results.SheetFilter{})
	s.Require().NoError(err)
	s.Equal(results.StatusCounts{Total: 3, Submitted: 1, Validated: 2}, review.Counts)
	s.Len(review.TallySheets, 3)

	sheet, err := s.service.SetTallySheetStatus(ctx, "a2", id.TallyStatusFlagged)
	s.Require().NoError(err)
	s.Equal(id.TallyStatusFlagged, sheet.Status)

	review, err = s.service.ReviewTallySheets(ctx, results.SheetFilter{Status: id.TallyStatusFlagged})
	s.Require().NoError(err)
	s.Require().Len(review.TallySheets, 1)
	s.Equal(id.TallySheetID("a2"), review.TallySheets[0].ID)
	s.Equal(1, review.Counts.Flagged)

	found, err := s.service.GetTallySheet(ctx, "a2")
	s.Require().NoError(err)
	s.Equal(id.TallyStatusFlagged, found.Status)

	_, err = s.service.SetTallySheetStatus(ctx, "a2", "archived")
	s.Require().ErrorIs(err, models.ErrInvalidStatus)
}

func (s *ServiceSuite) TestResultsAndAssignments() {
	ctx := s.admin()

	summary, err := s.service.Results(ctx, results.Filter{})
	s.Require().NoError(err)
	s.Equal(7, summary.TotalTables)
	s.Equal(3, summary.ReportedTables)
	s.Len(summary.Candidates, 7)
	for i := 1; i < len(summary.Candidates); i++ {
		s.GreaterOrEqual(summary.Candidates[i-1].Votes, summary.Candidates[i].Votes)
	}

	overview, err := s.service.Assignments(ctx, results.AgentFilter{})
	s.Require().NoError(err)
	s.Len(overview.Agents, 7)
	s.Equal(7, overview.AssignedTables+overview.UnassignedTables)
}

func TestService_SessionErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessions(ctrl)
	svc := New(store.New(nil), sessions, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	token := id.NewSessionToken()
	ctx := requestcontext.WithSessionToken(context.Background(), token)

	t.Run("resolver failure surfaces unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		sessions.EXPECT().Current(gomock.Any(), token).Return(models.Identity{}, boom)

		_, err := svc.ListAgents(ctx)
		require.ErrorIs(t, err, boom)
	})

	t.Run("identity is resolved on every call", func(t *testing.T) {
		sessions.EXPECT().Current(gomock.Any(), token).
			Return(models.Identity{ID: "p1", Role: models.RoleAgent}, nil).Times(2)

		_, err := svc.MyTallySheet(ctx)
		require.ErrorIs(t, err, models.ErrNoTableAssigned)
		_, err = svc.ListCandidates(ctx)
		require.NoError(t, err)
	})

	t.Run("logout closes the token", func(t *testing.T) {
		sessions.EXPECT().Close(token)
		svc.Logout(ctx)
	})

	t.Run("open failure is returned as is", func(t *testing.T) {
		sessions.EXPECT().Open(gomock.Any(), "admin", "x").
			Return(id.SessionToken{}, models.Identity{}, models.ErrInvalidCredentials)

		_, err := svc.Login(context.Background(), "admin", "x")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
