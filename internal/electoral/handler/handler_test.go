package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"escrutinio/internal/electoral/handler/mocks"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/results"
	"escrutinio/internal/electoral/service"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/requestcontext"
	"escrutinio/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	token   id.SessionToken
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.token = id.NewSessionToken()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

// withToken matches contexts carrying the suite's session token.
func (s *HandlerSuite) withToken() gomock.Matcher {
	return gomock.Cond(func(ctx context.Context) bool {
		return requestcontext.SessionToken(ctx) == s.token
	})
}

func (s *HandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithBearer(req, s.token))
}

func (s *HandlerSuite) TestLogin() {
	s.Run("success returns token and identity", func() {
		identity := models.Identity{ID: "p1", Name: "Pedro Martínez", Role: models.RoleAgent, TableID: "m1"}
		s.service.EXPECT().Login(gomock.Any(), "12345678", "1234").
			Return(service.LoginResult{Token: s.token, Identity: identity}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login", map[string]string{
			"username": "12345678", "password": "1234",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		body := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
		s.Equal(s.token.String(), (*body)["token"])
		s.Equal("m1", (*body)["identity"].(map[string]any)["table_id"])
		s.NotEmpty(rr.Header().Get("X-Request-ID"))
	})

	s.Run("invalid credentials are unauthorized", func() {
		s.service.EXPECT().Login(gomock.Any(), "admin", "wrong").
			Return(service.LoginResult{}, models.ErrInvalidCredentials)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login", map[string]string{
			"username": "admin", "password": "wrong",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("blank fields never reach the service", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/auth/login", testutil.MustMarshal(s.T(), map[string]string{
			"username": "   ", "password": "x",
		}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("malformed body is a bad request", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/auth/login", `{"username":`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestSession() {
	s.Run("current identity", func() {
		s.service.EXPECT().CurrentIdentity(s.withToken()).
			Return(models.Identity{ID: "87654321", Role: models.RoleAdmin}, nil)

		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/auth/session"))
		s.Equal(http.StatusOK, res.Code)
		s.Contains(res.Body.String(), `"role":"admin"`)
	})

	s.Run("logout", func() {
		s.service.EXPECT().Logout(s.withToken())
		res := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/auth/logout"))
		s.Equal(http.StatusNoContent, res.Code)
	})

	s.Run("malformed bearer token", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/auth/session")
		req.Header.Set("Authorization", "Bearer nope")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})
}

func (s *HandlerSuite) TestCandidates() {
	s.Run("create", func() {
		s.service.EXPECT().AddCandidate(s.withToken(), models.CandidateRequest{
			Name: "Justo Eche", Party: "APP", Number: 8, Color: "#112233",
		}).Return(models.Candidate{ID: "8", Name: "Justo Eche", Party: "APP", Number: 8, Color: "#112233"}, nil)

		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/candidates", map[string]any{
			"name": "Justo Eche", "party": "APP", "number": 8, "color": "#112233",
		}))
		testutil.AssertStatus(s.T(), res, http.StatusCreated)
		testutil.AssertJSONHasKey(s.T(), res, "color")
		testutil.AssertJSONContains(s.T(), res, "id", "8")
	})

	s.Run("zero number and bad color are rejected before the service", func() {
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/candidates", map[string]any{
			"name": "X", "party": "Y", "number": 0,
		}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusBadRequest, "validation_error")
		testutil.AssertErrorDescription(s.T(), res, "number")

		res = s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/candidates", map[string]any{
			"name": "X", "party": "Y", "number": 3, "color": "red",
		}))
		s.Equal(http.StatusBadRequest, res.Code)
	})

	s.Run("duplicate number is a conflict", func() {
		s.service.EXPECT().EditCandidate(s.withToken(), id.CandidateID("2"), gomock.Any()).
			Return(models.Candidate{}, models.ErrDuplicateCandidateNumber)

		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/candidates/2", map[string]any{
			"name": "X", "party": "Y", "number": 1,
		}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusConflict, "conflict")
		s.Equal("candidate number already in use", testutil.UnmarshalErrorResponse(s.T(), res)["error_description"])
	})

	s.Run("delete of unknown candidate is not found", func() {
		s.service.EXPECT().DeleteCandidate(s.withToken(), id.CandidateID("99")).Return(models.ErrCandidateNotFound)
		res := s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/admin/candidates/99"))
		testutil.AssertStatusAndError(s.T(), res, http.StatusNotFound, "not_found")
	})

	s.Run("agents reach the ballot from their own route", func() {
		s.service.EXPECT().ListCandidates(s.withToken()).Return([]models.Candidate{{ID: "1"}}, nil)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/agent/candidates"))
		s.Equal(http.StatusOK, res.Code)
	})

	s.Run("forbidden role", func() {
		s.service.EXPECT().ListTables(s.withToken()).Return(nil, models.ErrForbidden)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/tables"))
		testutil.AssertStatusAndError(s.T(), res, http.StatusForbidden, "forbidden")
	})
}

func (s *HandlerSuite) TestAgents() {
	s.Run("password never leaves the server", func() {
		s.service.EXPECT().ListAgents(s.withToken()).Return([]models.Agent{
			{ID: "p1", Name: "Pedro", NationalID: "12345678", TableID: "m1", Password: "1234"},
		}, nil)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/agents"))
		testutil.AssertStatusOK(s.T(), res)
		body := string(testutil.ReadBody(s.T(), res))
		s.NotContains(body, "1234\"")
		s.NotContains(body, "password")
	})

	s.Run("malformed national id comes back as validation", func() {
		s.service.EXPECT().AddAgent(s.withToken(), models.AgentRequest{Name: "Ana", NationalID: "1234", Password: "clave"}).
			Return(models.Agent{}, models.ErrInvalidNationalID)
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/agents", map[string]string{
			"name": "Ana", "national_id": "1234", "password": "clave",
		}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusBadRequest, "validation_error")
		testutil.AssertErrorDescription(s.T(), res, "8 digits")
	})

	s.Run("assign table", func() {
		s.service.EXPECT().AssignTable(s.withToken(), id.AgentID("p2"), id.TableID("m1")).
			Return(models.Agent{}, models.ErrTableAlreadyAssigned)
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/agents/p2/table", map[string]string{"table_id": "m1"}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusConflict, "conflict")
	})

	s.Run("clear table", func() {
		s.service.EXPECT().AssignTable(s.withToken(), id.AgentID("p2"), id.TableID("")).
			Return(models.Agent{ID: "p2"}, nil)
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/agents/p2/table", map[string]string{"table_id": " "}))
		s.Equal(http.StatusOK, res.Code)
	})
}

func (s *HandlerSuite) TestTallySheets() {
	s.Run("agent submission ignores any table in the body", func() {
		s.service.EXPECT().SubmitTallySheet(s.withToken(), models.TallySheetRequest{
			BlankVotes: 3, NullVotes: 1, ChallengedVotes: 1,
			VotesByCandidate: models.VotesByCandidate{"1": 200, "2": 95},
		}).Return(models.TallySheet{ID: "a9", TableID: "m1", Status: id.TallyStatusSubmitted}, nil)

		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/agent/tally-sheet", map[string]any{
			"table_id":           "m7",
			"blank_votes":        3,
			"null_votes":         1,
			"challenged_votes":   1,
			"votes_by_candidate": map[string]int{"1": 200, "2": 95},
		}))
		s.Equal(http.StatusCreated, res.Code)
		s.Contains(res.Body.String(), `"status":"submitted"`)
	})

	s.Run("counts that could overflow never reach the service", func() {
		res := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/agent/tally-sheet",
			`{"votes_by_candidate":{"1":9223372036854775807,"2":9223372036854775807,"3":302}}`))
		testutil.AssertStatusAndError(s.T(), res, http.StatusBadRequest, "validation_error")
	})

	s.Run("negative votes never reach the service", func() {
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/agent/tally-sheet", map[string]any{
			"blank_votes": 0, "votes_by_candidate": map[string]int{"1": -1},
		}))
		s.Equal(http.StatusBadRequest, res.Code)
	})

	s.Run("mismatch and duplicate", func() {
		s.service.EXPECT().SubmitTallySheet(s.withToken(), gomock.Any()).Return(models.TallySheet{}, models.ErrTallySumMismatch)
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/agent/tally-sheet", map[string]any{"blank_votes": 1}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusBadRequest, "validation_error")

		s.service.EXPECT().SubmitTallySheet(s.withToken(), gomock.Any()).Return(models.TallySheet{}, models.ErrTallyAlreadyExists)
		res = s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/agent/tally-sheet", map[string]any{"blank_votes": 1}))
		testutil.AssertStatusAndError(s.T(), res, http.StatusConflict, "conflict")
	})

	s.Run("review filter is parsed", func() {
		s.service.EXPECT().ReviewTallySheets(s.withToken(), results.SheetFilter{Province: "Sechura", Status: id.TallyStatusFlagged}).
			Return(service.Review{}, nil)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/tally-sheets?province=Sechura&status=flagged"))
		s.Equal(http.StatusOK, res.Code)

		res = s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/tally-sheets?status=archived"))
		testutil.AssertStatusAndError(s.T(), res, http.StatusBadRequest, "invalid_input")
	})

	s.Run("status change", func() {
		s.service.EXPECT().SetTallySheetStatus(s.withToken(), id.TallySheetID("a2"), id.TallyStatusValidated).
			Return(models.TallySheet{ID: "a2", Status: id.TallyStatusValidated}, nil)
		res := s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/tally-sheets/a2/status", map[string]string{"status": "Validated"}))
		s.Equal(http.StatusOK, res.Code)

		res = s.do(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/tally-sheets/a2/status", map[string]string{"status": "archived"}))
		s.Equal(http.StatusBadRequest, res.Code)
	})

	s.Run("agent without table", func() {
		s.service.EXPECT().MyTallySheet(s.withToken()).Return(service.AgentWorkspace{}, models.ErrNoTableAssigned)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/agent/tally-sheet"))
		testutil.AssertStatusAndError(s.T(), res, http.StatusForbidden, "forbidden")
		testutil.AssertErrorDescription(s.T(), res, "no assigned table")
	})
}

func (s *HandlerSuite) TestDashboard() {
	s.Run("results filter comes from the query", func() {
		s.service.EXPECT().Results(s.withToken(), results.Filter{Province: "Sechura", Locale: "I.E. San Miguel"}).
			Return(results.Summary{TotalTables: 2, ReportedTables: 1, ProgressPercent: 50}, nil)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/results?province=Sechura&locale=I.E.+San+Miguel"))
		s.Equal(http.StatusOK, res.Code)
		s.Contains(res.Body.String(), `"progress_percent":50`)
	})

	s.Run("assignments", func() {
		s.service.EXPECT().Assignments(s.withToken(), results.AgentFilter{State: results.AssignmentUnassigned}).
			Return(results.Assignments{}, nil)
		res := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/admin/assignments?state=unassigned"))
		s.Equal(http.StatusOK, res.Code)
	})

	s.Run("reference data needs no token", func() {
		s.service.EXPECT().ListDistricts(gomock.Any(), "Sechura").Return([]models.District{{ID: "dist-31"}})
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/reference/districts?province=Sechura"))
		testutil.AssertStatusOK(s.T(), rr)

		s.service.EXPECT().ListProvinces(gomock.Any()).Return([]models.Province{{ID: "prov-8", Name: "Sechura"}})
		rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/reference/provinces"))
		testutil.AssertStatusOK(s.T(), rr)
	})
}
