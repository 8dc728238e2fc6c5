package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/results"
	"escrutinio/internal/electoral/service"
	"escrutinio/internal/platform/middleware"
	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/platform/httputil"
	"escrutinio/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the electoral operations exposed over HTTP.
type Service interface {
	Login(ctx context.Context, usernameOrID, password string) (service.LoginResult, error)
	Logout(ctx context.Context)
	CurrentIdentity(ctx context.Context) (models.Identity, error)

	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	AddCandidate(ctx context.Context, req models.CandidateRequest) (models.Candidate, error)
	EditCandidate(ctx context.Context, candidateID id.CandidateID, req models.CandidateRequest) (models.Candidate, error)
	DeleteCandidate(ctx context.Context, candidateID id.CandidateID) error

	ListTables(ctx context.Context) ([]models.Table, error)
	AddTable(ctx context.Context, req models.TableRequest) (models.Table, error)
	EditTable(ctx context.Context, tableID id.TableID, req models.TableRequest) (models.Table, error)
	DeleteTable(ctx context.Context, tableID id.TableID) error

	ListAgents(ctx context.Context) ([]models.Agent, error)
	AddAgent(ctx context.Context, req models.AgentRequest) (models.Agent, error)
	EditAgent(ctx context.Context, agentID id.AgentID, req models.AgentRequest) (models.Agent, error)
	DeleteAgent(ctx context.Context, agentID id.AgentID) error
	AssignTable(ctx context.Context, agentID id.AgentID, tableID id.TableID) (models.Agent, error)

	ReviewTallySheets(ctx context.Context, f results.SheetFilter) (service.Review, error)
	GetTallySheet(ctx context.Context, sheetID id.TallySheetID) (models.TallySheet, error)
	SetTallySheetStatus(ctx context.Context, sheetID id.TallySheetID, status id.TallyStatus) (models.TallySheet, error)
	Results(ctx context.Context, f results.Filter) (results.Summary, error)
	Assignments(ctx context.Context, f results.AgentFilter) (results.Assignments, error)

	ListProvinces(ctx context.Context) []models.Province
	ListDistricts(ctx context.Context, provinceName string) []models.District

	MyTallySheet(ctx context.Context) (service.AgentWorkspace, error)
	SubmitTallySheet(ctx context.Context, req models.TallySheetRequest) (models.TallySheet, error)
}

// Handler serves the electoral JSON API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new electoral Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register registers the electoral routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.ClientMetadata)
	router.Use(middleware.Logger(h.logger))
	router.Use(timeout(30 * time.Second))
	router.Use(middleware.BearerSession(h.logger))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.Get("/session", h.handleSession)
	})

	router.Route("/reference", func(r chi.Router) {
		r.Get("/provinces", h.handleListProvinces)
		r.Get("/districts", h.handleListDistricts)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Get("/candidates", h.handleListCandidates)
		r.Post("/candidates", h.handleAddCandidate)
		r.Put("/candidates/{id}", h.handleEditCandidate)
		r.Delete("/candidates/{id}", h.handleDeleteCandidate)

		r.Get("/tables", h.handleListTables)
		r.Post("/tables", h.handleAddTable)
		r.Put("/tables/{id}", h.handleEditTable)
		r.Delete("/tables/{id}", h.handleDeleteTable)

		r.Get("/agents", h.handleListAgents)
		r.Post("/agents", h.handleAddAgent)
		r.Put("/agents/{id}", h.handleEditAgent)
		r.Delete("/agents/{id}", h.handleDeleteAgent)
		r.Put("/agents/{id}/table", h.handleAssignTable)

		r.Get("/tally-sheets", h.handleReviewTallySheets)
		r.Get("/tally-sheets/{id}", h.handleGetTallySheet)
		r.Put("/tally-sheets/{id}/status", h.handleSetTallySheetStatus)

		r.Get("/results", h.handleResults)
		r.Get("/assignments", h.handleAssignments)
	})

	router.Route("/agent", func(r chi.Router) {
		r.Get("/candidates", h.handleListCandidates)
		r.Get("/tally-sheet", h.handleMyTallySheet)
		r.Post("/tally-sheet", h.handleSubmitTallySheet)
	})

	r.Mount("/", router)
}

func timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// fail logs at a level matching the error and writes it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if httputil.StatusFor(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	} else {
		h.logger.InfoContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
