package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"escrutinio/internal/electoral/metrics"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/store"
	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
	"escrutinio/pkg/requestcontext"
)

// Store is the Domain Store as the service uses it.
type Store interface {
	Snapshot(ctx context.Context) store.Snapshot
	ListProvinces(ctx context.Context) []models.Province
	ListDistricts(ctx context.Context) []models.District

	ListCandidates(ctx context.Context) []models.Candidate
	AddCandidate(ctx context.Context, req models.CandidateRequest) (models.Candidate, error)
	EditCandidate(ctx context.Context, candidateID id.CandidateID, req models.CandidateRequest) (models.Candidate, error)
	DeleteCandidate(ctx context.Context, candidateID id.CandidateID) error

	ListTables(ctx context.Context) []models.Table
	FindTable(ctx context.Context, tableID id.TableID) (models.Table, error)
	AddTable(ctx context.Context, req models.TableRequest) (models.Table, error)
	EditTable(ctx context.Context, tableID id.TableID, req models.TableRequest) (models.Table, error)
	DeleteTable(ctx context.Context, tableID id.TableID) error

	ListAgents(ctx context.Context) []models.Agent
	AddAgent(ctx context.Context, req models.AgentRequest) (models.Agent, error)
	EditAgent(ctx context.Context, agentID id.AgentID, req models.AgentRequest) (models.Agent, error)
	DeleteAgent(ctx context.Context, agentID id.AgentID) error
	AssignTable(ctx context.Context, agentID id.AgentID, tableID id.TableID) (models.Agent, error)

	FindTallySheet(ctx context.Context, sheetID id.TallySheetID) (models.TallySheet, error)
	TallySheetForTable(ctx context.Context, tableID id.TableID) (models.TallySheet, bool)
	SubmitTallySheet(ctx context.Context, req models.TallySheetRequest) (models.TallySheet, error)
	SetTallySheetStatus(ctx context.Context, sheetID id.TallySheetID, status id.TallyStatus) (models.TallySheet, error)
}

// Service gates the electoral store by role and adds logging, metrics and
// tracing. The caller is resolved from the session token in the context on
// every call, so role and table assignment are always current.
type Service struct {
	store    Store
	sessions Sessions
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(st Store, sessions Sessions, opts ...Option) *Service {
	s := &Service{
		store:    st,
		sessions: sessions,
		logger:   slog.Default(),
		tracer:   otel.Tracer("escrutinio/electoral"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// start opens a span and a latency measurement for op. The returned func must
// be called with the operation's final error.
func (s *Service) start(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "electoral."+op)
	begin := time.Now()
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		}
		span.End()
		if s.metrics != nil {
			s.metrics.ObserveOperation(op, begin)
		}
	}
}

// caller resolves the identity behind the request's session token.
func (s *Service) caller(ctx context.Context) (models.Identity, error) {
	token := requestcontext.SessionToken(ctx)
	if token.IsNil() {
		return models.Identity{}, models.ErrNoSession
	}
	return s.sessions.Current(ctx, token)
}

func (s *Service) requireRole(ctx context.Context, role models.Role) (models.Identity, error) {
	identity, err := s.caller(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if identity.Role != role {
		s.logger.WarnContext(ctx, "operation denied for role",
			"request_id", requestcontext.RequestID(ctx),
			"identity_id", identity.ID,
			"role", identity.Role,
			"required_role", role,
		)
		return models.Identity{}, models.ErrForbidden
	}
	return identity, nil
}

func (s *Service) requireAdmin(ctx context.Context) (models.Identity, error) {
	return s.requireRole(ctx, models.RoleAdmin)
}

func (s *Service) requireAgent(ctx context.Context) (models.Identity, error) {
	return s.requireRole(ctx, models.RoleAgent)
}

func (s *Service) incrementMutation(entity, action string) {
	if s.metrics != nil {
		s.metrics.IncrementMutation(entity, action)
	}
}

func (s *Service) incrementLogin(role models.Role, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementLogin(string(role), outcome)
	}
}
