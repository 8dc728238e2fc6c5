package service

import (
	"context"
	"errors"

	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/results"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/requestcontext"
)

// AgentWorkspace is what an agent sees: their table, the ballot and the
// sheet already filed for the table, if any.
type AgentWorkspace struct {
	Table      models.Table       `json:"table"`
	Candidates []models.Candidate `json:"candidates"`
	TallySheet *models.TallySheet `json:"tally_sheet,omitempty"`
}

// MyTallySheet returns the calling agent's workspace. An agent without a
// table gets ErrNoTableAssigned.
func (s *Service) MyTallySheet(ctx context.Context) (AgentWorkspace, error) {
	identity, err := s.requireAgent(ctx)
	if err != nil {
		return AgentWorkspace{}, err
	}
	if identity.TableID == "" {
		return AgentWorkspace{}, models.ErrNoTableAssigned
	}
	table, err := s.store.FindTable(ctx, identity.TableID)
	if err != nil {
		return AgentWorkspace{}, err
	}

	ws := AgentWorkspace{Table: table, Candidates: s.store.ListCandidates(ctx)}
	if sheet, ok := s.store.TallySheetForTable(ctx, table.ID); ok {
		ws.TallySheet = &sheet
	}
	return ws, nil
}

// SubmitTallySheet files the calling agent's sheet. The table always comes
// from the agent's live assignment; any table in req is overwritten.
func (s *Service) SubmitTallySheet(ctx context.Context, req models.TallySheetRequest) (sheet models.TallySheet, err error) {
	ctx, end := s.start(ctx, "submit_tally_sheet")
	defer func() { end(err) }()

	identity, err := s.requireAgent(ctx)
	if err != nil {
		return models.TallySheet{}, err
	}
	if identity.TableID == "" {
		return models.TallySheet{}, models.ErrNoTableAssigned
	}
	req.TableID = identity.TableID

	sheet, err = s.store.SubmitTallySheet(ctx, req)
	if err != nil {
		s.incrementTallyRejected(err)
		s.logger.WarnContext(ctx, "tally sheet rejected",
			"request_id", requestcontext.RequestID(ctx),
			"agent_id", identity.ID,
			"table_id", identity.TableID,
			"error", err.Error(),
		)
		return models.TallySheet{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementTallySubmitted()
	}
	s.logger.InfoContext(ctx, "tally sheet submitted",
		"request_id", requestcontext.RequestID(ctx),
		"agent_id", identity.ID,
		"table_id", sheet.TableID,
		"tally_sheet_id", sheet.ID,
		"source_address", sheet.SourceAddress,
	)
	return sheet, nil
}

// Review is the review screen: counters over every sheet plus the filtered
// list.
type Review struct {
	Counts      results.StatusCounts `json:"counts"`
	TallySheets []models.TallySheet  `json:"tally_sheets"`
}

func (s *Service) ReviewTallySheets(ctx context.Context, f results.SheetFilter) (Review, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return Review{}, err
	}
	snap := s.store.Snapshot(ctx)
	return Review{
		Counts:      results.CountByStatus(snap.TallySheets),
		TallySheets: results.FilterTallySheets(snap.TallySheets, snap.Tables, f),
	}, nil
}

func (s *Service) GetTallySheet(ctx context.Context, sheetID id.TallySheetID) (models.TallySheet, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return models.TallySheet{}, err
	}
	return s.store.FindTallySheet(ctx, sheetID)
}

// SetTallySheetStatus records a review decision.
func (s *Service) SetTallySheetStatus(ctx context.Context, sheetID id.TallySheetID, status id.TallyStatus) (sheet models.TallySheet, err error) {
	ctx, end := s.start(ctx, "set_tally_sheet_status")
	defer func() { end(err) }()

	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return models.TallySheet{}, err
	}
	sheet, err = s.store.SetTallySheetStatus(ctx, sheetID, status)
	if err != nil {
		return models.TallySheet{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementStatusChange(status.String())
	}
	s.logger.InfoContext(ctx, "tally sheet reviewed",
		"request_id", requestcontext.RequestID(ctx),
		"admin_id", identity.ID,
		"tally_sheet_id", sheetID,
		"status", status,
	)
	return sheet, nil
}

// Results builds the dashboard for the tables matching f.
func (s *Service) Results(ctx context.Context, f results.Filter) (summary results.Summary, err error) {
	ctx, end := s.start(ctx, "results")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return results.Summary{}, err
	}
	snap := s.store.Snapshot(ctx)
	return results.Summarize(snap.Candidates, snap.Tables, snap.TallySheets, f), nil
}

func (s *Service) Assignments(ctx context.Context, f results.AgentFilter) (results.Assignments, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return results.Assignments{}, err
	}
	snap := s.store.Snapshot(ctx)
	return results.AssignmentOverview(snap.Agents, snap.Tables, f), nil
}

// ListProvinces and ListDistricts serve static reference data and need no
// session.
func (s *Service) ListProvinces(ctx context.Context) []models.Province {
	return s.store.ListProvinces(ctx)
}

// ListDistricts returns every district, or only those of provinceName when it
// is set.
func (s *Service) ListDistricts(ctx context.Context, provinceName string) []models.District {
	if provinceName == "" {
		return s.store.ListDistricts(ctx)
	}
	return results.DistrictsOf(s.store.ListProvinces(ctx), s.store.ListDistricts(ctx), provinceName)
}

func (s *Service) incrementTallyRejected(err error) {
	if s.metrics == nil {
		return
	}
	reason := "invalid"
	switch {
	case errors.Is(err, models.ErrTallySumMismatch):
		reason = "sum_mismatch"
	case errors.Is(err, models.ErrTallyAlreadyExists):
		reason = "already_exists"
	case errors.Is(err, models.ErrTableNotFound):
		reason = "table_not_found"
	}
	s.metrics.IncrementTallyRejected(reason)
}
