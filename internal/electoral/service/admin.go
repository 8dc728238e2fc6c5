package service

import (
	"context"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/requestcontext"
)

// ListCandidates is open to every authenticated caller: agents need the
// ballot to fill in a tally sheet.
func (s *Service) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	return s.store.ListCandidates(ctx), nil
}

func (s *Service) AddCandidate(ctx context.Context, req models.CandidateRequest) (c models.Candidate, err error) {
	ctx, end := s.start(ctx, "add_candidate")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Candidate{}, err
	}
	c, err = s.store.AddCandidate(ctx, req)
	if err != nil {
		s.logRejected(ctx, "add candidate", err)
		return models.Candidate{}, err
	}
	s.incrementMutation("candidate", "create")
	s.logger.InfoContext(ctx, "candidate added",
		"request_id", requestcontext.RequestID(ctx),
		"candidate_id", c.ID,
		"number", c.Number,
	)
	return c, nil
}

func (s *Service) EditCandidate(ctx context.Context, candidateID id.CandidateID, req models.CandidateRequest) (c models.Candidate, err error) {
	ctx, end := s.start(ctx, "edit_candidate")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Candidate{}, err
	}
	c, err = s.store.EditCandidate(ctx, candidateID, req)
	if err != nil {
		s.logRejected(ctx, "edit candidate", err)
		return models.Candidate{}, err
	}
	s.incrementMutation("candidate", "update")
	return c, nil
}

// DeleteCandidate removes the candidate. Votes already counted for them stay
// in the tally sheets and are ignored by results.
func (s *Service) DeleteCandidate(ctx context.Context, candidateID id.CandidateID) (err error) {
	ctx, end := s.start(ctx, "delete_candidate")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return err
	}
	if err = s.store.DeleteCandidate(ctx, candidateID); err != nil {
		return err
	}
	s.incrementMutation("candidate", "delete")
	s.logger.InfoContext(ctx, "candidate deleted",
		"request_id", requestcontext.RequestID(ctx),
		"candidate_id", candidateID,
	)
	return nil
}

func (s *Service) ListTables(ctx context.Context) ([]models.Table, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.store.ListTables(ctx), nil
}

func (s *Service) AddTable(ctx context.Context, req models.TableRequest) (t models.Table, err error) {
	ctx, end := s.start(ctx, "add_table")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Table{}, err
	}
	t, err = s.store.AddTable(ctx, req)
	if err != nil {
		s.logRejected(ctx, "add table", err)
		return models.Table{}, err
	}
	s.incrementMutation("table", "create")
	s.logger.InfoContext(ctx, "table added",
		"request_id", requestcontext.RequestID(ctx),
		"table_id", t.ID,
		"number", t.Number,
	)
	return t, nil
}

func (s *Service) EditTable(ctx context.Context, tableID id.TableID, req models.TableRequest) (t models.Table, err error) {
	ctx, end := s.start(ctx, "edit_table")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Table{}, err
	}
	t, err = s.store.EditTable(ctx, tableID, req)
	if err != nil {
		s.logRejected(ctx, "edit table", err)
		return models.Table{}, err
	}
	s.incrementMutation("table", "update")
	return t, nil
}

func (s *Service) DeleteTable(ctx context.Context, tableID id.TableID) (err error) {
	ctx, end := s.start(ctx, "delete_table")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return err
	}
	if err = s.store.DeleteTable(ctx, tableID); err != nil {
		return err
	}
	s.incrementMutation("table", "delete")
	s.logger.InfoContext(ctx, "table deleted",
		"request_id", requestcontext.RequestID(ctx),
		"table_id", tableID,
	)
	return nil
}

func (s *Service) ListAgents(ctx context.Context) ([]models.Agent, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.store.ListAgents(ctx), nil
}

func (s *Service) AddAgent(ctx context.Context, req models.AgentRequest) (a models.Agent, err error) {
	ctx, end := s.start(ctx, "add_agent")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Agent{}, err
	}
	a, err = s.store.AddAgent(ctx, req)
	if err != nil {
		s.logRejected(ctx, "add agent", err)
		return models.Agent{}, err
	}
	s.incrementMutation("agent", "create")
	s.logger.InfoContext(ctx, "agent added",
		"request_id", requestcontext.RequestID(ctx),
		"agent_id", a.ID,
	)
	return a, nil
}

func (s *Service) EditAgent(ctx context.Context, agentID id.AgentID, req models.AgentRequest) (a models.Agent, err error) {
	ctx, end := s.start(ctx, "edit_agent")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Agent{}, err
	}
	a, err = s.store.EditAgent(ctx, agentID, req)
	if err != nil {
		s.logRejected(ctx, "edit agent", err)
		return models.Agent{}, err
	}
	s.incrementMutation("agent", "update")
	return a, nil
}

// DeleteAgent removes the agent. Any session the agent holds stops resolving.
func (s *Service) DeleteAgent(ctx context.Context, agentID id.AgentID) (err error) {
	ctx, end := s.start(ctx, "delete_agent")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return err
	}
	if err = s.store.DeleteAgent(ctx, agentID); err != nil {
		return err
	}
	s.incrementMutation("agent", "delete")
	s.logger.InfoContext(ctx, "agent deleted",
		"request_id", requestcontext.RequestID(ctx),
		"agent_id", agentID,
	)
	return nil
}

// AssignTable gives the agent tableID, or releases its table when tableID is
// empty.
func (s *Service) AssignTable(ctx context.Context, agentID id.AgentID, tableID id.TableID) (a models.Agent, err error) {
	ctx, end := s.start(ctx, "assign_table")
	defer func() { end(err) }()

	if _, err = s.requireAdmin(ctx); err != nil {
		return models.Agent{}, err
	}
	a, err = s.store.AssignTable(ctx, agentID, tableID)
	if err != nil {
		s.logRejected(ctx, "assign table", err)
		return models.Agent{}, err
	}
	s.incrementMutation("assignment", "update")
	s.logger.InfoContext(ctx, "table assignment changed",
		"request_id", requestcontext.RequestID(ctx),
		"agent_id", agentID,
		"table_id", tableID,
	)
	return a, nil
}

func (s *Service) logRejected(ctx context.Context, op string, err error) {
	s.logger.InfoContext(ctx, op+" rejected",
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	)
}
