package store

import (
	"context"
	"slices"

	"escrutinio/internal/electoral/idgen"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/validation"
	id "escrutinio/pkg/domain"
)

func (s *Store) ListAgents(_ context.Context) []models.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.agents)
}

func (s *Store) FindAgent(_ context.Context, agentID id.AgentID) (models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.agentIndex(agentID)
	if i < 0 {
		return models.Agent{}, models.ErrAgentNotFound
	}
	return s.agents[i], nil
}

// AddAgent creates an unassigned agent.
func (s *Store) AddAgent(_ context.Context, req models.AgentRequest) (models.Agent, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Agent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAgent(req, ""); err != nil {
		return models.Agent{}, err
	}

	a := req.Apply(id.AgentID(s.ids.Next(idgen.PrefixAgent)), "")
	s.agents = append(slices.Clip(s.agents), a)
	return a, nil
}

// EditAgent replaces name, national ID and password. The table assignment is
// carried over unchanged.
func (s *Store) EditAgent(_ context.Context, agentID id.AgentID, req models.AgentRequest) (models.Agent, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Agent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.agentIndex(agentID)
	if i < 0 {
		return models.Agent{}, models.ErrAgentNotFound
	}
	if err := s.checkAgent(req, agentID); err != nil {
		return models.Agent{}, err
	}

	a := req.Apply(agentID, s.agents[i].TableID)
	next := slices.Clone(s.agents)
	next[i] = a
	s.agents = next
	return a, nil
}

func (s *Store) DeleteAgent(_ context.Context, agentID id.AgentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.agentIndex(agentID)
	if i < 0 {
		return models.ErrAgentNotFound
	}
	s.agents = slices.Delete(slices.Clone(s.agents), i, i+1)
	return nil
}

// AssignTable sets the agent's table, or clears it when tableID is empty.
//
// A table held by a different agent is rejected with ErrTableAlreadyAssigned.
// Assigning an agent the table it already holds succeeds without change.
func (s *Store) AssignTable(_ context.Context, agentID id.AgentID, tableID id.TableID) (models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.agentIndex(agentID)
	if i < 0 {
		return models.Agent{}, models.ErrAgentNotFound
	}
	if tableID != "" {
		if s.tableIndex(tableID) < 0 {
			return models.Agent{}, models.ErrTableNotFound
		}
		if !validation.IsTableAssignable(s.agents, tableID, agentID) {
			return models.Agent{}, models.ErrTableAlreadyAssigned
		}
	}
	if s.agents[i].TableID == tableID {
		return s.agents[i], nil
	}

	next := slices.Clone(s.agents)
	next[i].TableID = tableID
	s.agents = next
	return next[i], nil
}

// checkAgent runs the national ID and password rules. Format is checked
// before uniqueness.
func (s *Store) checkAgent(req models.AgentRequest, excludeID id.AgentID) error {
	if !validation.IsNationalIDValid(req.NationalID) {
		return models.ErrInvalidNationalID
	}
	if !validation.IsPasswordValid(req.Password) {
		return models.ErrPasswordTooShort
	}
	if !validation.IsNationalIDUnique(s.agents, req.NationalID, excludeID) {
		return models.ErrDuplicateNationalID
	}
	return nil
}

func (s *Store) agentIndex(agentID id.AgentID) int {
	return slices.IndexFunc(s.agents, func(a models.Agent) bool {
		return a.ID == agentID
	})
}
