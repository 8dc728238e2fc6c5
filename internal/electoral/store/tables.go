package store

import (
	"context"
	"slices"

	"escrutinio/internal/electoral/idgen"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/validation"
	id "escrutinio/pkg/domain"
)

func (s *Store) ListTables(_ context.Context) []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tables)
}

func (s *Store) FindTable(_ context.Context, tableID id.TableID) (models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.tableIndex(tableID)
	if i < 0 {
		return models.Table{}, models.ErrTableNotFound
	}
	return s.tables[i], nil
}

func (s *Store) AddTable(_ context.Context, req models.TableRequest) (models.Table, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Table{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !validation.IsTableNumberUnique(s.tables, req.Number, "") {
		return models.Table{}, models.ErrDuplicateTableNumber
	}

	t := req.Apply(id.TableID(s.ids.Next(idgen.PrefixTable)))
	s.tables = append(slices.Clip(s.tables), t)
	return t, nil
}

// EditTable replaces every editable field. A changed voter count does not
// revisit a tally sheet already filed for the table.
func (s *Store) EditTable(_ context.Context, tableID id.TableID, req models.TableRequest) (models.Table, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Table{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tableIndex(tableID)
	if i < 0 {
		return models.Table{}, models.ErrTableNotFound
	}
	if !validation.IsTableNumberUnique(s.tables, req.Number, tableID) {
		return models.Table{}, models.ErrDuplicateTableNumber
	}

	t := req.Apply(tableID)
	next := slices.Clone(s.tables)
	next[i] = t
	s.tables = next
	return t, nil
}

// DeleteTable removes the table and releases any agent holding it.
func (s *Store) DeleteTable(_ context.Context, tableID id.TableID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tableIndex(tableID)
	if i < 0 {
		return models.ErrTableNotFound
	}
	s.tables = slices.Delete(slices.Clone(s.tables), i, i+1)

	if slices.ContainsFunc(s.agents, func(a models.Agent) bool { return a.TableID == tableID }) {
		agents := slices.Clone(s.agents)
		for j := range agents {
			if agents[j].TableID == tableID {
				agents[j].TableID = ""
			}
		}
		s.agents = agents
	}
	return nil
}

func (s *Store) tableIndex(tableID id.TableID) int {
	return slices.IndexFunc(s.tables, func(t models.Table) bool {
		return t.ID == tableID
	})
}
