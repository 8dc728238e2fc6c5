// Package store is the electoral Domain Store: the only writer of candidates,
// tables, agents and tally sheets.
//
// Every mutation checks its invariants and commits inside one critical
// section, so a rejected operation leaves no partial change. Collections are
// replaced, never edited in place; slices handed out are copies.
package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"escrutinio/internal/electoral/idgen"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/seed"
)

// Store holds the electoral state in memory.
type Store struct {
	mu sync.RWMutex

	ids     *idgen.Generator
	now     func() time.Time
	address func() string

	provinces   []models.Province
	districts   []models.District
	candidates  []models.Candidate
	tables      []models.Table
	agents      []models.Agent
	tallySheets []models.TallySheet

	// candidateHighWater is the largest numeric candidate id ever held or
	// referenced by a tally sheet. Deleted ids are never reissued, so a new
	// candidate cannot inherit orphaned votes.
	candidateHighWater int64
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(g *idgen.Generator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// WithAddressSource overrides how the source address of a submission is
// synthesized.
func WithAddressSource(fn func() string) Option {
	return func(s *Store) {
		s.address = fn
	}
}

// New creates a store holding data. A nil data starts empty.
func New(data *seed.Data, opts ...Option) *Store {
	s := &Store{
		ids:     idgen.New(),
		now:     time.Now,
		address: syntheticAddress,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(data)
	return s
}

// Reset replaces the whole state with a copy of data.
func (s *Store) Reset(data *seed.Data) {
	if data == nil {
		data = &seed.Data{}
	}
	sheets := make([]models.TallySheet, 0, len(data.TallySheets))
	for _, sh := range data.TallySheets {
		sheets = append(sheets, sh.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.provinces = slices.Clone(data.Provinces)
	s.districts = slices.Clone(data.Districts)
	s.candidates = slices.Clone(data.Candidates)
	s.tables = slices.Clone(data.Tables)
	s.agents = slices.Clone(data.Agents)
	s.tallySheets = sheets
	s.candidateHighWater = candidateHighWater(data.Candidates, sheets)
}

func candidateHighWater(candidates []models.Candidate, sheets []models.TallySheet) int64 {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, string(c.ID))
	}
	for _, sh := range sheets {
		for cid := range sh.VotesByCandidate {
			ids = append(ids, string(cid))
		}
	}
	return idgen.MaxNumeric(ids)
}

// Snapshot is a consistent copy of every collection.
type Snapshot struct {
	Provinces   []models.Province
	Districts   []models.District
	Candidates  []models.Candidate
	Tables      []models.Table
	Agents      []models.Agent
	TallySheets []models.TallySheet
}

func (s *Store) Snapshot(_ context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Provinces:   slices.Clone(s.provinces),
		Districts:   slices.Clone(s.districts),
		Candidates:  slices.Clone(s.candidates),
		Tables:      slices.Clone(s.tables),
		Agents:      slices.Clone(s.agents),
		TallySheets: cloneSheets(s.tallySheets),
	}
}

func (s *Store) ListProvinces(_ context.Context) []models.Province {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.provinces)
}

func (s *Store) ListDistricts(_ context.Context) []models.District {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.districts)
}

func cloneSheets(in []models.TallySheet) []models.TallySheet {
	out := make([]models.TallySheet, 0, len(in))
	for _, sh := range in {
		out = append(out, sh.Clone())
	}
	return out
}

// syntheticAddress mimics a private LAN address for a submission. There is no
// real client address in the core.
func syntheticAddress() string {
	return fmt.Sprintf("192.168.%d.%d", rand.IntN(255), rand.IntN(255))
}
