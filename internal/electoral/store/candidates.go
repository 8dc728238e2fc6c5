package store

import (
	"context"
	"slices"
	"strconv"

	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/validation"
	id "escrutinio/pkg/domain"
)

func (s *Store) ListCandidates(_ context.Context) []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.candidates)
}

func (s *Store) FindCandidate(_ context.Context, candidateID id.CandidateID) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.candidateIndex(candidateID)
	if i < 0 {
		return models.Candidate{}, models.ErrCandidateNotFound
	}
	return s.candidates[i], nil
}

// AddCandidate stores a new candidate with the next sequential id. Ids of
// deleted candidates are never reused.
func (s *Store) AddCandidate(_ context.Context, req models.CandidateRequest) (models.Candidate, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Candidate{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !validation.IsCandidateNumberUnique(s.candidates, req.Number, "") {
		return models.Candidate{}, models.ErrDuplicateCandidateNumber
	}

	next := s.candidateHighWater + 1
	s.candidateHighWater = next
	c := req.Apply(id.CandidateID(strconv.FormatInt(next, 10)))

	s.candidates = append(slices.Clip(s.candidates), c)
	return c, nil
}

func (s *Store) EditCandidate(_ context.Context, candidateID id.CandidateID, req models.CandidateRequest) (models.Candidate, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Candidate{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.candidateIndex(candidateID)
	if i < 0 {
		return models.Candidate{}, models.ErrCandidateNotFound
	}
	if !validation.IsCandidateNumberUnique(s.candidates, req.Number, candidateID) {
		return models.Candidate{}, models.ErrDuplicateCandidateNumber
	}

	c := req.Apply(candidateID)
	next := slices.Clone(s.candidates)
	next[i] = c
	s.candidates = next
	return c, nil
}

// DeleteCandidate leaves tally sheets untouched; their entries for the
// candidate become orphans that results ignore.
func (s *Store) DeleteCandidate(_ context.Context, candidateID id.CandidateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.candidateIndex(candidateID)
	if i < 0 {
		return models.ErrCandidateNotFound
	}
	s.candidates = slices.Delete(slices.Clone(s.candidates), i, i+1)
	return nil
}

func (s *Store) candidateIndex(candidateID id.CandidateID) int {
	return slices.IndexFunc(s.candidates, func(c models.Candidate) bool {
		return c.ID == candidateID
	})
}
