package store

import (
	"context"
	"slices"

	"escrutinio/internal/electoral/idgen"
	"escrutinio/internal/electoral/models"
	"escrutinio/internal/electoral/validation"
	id "escrutinio/pkg/domain"
)

func (s *Store) ListTallySheets(_ context.Context) []models.TallySheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSheets(s.tallySheets)
}

func (s *Store) FindTallySheet(_ context.Context, sheetID id.TallySheetID) (models.TallySheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.tallySheetIndex(sheetID)
	if i < 0 {
		return models.TallySheet{}, models.ErrTallySheetNotFound
	}
	return s.tallySheets[i].Clone(), nil
}

// TallySheetForTable returns the sheet filed for tableID, if any.
func (s *Store) TallySheetForTable(_ context.Context, tableID id.TableID) (models.TallySheet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.sheetIndexForTable(tableID)
	if i < 0 {
		return models.TallySheet{}, false
	}
	return s.tallySheets[i].Clone(), true
}

// SubmitTallySheet files the one sheet a table may have.
//
// Checks run in order: request shape, table exists, no sheet yet for the
// table (ErrTallyAlreadyExists), reconciliation against the table's voter
// count (ErrTallySumMismatch). The store stamps ID, time, source address and
// the Submitted status; the caller cannot set them.
func (s *Store) SubmitTallySheet(_ context.Context, req models.TallySheetRequest) (models.TallySheet, error) {
	if err := req.Validate(); err != nil {
		return models.TallySheet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.tableIndex(req.TableID)
	if ti < 0 {
		return models.TallySheet{}, models.ErrTableNotFound
	}
	if s.sheetIndexForTable(req.TableID) >= 0 {
		return models.TallySheet{}, models.ErrTallyAlreadyExists
	}
	table := s.tables[ti]
	if !validation.IsTallySumValid(req.VotesByCandidate, req.BlankVotes, req.NullVotes, req.ChallengedVotes, table.TotalVoters) {
		return models.TallySheet{}, models.ErrTallySumMismatch
	}

	sheet := models.TallySheet{
		ID:               id.TallySheetID(s.ids.Next(idgen.PrefixTallySheet)),
		TableID:          table.ID,
		TotalVoters:      table.TotalVoters,
		BlankVotes:       req.BlankVotes,
		NullVotes:        req.NullVotes,
		ChallengedVotes:  req.ChallengedVotes,
		VotesByCandidate: req.VotesByCandidate,
		ImageURL:         req.ImageURL,
		Status:           id.TallyStatusSubmitted,
		SubmittedAt:      s.now(),
		SourceAddress:    s.address(),
	}.Clone()

	s.tallySheets = append(slices.Clip(s.tallySheets), sheet)
	return sheet.Clone(), nil
}

// SetTallySheetStatus moves a sheet to any valid status. No status is
// terminal here.
func (s *Store) SetTallySheetStatus(_ context.Context, sheetID id.TallySheetID, status id.TallyStatus) (models.TallySheet, error) {
	if !status.IsValid() {
		return models.TallySheet{}, models.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tallySheetIndex(sheetID)
	if i < 0 {
		return models.TallySheet{}, models.ErrTallySheetNotFound
	}

	next := slices.Clone(s.tallySheets)
	next[i] = next[i].Clone()
	next[i].Status = status
	s.tallySheets = next
	return next[i].Clone(), nil
}

func (s *Store) tallySheetIndex(sheetID id.TallySheetID) int {
	return slices.IndexFunc(s.tallySheets, func(t models.TallySheet) bool {
		return t.ID == sheetID
	})
}

func (s *Store) sheetIndexForTable(tableID id.TableID) int {
	return slices.IndexFunc(s.tallySheets, func(t models.TallySheet) bool {
		return t.TableID == tableID
	})
}
