package domain

import dErrors "escrutinio/pkg/domain-errors"

// TallyStatus is the review state of a tally sheet.
//
// Any status may move to any other through an explicit status change; the data
// layer treats none of them as terminal.
type TallyStatus string

const (
	TallyStatusSubmitted TallyStatus = "submitted"
	TallyStatusFlagged   TallyStatus = "flagged"
	TallyStatusValidated TallyStatus = "validated"
)

var validTallyStatuses = map[TallyStatus]bool{
	TallyStatusSubmitted: true,
	TallyStatusFlagged:   true,
	TallyStatusValidated: true,
}

// ParseTallyStatus constructs a TallyStatus from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseTallyStatus(s string) (TallyStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := TallyStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid status")
	}
	return st, nil
}

func (s TallyStatus) IsValid() bool {
	return validTallyStatuses[s]
}

func (s TallyStatus) String() string {
	return string(s)
}

// TallyStatuses lists the statuses in review order.
func TallyStatuses() []TallyStatus {
	return []TallyStatus{TallyStatusSubmitted, TallyStatusFlagged, TallyStatusValidated}
}
