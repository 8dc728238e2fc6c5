package domain

import dErrors "escrutinio/pkg/domain-errors"

// NationalIDLength is the fixed length of a DNI.
const NationalIDLength = 8

// NationalID is an 8-digit national identity number (DNI).
// Invariant: exactly NationalIDLength ASCII digits, no surrounding spaces.
type NationalID string

// IsValid reports whether the value is exactly eight ASCII digits.
func (n NationalID) IsValid() bool {
	if len(n) != NationalIDLength {
		return false
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return false
		}
	}
	return true
}

func (n NationalID) String() string {
	return string(n)
}

// ParseNationalID constructs a NationalID from external input. The input is
// not trimmed: " 12345678" is rejected like any other malformed value.
func ParseNationalID(s string) (NationalID, error) {
	n := NationalID(s)
	if !n.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "national id must be exactly 8 digits")
	}
	return n, nil
}
