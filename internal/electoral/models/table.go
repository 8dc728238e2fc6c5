package models

import (
	"strings"

	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
)

// Table is a polling table (mesa). TotalVoters is the reconciliation target
// for the tally sheet filed against it.
//
// Province and District hold reference-data names, not IDs.
type Table struct {
	ID          id.TableID `json:"id"`
	Number      string     `json:"number"`
	Locale      string     `json:"locale"`
	Department  string     `json:"department"`
	Province    string     `json:"province"`
	District    string     `json:"district"`
	TotalVoters int        `json:"total_voters"`
}

type TableRequest struct {
	Number      string `json:"number"`
	Locale      string `json:"locale"`
	Department  string `json:"department"`
	Province    string `json:"province"`
	District    string `json:"district"`
	TotalVoters int    `json:"total_voters"`
}

func (r *TableRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	r.Locale = strings.TrimSpace(r.Locale)
	r.Department = strings.TrimSpace(r.Department)
	r.Province = strings.TrimSpace(r.Province)
	r.District = strings.TrimSpace(r.District)
}

func (r *TableRequest) Validate() error {
	switch {
	case r.Number == "":
		return dErrors.New(dErrors.CodeValidation, "table number is required")
	case r.Locale == "":
		return dErrors.New(dErrors.CodeValidation, "voting locale is required")
	case r.Province == "":
		return dErrors.New(dErrors.CodeValidation, "province is required")
	case r.District == "":
		return dErrors.New(dErrors.CodeValidation, "district is required")
	case r.TotalVoters < 1:
		return dErrors.New(dErrors.CodeValidation, "total voters must be greater than 0")
	}
	return nil
}

func (r TableRequest) Apply(tableID id.TableID) Table {
	return Table{
		ID:          tableID,
		Number:      r.Number,
		Locale:      r.Locale,
		Department:  r.Department,
		Province:    r.Province,
		District:    r.District,
		TotalVoters: r.TotalVoters,
	}
}
