package models

import id "escrutinio/pkg/domain"

// Province and District are static reference data seeded at startup.
type Province struct {
	ID   id.ProvinceID `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
}

type District struct {
	ID         id.DistrictID `json:"id" yaml:"id"`
	ProvinceID id.ProvinceID `json:"province_id" yaml:"province_id"`
	Name       string        `json:"name" yaml:"name"`
}
