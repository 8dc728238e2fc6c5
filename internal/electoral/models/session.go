package models

import id "escrutinio/pkg/domain"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// Identity is who the current session belongs to. TableID is only meaningful
// for agents and reflects the assignment at the time the identity was read.
type Identity struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Role    Role       `json:"role"`
	TableID id.TableID `json:"table_id,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsAgent() bool {
	return i.Role == RoleAgent
}

// AdminAccount is one entry of the administrator allow-list.
type AdminAccount struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
}
