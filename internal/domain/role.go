package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCompany Role = "COMPANY"
	RoleCollege Role = "COLLEGE"
)

var Roles = []Role{RoleAdmin, RoleCompany, RoleCollege}

func ParseRole(v string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCompany:
		return RoleCompany, nil
	case RoleCollege:
		return RoleCollege, nil
	default:
		return "", fmt.Errorf("unknown role %q", v)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// RoleCases must provide a branch for every role. A new role means a new
// field here, so every MatchRole call site stops compiling until handled.
type RoleCases[T any] struct {
	Admin   func() T
	Company func() T
	College func() T
}

func MatchRole[T any](r Role, cases RoleCases[T]) (T, error) {
	var zero T
	switch r {
	case RoleAdmin:
		return cases.Admin(), nil
	case RoleCompany:
		return cases.Company(), nil
	case RoleCollege:
		return cases.College(), nil
	default:
		return zero, fmt.Errorf("unknown role %q", r)
	}
}

// Principal identitas pemanggil yang sudah terautentikasi.
// OrgID = company id untuk COMPANY, college id untuk COLLEGE, uuid.Nil untuk ADMIN.
type Principal struct {
	UserID uuid.UUID
	Role   Role
	OrgID  uuid.UUID
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsCompany() bool { return p.Role == RoleCompany }
func (p Principal) IsCollege() bool { return p.Role == RoleCollege }

// OwnsCompany true kalau principal adalah company dengan id tersebut.
func (p Principal) OwnsCompany(companyID uuid.UUID) bool {
	return p.Role == RoleCompany && p.OrgID != uuid.Nil && p.OrgID == companyID
}

func (p Principal) OwnsCollege(collegeID uuid.UUID) bool {
	return p.Role == RoleCollege && p.OrgID != uuid.Nil && p.OrgID == collegeID
}
