package domain_test

import (
	"testing"

	"freshbit/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(" college ")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCollege, r)

	_, err = domain.ParseRole("STUDENT")
	assert.Error(t, err)
	assert.False(t, domain.Role("STUDENT").Valid())
}

func TestMatchRole(t *testing.T) {
	cases := domain.RoleCases[string]{
		Admin:   func() string { return "/admin" },
		Company: func() string { return "/company" },
		College: func() string { return "/college" },
	}

	for _, r := range domain.Roles {
		got, err := domain.MatchRole(r, cases)
		assert.NoError(t, err)
		assert.NotEmpty(t, got)
	}

	_, err := domain.MatchRole(domain.Role("GUEST"), cases)
	assert.Error(t, err)
}

func TestPrincipalOwnership(t *testing.T) {
	orgID := uuid.New()
	company := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: orgID}
	college := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: orgID}

	assert.True(t, company.OwnsCompany(orgID))
	assert.False(t, company.OwnsCollege(orgID))
	assert.True(t, college.OwnsCollege(orgID))
	assert.False(t, college.OwnsCompany(orgID))
	assert.False(t, domain.Principal{Role: domain.RoleCompany}.OwnsCompany(uuid.Nil))
}
