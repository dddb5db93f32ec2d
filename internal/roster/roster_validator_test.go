package roster_test

import (
	"testing"

	"freshbit/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	rows := []roster.Row{
		{Line: 2, Name: "Asha", Email: "Asha@Example.com", CGPA: "8.5", GraduationYear: "2025"},
		{Line: 3, Name: "", Email: "not-an-email"},
		{Line: 4, Name: "Asha Again", Email: "asha@example.com "},
		{Line: 5, Name: "Old Timer", Email: "old@example.com"},
		{Line: 6, Name: "Bad Grade", Email: "grade@example.com", CGPA: "eleven"},
		{Line: 7, Name: "High Grade", Email: "high@example.com", CGPA: "10.5"},
		{Line: 8, Name: "Bad Year", Email: "year@example.com", GraduationYear: "25"},
		{Line: 9, Name: "Edge", Email: "edge@example.com", CGPA: "0", GraduationYear: "2030"},
	}

	res := roster.Validate(rows, map[string]bool{"old@example.com": true})
	require.Len(t, res.Rows, len(rows))
	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 2, res.Valid)
	assert.Equal(t, 6, res.Invalid)

	for i, r := range res.Rows {
		assert.Equal(t, rows[i].Line, r.Row.Line, "order preserved")
		if !r.Valid {
			assert.NotEmpty(t, r.Reasons)
		}
	}

	first := res.Rows[0]
	assert.True(t, first.Valid)
	assert.Equal(t, "asha@example.com", first.Row.Email)
	require.NotNil(t, first.CGPA)
	assert.Equal(t, 8.5, *first.CGPA)
	require.NotNil(t, first.GraduationYear)
	assert.Equal(t, 2025, *first.GraduationYear)

	assert.ElementsMatch(t, []string{roster.ReasonNameRequired, roster.ReasonInvalidEmail}, res.Rows[1].Reasons)
	assert.Equal(t, []string{roster.ReasonDuplicate}, res.Rows[2].Reasons)
	assert.Equal(t, []string{roster.ReasonAlreadyExists}, res.Rows[3].Reasons)
	assert.Equal(t, []string{roster.ReasonCGPANumber}, res.Rows[4].Reasons)
	assert.Equal(t, []string{roster.ReasonCGPARange}, res.Rows[5].Reasons)
	assert.Equal(t, []string{roster.ReasonGradYear}, res.Rows[6].Reasons)
	assert.True(t, res.Rows[7].Valid)
}

func TestValidate_WithoutExistingSet(t *testing.T) {
	res := roster.Validate([]roster.Row{{Name: "A", Email: "a@example.com"}}, nil)
	assert.Equal(t, 1, res.Valid)
}

func TestEmails(t *testing.T) {
	got := roster.Emails([]roster.Row{
		{Email: "A@x.com"}, {Email: "a@x.com"}, {Email: ""}, {Email: " b@x.com"},
	})
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, got)
}
