package application_test

import (
	"testing"

	"freshbit/internal/application"
	applicationerrors "freshbit/internal/application/errors"
	"freshbit/internal/drive"

	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from, to application.Status
		want     error
	}{
		{application.StatusApplied, application.StatusInTest, nil},
		{application.StatusInTest, application.StatusShortlisted, nil},
		{application.StatusShortlisted, application.StatusInInterview, nil},
		{application.StatusInInterview, application.StatusSelected, nil},
		{application.StatusApplied, application.StatusRejected, nil},
		{application.StatusInInterview, application.StatusRejected, nil},

		{application.StatusApplied, application.StatusShortlisted, applicationerrors.ErrInvalidTransition},
		{application.StatusShortlisted, application.StatusInTest, applicationerrors.ErrInvalidTransition},
		{application.StatusInTest, application.StatusInTest, applicationerrors.ErrInvalidTransition},
		{application.StatusApplied, application.Status("HIRED"), applicationerrors.ErrInvalidTransition},

		{application.StatusSelected, application.StatusRejected, applicationerrors.ErrImmutable},
		{application.StatusRejected, application.StatusApplied, applicationerrors.ErrImmutable},
		{application.StatusSelected, application.StatusSelected, applicationerrors.ErrImmutable},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := application.CheckTransition(tt.from, tt.to)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequiredStage(t *testing.T) {
	cases := map[application.Status]drive.StageName{
		application.StatusInTest:      drive.StageTest,
		application.StatusShortlisted: drive.StageShortlist,
		application.StatusInInterview: drive.StageInterview,
		application.StatusSelected:    drive.StageFinal,
	}
	for status, stage := range cases {
		got, gated := application.RequiredStage(status)
		assert.True(t, gated, status)
		assert.Equal(t, stage, got)
	}

	_, gated := application.RequiredStage(application.StatusRejected)
	assert.False(t, gated)
	_, gated = application.RequiredStage(application.StatusApplied)
	assert.False(t, gated)
}
