package application

import (
	applicationerrors "freshbit/internal/application/errors"
	"freshbit/internal/drive"
)

type Status string

const (
	StatusApplied     Status = "APPLIED"
	StatusInTest      Status = "IN_TEST"
	StatusShortlisted Status = "SHORTLISTED"
	StatusInInterview Status = "IN_INTERVIEW"
	StatusSelected    Status = "SELECTED"
	StatusRejected    Status = "REJECTED"
)

// forward urutan maju. REJECTED di luar urutan.
var forward = []Status{StatusApplied, StatusInTest, StatusShortlisted, StatusInInterview, StatusSelected}

func (s Status) rank() int {
	for i, v := range forward {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool { return s == StatusRejected || s.rank() >= 0 }

func (s Status) Terminal() bool { return s == StatusSelected || s == StatusRejected }

// CheckTransition hanya satu langkah maju, atau REJECTED dari status non-terminal.
func CheckTransition(from, to Status) error {
	if from.Terminal() {
		return applicationerrors.ErrImmutable
	}
	if !to.Valid() || !from.Valid() {
		return applicationerrors.ErrInvalidTransition
	}
	if to == StatusRejected {
		return nil
	}
	if to.rank() != from.rank()+1 {
		return applicationerrors.ErrInvalidTransition
	}
	return nil
}

// RequiredStage stage pipeline yang harus sudah tercapai sebelum status to boleh dipakai.
func RequiredStage(to Status) (drive.StageName, bool) {
	switch to {
	case StatusInTest:
		return drive.StageTest, true
	case StatusShortlisted:
		return drive.StageShortlist, true
	case StatusInInterview:
		return drive.StageInterview, true
	case StatusSelected:
		return drive.StageFinal, true
	}
	return "", false
}
