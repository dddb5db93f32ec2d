package application_test

import (
	"context"
	"testing"

	"freshbit/internal/application"
	applicationerrors "freshbit/internal/application/errors"
	applicationMock "freshbit/internal/application/mock"
	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	driveMock "freshbit/internal/drive/mock"
	"freshbit/internal/events"
	"freshbit/internal/invitation"
	invitationerrors "freshbit/internal/invitation/errors"
	invitationMock "freshbit/internal/invitation/mock"
	"freshbit/internal/messaging/kafka/kafkatest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type appDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *applicationMock.MockRepository
	drives   *driveMock.MockRepository
	bindings *invitationMock.MockRepository
	outbox   *kafkatest.Outbox
	service  application.Service
}

func setup(t *testing.T) *appDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	d := &appDeps{
		sqlMock:  mock,
		repo:     applicationMock.NewMockRepository(ctrl),
		drives:   driveMock.NewMockRepository(ctrl),
		bindings: invitationMock.NewMockRepository(ctrl),
		outbox:   &kafkatest.Outbox{},
	}
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo).AnyTimes()
	d.drives.EXPECT().WithTx(gomock.Any()).Return(d.drives).AnyTimes()
	d.bindings.EXPECT().WithTx(gomock.Any()).Return(d.bindings).AnyTimes()
	d.service = application.NewService(db, d.repo, d.drives, d.bindings, d.outbox)
	return d
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// stagesUpTo pipeline dengan stage sebelum active COMPLETED dan active ACTIVE.
func stagesUpTo(active drive.StageName) []drive.Stage {
	var out []drive.Stage
	for _, name := range drive.StageOrder {
		st := drive.Stage{Name: name, Status: drive.StagePending}
		switch {
		case name.Position() < active.Position():
			st.Status = drive.StageCompleted
		case name == active:
			st.Status = drive.StageActive
		}
		out = append(out, st)
	}
	return out
}

func TestCreateApplications(t *testing.T) {
	ctx := context.Background()
	collegeID := uuid.New()
	college := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: collegeID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: uuid.New(), Status: drive.StatusPublished}
	accepted := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByAdmin}

	t.Run("only linked students, duplicates skipped", func(t *testing.T) {
		deps := setup(t)
		linkedA, linkedB, stranger := uuid.New(), uuid.New(), uuid.New()

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(accepted, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageApplications), nil)
		deps.repo.EXPECT().LinkedStudents(ctx, d.ID, collegeID).Return([]uuid.UUID{linkedA, linkedB}, nil)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *application.Application) (bool, error) {
			assert.Equal(t, application.StatusApplied, a.Status)
			assert.Equal(t, collegeID, a.CollegeID)
			// linkedB sudah pernah dilamar
			return a.StudentID == linkedA, nil
		}).Times(2)

		res, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{
			StudentIDs: []string{linkedA.String(), stranger.String(), linkedB.String(), linkedA.String()},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 2, res.Skipped)
		assert.Equal(t, 1, res.NotEligible)

		var outcomes []string
		for _, r := range res.Results {
			outcomes = append(outcomes, r.Outcome)
		}
		assert.Equal(t, []string{
			application.OutcomeCreated,
			application.OutcomeNotEligible,
			application.OutcomeSkippedDuplicate,
			application.OutcomeSkippedDuplicate,
		}, outcomes)
	})

	t.Run("empty list applies every linked student", func(t *testing.T) {
		deps := setup(t)
		linked := []uuid.UUID{uuid.New(), uuid.New()}

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(accepted, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageApplications), nil)
		deps.repo.EXPECT().LinkedStudents(ctx, d.ID, collegeID).Return(linked, nil)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil).Times(2)

		res, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Created)
	})

	t.Run("pipeline past APPLICATIONS fails the batch", func(t *testing.T) {
		deps := setup(t)
		expectTx(deps.sqlMock, false)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(accepted, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageInterview), nil)

		_, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{StudentIDs: []string{uuid.NewString()}})
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationsShut)
	})

	t.Run("college managed binding is gated by its own pipeline", func(t *testing.T) {
		deps := setup(t)
		own := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege}
		student := uuid.New()

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(own, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Return(stagesUpTo(drive.StageApplications), nil)
		deps.repo.EXPECT().LinkedStudents(ctx, d.ID, collegeID).Return([]uuid.UUID{student}, nil)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)

		res, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
	})

	t.Run("finished pipeline has no active stage", func(t *testing.T) {
		deps := setup(t)
		done := stagesUpTo(drive.StageFinal)
		done[len(done)-1].Status = drive.StageCompleted

		expectTx(deps.sqlMock, false)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(accepted, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(done, nil)

		_, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{})
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationsShut)
	})

	t.Run("pending binding is forbidden", func(t *testing.T) {
		deps := setup(t)
		expectTx(deps.sqlMock, false)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).
			Return(&invitation.Binding{InvitationStatus: invitation.StatusPending}, nil)

		_, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{})
		assert.ErrorIs(t, err, invitationerrors.ErrInvitationNotAccepted)
	})

	t.Run("draft drive", func(t *testing.T) {
		deps := setup(t)
		expectTx(deps.sqlMock, false)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(&drive.Drive{ID: d.ID, Status: drive.StatusDraft}, nil)

		_, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{})
		assert.ErrorIs(t, err, driveerrors.ErrDriveNotPublished)
	})

	t.Run("admin must name the college", func(t *testing.T) {
		deps := setup(t)
		_, err := deps.service.CreateApplications(ctx, domain.Principal{Role: domain.RoleAdmin}, d.ID, application.CreateRequest{})
		assert.ErrorIs(t, err, applicationerrors.ErrCollegeRequired)
	})

	t.Run("college acting for another college", func(t *testing.T) {
		deps := setup(t)
		_, err := deps.service.CreateApplications(ctx, college, d.ID, application.CreateRequest{CollegeID: uuid.NewString()})
		assert.ErrorIs(t, err, invitationerrors.ErrNotInvitedCollege)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	companyID, collegeID := uuid.New(), uuid.New()
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: companyID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: companyID, Title: "SDE", Status: drive.StatusPublished}
	app := func(status application.Status) *application.Application {
		return &application.Application{ID: uuid.New(), DriveID: d.ID, StudentID: uuid.New(), CollegeID: collegeID, Status: status}
	}
	collegeManaged := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege}
	adminManaged := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByAdmin}

	t.Run("advances when stage reached in college scope", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(collegeManaged, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Return(stagesUpTo(drive.StageTest), nil)
		deps.repo.EXPECT().CompareAndSetStatus(ctx, a.ID, application.StatusApplied, application.StatusInTest, gomock.Any()).Return(true, nil)

		resp, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "IN_TEST"})
		require.NoError(t, err)
		assert.Equal(t, "IN_TEST", resp.Status)

		require.Equal(t, []string{events.EventApplicationStatusChanged}, deps.outbox.EventTypes())
		var ev events.DriveEvent
		require.NoError(t, deps.outbox.Decode(0, &ev))
		assert.Equal(t, "IN_TEST", ev.Status)
		assert.Equal(t, 1, ev.Count)
	})

	t.Run("admin managed college follows drive pipeline", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(adminManaged, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageTest), nil)
		deps.repo.EXPECT().CompareAndSetStatus(ctx, a.ID, application.StatusApplied, application.StatusInTest, gomock.Any()).Return(true, nil)

		resp, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "IN_TEST"})
		require.NoError(t, err)
		assert.Equal(t, "IN_TEST", resp.Status)
	})

	t.Run("unseeded college scope falls back to drive scope", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusInInterview)

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).Return(collegeManaged, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Return(nil, nil)
		deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageInterview), nil)

		_, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "SELECTED"})
		assert.ErrorIs(t, err, applicationerrors.ErrStageNotReached)
	})

	t.Run("reject is not stage gated", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().CompareAndSetStatus(ctx, a.ID, application.StatusApplied, application.StatusRejected, gomock.Any()).Return(true, nil)

		resp, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "REJECTED"})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
	})

	t.Run("selected is immutable", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusSelected)

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)

		_, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "REJECTED"})
		assert.ErrorIs(t, err, applicationerrors.ErrImmutable)
	})

	t.Run("skipping a status", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)

		_, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "SHORTLISTED"})
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidTransition)
	})

	t.Run("lost compare-and-set", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().CompareAndSetStatus(ctx, a.ID, application.StatusApplied, application.StatusRejected, gomock.Any()).Return(false, nil)

		_, err := deps.service.UpdateStatus(ctx, owner, a.ID, application.UpdateStatusRequest{Status: "REJECTED"})
		assert.ErrorIs(t, err, applicationerrors.ErrStatusChanged)
	})

	t.Run("other company", func(t *testing.T) {
		deps := setup(t)
		a := app(application.StatusApplied)

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)

		other := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()}
		_, err := deps.service.UpdateStatus(ctx, other, a.ID, application.UpdateStatusRequest{Status: "REJECTED"})
		assert.ErrorIs(t, err, driveerrors.ErrNotDriveOwner)
	})

	t.Run("unknown application", func(t *testing.T) {
		deps := setup(t)
		id := uuid.New()
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, owner, id, application.UpdateStatusRequest{Status: "REJECTED"})
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestBulk_PartialSuccess(t *testing.T) {
	ctx := context.Background()
	companyID, collegeID := uuid.New(), uuid.New()
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: companyID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: companyID, Status: drive.StatusPublished}
	deps := setup(t)

	ready := application.Application{ID: uuid.New(), StudentID: uuid.New(), CollegeID: collegeID, Status: application.StatusInTest}
	early := application.Application{ID: uuid.New(), StudentID: uuid.New(), CollegeID: collegeID, Status: application.StatusApplied}
	raced := application.Application{ID: uuid.New(), StudentID: uuid.New(), CollegeID: collegeID, Status: application.StatusInTest}
	missing := uuid.New()

	expectTx(deps.sqlMock, true)
	deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
	deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).
		Return(&invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege}, nil)
	deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Return(stagesUpTo(drive.StageShortlist), nil)
	deps.repo.EXPECT().FindByStudents(ctx, d.ID, collegeID, gomock.Len(4)).Return([]application.Application{ready, early, raced}, nil)
	deps.repo.EXPECT().CompareAndSetStatus(ctx, ready.ID, application.StatusInTest, application.StatusShortlisted, gomock.Any()).Return(true, nil)
	deps.repo.EXPECT().CompareAndSetStatus(ctx, raced.ID, application.StatusInTest, application.StatusShortlisted, gomock.Any()).Return(false, nil)

	res, err := deps.service.Bulk(ctx, owner, d.ID, application.StatusShortlisted, application.BulkRequest{
		StudentIDs: []string{ready.StudentID.String(), early.StudentID.String(), missing.String(), raced.StudentID.String()},
		CollegeID:  collegeID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 1, res.NotFound)

	assert.Equal(t, application.OutcomeApplied, res.Results[0].Outcome)
	assert.Equal(t, application.OutcomeSkippedWrongState, res.Results[1].Outcome)
	assert.Equal(t, application.OutcomeNotFound, res.Results[2].Outcome)
	assert.Equal(t, application.OutcomeSkippedWrongState, res.Results[3].Outcome)

	require.Equal(t, []string{events.EventApplicationStatusChanged}, deps.outbox.EventTypes())
	var ev events.DriveEvent
	require.NoError(t, deps.outbox.Decode(0, &ev))
	assert.Equal(t, 1, ev.Count)
}

func TestBulk_StageGateFailsBatch(t *testing.T) {
	ctx := context.Background()
	companyID, collegeID := uuid.New(), uuid.New()
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: companyID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: companyID, Status: drive.StatusPublished}
	deps := setup(t)

	expectTx(deps.sqlMock, false)
	deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
	deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).
		Return(&invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege}, nil)
	deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Return(stagesUpTo(drive.StageTest), nil)

	_, err := deps.service.Bulk(ctx, owner, d.ID, application.StatusInInterview, application.BulkRequest{
		StudentIDs: []string{uuid.NewString()},
		CollegeID:  collegeID.String(),
	})
	assert.ErrorIs(t, err, applicationerrors.ErrStageNotReached)
	assert.Empty(t, deps.outbox.Events())
}

func TestBulk_AdminManagedFollowsDrivePipeline(t *testing.T) {
	ctx := context.Background()
	companyID, collegeID := uuid.New(), uuid.New()
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: companyID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: companyID, Status: drive.StatusPublished}
	deps := setup(t)

	tested := application.Application{ID: uuid.New(), StudentID: uuid.New(), CollegeID: collegeID, Status: application.StatusInTest}

	expectTx(deps.sqlMock, true)
	deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
	deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).
		Return(&invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByAdmin}, nil)
	// scope college tidak pernah dibaca untuk binding ADMIN
	deps.drives.EXPECT().ListStages(ctx, d.ID, collegeID).Times(0)
	deps.drives.EXPECT().ListStages(ctx, d.ID, uuid.Nil).Return(stagesUpTo(drive.StageShortlist), nil)
	deps.repo.EXPECT().FindByStudents(ctx, d.ID, collegeID, gomock.Len(1)).Return([]application.Application{tested}, nil)
	deps.repo.EXPECT().CompareAndSetStatus(ctx, tested.ID, application.StatusInTest, application.StatusShortlisted, gomock.Any()).Return(true, nil)

	res, err := deps.service.Bulk(ctx, owner, d.ID, application.StatusShortlisted, application.BulkRequest{
		StudentIDs: []string{tested.StudentID.String()},
		CollegeID:  collegeID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
}

func TestList_CollegeSeesOwnApplicationsOnly(t *testing.T) {
	ctx := context.Background()
	collegeID := uuid.New()
	college := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: collegeID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: uuid.New(), Status: drive.StatusPublished}
	deps := setup(t)

	deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
	deps.bindings.EXPECT().Get(ctx, d.ID, collegeID, false).
		Return(&invitation.Binding{InvitationStatus: invitation.StatusAccepted}, nil)
	deps.repo.EXPECT().List(ctx, d.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, f application.ListFilter) ([]application.ApplicationView, int64, error) {
			assert.Equal(t, collegeID, f.CollegeID)
			return []application.ApplicationView{{Application: application.Application{ID: uuid.New(), Status: application.StatusApplied}, StudentName: "Asha"}}, 1, nil
		})

	rows, total, err := deps.service.List(ctx, college, d.ID, application.ListFilter{CollegeID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Asha", rows[0].StudentName)
}
