package invitation_test

import (
	"context"
	"testing"
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/drive"
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

type fakeColleges map[uuid.UUID]bool

func (f fakeColleges) Approvals(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := map[uuid.UUID]bool{}
	for _, id := range ids {
		if v, ok := f[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

type invitationDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *invitationMock.MockRepository
	drives  *driveMock.MockRepository
	outbox  *kafkatest.Outbox
	service invitation.Service
}

func setup(t *testing.T, colleges fakeColleges) *invitationDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	d := &invitationDeps{
		sqlMock: mock,
		repo:    invitationMock.NewMockRepository(ctrl),
		drives:  driveMock.NewMockRepository(ctrl),
		outbox:  &kafkatest.Outbox{},
	}
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo).AnyTimes()
	d.drives.EXPECT().WithTx(gomock.Any()).Return(d.drives).AnyTimes()
	d.service = invitation.NewService(db, d.repo, d.drives, colleges, d.outbox)
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

func TestInvite_SecondInviteIsSkipped(t *testing.T) {
	ctx := context.Background()
	collegeID := uuid.New()
	deps := setup(t, fakeColleges{collegeID: true})
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()}
	d := &drive.Drive{ID: uuid.New(), CompanyID: owner.OrgID, Title: "SDE", Status: drive.StatusPublished}
	req := invitation.InviteRequest{CollegeIDs: []string{collegeID.String()}}

	bound := map[uuid.UUID]bool{}
	deps.drives.EXPECT().GetForUpdate(ctx, d.ID).Return(d, nil).Times(2)
	deps.repo.EXPECT().InsertIfAbsent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *invitation.Binding) (bool, error) {
		assert.Equal(t, invitation.StatusPending, b.InvitationStatus)
		assert.Equal(t, invitation.ManagedByCollege, b.ManagedBy)
		if bound[b.CollegeID] {
			return false, nil
		}
		bound[b.CollegeID] = true
		return true, nil
	}).Times(2)

	expectTx(deps.sqlMock, true)
	first, err := deps.service.Invite(ctx, owner, d.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, invitation.OutcomeCreated, first.Results[0].Outcome)

	expectTx(deps.sqlMock, true)
	second, err := deps.service.Invite(ctx, owner, d.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, invitation.OutcomeSkippedConflict, second.Results[0].Outcome)

	assert.Equal(t, []string{events.EventCollegeInvited}, deps.outbox.EventTypes())
}

func TestInvite_PerCollegeOutcomes(t *testing.T) {
	ctx := context.Background()
	approved, pending, ghost := uuid.New(), uuid.New(), uuid.New()
	deps := setup(t, fakeColleges{approved: true, pending: false})
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()}
	d := &drive.Drive{ID: uuid.New(), CompanyID: owner.OrgID, Status: drive.StatusDraft}

	expectTx(deps.sqlMock, true)
	deps.drives.EXPECT().GetForUpdate(ctx, d.ID).Return(d, nil)
	deps.repo.EXPECT().InsertIfAbsent(ctx, gomock.Any()).Return(true, nil)

	result, err := deps.service.Invite(ctx, owner, d.ID, invitation.InviteRequest{
		CollegeIDs: []string{approved.String(), pending.String(), ghost.String(), approved.String()},
		ManagedBy:  "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.Failed)

	outcomes := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		outcomes = append(outcomes, r.Outcome)
	}
	assert.Equal(t, []string{
		invitation.OutcomeCreated,
		invitation.OutcomeNotApproved,
		invitation.OutcomeNotFound,
		invitation.OutcomeSkippedConflict,
	}, outcomes)
}

func TestInvite_ClosedDrive(t *testing.T) {
	ctx := context.Background()
	deps := setup(t, fakeColleges{})
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: uuid.New()}
	d := &drive.Drive{ID: uuid.New(), CompanyID: owner.OrgID, Status: drive.StatusClosed}

	expectTx(deps.sqlMock, false)
	deps.drives.EXPECT().GetForUpdate(ctx, d.ID).Return(d, nil)

	_, err := deps.service.Invite(ctx, owner, d.ID, invitation.InviteRequest{CollegeIDs: []string{uuid.NewString()}})
	assert.ErrorIs(t, err, invitationerrors.ErrDriveClosed)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	collegeID := uuid.New()
	college := domain.Principal{UserID: uuid.New(), Role: domain.RoleCollege, OrgID: collegeID}
	d := &drive.Drive{ID: uuid.New(), CompanyID: uuid.New(), Title: "SDE", Status: drive.StatusPublished}

	t.Run("accept seeds college pipeline", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{ID: uuid.New(), DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusPending, ManagedBy: invitation.ManagedByCollege, InvitedAt: time.Now()}

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, b.ID, true).Return(b, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.drives.EXPECT().SeedStages(ctx, d.ID, collegeID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SaveResponse(ctx, b).Return(nil)

		resp, err := deps.service.Respond(ctx, college, b.ID, invitation.RespondRequest{Decision: "ACCEPT"})
		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", resp.InvitationStatus)
		assert.Equal(t, "APPLICATIONS", resp.CurrentStage)
		assert.Equal(t, []string{events.EventInvitationResponded}, deps.outbox.EventTypes())
	})

	t.Run("accept on admin managed binding keeps drive pipeline", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{ID: uuid.New(), DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusPending, ManagedBy: invitation.ManagedByAdmin, InvitedAt: time.Now()}

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, b.ID, true).Return(b, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.drives.EXPECT().SeedStages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().SaveResponse(ctx, b).Return(nil)

		resp, err := deps.service.Respond(ctx, college, b.ID, invitation.RespondRequest{Decision: "ACCEPT"})
		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", resp.InvitationStatus)
		assert.Empty(t, resp.CurrentStage)
	})

	t.Run("reject keeps reason", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{ID: uuid.New(), DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusPending}

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().GetByID(ctx, b.ID, true).Return(b, nil)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().SaveResponse(ctx, b).Return(nil)

		resp, err := deps.service.Respond(ctx, college, b.ID, invitation.RespondRequest{Decision: "REJECT", Reason: " exams clash "})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.InvitationStatus)
		assert.Equal(t, "exams clash", resp.RejectionReason)
	})

	t.Run("already accepted cannot be rejected", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{ID: uuid.New(), DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted}

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, b.ID, true).Return(b, nil)

		_, err := deps.service.Respond(ctx, college, b.ID, invitation.RespondRequest{Decision: "REJECT"})
		assert.ErrorIs(t, err, invitationerrors.ErrInvitationNotPending)
	})

	t.Run("other college is forbidden", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{ID: uuid.New(), DriveID: d.ID, CollegeID: uuid.New(), InvitationStatus: invitation.StatusPending}

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, b.ID, true).Return(b, nil)

		_, err := deps.service.Respond(ctx, college, b.ID, invitation.RespondRequest{Decision: "ACCEPT"})
		assert.ErrorIs(t, err, invitationerrors.ErrNotInvitedCollege)
	})

	t.Run("unknown invitation", func(t *testing.T) {
		deps := setup(t, nil)
		id := uuid.New()

		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().GetByID(ctx, id, true).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Respond(ctx, college, id, invitation.RespondRequest{Decision: "ACCEPT"})
		assert.ErrorIs(t, err, invitationerrors.ErrInvitationNotFound)
	})
}

func TestUpdateBinding(t *testing.T) {
	ctx := context.Background()
	companyID, collegeID := uuid.New(), uuid.New()
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleCompany, OrgID: companyID}
	admin := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	d := &drive.Drive{ID: uuid.New(), CompanyID: companyID, Status: drive.StatusPublished}
	accepted := "ACCEPTED"
	adminMode := "ADMIN"

	t.Run("company cannot override status", func(t *testing.T) {
		deps := setup(t, nil)
		_, err := deps.service.UpdateBinding(ctx, owner, d.ID, collegeID, invitation.UpdateBindingRequest{InvitationStatus: &accepted})
		assert.ErrorIs(t, err, invitationerrors.ErrStatusOverrideAdminOnly)
	})

	t.Run("company switches delegation", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege}

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().Get(ctx, d.ID, collegeID, true).Return(b, nil)
		deps.repo.EXPECT().SaveBinding(ctx, b).Return(nil)

		resp, err := deps.service.UpdateBinding(ctx, owner, d.ID, collegeID, invitation.UpdateBindingRequest{ManagedBy: &adminMode})
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.ManagedBy)
	})

	t.Run("admin accept override on admin managed binding seeds nothing", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusPending, ManagedBy: invitation.ManagedByAdmin}

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().Get(ctx, d.ID, collegeID, true).Return(b, nil)
		deps.drives.EXPECT().SeedStages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().SaveBinding(ctx, b).Return(nil)

		resp, err := deps.service.UpdateBinding(ctx, admin, d.ID, collegeID, invitation.UpdateBindingRequest{InvitationStatus: &accepted})
		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", resp.InvitationStatus)
		assert.NotNil(t, resp.RespondedAt)
	})

	t.Run("switch to college delegation seeds college pipeline", func(t *testing.T) {
		deps := setup(t, nil)
		collegeMode := "COLLEGE"
		b := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByAdmin}

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().Get(ctx, d.ID, collegeID, true).Return(b, nil)
		deps.drives.EXPECT().SeedStages(ctx, d.ID, collegeID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SaveBinding(ctx, b).Return(nil)

		resp, err := deps.service.UpdateBinding(ctx, owner, d.ID, collegeID, invitation.UpdateBindingRequest{ManagedBy: &collegeMode})
		require.NoError(t, err)
		assert.Equal(t, "COLLEGE", resp.ManagedBy)
		assert.Equal(t, "APPLICATIONS", resp.CurrentStage)
	})

	t.Run("admin accept override on college managed binding seeds pipeline", func(t *testing.T) {
		deps := setup(t, nil)
		b := &invitation.Binding{DriveID: d.ID, CollegeID: collegeID, InvitationStatus: invitation.StatusPending, ManagedBy: invitation.ManagedByCollege}

		expectTx(deps.sqlMock, true)
		deps.drives.EXPECT().GetByID(ctx, d.ID).Return(d, nil)
		deps.repo.EXPECT().Get(ctx, d.ID, collegeID, true).Return(b, nil)
		deps.drives.EXPECT().SeedStages(ctx, d.ID, collegeID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SaveBinding(ctx, b).Return(nil)

		resp, err := deps.service.UpdateBinding(ctx, admin, d.ID, collegeID, invitation.UpdateBindingRequest{InvitationStatus: &accepted})
		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", resp.InvitationStatus)
		assert.NotNil(t, resp.RespondedAt)
	})
}

func TestStageAuthorizer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := invitationMock.NewMockRepository(ctrl)
	auth := invitation.NewStageAuthorizer(repo)

	collegeID := uuid.New()
	d := &drive.Drive{ID: uuid.New(), CompanyID: uuid.New()}
	college := domain.Principal{Role: domain.RoleCollege, OrgID: collegeID}

	repo.EXPECT().Get(ctx, d.ID, collegeID, false).Return(nil, gorm.ErrRecordNotFound)
	_, err := auth.AuthorizeStageAdvance(ctx, d, collegeID, college)
	assert.ErrorIs(t, err, invitationerrors.ErrCollegeNotInvited)

	repo.EXPECT().Get(ctx, d.ID, collegeID, false).Return(&invitation.Binding{
		CollegeID: collegeID, InvitationStatus: invitation.StatusPending, ManagedBy: invitation.ManagedByCollege,
	}, nil)
	_, err = auth.AuthorizeStageAdvance(ctx, d, collegeID, college)
	assert.ErrorIs(t, err, invitationerrors.ErrInvitationNotAccepted)

	repo.EXPECT().Get(ctx, d.ID, collegeID, false).Return(&invitation.Binding{
		CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByCollege,
	}, nil)
	scope, err := auth.AuthorizeStageAdvance(ctx, d, collegeID, college)
	require.NoError(t, err)
	assert.Equal(t, collegeID, scope)

	owner := domain.Principal{Role: domain.RoleCompany, OrgID: d.CompanyID}
	repo.EXPECT().Get(ctx, d.ID, collegeID, false).Return(&invitation.Binding{
		CollegeID: collegeID, InvitationStatus: invitation.StatusAccepted, ManagedBy: invitation.ManagedByAdmin,
	}, nil)
	scope, err = auth.AuthorizeStageAdvance(ctx, d, collegeID, owner)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, scope)
}

func TestScopeStages(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	drives := driveMock.NewMockRepository(ctrl)
	driveID, collegeID := uuid.New(), uuid.New()
	driveRows := []drive.Stage{{DriveID: driveID, Name: drive.StageShortlist, Status: drive.StageActive}}
	collegeRows := []drive.Stage{{DriveID: driveID, ScopeCollegeID: collegeID, Name: drive.StageApplications, Status: drive.StageActive}}

	t.Run("admin managed uses drive pipeline", func(t *testing.T) {
		drives.EXPECT().ListStages(ctx, driveID, uuid.Nil).Return(driveRows, nil)
		b := &invitation.Binding{DriveID: driveID, CollegeID: collegeID, ManagedBy: invitation.ManagedByAdmin}

		stages, scope, err := invitation.ScopeStages(ctx, drives, driveID, b)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, scope)
		assert.Equal(t, driveRows, stages)
	})

	t.Run("college managed uses own pipeline", func(t *testing.T) {
		drives.EXPECT().ListStages(ctx, driveID, collegeID).Return(collegeRows, nil)
		b := &invitation.Binding{DriveID: driveID, CollegeID: collegeID, ManagedBy: invitation.ManagedByCollege}

		stages, scope, err := invitation.ScopeStages(ctx, drives, driveID, b)
		require.NoError(t, err)
		assert.Equal(t, collegeID, scope)
		assert.Equal(t, collegeRows, stages)
	})

	t.Run("college managed without rows falls back to drive", func(t *testing.T) {
		drives.EXPECT().ListStages(ctx, driveID, collegeID).Return(nil, nil)
		drives.EXPECT().ListStages(ctx, driveID, uuid.Nil).Return(driveRows, nil)
		b := &invitation.Binding{DriveID: driveID, CollegeID: collegeID, ManagedBy: invitation.ManagedByCollege}

		_, scope, err := invitation.ScopeStages(ctx, drives, driveID, b)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, scope)
	})
}
