package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"freshbit/internal/application"
	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	"freshbit/internal/invitation"
	invitationerrors "freshbit/internal/invitation/errors"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	KeyAdminStats    = "stats:admin"
	KeyAdminOverview = "stats:admin:overview"

	companyStatsPrefix = "stats:company:"
	collegeStatsPrefix = "stats:college:"

	CacheTTL      = 60 * time.Second
	overviewLimit = 100
)

func CompanyStatsKey(companyID uuid.UUID) string { return companyStatsPrefix + companyID.String() }
func CollegeStatsKey(collegeID uuid.UUID) string { return collegeStatsPrefix + collegeID.String() }

var (
	applicationStatuses = []application.Status{
		application.StatusApplied, application.StatusInTest, application.StatusShortlisted,
		application.StatusInInterview, application.StatusSelected, application.StatusRejected,
	}
	driveStatuses      = []drive.DriveStatus{drive.StatusDraft, drive.StatusPublished, drive.StatusClosed}
	invitationStatuses = []invitation.InvitationStatus{invitation.StatusPending, invitation.StatusAccepted, invitation.StatusRejected}
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	AdminStats(ctx context.Context, p domain.Principal) (AdminStatsResponse, error)
	AdminOverview(ctx context.Context, p domain.Principal) (AdminOverviewResponse, error)
	CompanyStats(ctx context.Context, p domain.Principal) (CompanyStatsResponse, error)
	CollegeStats(ctx context.Context, p domain.Principal) (CollegeStatsResponse, error)
	CollegeDrive(ctx context.Context, p domain.Principal, driveID uuid.UUID) (CollegeDriveResponse, error)
}

type service struct {
	repo     Repository
	drives   drive.Repository
	bindings invitation.Repository
	rdb      redis.Cmdable
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, drives drive.Repository, bindings invitation.Repository, rdb redis.Cmdable, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{
		repo:     repo,
		drives:   drives,
		bindings: bindings,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// cached baca dari redis dulu, miss dihitung sekali lewat singleflight lalu disimpan CacheTTL.
func cached[T any](ctx context.Context, s *service, key string, load func(context.Context) (T, error)) (T, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var resp T
			if err := json.Unmarshal([]byte(raw), &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		resp, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, data, CacheTTL).Err(); err != nil {
					s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func countsOf[S ~string](rows []LabelCount, labels []S) map[string]int64 {
	out := make(map[string]int64, len(labels))
	for _, l := range labels {
		out[string(l)] = 0
	}
	for _, r := range rows {
		out[r.Label] += r.Count
	}
	return out
}

func (s *service) AdminStats(ctx context.Context, p domain.Principal) (AdminStatsResponse, error) {
	if !p.IsAdmin() {
		return AdminStatsResponse{}, apperror.ErrForbidden
	}
	return cached(ctx, s, KeyAdminStats, func(ctx context.Context) (AdminStatsResponse, error) {
		users, err := s.repo.UsersByRole(ctx)
		if err != nil {
			return AdminStatsResponse{}, err
		}
		companies, colleges, err := s.repo.PendingApprovals(ctx)
		if err != nil {
			return AdminStatsResponse{}, err
		}
		drives, err := s.repo.DrivesByStatus(ctx, uuid.Nil)
		if err != nil {
			return AdminStatsResponse{}, err
		}
		apps, err := s.repo.ApplicationsByStatus(ctx, ApplicationScope{})
		if err != nil {
			return AdminStatsResponse{}, err
		}
		return AdminStatsResponse{
			UsersByRole:          countsOf(users, domain.Roles),
			PendingCompanies:     companies,
			PendingColleges:      colleges,
			DrivesByStatus:       countsOf(drives, driveStatuses),
			ApplicationsByStatus: countsOf(apps, applicationStatuses),
		}, nil
	})
}

func (s *service) AdminOverview(ctx context.Context, p domain.Principal) (AdminOverviewResponse, error) {
	if !p.IsAdmin() {
		return AdminOverviewResponse{}, apperror.ErrForbidden
	}
	return cached(ctx, s, KeyAdminOverview, func(ctx context.Context) (AdminOverviewResponse, error) {
		rows, err := s.repo.Funnel(ctx, overviewLimit)
		if err != nil {
			return AdminOverviewResponse{}, err
		}
		return AdminOverviewResponse{Drives: buildFunnels(rows)}, nil
	})
}

// buildFunnels menggabungkan baris drive x status, urutan drive dipertahankan.
func buildFunnels(rows []FunnelRow) []DriveFunnel {
	out := make([]DriveFunnel, 0)
	index := make(map[uuid.UUID]int)
	for _, r := range rows {
		i, ok := index[r.DriveID]
		if !ok {
			i = len(out)
			index[r.DriveID] = i
			out = append(out, DriveFunnel{
				DriveID:      r.DriveID.String(),
				Code:         r.Code,
				Title:        r.Title,
				CompanyName:  r.CompanyName,
				Status:       r.DriveStatus,
				Applications: countsOf(nil, applicationStatuses),
			})
		}
		if r.Status == "" {
			continue
		}
		out[i].Applications[r.Status] += r.Count
		out[i].Total += r.Count
	}
	for i := range out {
		out[i].Selected = out[i].Applications[string(application.StatusSelected)]
		out[i].SelectionRate = selectionRate(out[i].Selected, out[i].Total)
	}
	return out
}

// selectionRate persen dengan dua desimal, 0 kalau belum ada aplikasi.
func selectionRate(selected, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(selected)*10000/float64(total)) / 100
}

func (s *service) CompanyStats(ctx context.Context, p domain.Principal) (CompanyStatsResponse, error) {
	if !p.IsCompany() || p.OrgID == uuid.Nil {
		return CompanyStatsResponse{}, apperror.ErrForbidden
	}
	return cached(ctx, s, CompanyStatsKey(p.OrgID), func(ctx context.Context) (CompanyStatsResponse, error) {
		drives, err := s.repo.DrivesByStatus(ctx, p.OrgID)
		if err != nil {
			return CompanyStatsResponse{}, err
		}
		apps, err := s.repo.ApplicationsByStatus(ctx, ApplicationScope{CompanyID: p.OrgID})
		if err != nil {
			return CompanyStatsResponse{}, err
		}
		byStatus := countsOf(apps, applicationStatuses)
		return CompanyStatsResponse{
			DrivesByStatus:       countsOf(drives, driveStatuses),
			ApplicationsByStatus: byStatus,
			Selected:             byStatus[string(application.StatusSelected)],
		}, nil
	})
}

func (s *service) CollegeStats(ctx context.Context, p domain.Principal) (CollegeStatsResponse, error) {
	if !p.IsCollege() || p.OrgID == uuid.Nil {
		return CollegeStatsResponse{}, apperror.ErrForbidden
	}
	return cached(ctx, s, CollegeStatsKey(p.OrgID), func(ctx context.Context) (CollegeStatsResponse, error) {
		invites, err := s.repo.InvitationsByStatus(ctx, p.OrgID)
		if err != nil {
			return CollegeStatsResponse{}, err
		}
		students, err := s.repo.CountStudents(ctx, p.OrgID)
		if err != nil {
			return CollegeStatsResponse{}, err
		}
		apps, err := s.repo.ApplicationsByStatus(ctx, ApplicationScope{CollegeID: p.OrgID})
		if err != nil {
			return CollegeStatsResponse{}, err
		}
		byStatus := countsOf(apps, applicationStatuses)
		return CollegeStatsResponse{
			InvitationsByStatus:  countsOf(invites, invitationStatuses),
			Students:             students,
			ApplicationsByStatus: byStatus,
			Selected:             byStatus[string(application.StatusSelected)],
		}, nil
	})
}

// CollegeDrive tidak di-cache, dipakai halaman kerja college.
func (s *service) CollegeDrive(ctx context.Context, p domain.Principal, driveID uuid.UUID) (CollegeDriveResponse, error) {
	if !p.IsCollege() || p.OrgID == uuid.Nil {
		return CollegeDriveResponse{}, apperror.ErrForbidden
	}
	if driveID == uuid.Nil {
		return CollegeDriveResponse{}, driveerrors.ErrInvalidDriveID
	}

	row, err := s.drives.GetVisible(ctx, p, driveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CollegeDriveResponse{}, driveerrors.ErrDriveNotFound
		}
		return CollegeDriveResponse{}, err
	}
	binding, err := s.bindings.Get(ctx, driveID, p.OrgID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CollegeDriveResponse{}, invitationerrors.ErrCollegeNotInvited
		}
		return CollegeDriveResponse{}, err
	}

	stages, scope, err := invitation.ScopeStages(ctx, s.drives, driveID, binding)
	if err != nil {
		return CollegeDriveResponse{}, err
	}

	linked, err := s.repo.CountLinked(ctx, driveID, p.OrgID)
	if err != nil {
		return CollegeDriveResponse{}, err
	}
	apps, err := s.repo.ApplicationsByStatus(ctx, ApplicationScope{DriveID: driveID, CollegeID: p.OrgID})
	if err != nil {
		return CollegeDriveResponse{}, err
	}

	resp := CollegeDriveResponse{
		Drive: CollegeDriveInfo{
			ID:          row.ID.String(),
			Code:        row.Code,
			Title:       row.Title,
			JobRole:     row.JobRole,
			CTC:         row.CTC,
			Location:    row.Location,
			CompanyName: row.CompanyName,
			Status:      string(row.Status),
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
		},
		Binding: CollegeBindingInfo{
			InvitationID:     binding.ID.String(),
			InvitationStatus: string(binding.InvitationStatus),
			ManagedBy:        string(binding.ManagedBy),
			RespondedAt:      binding.RespondedAt,
		},
		PipelineScope:        "DRIVE",
		Stages:               make([]StageSummary, 0, len(stages)),
		LinkedStudents:       linked,
		ApplicationsByStatus: countsOf(apps, applicationStatuses),
	}
	if scope != uuid.Nil {
		resp.PipelineScope = "COLLEGE"
	}
	for _, st := range stages {
		resp.Stages = append(resp.Stages, StageSummary{
			Name:        string(st.Name),
			Position:    st.Position,
			Status:      string(st.Status),
			StartedAt:   st.StartedAt,
			CompletedAt: st.CompletedAt,
		})
	}
	if len(stages) > 0 {
		if current, ok := drive.PipelineOf(stages).Current(); ok {
			resp.CurrentStage = string(current)
		}
	}
	return resp, nil
}
