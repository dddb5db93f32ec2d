package college

import (
	"context"
	"errors"
	"strings"

	collegeerrors "freshbit/internal/college/errors"
	"freshbit/internal/domain"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetProfile(ctx context.Context, principal domain.Principal) (CollegeResponse, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, req UpdateCollegeRequest) (CollegeResponse, error)
	List(ctx context.Context, filter ListFilter) ([]CollegeResponse, int64, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (CollegeResponse, error)
	// Approvals status approved per id; id yang tidak ada tidak muncul di map.
	Approvals(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("college.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("college.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*College, error) {
	if id == uuid.Nil {
		return nil, collegeerrors.ErrInvalidCollegeID
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collegeerrors.ErrCollegeNotFound
		}
		s.logger.Error("get college failed", zap.String("college_id", id.String()), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *service) GetProfile(ctx context.Context, principal domain.Principal) (CollegeResponse, error) {
	if !principal.IsCollege() {
		return CollegeResponse{}, apperror.ErrForbidden
	}
	c, err := s.get(ctx, principal.OrgID)
	if err != nil {
		return CollegeResponse{}, err
	}
	return toResponse(c, ""), nil
}

func (s *service) UpdateProfile(ctx context.Context, principal domain.Principal, req UpdateCollegeRequest) (CollegeResponse, error) {
	if !principal.IsCollege() {
		return CollegeResponse{}, apperror.ErrForbidden
	}
	c, err := s.get(ctx, principal.OrgID)
	if err != nil {
		return CollegeResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return CollegeResponse{}, apperror.RequiredField("Name")
		}
		c.Name = name
	}
	if req.City != nil {
		c.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		c.State = strings.TrimSpace(*req.State)
	}
	if req.Website != nil {
		c.Website = strings.TrimSpace(*req.Website)
	}
	if req.ContactPhone != nil {
		c.ContactPhone = strings.TrimSpace(*req.ContactPhone)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update college profile failed", zap.String("college_id", c.ID.String()), zap.Error(err))
		return CollegeResponse{}, err
	}
	return toResponse(c, ""), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]CollegeResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list colleges failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]CollegeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i].College, rows[i].OwnerEmail))
	}
	return out, total, nil
}

func (s *service) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (CollegeResponse, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CollegeResponse{}, collegeerrors.ErrCollegeNotFound
		}
		return CollegeResponse{}, err
	}
	c, err := s.get(ctx, id)
	if err != nil {
		return CollegeResponse{}, err
	}
	s.logger.Info("college approval updated", zap.String("college_id", id.String()), zap.Bool("approved", approved))
	return toResponse(c, ""), nil
}

func (s *service) Approvals(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]bool, len(rows))
	for _, c := range rows {
		out[c.ID] = c.Approved
	}
	return out, nil
}

func toResponse(c *College, ownerEmail string) CollegeResponse {
	return CollegeResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		OwnerEmail:   ownerEmail,
		City:         c.City,
		State:        c.State,
		Website:      c.Website,
		ContactPhone: c.ContactPhone,
		Approved:     c.Approved,
		CreatedAt:    c.CreatedAt,
	}
}
