package company

import (
	"context"
	"errors"
	"strings"

	companyerrors "freshbit/internal/company/errors"
	"freshbit/internal/domain"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	GetProfile(ctx context.Context, principal domain.Principal) (CompanyResponse, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, req UpdateCompanyRequest) (CompanyResponse, error)
	List(ctx context.Context, filter ListFilter) ([]CompanyResponse, int64, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (CompanyResponse, error)
	// EnsureApproved dipakai modul drive sebelum publish.
	EnsureApproved(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*Company, error) {
	if id == uuid.Nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}
	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		s.logger.Error("get company failed", zap.String("company_id", id.String()), zap.Error(err))
		return nil, err
	}
	return comp, nil
}

func (s *service) GetProfile(ctx context.Context, principal domain.Principal) (CompanyResponse, error) {
	if !principal.IsCompany() {
		return CompanyResponse{}, apperror.ErrForbidden
	}
	comp, err := s.get(ctx, principal.OrgID)
	if err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(comp, ""), nil
}

func (s *service) UpdateProfile(ctx context.Context, principal domain.Principal, req UpdateCompanyRequest) (CompanyResponse, error) {
	if !principal.IsCompany() {
		return CompanyResponse{}, apperror.ErrForbidden
	}
	comp, err := s.get(ctx, principal.OrgID)
	if err != nil {
		return CompanyResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return CompanyResponse{}, apperror.RequiredField("Name")
		}
		comp.Name = name
	}
	if req.Industry != nil {
		comp.Industry = strings.TrimSpace(*req.Industry)
	}
	if req.Website != nil {
		comp.Website = strings.TrimSpace(*req.Website)
	}
	if req.Description != nil {
		comp.Description = *req.Description
	}
	if req.ContactPhone != nil {
		comp.ContactPhone = strings.TrimSpace(*req.ContactPhone)
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company profile failed", zap.String("company_id", comp.ID.String()), zap.Error(err))
		return CompanyResponse{}, err
	}
	s.logger.Info("update company profile success", zap.String("company_id", comp.ID.String()))
	return mapToResponse(comp, ""), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]CompanyResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, 0, err
	}
	result := make([]CompanyResponse, 0, len(rows))
	for i := range rows {
		result = append(result, mapToResponse(&rows[i].Company, rows[i].OwnerEmail))
	}
	return result, total, nil
}

func (s *service) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (CompanyResponse, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		s.logger.Error("set company approval failed", zap.String("company_id", id.String()), zap.Error(err))
		return CompanyResponse{}, err
	}
	comp, err := s.get(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	s.logger.Info("company approval updated",
		zap.String("company_id", id.String()),
		zap.Bool("approved", approved),
	)
	return mapToResponse(comp, ""), nil
}

func (s *service) EnsureApproved(ctx context.Context, id uuid.UUID) error {
	comp, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !comp.Approved {
		return companyerrors.ErrCompanyNotApproved
	}
	return nil
}

func mapToResponse(c *Company, ownerEmail string) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		OwnerEmail:   ownerEmail,
		Industry:     c.Industry,
		Website:      c.Website,
		Description:  c.Description,
		ContactPhone: c.ContactPhone,
		Approved:     c.Approved,
		CreatedAt:    c.CreatedAt,
	}
}
