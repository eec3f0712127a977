package review

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain/user"
	"barbershop/internal/pkg/validator"
)

type BranchChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// StaffNotifier is told about reviews that name a staff member.
type StaffNotifier interface {
	NotifyNewReview(ctx context.Context, staffID, branchID, reviewID int64, rating int) error
}

type Service struct {
	reviews  Repository
	branches BranchChecker
	users    user.Repository
	notifier StaffNotifier
	log      *zap.Logger
}

// NewService wires the service. notifier may be nil.
func NewService(reviews Repository, branches BranchChecker, users user.Repository, notifier StaffNotifier, log *zap.Logger) *Service {
	return &Service{
		reviews:  reviews,
		branches: branches,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, clientID int64, in CreateInput) (*Review, error) {
	in.Comment = strings.TrimSpace(in.Comment)
	if clientID <= 0 || validator.Struct(in) != nil {
		return nil, ErrInvalidRequest
	}

	ok, err := s.branches.Exists(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}

	if in.StaffID != nil {
		u, err := s.users.GetByID(ctx, *in.StaffID)
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		if err != nil {
			return nil, err
		}
		if u.Role != user.RoleStaff {
			return nil, ErrStaffNotFound
		}
	}

	rv := &Review{
		BranchID: in.BranchID,
		ClientID: clientID,
		StaffID:  in.StaffID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	if s.notifier != nil && rv.StaffID != nil {
		if err := s.notifier.NotifyNewReview(ctx, *rv.StaffID, rv.BranchID, rv.ID, rv.Rating); err != nil {
			s.log.Warn("review notification failed", zap.Int64("review_id", rv.ID), zap.Error(err))
		}
	}
	return rv, nil
}

// ListByBranch returns reviews newest first with the branch's overall average rating.
func (s *Service) ListByBranch(ctx context.Context, branchID int64, limit, offset int) (*ListResult, error) {
	if branchID <= 0 {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.reviews.ListByBranch(ctx, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	count, avg, err := s.reviews.StatsByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Reviews:       items,
		Total:         count,
		AverageRating: math.Round(avg*100) / 100,
	}, nil
}
