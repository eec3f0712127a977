package branch

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/pkg/apperror"
	"barbershop/internal/pkg/validator"
)

// Service ranks branches by proximity and manages branch records.
type Service struct {
	repo  Repository
	cache Cache
	log   *zap.Logger
}

// NewService wires the ranker. cache may be nil.
func NewService(repo Repository, cache Cache, log *zap.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// Rank returns all branches ordered by distance from origin, nearest first.
func (s *Service) Rank(ctx context.Context, origin Coordinate) ([]RankedBranch, error) {
	if !isFinite(origin.Latitude) || !isFinite(origin.Longitude) {
		return nil, apperror.Validation("latitude and longitude must be finite numbers")
	}

	branches, err := s.loadBranches(ctx)
	if err != nil {
		return nil, s.internal("load branches", err)
	}

	ranked, skipped := Rank(branches, origin)
	if len(skipped) > 0 {
		s.log.Warn("branches without address skipped from ranking", zap.Int64s("branch_ids", skipped))
	}
	return ranked, nil
}

func (s *Service) loadBranches(ctx context.Context) ([]Branch, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetBranches(ctx)
		if err != nil {
			s.log.Warn("branch cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	branches, err := s.repo.ListWithAddresses(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBranches(ctx, branches); err != nil {
			s.log.Warn("branch cache write failed", zap.Error(err))
		}
	}
	return branches, nil
}

// Create persists a branch for an existing address.
func (s *Service) Create(ctx context.Context, in CreateBranchInput) (*Branch, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperror.Validation("name must not be blank")
	}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	ok, err := s.repo.AddressExists(ctx, in.AddressID)
	if err != nil {
		return nil, s.internal("check address", err)
	}
	if !ok {
		return nil, apperror.Validation("address with id %d does not exist", in.AddressID)
	}

	b := &Branch{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		AddressID:   in.AddressID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, s.internal("create branch", err)
	}

	s.invalidate(ctx)
	return b, nil
}

func (s *Service) CreateAddress(ctx context.Context, in CreateAddressInput) (*Address, error) {
	if strings.TrimSpace(in.FullAddress) == "" {
		return nil, apperror.Validation("full_address must not be blank")
	}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	a := &Address{
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		FullAddress: in.FullAddress,
	}
	if err := s.repo.CreateAddress(ctx, a); err != nil {
		return nil, s.internal("create address", err)
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Branch, error) {
	b, err := s.repo.GetWithAddress(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.internal("get branch", err)
	}
	return b, nil
}

// Exists is used by favorites and reviews to validate branch references.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("branch cache invalidate failed", zap.Error(err))
	}
}

func (s *Service) internal(op string, err error) error {
	s.log.Error(op+" failed", zap.Error(err))
	return apperror.Normalize(err)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
