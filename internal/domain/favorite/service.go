package favorite

import "context"

// BranchChecker reports whether a branch exists.
type BranchChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo     Repository
	branches BranchChecker
}

func NewService(repo Repository, branches BranchChecker) *Service {
	return &Service{repo: repo, branches: branches}
}

func (s *Service) Add(ctx context.Context, userID, branchID int64) (*Favorite, error) {
	if userID <= 0 || branchID <= 0 {
		return nil, ErrInvalidRequest
	}

	ok, err := s.branches.Exists(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}

	f := &Favorite{UserID: userID, BranchID: branchID}
	if err := s.repo.Add(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userID, branchID int64) error {
	if userID <= 0 || branchID <= 0 {
		return ErrInvalidRequest
	}
	return s.repo.Remove(ctx, userID, branchID)
}

// List pages through the user's favorites. Out-of-range paging falls back to defaults.
func (s *Service) List(ctx context.Context, userID int64, page, perPage int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.repo.ListByUser(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &ListResult{Favorites: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) Exists(ctx context.Context, userID, branchID int64) (bool, error) {
	return s.repo.Exists(ctx, userID, branchID)
}
