package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/repository"
)

// maxBulkCopies bounds a single bulk-generation call.
const maxBulkCopies = 100

type AllocationService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewAllocationService(repo repository.Repository, log *zap.Logger) *AllocationService {
	return &AllocationService{
		log:  log,
		repo: repo,
	}
}

// sortCandidates orders copies for allocation: best condition first, then the
// lowest numeric code suffix; copies with an unparsable suffix go last.
func sortCandidates(copies []model.Copy) []model.Copy {
	sorted := make([]model.Copy, len(copies))
	copy(sorted, copies)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Condition.Rank(), sorted[j].Condition.Rank()
		if ri != rj {
			return ri < rj
		}
		si, oki := sorted[i].Sequence()
		sj, okj := sorted[j].Sequence()
		if oki != okj {
			return oki
		}
		return si < sj
	})
	return sorted
}

// AllocateBestAvailable picks the best available copy of the title and issues
// it. A compare-and-set guard at persist time detects races with concurrent
// allocations; a lost race moves on to the next candidate. A nil copy with a
// nil error means out of stock, not a failure.
func (s *AllocationService) AllocateBestAvailable(ctx context.Context, titleID int) (*model.Copy, error) {
	if _, err := s.repo.GetTitle(ctx, titleID); err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCopiesByTitle(ctx, titleID, true)
	if err != nil {
		return nil, err
	}

	available := model.CopyStatusAvailable
	for _, c := range sortCandidates(candidates) {
		issued, err := s.repo.TransitionCopy(ctx, c.ID, &available, model.CopyStatusIssued)
		if errors.Is(err, errs.ErrConflict) {
			s.log.Debug("allocation raced, trying next candidate", zap.Int("copyId", c.ID))
			continue
		}
		if err != nil {
			return nil, err
		}
		return &issued, nil
	}
	return nil, nil
}

// FindBestAvailable previews the copy AllocateBestAvailable would pick, without mutation.
func (s *AllocationService) FindBestAvailable(ctx context.Context, titleID int) (*model.Copy, error) {
	if _, err := s.repo.GetTitle(ctx, titleID); err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCopiesByTitle(ctx, titleID, true)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := sortCandidates(candidates)[0]
	return &best, nil
}

func (s *AllocationService) Release(ctx context.Context, copyID int) (model.Copy, error) {
	return s.repo.TransitionCopy(ctx, copyID, nil, model.CopyStatusAvailable)
}

// Reserve transitions AVAILABLE -> RESERVED; any other current status is rejected.
func (s *AllocationService) Reserve(ctx context.Context, copyID int) (model.Copy, error) {
	available := model.CopyStatusAvailable
	c, err := s.repo.TransitionCopy(ctx, copyID, &available, model.CopyStatusReserved)
	if errors.Is(err, errs.ErrConflict) {
		return model.Copy{}, errs.ErrInvalidState
	}
	return c, err
}

// SetStatus is the unconditional administrative override.
func (s *AllocationService) SetStatus(ctx context.Context, copyID int, status model.CopyStatus) (model.Copy, error) {
	return s.repo.TransitionCopy(ctx, copyID, nil, status)
}

// GetAllocatedCopy returns the copy a reservation currently references, or nil
// when none is assigned.
func (s *AllocationService) GetAllocatedCopy(ctx context.Context, reservationUID string) (*model.Copy, error) {
	rsv, err := s.repo.GetReservation(ctx, reservationUID)
	if err != nil {
		return nil, err
	}
	if rsv.CopyID == nil {
		return nil, nil
	}
	c, err := s.repo.GetAllocatedCopy(ctx, reservationUID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AllocationService) Recalculate(ctx context.Context, titleID int) (int, error) {
	return s.repo.RecalculateAvailable(ctx, titleID)
}

func (s *AllocationService) RemoveCopy(ctx context.Context, copyID int) error {
	return s.repo.DeleteCopy(ctx, copyID)
}

func (s *AllocationService) CreateTitle(ctx context.Context, req model.CreateTitleRequest) (model.Title, error) {
	return s.repo.CreateTitle(ctx, req)
}

func (s *AllocationService) GetTitle(ctx context.Context, titleID int) (model.Title, error) {
	return s.repo.GetTitle(ctx, titleID)
}

// BulkCreateCopies generates count copies continuing the per-title numbering
// from the highest existing parsable code suffix.
func (s *AllocationService) BulkCreateCopies(ctx context.Context, titleID, count int, condition model.Condition) ([]model.Copy, error) {
	if count <= 0 || count > maxBulkCopies {
		return nil, errors.Wrapf(errs.ErrPrecondition, "count must be in 1..%d", maxBulkCopies)
	}
	if condition == "" {
		condition = model.ConditionUnknown
	}

	title, err := s.repo.GetTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title.CatalogNumber == "" {
		return nil, errors.Wrap(errs.ErrPrecondition, "title has no catalog number")
	}

	existing, err := s.repo.ListCopiesByTitle(ctx, titleID, false)
	if err != nil {
		return nil, err
	}
	maxSeq := 0
	for _, c := range existing {
		if seq, ok := c.Sequence(); ok && seq > maxSeq {
			maxSeq = seq
		}
	}

	codes := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		codes = append(codes, fmt.Sprintf("%s#%03d", title.CatalogNumber, maxSeq+i))
	}

	return s.repo.CreateCopies(ctx, titleID, codes, condition)
}
