package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/repository"
)

type ReservationService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewReservationService(repo repository.Repository, log *zap.Logger) *ReservationService {
	return &ReservationService{
		log:  log,
		repo: repo,
	}
}

// Create registers a borrowing request in PROCESSING. No copy is allocated
// here; when the title is out of stock the request is held with the queued
// marker until stock returns or the cleanup expires it.
func (s *ReservationService) Create(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	title, err := s.repo.GetTitle(ctx, req.TitleID)
	if err != nil {
		return model.Reservation{}, err
	}
	queued := title.AvailableCopies == 0
	return s.repo.CreateReservation(ctx, req, queued)
}

func (s *ReservationService) Get(ctx context.Context, reservationUID string) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, reservationUID)
}

func (s *ReservationService) GetByUser(ctx context.Context, userName string) ([]model.Reservation, error) {
	return s.repo.GetReservationsByUser(ctx, userName)
}

func (s *ReservationService) Approve(ctx context.Context, reservationUID string) (model.Reservation, error) {
	return s.repo.UpdateReservationStatus(ctx, reservationUID,
		[]model.ReservationStatus{model.StatusProcessing}, model.StatusApproved)
}

// Issue allocates the best available copy for the reservation's title and links
// it, moving the reservation APPROVED -> ISSUED. Copy issue, link and the title
// recount commit together; a lost allocation race retries the next candidate.
func (s *ReservationService) Issue(ctx context.Context, reservationUID string) (model.Reservation, error) {
	rsv, err := s.repo.GetReservation(ctx, reservationUID)
	if err != nil {
		return model.Reservation{}, err
	}
	if rsv.Status != model.StatusApproved {
		return model.Reservation{}, errors.Wrapf(errs.ErrInvalidState, "reservation is %s", rsv.Status)
	}

	candidates, err := s.repo.ListCopiesByTitle(ctx, rsv.TitleID, true)
	if err != nil {
		return model.Reservation{}, err
	}
	for _, c := range sortCandidates(candidates) {
		issued, err := s.repo.AssignCopy(ctx, reservationUID, c.ID)
		if errors.Is(err, errs.ErrConflict) {
			s.log.Debug("issue raced, trying next candidate", zap.Int("copyId", c.ID))
			continue
		}
		if err != nil {
			return model.Reservation{}, err
		}
		return issued, nil
	}
	return model.Reservation{}, errs.ErrOutOfStock
}

// Return closes the loan and releases the assigned copy. Fines already accrued
// stay on the ledger.
func (s *ReservationService) Return(ctx context.Context, reservationUID string) (model.Reservation, error) {
	return s.repo.ReturnReservation(ctx, reservationUID, time.Now().UTC())
}

func (s *ReservationService) Cancel(ctx context.Context, reservationUID string, byStaff bool) (model.Reservation, error) {
	to := model.StatusCancelledByUser
	if byStaff {
		to = model.StatusCancelledByStaff
	}
	return s.repo.UpdateReservationStatus(ctx, reservationUID,
		[]model.ReservationStatus{model.StatusProcessing, model.StatusApproved}, to)
}
