package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

// fakeRepo is an in-memory stand-in for the postgres repository, keeping the
// same guard semantics: CAS misses on copies return ErrConflict, reservation
// guard misses return ErrInvalidState, the fine ledger enforces the
// per-day uniqueness key.
type fakeRepo struct {
	mu sync.Mutex

	titles       map[int]model.Title
	copies       map[int]model.Copy
	reservations map[string]model.Reservation
	fines        []model.FineRecord
	users        map[string]model.User

	nextTitleID int
	nextCopyID  int
	nextFineID  int64

	// conflictOn[copyID] forces that many TransitionCopy/AssignCopy calls to
	// fail with ErrConflict, simulating a lost allocation race.
	conflictOn map[int]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		titles:       map[int]model.Title{},
		copies:       map[int]model.Copy{},
		reservations: map[string]model.Reservation{},
		users:        map[string]model.User{},
		conflictOn:   map[int]int{},
	}
}

func (f *fakeRepo) addTitle(name, catalogNumber string) model.Title {
	f.nextTitleID++
	t := model.Title{ID: f.nextTitleID, Name: name, CatalogNumber: catalogNumber, CreatedAt: time.Now()}
	f.titles[t.ID] = t
	return t
}

func (f *fakeRepo) addCopy(titleID int, code string, cond model.Condition, status model.CopyStatus) model.Copy {
	f.nextCopyID++
	c := model.Copy{
		ID:        f.nextCopyID,
		TitleID:   titleID,
		Code:      code,
		Status:    status,
		Condition: cond,
		IsActive:  true,
	}
	f.copies[c.ID] = c
	f.recalc(titleID)
	return c
}

func (f *fakeRepo) addReservation(userName string, titleID int, status model.ReservationStatus, tillDate time.Time) model.Reservation {
	r := model.Reservation{
		ReservationUID: uuid.NewString(),
		UserName:       userName,
		TitleID:        titleID,
		StartDate:      tillDate.AddDate(0, 0, -14),
		TillDate:       tillDate,
		Status:         status,
	}
	f.reservations[r.ReservationUID] = r
	return r
}

func (f *fakeRepo) recalc(titleID int) int {
	count := 0
	for _, c := range f.copies {
		if c.TitleID == titleID && c.Status == model.CopyStatusAvailable && c.IsActive {
			count++
		}
	}
	t := f.titles[titleID]
	t.AvailableCopies = count
	f.titles[titleID] = t
	return count
}

func (f *fakeRepo) CreateTitle(_ context.Context, req model.CreateTitleRequest) (model.Title, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addTitle(req.Name, req.CatalogNumber), nil
}

func (f *fakeRepo) GetTitle(_ context.Context, titleID int) (model.Title, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.titles[titleID]
	if !ok {
		return model.Title{}, errs.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) GetCopy(_ context.Context, copyID int) (model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.copies[copyID]
	if !ok {
		return model.Copy{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListCopiesByTitle(_ context.Context, titleID int, onlyAvailable bool) ([]model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Copy
	for _, c := range f.copies {
		if c.TitleID != titleID || !c.IsActive {
			continue
		}
		if onlyAvailable && c.Status != model.CopyStatusAvailable {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) TransitionCopy(_ context.Context, copyID int, expect *model.CopyStatus, to model.CopyStatus) (model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictOn[copyID] > 0 {
		f.conflictOn[copyID]--
		return model.Copy{}, errs.ErrConflict
	}
	c, ok := f.copies[copyID]
	if !ok {
		return model.Copy{}, errs.ErrNotFound
	}
	if expect != nil && c.Status != *expect {
		return model.Copy{}, errs.ErrConflict
	}
	c.Status = to
	c.ModifiedAt = time.Now()
	f.copies[copyID] = c
	f.recalc(c.TitleID)
	return c, nil
}

func (f *fakeRepo) CreateCopies(_ context.Context, titleID int, codes []string, condition model.Condition) ([]model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Copy, 0, len(codes))
	for _, code := range codes {
		out = append(out, f.addCopy(titleID, code, condition, model.CopyStatusAvailable))
	}
	return out, nil
}

func (f *fakeRepo) DeleteCopy(_ context.Context, copyID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.copies[copyID]
	if !ok {
		return errs.ErrNotFound
	}
	c.IsActive = false
	f.copies[copyID] = c
	f.recalc(c.TitleID)
	return nil
}

func (f *fakeRepo) RecalculateAvailable(_ context.Context, titleID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.titles[titleID]; !ok {
		return 0, errs.ErrNotFound
	}
	return f.recalc(titleID), nil
}

func (f *fakeRepo) GetAllocatedCopy(_ context.Context, reservationUID string) (model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[reservationUID]
	if !ok || r.CopyID == nil {
		return model.Copy{}, errs.ErrNotFound
	}
	c, ok := f.copies[*r.CopyID]
	if !ok {
		return model.Copy{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, req model.CreateReservationRequest, queued bool) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notes := req.Notes
	if queued {
		notes = strings.TrimSpace(model.QueuedMarker + " " + notes)
	}
	r := model.Reservation{
		ReservationUID: uuid.NewString(),
		UserName:       req.UserName,
		TitleID:        req.TitleID,
		StartDate:      time.Now().UTC(),
		TillDate:       req.TillDate.Time,
		Status:         model.StatusProcessing,
		Notes:          notes,
	}
	f.reservations[r.ReservationUID] = r
	return r, nil
}

func (f *fakeRepo) GetReservation(_ context.Context, reservationUID string) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[reservationUID]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) GetReservationsByUser(_ context.Context, userName string) ([]model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Reservation
	for _, r := range f.reservations {
		if r.UserName == userName {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReservationUID < out[j].ReservationUID })
	return out, nil
}

func (f *fakeRepo) UpdateReservationStatus(_ context.Context, reservationUID string, from []model.ReservationStatus, to model.ReservationStatus) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[reservationUID]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	matched := false
	for _, s := range from {
		if r.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return model.Reservation{}, errs.ErrInvalidState
	}
	r.Status = to
	f.reservations[reservationUID] = r
	return r, nil
}

func (f *fakeRepo) AssignCopy(_ context.Context, reservationUID string, copyID int) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictOn[copyID] > 0 {
		f.conflictOn[copyID]--
		return model.Reservation{}, errs.ErrConflict
	}
	c, ok := f.copies[copyID]
	if !ok || c.Status != model.CopyStatusAvailable {
		return model.Reservation{}, errs.ErrConflict
	}
	r, ok := f.reservations[reservationUID]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	if r.Status != model.StatusApproved {
		return model.Reservation{}, errs.ErrInvalidState
	}
	c.Status = model.CopyStatusIssued
	f.copies[copyID] = c
	r.Status = model.StatusIssued
	r.CopyID = &copyID
	f.reservations[reservationUID] = r
	f.recalc(c.TitleID)
	return r, nil
}

func (f *fakeRepo) ReturnReservation(_ context.Context, reservationUID string, returnedAt time.Time) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[reservationUID]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	if r.Status != model.StatusIssued && r.Status != model.StatusOverdue {
		return model.Reservation{}, errs.ErrInvalidState
	}
	r.Status = model.StatusReturned
	r.ActualReturnDate = &returnedAt
	f.reservations[reservationUID] = r
	if r.CopyID != nil {
		c := f.copies[*r.CopyID]
		c.Status = model.CopyStatusAvailable
		f.copies[*r.CopyID] = c
		f.recalc(c.TitleID)
	}
	return r, nil
}

func (f *fakeRepo) ExpireQueuedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for uid, r := range f.reservations {
		if r.Queued() && r.StartDate.Before(cutoff) {
			r.Status = model.StatusExpired
			f.reservations[uid] = r
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListOverdueCandidates(_ context.Context, now time.Time) ([]model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	today := now.UTC().Truncate(24 * time.Hour)
	var out []model.Reservation
	for _, r := range f.reservations {
		switch r.Status {
		case model.StatusApproved, model.StatusIssued, model.StatusOverdue:
		default:
			continue
		}
		if r.TillDate.UTC().Truncate(24 * time.Hour).Before(today) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReservationUID < out[j].ReservationUID })
	return out, nil
}

func (f *fakeRepo) LastOverdueFine(_ context.Context, reservationUID string) (*model.FineRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var last *model.FineRecord
	for i := range f.fines {
		rec := f.fines[i]
		if rec.FineType != model.FineTypeOverdue || rec.ReservationUID == nil || *rec.ReservationUID != reservationUID {
			continue
		}
		if last == nil || rec.CalculatedFor.After(last.CalculatedFor) {
			last = &rec
		}
	}
	return last, nil
}

func (f *fakeRepo) HasFineFor(_ context.Context, reservationUID string, day time.Time, fineType model.FineType) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasFineFor(reservationUID, day, fineType), nil
}

func (f *fakeRepo) hasFineFor(reservationUID string, day time.Time, fineType model.FineType) bool {
	d := day.UTC().Truncate(24 * time.Hour)
	for _, rec := range f.fines {
		if rec.FineType != fineType || rec.ReservationUID == nil || *rec.ReservationUID != reservationUID {
			continue
		}
		if rec.CalculatedFor.UTC().Truncate(24 * time.Hour).Equal(d) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) RecordFine(_ context.Context, rec model.FineRecord, flipToOverdue bool, overdueNote string) (model.FineRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.ReservationUID != nil && f.hasFineFor(*rec.ReservationUID, rec.CalculatedFor, rec.FineType) {
		return model.FineRecord{}, errs.ErrAlreadyBilled
	}
	f.nextFineID++
	rec.ID = f.nextFineID
	rec.CreatedAt = time.Now()
	f.fines = append(f.fines, rec)

	u := f.users[rec.UserName]
	u.UserName = rec.UserName
	u.FineAmountCents += rec.AmountCents
	f.users[rec.UserName] = u

	if flipToOverdue && rec.ReservationUID != nil {
		if r, ok := f.reservations[*rec.ReservationUID]; ok {
			r.Status = model.StatusOverdue
			r.Notes = strings.TrimSpace(r.Notes + " " + overdueNote)
			f.reservations[*rec.ReservationUID] = r
		}
	}
	return rec, nil
}

func (f *fakeRepo) ListFinesByUser(_ context.Context, userName string) ([]model.FineRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.FineRecord
	for _, rec := range f.fines {
		if rec.UserName == userName {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) PayFine(_ context.Context, fineID int64) (model.FineRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, rec := range f.fines {
		if rec.ID != fineID {
			continue
		}
		if rec.IsPaid {
			return model.FineRecord{}, errs.ErrInvalidState
		}
		now := time.Now()
		rec.IsPaid = true
		rec.PaidAt = &now
		f.fines[i] = rec

		u := f.users[rec.UserName]
		u.FineAmountCents -= rec.AmountCents
		if u.FineAmountCents < 0 {
			u.FineAmountCents = 0
		}
		f.users[rec.UserName] = u
		return rec, nil
	}
	return model.FineRecord{}, errs.ErrNotFound
}

func (f *fakeRepo) ReconcileBalance(_ context.Context, userName string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int64
	for _, rec := range f.fines {
		if rec.UserName == userName && !rec.IsPaid {
			sum += rec.AmountCents
		}
	}
	u := f.users[userName]
	u.UserName = userName
	u.FineAmountCents = sum
	f.users[userName] = u
	return sum, nil
}

func (f *fakeRepo) GetUser(_ context.Context, userName string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userName]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) TitleStats(_ context.Context, titleID int) (model.TitleStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.titles[titleID]
	if !ok {
		return model.TitleStats{}, errs.ErrNotFound
	}
	stats := model.TitleStats{
		TitleID:         titleID,
		AvailableCopies: t.AvailableCopies,
		CopiesByStatus:  map[model.CopyStatus]int{},
	}
	for _, c := range f.copies {
		if c.TitleID == titleID && c.IsActive {
			stats.CopiesByStatus[c.Status]++
		}
	}
	for _, r := range f.reservations {
		if r.TitleID != titleID {
			continue
		}
		switch r.Status {
		case model.StatusApproved, model.StatusIssued, model.StatusOverdue:
			stats.ActiveReservations++
		}
	}
	return stats, nil
}

func (f *fakeRepo) CopySummary(_ context.Context) (model.CopySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := model.CopySummary{ByStatus: map[model.CopyStatus]int{}}
	for _, c := range f.copies {
		if !c.IsActive {
			continue
		}
		sum.Total++
		sum.ByStatus[c.Status]++
	}
	return sum, nil
}
