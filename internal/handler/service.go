package handler

import (
	"context"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AllocationService interface {
	AllocateBestAvailable(ctx context.Context, titleID int) (*model.Copy, error)
	FindBestAvailable(ctx context.Context, titleID int) (*model.Copy, error)
	Release(ctx context.Context, copyID int) (model.Copy, error)
	Reserve(ctx context.Context, copyID int) (model.Copy, error)
	SetStatus(ctx context.Context, copyID int, status model.CopyStatus) (model.Copy, error)
	GetAllocatedCopy(ctx context.Context, reservationUID string) (*model.Copy, error)
	Recalculate(ctx context.Context, titleID int) (int, error)
	RemoveCopy(ctx context.Context, copyID int) error
	CreateTitle(ctx context.Context, req model.CreateTitleRequest) (model.Title, error)
	GetTitle(ctx context.Context, titleID int) (model.Title, error)
	BulkCreateCopies(ctx context.Context, titleID, count int, condition model.Condition) ([]model.Copy, error)
}

type ReservationService interface {
	Create(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	Get(ctx context.Context, reservationUID string) (model.Reservation, error)
	GetByUser(ctx context.Context, userName string) ([]model.Reservation, error)
	Approve(ctx context.Context, reservationUID string) (model.Reservation, error)
	Issue(ctx context.Context, reservationUID string) (model.Reservation, error)
	Return(ctx context.Context, reservationUID string) (model.Reservation, error)
	Cancel(ctx context.Context, reservationUID string, byStaff bool) (model.Reservation, error)
}

type FineService interface {
	ListFines(ctx context.Context, userName string) ([]model.FineRecord, error)
	PayFine(ctx context.Context, fineID int64) (model.FineRecord, error)
	ReconcileBalance(ctx context.Context, userName string) (int64, error)
	GetUser(ctx context.Context, userName string) (model.User, error)
}

type StatsService interface {
	TitleStats(ctx context.Context, titleID int) (model.TitleStats, error)
	CopySummary(ctx context.Context) (model.CopySummary, error)
}

var (
	_ AllocationService  = (*service.AllocationService)(nil)
	_ ReservationService = (*service.ReservationService)(nil)
	_ FineService        = (*service.FineService)(nil)
	_ StatsService       = (*service.StatsService)(nil)
)
