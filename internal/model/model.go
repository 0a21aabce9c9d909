package model

import (
	"strconv"
	"strings"
	"time"
)

type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "AVAILABLE"
	CopyStatusIssued    CopyStatus = "ISSUED"
	CopyStatusReserved  CopyStatus = "RESERVED"
	CopyStatusOverdue   CopyStatus = "OVERDUE"
	CopyStatusWithdrawn CopyStatus = "WITHDRAWN"
	CopyStatusLost      CopyStatus = "LOST"
)

type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionGood    Condition = "GOOD"
	ConditionFair    Condition = "FAIR"
	ConditionPoor    Condition = "POOR"
	ConditionUnknown Condition = "UNKNOWN"
)

var conditionRank = map[Condition]int{
	ConditionNew:  0,
	ConditionGood: 1,
	ConditionFair: 2,
	ConditionPoor: 3,
}

// Rank orders conditions best-first; unknown values sort last.
func (c Condition) Rank() int {
	if r, ok := conditionRank[c]; ok {
		return r
	}
	return len(conditionRank)
}

type Title struct {
	ID              int       `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	CatalogNumber   string    `json:"catalogNumber" db:"catalog_number"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type Copy struct {
	ID          int        `json:"id" db:"id"`
	TitleID     int        `json:"titleId" db:"title_id"`
	Code        string     `json:"code" db:"code"`
	Status      CopyStatus `json:"status" db:"status"`
	Condition   Condition  `json:"condition" db:"condition"`
	ShelfID     *int       `json:"shelfId,omitempty" db:"shelf_id"`
	Position    *string    `json:"position,omitempty" db:"position"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastChecked *time.Time `json:"lastChecked,omitempty" db:"last_checked"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	ModifiedAt  time.Time  `json:"modifiedAt" db:"modified_at"`
}

// Sequence parses the numeric suffix of the copy code (<catalogNumber>#<seq>).
func (c Copy) Sequence() (int, bool) {
	i := strings.LastIndexByte(c.Code, '#')
	if i < 0 || i == len(c.Code)-1 {
		return 0, false
	}
	seq, err := strconv.Atoi(c.Code[i+1:])
	if err != nil {
		return 0, false
	}
	return seq, true
}

type ReservationStatus string

const (
	StatusProcessing       ReservationStatus = "PROCESSING"
	StatusApproved         ReservationStatus = "APPROVED"
	StatusIssued           ReservationStatus = "ISSUED"
	StatusReturned         ReservationStatus = "RETURNED"
	StatusOverdue          ReservationStatus = "OVERDUE"
	StatusCancelledByUser  ReservationStatus = "CANCELLED_BY_USER"
	StatusCancelledByStaff ReservationStatus = "CANCELLED_BY_STAFF"
	StatusExpired          ReservationStatus = "EXPIRED"
)

var transitions = map[ReservationStatus][]ReservationStatus{
	StatusProcessing: {StatusApproved, StatusCancelledByUser, StatusCancelledByStaff, StatusExpired},
	StatusApproved:   {StatusIssued, StatusExpired, StatusCancelledByUser, StatusCancelledByStaff, StatusOverdue},
	StatusIssued:     {StatusReturned, StatusOverdue},
	StatusOverdue:    {StatusReturned},
}

func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// QueuedMarker flags a PROCESSING reservation held because the title was out of stock.
const QueuedMarker = "[QUEUED]"

type Reservation struct {
	ID               int               `json:"-" db:"id"`
	ReservationUID   string            `json:"reservationUid" db:"reservation_uid"`
	UserName         string            `json:"username" db:"user_name"`
	TitleID          int               `json:"titleId" db:"title_id"`
	CopyID           *int              `json:"copyId,omitempty" db:"copy_id"`
	StartDate        time.Time         `json:"startDate" db:"start_date"`
	TillDate         time.Time         `json:"tillDate" db:"till_date"`
	ActualReturnDate *time.Time        `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Status           ReservationStatus `json:"status" db:"status"`
	Notes            string            `json:"notes" db:"notes"`
}

func (r Reservation) Queued() bool {
	return r.Status == StatusProcessing && strings.Contains(r.Notes, QueuedMarker)
}

type FineType string

const (
	FineTypeOverdue FineType = "OVERDUE"
	FineTypeManual  FineType = "MANUAL"
)

// FineRecord is an immutable ledger entry; only the paid mark may change after insert.
type FineRecord struct {
	ID             int64      `json:"id" db:"id"`
	UserName       string     `json:"username" db:"user_name"`
	ReservationUID *string    `json:"reservationUid,omitempty" db:"reservation_uid"`
	AmountCents    int64      `json:"amountCents" db:"amount_cents"`
	Reason         string     `json:"reason" db:"reason"`
	OverdueDays    int        `json:"overdueDays" db:"overdue_days"`
	FineType       FineType   `json:"fineType" db:"fine_type"`
	CalculatedFor  time.Time  `json:"calculatedFor" db:"calculated_for"`
	IsPaid         bool       `json:"isPaid" db:"is_paid"`
	PaidAt         *time.Time `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

type User struct {
	ID              int    `json:"id" db:"id"`
	UserName        string `json:"username" db:"user_name"`
	FineAmountCents int64  `json:"fineAmountCents" db:"fine_amount_cents"`
}

type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type CreateTitleRequest struct {
	Name          string `json:"name" validate:"required"`
	CatalogNumber string `json:"catalogNumber" validate:"required"`
}

type BulkCreateCopiesRequest struct {
	Count     int       `json:"count" validate:"required,gt=0,lte=100"`
	Condition Condition `json:"condition" validate:"omitempty,oneof=NEW GOOD FAIR POOR UNKNOWN"`
}

type SetCopyStatusRequest struct {
	Status CopyStatus `json:"status" validate:"required,oneof=AVAILABLE ISSUED RESERVED OVERDUE WITHDRAWN LOST"`
}

type CreateReservationRequest struct {
	TitleID  int    `json:"titleId" validate:"required"`
	TillDate Date   `json:"tillDate" validate:"required"`
	Notes    string `json:"notes"`
	UserName string `json:"-" validate:"required"`
}

type CancelReservationRequest struct {
	ByStaff bool `json:"byStaff"`
}

type TitleStats struct {
	TitleID            int                `json:"titleId"`
	AvailableCopies    int                `json:"availableCopies"`
	CopiesByStatus     map[CopyStatus]int `json:"copiesByStatus"`
	ActiveReservations int                `json:"activeReservations"`
}

type CopySummary struct {
	Total    int                `json:"total"`
	ByStatus map[CopyStatus]int `json:"byStatus"`
}
