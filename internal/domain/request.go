package domain

import "time"

// AccessRequest is a buyer's escrowed request for time-bound access.
// PricePerDay and Seller are snapshots taken when the request was created.
type AccessRequest struct {
	ID           int64
	Buyer        Account
	Seller       Account
	CategoryID   int64
	DurationDays int64
	PricePerDay  int64
	Amount       int64
	Status       RequestStatus
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// IsPending reports whether the request still holds escrow.
func (r *AccessRequest) IsPending() bool {
	return r.Status == RequestStatusRequested
}

// Quote is the price breakdown for a duration.
// PlatformFee + OwnerAmount == Total always holds.
type Quote struct {
	Total       int64
	PlatformFee int64
	OwnerAmount int64
	FeePercent  uint8
}

// Settlement is the disbursement made when a request is approved.
type Settlement struct {
	RequestID   int64
	OwnerAmount int64
	PlatformFee int64
	FeePercent  uint8
	Permission  *Permission
}

// Transfer moves value out of engine custody to an account.
type Transfer struct {
	To        Account
	Amount    int64
	Reason    TransferReason
	RequestID int64
}
