package domain

// RequestStatus is the lifecycle state of an access request.
type RequestStatus string

const (
	RequestStatusRequested RequestStatus = "REQUESTED"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusRequested, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected || s == RequestStatusCancelled
}

// EventType names a notification relayed to external watchers.
type EventType string

const (
	EventCategoryRegistered      EventType = "category.registered"
	EventCategoryUpdated         EventType = "category.updated"
	EventCategoryDeactivated     EventType = "category.deactivated"
	EventCategoryDelegateAdded   EventType = "category.delegate_added"
	EventCategoryDelegateRemoved EventType = "category.delegate_removed"
	EventPermissionGranted       EventType = "permission.granted"
	EventPermissionRevoked       EventType = "permission.revoked"
	EventRequestCreated          EventType = "request.created"
	EventRequestApproved         EventType = "request.approved"
	EventRequestRejected         EventType = "request.rejected"
	EventRequestCancelled        EventType = "request.cancelled"
	EventFeeUpdated              EventType = "fee.updated"
)

func (t EventType) String() string { return string(t) }

// TransferReason tags an outbound value transfer.
type TransferReason string

const (
	TransferReasonOwnerPayout TransferReason = "OWNER_PAYOUT"
	TransferReasonPlatformFee TransferReason = "PLATFORM_FEE"
	TransferReasonRefund      TransferReason = "REFUND"
)

func (r TransferReason) String() string { return string(r) }
