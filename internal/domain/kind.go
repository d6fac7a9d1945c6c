package domain

// EntityKind names a collection held by the store.
type EntityKind string

const (
	KindUser         EntityKind = "user"
	KindBranch       EntityKind = "branch"
	KindAgent        EntityKind = "agent"
	KindCustomer     EntityKind = "customer"
	KindDelivery     EntityKind = "delivery"
	KindStaff        EntityKind = "staff"
	KindLeaveRequest EntityKind = "leave_request"
	KindAttendance   EntityKind = "attendance"
)

// AllKinds lists every entity kind in a stable order.
var AllKinds = []EntityKind{
	KindUser,
	KindBranch,
	KindAgent,
	KindCustomer,
	KindDelivery,
	KindStaff,
	KindLeaveRequest,
	KindAttendance,
}
