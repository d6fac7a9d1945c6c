package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// ErrNotFound is returned by Update* when the target id does not exist.
// Get* and Delete* report a miss through their boolean result instead.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned by Create* when the allocator hands out an id
// that is already stored for that kind.
var ErrDuplicateID = errors.New("id already in use")

// UserStore persists console users.
type UserStore interface {
	GetUser(ctx context.Context, id int64) (domain.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, bool, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

// BranchStore persists branches.
type BranchStore interface {
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	GetBranch(ctx context.Context, id int64) (domain.Branch, bool, error)
	CreateBranch(ctx context.Context, branch domain.Branch) (domain.Branch, error)
}

// AgentStore persists delivery agents.
type AgentStore interface {
	ListAgents(ctx context.Context) ([]domain.Agent, error)
	GetAgent(ctx context.Context, id int64) (domain.Agent, bool, error)
	CreateAgent(ctx context.Context, agent domain.Agent) (domain.Agent, error)
	UpdateAgent(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error)
	ModifyAgent(ctx context.Context, id int64, plan func(current domain.Agent) domain.AgentPatch) (before, after domain.Agent, err error)
	DeleteAgent(ctx context.Context, id int64) (bool, error)
}

// CustomerStore persists customers.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (domain.Customer, bool, error)
	CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)
}

// DeliveryStore persists deliveries.
type DeliveryStore interface {
	ListDeliveries(ctx context.Context) ([]domain.Delivery, error)
	GetDelivery(ctx context.Context, id int64) (domain.Delivery, bool, error)
	GetDeliveryByInvoice(ctx context.Context, invoiceNumber string) (domain.Delivery, bool, error)
	CreateDelivery(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error)
	UpdateDelivery(ctx context.Context, id int64, patch domain.DeliveryPatch) (domain.Delivery, error)
	ModifyDelivery(ctx context.Context, id int64, plan func(current domain.Delivery) domain.DeliveryPatch) (before, after domain.Delivery, err error)
	DeleteDelivery(ctx context.Context, id int64) (bool, error)
}

// StaffStore persists staff records.
type StaffStore interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	GetStaff(ctx context.Context, id int64) (domain.Staff, bool, error)
	CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error)
	UpdateStaff(ctx context.Context, id int64, patch domain.StaffPatch) (domain.Staff, error)
}

// LeaveRequestStore persists leave requests.
type LeaveRequestStore interface {
	ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id int64) (domain.LeaveRequest, bool, error)
	CreateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) (domain.LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, id int64, patch domain.LeaveRequestPatch) (domain.LeaveRequest, error)
	ModifyLeaveRequest(ctx context.Context, id int64, plan func(current domain.LeaveRequest) domain.LeaveRequestPatch) (before, after domain.LeaveRequest, err error)
}

// AttendanceStore persists attendance records.
type AttendanceStore interface {
	ListAttendance(ctx context.Context) ([]domain.Attendance, error)
	ListAttendanceByStaff(ctx context.Context, staffID int64) ([]domain.Attendance, error)
	GetAttendance(ctx context.Context, id int64) (domain.Attendance, bool, error)
	CreateAttendance(ctx context.Context, record domain.Attendance) (domain.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, patch domain.AttendancePatch) (domain.Attendance, error)
}

// Store is the full entity store consumed by the service layer.
type Store interface {
	UserStore
	BranchStore
	AgentStore
	CustomerStore
	DeliveryStore
	StaffStore
	LeaveRequestStore
	AttendanceStore
}
