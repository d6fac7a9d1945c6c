package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/service"
)

// StaffHandler exposes the HR endpoints: staff, leave requests, and attendance.
type StaffHandler struct {
	staff      *service.StaffService
	leaves     *service.LeaveService
	attendance *service.AttendanceService
	validator  *dto.Validator
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService, leaves *service.LeaveService, attendance *service.AttendanceService, validator *dto.Validator) *StaffHandler {
	return &StaffHandler{staff: staff, leaves: leaves, attendance: attendance, validator: validator}
}

// ListStaff GET /api/staff.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	list, err := h.staff.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// GetStaff GET /api/staff/:id.
func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	member, err := h.staff.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, member)
}

// CreateStaff POST /api/staff.
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	member, err := h.staff.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, member)
}

// UpdateStaff PUT /api/staff/:id.
func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var patch domain.StaffPatch
	if err := bind(c, h.validator, &patch); err != nil {
		return err
	}
	member, err := h.staff.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, member)
}

// ListLeaveRequests GET /api/leave-requests.
func (h *StaffHandler) ListLeaveRequests(c *fiber.Ctx) error {
	list, err := h.leaves.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// CreateLeaveRequest POST /api/leave-requests.
func (h *StaffHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	var req dto.LeaveRequestCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	leave, err := h.leaves.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, leave)
}

// UpdateLeaveRequest PUT /api/leave-requests/:id.
func (h *StaffHandler) UpdateLeaveRequest(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var patch domain.LeaveRequestPatch
	if err := bind(c, h.validator, &patch); err != nil {
		return err
	}
	leave, err := h.leaves.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, leave)
}

// ListAttendance GET /api/attendance, optionally filtered by ?staff_id=.
func (h *StaffHandler) ListAttendance(c *fiber.Ctx) error {
	staffID, err := optionalIDQuery(c, "staff_id")
	if err != nil {
		return err
	}
	list, err := h.attendance.List(c.UserContext(), staffID)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// CreateAttendance POST /api/attendance.
func (h *StaffHandler) CreateAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	record, err := h.attendance.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, record)
}

// UpdateAttendance PUT /api/attendance/:id.
func (h *StaffHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var patch domain.AttendancePatch
	if err := bind(c, h.validator, &patch); err != nil {
		return err
	}
	record, err := h.attendance.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, record)
}
