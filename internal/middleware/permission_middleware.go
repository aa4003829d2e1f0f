package middleware

import (
	"dayflow/internal/model"

	"github.com/gofiber/fiber/v2"
)

const (
	PermAttendanceSelf = "attendance.self"
	PermAttendanceRead = "attendance.read"
	PermLeaveWrite     = "leave.write"
	PermLeaveApprove   = "leave.approve"
	PermPayrollSelf    = "payroll.self"
	PermPayrollRead    = "payroll.read"
	PermEmployeesRead  = "employees.read"
	PermReportsRead    = "reports.read"
	PermCompanyWrite   = "company.write"
)

var RolePermissions = map[string][]string{
	model.RoleEmployee: {
		PermAttendanceSelf,
		PermLeaveWrite,
		PermPayrollSelf,
		PermCompanyWrite,
	},
	model.RoleHR: {
		PermAttendanceSelf,
		PermAttendanceRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollSelf,
		PermPayrollRead,
		PermEmployeesRead,
		PermReportsRead,
		PermCompanyWrite,
	},
}

func HasPermission(role string, permission string) bool {
	// admin holds every permission
	if role == model.RoleAdmin {
		return true
	}
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func Permission(requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: invalid role"})
		}

		if !HasPermission(userRole, requiredPermission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: missing permission " + requiredPermission})
		}

		return c.Next()
	}
}
