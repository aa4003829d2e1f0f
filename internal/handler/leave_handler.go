package handler

import (
	"dayflow/internal/notify"
	"dayflow/internal/repository"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	notifier notify.Notifier
}

func NewLeaveHandler(notifier notify.Notifier) *LeaveHandler {
	return &LeaveHandler{notifier: notifier}
}

func (h *LeaveHandler) usecase(c *fiber.Ctx) *usecase.LeaveUsecase {
	return usecase.NewLeaveUsecase(repository.NewLeaveRepository(requestDB(c)), h.notifier)
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var req usecase.LeaveInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	leave, err := h.usecase(c).Create(c.UserContext(), currentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted",
		"data":    leave,
	})
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	list, err := h.usecase(c).List(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Leave requests loaded",
		"data":    list,
	})
}

func (h *LeaveHandler) Pending(c *fiber.Ctx) error {
	list, err := h.usecase(c).Pending(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pending leave requests loaded",
		"data":    list,
	})
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	leave, err := h.usecase(c).Approve(c.UserContext(), c.Params("id"), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Leave request approved",
		"data":    leave,
	})
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	leave, err := h.usecase(c).Reject(c.UserContext(), c.Params("id"), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Leave request rejected",
		"data":    leave,
	})
}
