package handler

import (
	"dayflow/internal/repository"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct{}

func NewCompanyHandler() *CompanyHandler {
	return &CompanyHandler{}
}

func (h *CompanyHandler) usecase(c *fiber.Ctx) *usecase.CompanyUsecase {
	db := requestDB(c)
	return usecase.NewCompanyUsecase(repository.NewCompanyRepository(db), repository.NewUserRepository(db))
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req usecase.CompanyInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	company, redirect, err := h.usecase(c).Create(c.UserContext(), currentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":     company,
		"redirect": redirect,
	})
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	list, err := h.usecase(c).List(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":             list,
		"needs_onboarding": len(list) == 0,
	})
}

func (h *CompanyHandler) Select(c *fiber.Ctx) error {
	user := currentUser(c)
	company, err := h.usecase(c).Select(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":     company,
		"redirect": usecase.DashboardPath(user.Role),
	})
}
