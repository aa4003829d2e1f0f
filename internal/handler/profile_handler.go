package handler

import (
	"dayflow/config"
	"dayflow/internal/repository"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	auth *usecase.AuthUsecase
}

func NewProfileHandler(auth *usecase.AuthUsecase) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Profile loaded",
		"data":    currentUser(c),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req usecase.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	uc := usecase.NewProfileUsecase(repository.NewUserRepository(requestDB(c)))
	user, err := uc.Update(c.UserContext(), currentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"data":    user,
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	client := currentClient(c)
	email := client.Session().User.Email
	if err := h.auth.ChangePassword(c.UserContext(), config.LoadProvider(), client, email, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}
