package user

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/getusers/", h.getUsers)
	router.Post("/users/createUsers/", h.createUser)
	router.Get("/users/getusersById/:user_id/", h.getUser)
	router.Put("/users/updateUsersById/:user_id/", h.updateUser)
	router.Delete("/users/deleteUsersById/:user_id/", h.deleteUser)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"Users": users})
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	created, err := h.service.Create(c.UserContext(), inputFromQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"UserCreated": created})
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil {
		return h.fail(c, ErrInvalidUserID)
	}

	user, err := h.service.GetByID(c.UserContext(), userID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"User": user})
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil {
		return h.fail(c, ErrInvalidUserID)
	}

	updated, err := h.service.Update(c.UserContext(), userID, inputFromQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"UserUpdated": updated})
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil {
		return h.fail(c, ErrInvalidUserID)
	}

	if err := h.service.Delete(c.UserContext(), userID); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "user deleted"})
}

// fail writes err as a {"message": ...} body. Unclassified errors are logged
// and reported as a generic 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status, message := StatusOf(err)
	if status == fiber.StatusInternalServerError {
		h.logger.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("requestid"),
			"error", err,
		)
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func inputFromQuery(c *fiber.Ctx) Input {
	args := c.Context().QueryArgs()
	field := func(key string) Optional[string] {
		if !args.Has(key) {
			return Optional[string]{}
		}
		return Some(string(args.Peek(key)))
	}

	return Input{
		Name:      field("name"),
		Email:     field("email"),
		Birthdate: field("birthdate"),
		AddressID: field("address_id"),
		Params:    args.Len(),
	}
}
