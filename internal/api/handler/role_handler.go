package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type createRoleRequest struct {
	Name string `json:"name"`
}

type roleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleHandler handles HTTP requests for role definitions.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// Create registers a new role. Creating a role that already exists is not
// an error: the API responds 200 with a message, as it always has.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role name, e.g. ROLE_TEST"
// @Success      201   {object}  roleResponse
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /roles/create [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			return c.JSON(http.StatusOK, messageResponse{Message: "role already registered"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, roleResponse{ID: role.ID, Name: role.Name})
}

// List returns every registered role.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   roleResponse
// @Failure      401  {object}  messageResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleResponse{ID: r.ID, Name: r.Name})
	}
	return c.JSON(http.StatusOK, out)
}
