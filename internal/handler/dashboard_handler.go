package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/service"
)

// DashboardHandler serves the registration stats and the user table.
type DashboardHandler struct {
	statsService service.StatsService
	listService  service.UserListService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(statsService service.StatsService, listService service.UserListService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService, listService: listService}
}

// Stats godoc
// @Summary User registration statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.Stats(c.Request().Context(), time.Now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary Paginated user listing
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 5)"
// @Param search query string false "Substring match on name or email"
// @Success 200 {object} service.UserPage
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/users [get]
func (h *DashboardHandler) ListUsers(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", service.DefaultPageLimit)
	search := c.QueryParam("search")

	result, err := h.listService.List(c.Request().Context(), page, limit, search)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// queryInt parses an integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
