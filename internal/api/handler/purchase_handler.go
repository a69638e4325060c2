package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseify/course-api/internal/api/metrics"
	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// PurchaseHandler handles purchase recording and the purchased-course listing.
type PurchaseHandler struct {
	purchases ports.PurchaseService
}

func NewPurchaseHandler(purchases ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// Purchase handles POST /users/courses/:courseId.
//
// An unknown course is 404; an unknown account is 403, matching the original
// contract (the token alone does not guarantee the account still exists).
//
// @Summary      Purchase a course
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /users/courses/{courseId} [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.purchases.Purchase(c.Request().Context(), username, c.Param("courseId"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			metrics.PurchasesTotal.WithLabelValues("course_not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Course not found!"})
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.PurchasesTotal.WithLabelValues("user_not_found").Inc()
			return c.JSON(http.StatusForbidden, messageResponse{Message: "User not exist"})
		}
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Course purchased successfully"})
}

// ListPurchased handles GET /users/purchasedCourses.
//
// @Summary      List purchased courses
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  purchasedCoursesResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/purchasedCourses [get]
func (h *PurchaseHandler) ListPurchased(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	courses, err := h.purchases.ListPurchased(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, purchasedCoursesResponse{PurchasedCourses: toCourseResponses(courses)})
}
