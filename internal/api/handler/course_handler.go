package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/courseify/course-api/internal/api/metrics"
	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// CourseHandler handles catalog operations: admin create/update/list and the
// user-facing published listing.
type CourseHandler struct {
	catalog ports.CatalogService
}

func NewCourseHandler(catalog ports.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// Create handles POST /admin/courses.
//
// @Summary      Create a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course details"
// @Success      200   {object}  createCourseResponse
// @Failure      400   {object}  messageResponse
// @Router       /admin/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	id, err := h.catalog.Create(c.Request().Context(), toCourseInput(req))
	if err != nil {
		return err
	}

	metrics.CoursesCreatedTotal.WithLabelValues(strconv.FormatBool(req.Published)).Inc()

	return c.JSON(http.StatusOK, createCourseResponse{
		Message:  "Course created successfully",
		CourseID: id,
	})
}

// Update handles PUT /admin/courses/:courseId.
//
// @Summary      Update a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        courseId  path      string         true  "Course id"
// @Param        body      body      courseRequest  true  "New course details"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /admin/courses/{courseId} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err := h.catalog.Update(c.Request().Context(), c.Param("courseId"), toCourseInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Course not found!"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Course updated successfully!"})
}

// ListAll handles GET /admin/courses: the full catalog, drafts included.
//
// @Summary      List all courses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  coursesResponse
// @Router       /admin/courses [get]
func (h *CourseHandler) ListAll(c echo.Context) error {
	courses, err := h.catalog.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coursesResponse{Courses: toCourseResponses(courses)})
}

// ListPublished handles GET /users/courses: published courses only.
//
// @Summary      List published courses
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  coursesResponse
// @Router       /users/courses [get]
func (h *CourseHandler) ListPublished(c echo.Context) error {
	courses, err := h.catalog.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coursesResponse{Courses: toCourseResponses(courses)})
}

func toCourseInput(req courseRequest) ports.CourseInput {
	return ports.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageLink:   req.ImageLink,
		Published:   req.Published,
	}
}
