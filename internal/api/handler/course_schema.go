package handler

import "github.com/courseify/course-api/internal/core/domain"

// messageResponse is the standard envelope for message-only responses,
// success and failure alike.
type messageResponse struct {
	Message string `json:"message"`
}

// courseRequest is the payload for creating or updating a course.
type courseRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

type courseResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

type createCourseResponse struct {
	Message  string `json:"message"`
	CourseID string `json:"courseId"`
}

type coursesResponse struct {
	Courses []courseResponse `json:"courses"`
}

type purchasedCoursesResponse struct {
	PurchasedCourses []courseResponse `json:"purchasedCourses"`
}

func toCourseResponses(courses []*domain.Course) []courseResponse {
	out := make([]courseResponse, len(courses))
	for i, c := range courses {
		out[i] = courseResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Price:       c.Price,
			ImageLink:   c.ImageLink,
			Published:   c.Published,
		}
	}
	return out
}
