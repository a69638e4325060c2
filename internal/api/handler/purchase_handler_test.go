package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/courseify/course-api/internal/core/domain"
)

type stubPurchaseService struct {
	purchaseFn      func(ctx context.Context, username, courseID string) error
	listPurchasedFn func(ctx context.Context, username string) ([]*domain.Course, error)
}

func (s *stubPurchaseService) Purchase(ctx context.Context, username, courseID string) error {
	return s.purchaseFn(ctx, username, courseID)
}

func (s *stubPurchaseService) ListPurchased(ctx context.Context, username string) ([]*domain.Course, error) {
	return s.listPurchasedFn(ctx, username)
}

func purchaseContext(e *echo.Echo, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "alice")
	c.Set("role", domain.RoleUser)
	return c, rec
}

func TestPurchaseHandler_Purchase_Success(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			if username != "alice" || courseID != "c1" {
				t.Fatalf("unexpected args: %s %s", username, courseID)
			}
			return nil
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := purchaseContext(e, http.MethodPost, "/users/courses/c1")
	c.SetParamNames("courseId")
	c.SetParamValues("c1")

	if err := handler.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Course purchased successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestPurchaseHandler_Purchase_CourseNotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			return domain.ErrCourseNotFound
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := purchaseContext(e, http.MethodPost, "/users/courses/missing")
	c.SetParamNames("courseId")
	c.SetParamValues("missing")

	_ = handler.Purchase(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// The purchase route reports a missing account as 403, not 404.
func TestPurchaseHandler_Purchase_UserNotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			return domain.ErrAccountNotFound
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := purchaseContext(e, http.MethodPost, "/users/courses/c1")
	c.SetParamNames("courseId")
	c.SetParamValues("c1")

	_ = handler.Purchase(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "User not exist" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestPurchaseHandler_ListPurchased_Empty(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		listPurchasedFn: func(ctx context.Context, username string) ([]*domain.Course, error) {
			return []*domain.Course{}, nil
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := purchaseContext(e, http.MethodGet, "/users/purchasedCourses")

	if err := handler.ListPurchased(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		PurchasedCourses []courseResponse `json:"purchasedCourses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.PurchasedCourses == nil || len(resp.PurchasedCourses) != 0 {
		t.Fatalf("expected empty purchasedCourses list, got %s", rec.Body.String())
	}
}

// The listing route reports a missing account as 404.
func TestPurchaseHandler_ListPurchased_UserNotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		listPurchasedFn: func(ctx context.Context, username string) ([]*domain.Course, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := purchaseContext(e, http.MethodGet, "/users/purchasedCourses")

	_ = handler.ListPurchased(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPurchaseHandler_MissingClaims(t *testing.T) {
	e := newEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			t.Fatalf("service must not be called without claims")
			return nil
		},
	}
	handler := NewPurchaseHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users/courses/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Purchase(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
