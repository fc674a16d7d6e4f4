package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error)
	getFn    func(ctx context.Context, id int) (*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int) (*domain.User, error)
	statsFn  func(ctx context.Context) (*ports.UserStats, error)
}

func (s *stubUserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	return s.listFn(ctx, filter)
}
func (s *stubUserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}
func (s *stubUserService) UpdateUser(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}
func (s *stubUserService) DeleteUser(ctx context.Context, id int) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}
func (s *stubUserService) UserStats(ctx context.Context) (*ports.UserStats, error) {
	return s.statsFn(ctx)
}
func (s *stubUserService) UserCount(ctx context.Context) (int, error) { return 0, nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	var gotFilter ports.ListUsersFilter
	stub := &stubUserService{
		listFn: func(_ context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
			gotFilter = filter
			return []domain.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users?role=admin&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.Role != "admin" || gotFilter.Limit != 2 {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

func TestUserHandler_List_IgnoresNonNumericLimit(t *testing.T) {
	e := newTestEcho()
	var gotFilter ports.ListUsersFilter
	stub := &stubUserService{
		listFn: func(_ context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotFilter.Limit != 0 {
		t.Fatalf("expected no limit, got %d", gotFilter.Limit)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getFn: func(_ context.Context, id int) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "User not found" || resp["userId"] != float64(999) {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Name != "Dana" || input.Email != "dana@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 4, Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Dana","email":"dana@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.ID != 4 || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserHandler_Create_MissingEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Dana"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Copy","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandler_Update_OnlySuppliedFields(t *testing.T) {
	e := newTestEcho()
	var gotInput ports.UpdateUserInput
	stub := &stubUserService{
		updateFn: func(_ context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: id, Name: "Bob", Email: "bob@example.com", Role: "admin"}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/2", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.Role == nil || *gotInput.Role != "admin" {
		t.Fatalf("expected role update, got %+v", gotInput)
	}
	if gotInput.Name != nil || gotInput.Email != nil {
		t.Fatalf("unsupplied fields must stay nil: %+v", gotInput)
	}
}

func TestUserHandler_Delete_ReturnsRemovedRecord(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id int) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Carol"}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/users/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.ID != 3 || user.Name != "Carol" {
		t.Fatalf("unexpected body: %+v", user)
	}
}

func TestUserHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		statsFn: func(_ context.Context) (*ports.UserStats, error) {
			return &ports.UserStats{
				Total:       3,
				ByRole:      map[string]int{"admin": 1, "user": 2},
				RecentUsers: []domain.User{{ID: 3}, {ID: 2}, {ID: 1}},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Total       int            `json:"total"`
		ByRole      map[string]int `json:"byRole"`
		RecentUsers []domain.User  `json:"recentUsers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 3 || resp.ByRole["user"] != 2 || len(resp.RecentUsers) != 3 {
		t.Fatalf("unexpected stats: %+v", resp)
	}
}
