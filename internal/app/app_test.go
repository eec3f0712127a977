package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/database/dbtest"
	"barbershop/internal/domain/user"
	"barbershop/internal/pkg/jwt"
)

type E2ETestSuite struct {
	app    *App
	tokens *jwt.Service
	users  map[user.Role]*user.User
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	require.NoError(t, Migrate(db))

	users := user.NewRepository(db)
	s := &E2ETestSuite{
		tokens: jwt.New("test_secret_key_32_characters_min", 24*time.Hour),
		users:  make(map[user.Role]*user.User),
	}
	for _, role := range []user.Role{user.RoleClient, user.RoleStaff, user.RoleOwner} {
		u := &user.User{Email: string(role) + "@barbershop.test", Role: role, Name: string(role)}
		require.NoError(t, users.Create(context.Background(), u))
		s.users[role] = u
	}

	s.app = New(Deps{DB: db, Tokens: s.tokens, Log: zap.NewNop()})
	return s
}

func (s *E2ETestSuite) token(t *testing.T, role user.Role) string {
	t.Helper()
	tok, err := s.tokens.GenerateToken(s.users[role].ID, string(role))
	require.NoError(t, err)
	return tok
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (int, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type idHolder struct {
	ID int64 `json:"id"`
}

func TestE2E_BookingFlow(t *testing.T) {
	s := setupTestSuite(t)
	owner := s.token(t, user.RoleOwner)
	client := s.token(t, user.RoleClient)
	staff := s.token(t, user.RoleStaff)

	// Owner sets up two branches.
	var branchIDs []int64
	for _, p := range []struct {
		name     string
		lat, lon float64
	}{{"A", 10, 10}, {"B", 0, 0}} {
		code, resp := s.request(t, http.MethodPost, "/api/v1/addresses", owner, map[string]any{
			"latitude": p.lat, "longitude": p.lon, "full_address": p.name + " street",
		})
		require.Equal(t, http.StatusCreated, code)
		addr := decode[struct{ Address idHolder }](t, resp.Data).Address

		code, resp = s.request(t, http.MethodPost, "/api/v1/branches", owner, map[string]any{
			"name": p.name, "address_id": addr.ID,
		})
		require.Equal(t, http.StatusCreated, code)
		branchIDs = append(branchIDs, decode[struct{ Branch idHolder }](t, resp.Data).Branch.ID)
	}

	// Ranking is public.
	code, resp := s.request(t, http.MethodGet, "/api/v1/branches?latitude=0&longitude=0", "", nil)
	require.Equal(t, http.StatusOK, code)
	ranked := decode[struct {
		Branches []struct {
			Name     string  `json:"name"`
			Distance float64 `json:"distance"`
		} `json:"branches"`
	}](t, resp.Data).Branches
	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Name)
	assert.InDelta(t, 4.47, ranked[1].Distance, 0.01)

	// Client books the staff member three times.
	start := time.Date(2026, 11, 5, 10, 0, 0, 0, time.UTC)
	var bookingIDs []int64
	for i := 0; i < 3; i++ {
		code, resp = s.request(t, http.MethodPost, "/api/v1/bookings", client, map[string]any{
			"status":         "pending",
			"start_at":       start.Add(time.Duration(i) * time.Hour),
			"end_at":         start.Add(time.Duration(i)*time.Hour + 45*time.Minute),
			"total_duration": 45,
			"total_price":    7500,
			"client_id":      s.users[user.RoleClient].ID,
			"staff_id":       s.users[user.RoleStaff].ID,
		})
		require.Equal(t, http.StatusCreated, code, resp.Error)
		bookingIDs = append(bookingIDs, decode[struct{ Booking idHolder }](t, resp.Data).Booking.ID)
	}

	path := fmt.Sprintf("/api/v1/bookings/history?role=client&id=%d&page=1&limit=2", s.users[user.RoleClient].ID)
	code, resp = s.request(t, http.MethodGet, path, client, nil)
	require.Equal(t, http.StatusOK, code)
	history := decode[struct{ Bookings []idHolder }](t, resp.Data).Bookings
	require.Len(t, history, 2)
	assert.Equal(t, bookingIDs[2], history[0].ID)
	assert.Equal(t, bookingIDs[1], history[1].ID)

	// In-process delivery created a notification for the staff member per booking.
	code, resp = s.request(t, http.MethodGet, "/api/v1/notifications", staff, nil)
	require.Equal(t, http.StatusOK, code)
	notifications := decode[struct {
		UnreadCount int64 `json:"unread_count"`
	}](t, resp.Data)
	assert.Equal(t, int64(3), notifications.UnreadCount)

	// Favorites and reviews.
	code, _ = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%d", branchIDs[1]), client, nil)
	assert.Equal(t, http.StatusCreated, code)
	code, _ = s.request(t, http.MethodPost, "/api/v1/reviews", client, map[string]any{
		"branch_id": branchIDs[1], "staff_id": s.users[user.RoleStaff].ID, "rating": 5,
	})
	assert.Equal(t, http.StatusCreated, code)
}

func TestE2E_BookingUnknownStaff(t *testing.T) {
	s := setupTestSuite(t)

	start := time.Date(2026, 11, 5, 10, 0, 0, 0, time.UTC)
	code, resp := s.request(t, http.MethodPost, "/api/v1/bookings", s.token(t, user.RoleClient), map[string]any{
		"status":    "pending",
		"start_at":  start,
		"end_at":    start.Add(time.Hour),
		"client_id": s.users[user.RoleClient].ID,
		"staff_id":  999,
	})

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "999")
}

func TestE2E_RoleGuards(t *testing.T) {
	s := setupTestSuite(t)

	code, _ := s.request(t, http.MethodPost, "/api/v1/branches", s.token(t, user.RoleClient), map[string]any{"name": "x", "address_id": 1})
	assert.Equal(t, http.StatusForbidden, code)

	path := fmt.Sprintf("/api/v1/bookings/history?role=owner&id=%d", s.users[user.RoleOwner].ID)
	code, _ = s.request(t, http.MethodGet, path, s.token(t, user.RoleOwner), nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.request(t, http.MethodGet, "/api/v1/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestE2E_Health(t *testing.T) {
	s := setupTestSuite(t)

	code, resp := s.request(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
}
