package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/handlers"
	"tutormatch/models"
	"tutormatch/services/booking"
	"tutormatch/services/notification"
	"tutormatch/services/search"
	"tutormatch/services/session"
	"tutormatch/services/user"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "routes-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryRevocations struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memoryRevocations) Revoke(_ context.Context, id string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = true
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[id], nil
}

type testServer struct {
	router *gin.Engine
	repo   *userRepo.MemoryUserRepo
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo := userRepo.NewMemoryUserRepo()
	sessions := session.NewJWTProvider(testSecret, &memoryRevocations{ids: map[string]bool{}})

	bookingSvc := booking.NewBookingService(repo, notification.NoopPublisher{}, booking.DefaultUTCOffsetHours)
	bookingSvc.Now = func() time.Time { return time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC) }

	monitor := utils.NewHealthMonitor(map[string]utils.HealthCheck{
		"mongo": func(context.Context) error { return nil },
	})
	monitor.Check(context.Background())

	hb := handlers.NewHandlerBundle(handlers.Services{
		Users:    &user.DefaultUserService{Repo: repo},
		Search:   &search.DefaultSearchService{Repo: repo},
		Booking:  bookingSvc,
		Sessions: sessions,
		Health:   monitor,
	})
	router := NewRouter(hb, Options{Logger: zap.NewNop(), Sessions: sessions})

	token, err := utils.GenerateToken([]byte(testSecret), "caller", "ana@example.com", time.Hour)
	require.NoError(t, err)
	return &testServer{router: router, repo: repo, token: token}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error
}

func (s *testServer) createUser(t *testing.T, body map[string]any) models.User {
	t.Helper()
	w := s.do(http.MethodPost, "/user", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return u
}

func teacherBody() map[string]any {
	return map[string]any{
		"name":                "Ana",
		"email":               "ana@example.com",
		"cellphone":           "123",
		"is_teacher":          true,
		"courses":             []string{"Math", "Physics"},
		"available_hours":     map[string][]int{"monday": {10}},
		"available_locations": []string{"Library"},
	}
}

func studentBody() map[string]any {
	return map[string]any{"name": "Bia", "email": "bia@example.com", "cellphone": "456"}
}

func TestCreateUserEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/user", teacherBody(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotEmpty(t, raw["_id"])
	require.EqualValues(t, 1, raw["coins"])
	require.Equal(t, []any{}, raw["reviews"])
	require.Equal(t, []any{}, raw["appointments"])

	body := teacherBody()
	delete(body, "courses")
	w = s.do(http.MethodPost, "/user", body, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing body parameter: courses", errorOf(t, w))

	body = studentBody()
	body["available_hours"] = map[string][]int{"monday": {21}}
	w = s.do(http.MethodPost, "/user", body, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/user", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupEndpoints(t *testing.T) {
	s := newTestServer(t)
	teacher := s.createUser(t, teacherBody())

	w := s.do(http.MethodGet, "/user/ana@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/user/ghost@example.com", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User with this email not found", errorOf(t, w))

	w = s.do(http.MethodGet, "/teacher/"+teacher.ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/teacher/not-hex", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/teacher/0123456789abcdef01234567", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Teacher not found", errorOf(t, w))
}

func TestSearchEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, teacherBody())
	other := teacherBody()
	other["email"] = "caio@example.com"
	other["courses"] = []string{"mathematics"}
	s.createUser(t, other)

	var users []models.User
	w := s.do(http.MethodGet, "/search?courses=Math", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)

	w = s.do(http.MethodGet, "/search/MAT", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)

	w = s.do(http.MethodGet, "/search?courses=Chemistry", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Course not found", errorOf(t, w))

	w = s.do(http.MethodGet, "/search", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointmentEndpoint(t *testing.T) {
	s := newTestServer(t)
	teacher := s.createUser(t, teacherBody())
	student := s.createUser(t, studentBody())

	body := map[string]any{
		"date":         "2030-01-07T13:00:00Z",
		"teacher_id":   teacher.ID.Hex(),
		"teacher_name": "Ana",
		"student_id":   student.ID.Hex(),
		"student_name": "Bia",
		"course":       "Math",
		"location":     "Library",
	}

	w := s.do(http.MethodPost, "/appointment", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Please login first", errorOf(t, w))

	w = s.do(http.MethodPost, "/appointment", body, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var appt map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	require.Equal(t, "", appt["appointment_link"])
	require.Equal(t, teacher.ID.Hex(), appt["teacher_id"])

	stored, err := s.repo.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.Coins)

	// Same slot again: the student is out of coins first.
	w = s.do(http.MethodPost, "/appointment", body, s.token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	delete(body, "course")
	w = s.do(http.MethodPost, "/appointment", body, s.token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, strings.HasPrefix(errorOf(t, w), "Missing parameter on request body"))
}

func TestWrongMethod(t *testing.T) {
	s := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/appointment"},
		{http.MethodPut, "/user"},
		{http.MethodDelete, "/user/ana@example.com"},
		{http.MethodPost, "/teacher/abc"},
		{http.MethodPost, "/search"},
		{http.MethodPatch, "/search/Math"},
	} {
		w := s.do(tc.method, tc.path, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		require.Equal(t, "Wrong request method", errorOf(t, w))
	}

	w := s.do(http.MethodGet, "/nowhere", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchPageAndSignOut(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/app/search", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Not signed in")

	w = s.do(http.MethodGet, "/app/search", nil, s.token)
	require.Contains(t, w.Body.String(), "Signed in as ana@example.com")

	w = s.do(http.MethodDelete, "/session", nil, s.token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/app/search", nil, s.token)
	require.Contains(t, w.Body.String(), "Not signed in")

	w = s.do(http.MethodDelete, "/session", nil, s.token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var status utils.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Equal(t, "ok", status.Status)
	require.True(t, status.Dependencies["mongo"])
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
