package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msnglobalit/attendance-backend-go/internal/pkg/jwt"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/storage"
	"github.com/msnglobalit/attendance-backend-go/internal/repository/ledgerfile"
	attendanceService "github.com/msnglobalit/attendance-backend-go/internal/service/attendance"
	authService "github.com/msnglobalit/attendance-backend-go/internal/service/auth"
	intakeService "github.com/msnglobalit/attendance-backend-go/internal/service/intake"
	reportService "github.com/msnglobalit/attendance-backend-go/internal/service/report"
	rosterService "github.com/msnglobalit/attendance-backend-go/internal/service/roster"
)

const handlerTestSecret = "test-secret-key-for-jwt"

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	dataDir := t.TempDir()

	ledgerRepo, err := ledgerfile.NewLedgerRepository(dataDir)
	require.NoError(t, err)
	rosterRepo := ledgerfile.NewRosterRepository(filepath.Join(dataDir, "employees_data.csv"))
	exchangeRepo := ledgerfile.NewExchangeRepository(filepath.Join(dataDir, "recognized_id.json"))

	local, err := storage.NewLocalStorage(dataDir)
	require.NoError(t, err)

	classifier, err := attendanceService.NewClassifier("09:00", 15*time.Minute)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	ledgerSvc := attendanceService.NewLedgerService(ledgerRepo, ledgerfile.NewArtifactWriter(local), classifier, nil)
	intakeSvc := intakeService.NewIntakeService(exchangeRepo, ledgerSvc, rosterRepo, 0, nil)
	reportSvc := reportService.NewReportService(ledgerRepo, rosterRepo, nil)
	rosterSvc := rosterService.NewRosterService(rosterRepo, local)
	// No credentials file on disk; the bootstrap account applies.
	authSvc := authService.NewAuthService(filepath.Join(dataDir, "credentials.json"), jwtSvc)

	return NewRouter(
		jwtSvc,
		"http://localhost:3000",
		NewAuthHandler(authSvc),
		NewAttendanceHandler(ledgerSvc),
		NewIntakeHandler(intakeSvc),
		NewReportHandler(reportSvc),
		NewRosterHandler(rosterSvc),
	)
}

func loginTestAdmin(t *testing.T, router *chi.Mux) string {
	t.Helper()
	body := bytes.NewBufferString(`{"username":"msnglobalit","password":"msnglobalit123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func authedRequest(method, target, token string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"username":"msnglobalit","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Attendance_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MarkAndListAttendance(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	markBody := bytes.NewBufferString(`{"employee_id":"MSN001","name":"Ramsha Tariq","entry_time":"08:30"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/attendance", token, markBody))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Present"`)

	// Second mark on the same day conflicts.
	markAgain := bytes.NewBufferString(`{"employee_id":"MSN001","name":"Ramsha Tariq","entry_time":"10:00"}`)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/attendance", token, markAgain))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/attendance", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MSN001")
}

func TestRouter_Mark_ValidationError(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	body := bytes.NewBufferString(`{"name":"No ID"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/attendance", token, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_DailyReport(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	markBody := bytes.NewBufferString(`{"employee_id":"MSN001","name":"Ramsha Tariq","entry_time":"09:30"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/attendance", token, markBody))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/reports/daily", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"late":1`)
}

func TestRouter_MonthlyReport_RosterComplete(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/reports/monthly", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	// The seed roster shows up even with an empty ledger.
	assert.Contains(t, rec.Body.String(), "MSN001")
	assert.Contains(t, rec.Body.String(), "MSN009")
}

func TestRouter_IntakeStatus_Empty(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/intake/status", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exists":false`)
}

func TestRouter_RosterUpload(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "roster.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Employee ID,Name\nEMP100,Alice Khan\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/employees", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMP100")
	assert.NotContains(t, rec.Body.String(), "MSN001")
}

func TestRouter_Export_ContentDisposition(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/attendance/export", token, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), fmt.Sprintf("attendance_%s.csv", time.Now().Format("2006-01-02")))
}

func TestRouter_Logout_RevokesToken(t *testing.T) {
	router := newTestRouter(t)
	token := loginTestAdmin(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/auth/logout", token, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/attendance", token, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
