package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"crop-procurement-api/config"
	"crop-procurement-api/controllers"
	"crop-procurement-api/middleware"
	"crop-procurement-api/models"
	"crop-procurement-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	testSecret = "routes-test-secret"
	farmerID   = "11111111-1111-1111-1111-111111111111"
	farmer2ID  = "22222222-2222-2222-2222-222222222222"
	officerID  = "33333333-3333-3333-3333-333333333333"
)

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db, err := config.OpenDB(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "routes.db"),
	}, true)
	if err != nil {
		t.Fatalf("OpenDB returned error: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate returned error: %v", err)
	}
	now := time.Now().UTC()
	users := []models.User{
		{ID: farmerID, Name: "Asha Farmer", Email: "asha@example.test", UserType: models.UserTypeFarmer, CreatedAt: now, UpdatedAt: now},
		{ID: farmer2ID, Name: "Ravi Farmer", Email: "ravi@example.test", UserType: models.UserTypeFarmer, CreatedAt: now, UpdatedAt: now},
		{ID: officerID, Name: "Meera Officer", Email: "meera@example.test", UserType: models.UserTypeOfficer, CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	notificationSvc := services.NewNotificationService(
		services.NewGormNotificationStore(db), services.NewGormUserDirectory(db), nil, "")
	submissionSvc := services.NewCropSubmissionService(services.NewGormSubmissionStore(db), notificationSvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	SetupRoutes(router, testSecret, Handlers{
		Submissions:   controllers.NewCropSubmissionController(submissionSvc),
		Notifications: controllers.NewNotificationController(notificationSvc),
	})

	return &apiFixture{t: t, db: db, router: router}
}

func (f *apiFixture) token(userID, userType string) string {
	f.t.Helper()
	token, err := middleware.IssueToken(testSecret, userID, userType, time.Hour)
	if err != nil {
		f.t.Fatalf("IssueToken returned error: %v", err)
	}
	return token
}

func (f *apiFixture) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	f.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			f.t.Fatalf("failed to marshal body: %v", err)
		}
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
	f.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			f.t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
		}
	}
	return w, decoded
}

// createSubmission posts a lot as farmerID and returns its id.
func (f *apiFixture) createSubmission() string {
	f.t.Helper()
	w, body := f.do(http.MethodPost, "/api/v1/crop-submissions", f.token(farmerID, models.UserTypeFarmer), map[string]interface{}{
		"cropType":    "wheat",
		"quantity":    map[string]interface{}{"amount": 40, "unit": "quintal"},
		"harvestDate": "2025-08-01",
		"location":    map[string]interface{}{"district": "Nashik", "state": "Maharashtra"},
	})
	if w.Code != http.StatusCreated {
		f.t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	sub, _ := body["submission"].(map[string]interface{})
	id, _ := sub["id"].(string)
	if id == "" {
		f.t.Fatalf("missing submission id in %s", w.Body.String())
	}
	return id
}

func TestHealthIsPublic(t *testing.T) {
	f := newAPIFixture(t)
	w, body := f.do(http.MethodGet, "/api/v1/health", "", nil)
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health response %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmissionWriteRoutesRequireAuth(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSubmission()

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/crop-submissions"},
		{http.MethodPost, "/api/v1/crop-submissions"},
		{http.MethodPut, "/api/v1/crop-submissions/" + id},
		{http.MethodDelete, "/api/v1/crop-submissions/" + id},
		{http.MethodGet, "/api/v1/notifications"},
	}
	for _, tc := range cases {
		w, body := f.do(tc.method, tc.path, "", nil)
		if w.Code != http.StatusUnauthorized || body["kind"] != "unauthorized" {
			t.Fatalf("%s %s: expected 401, got %d: %s", tc.method, tc.path, w.Code, w.Body.String())
		}
	}
}

func TestGetSubmissionByIDWithoutToken(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSubmission()

	w, body := f.do(http.MethodGet, "/api/v1/crop-submissions/"+id, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	sub, _ := body["submission"].(map[string]interface{})
	farmer, _ := sub["farmer"].(map[string]interface{})
	if sub["id"] != id || farmer["name"] != "Asha Farmer" {
		t.Fatalf("unexpected submission %s", w.Body.String())
	}

	w, body = f.do(http.MethodGet, "/api/v1/crop-submissions/missing", "", nil)
	if w.Code != http.StatusNotFound || body["kind"] != "not_found" {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOfficerApprovalFlowOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSubmission()
	officer := f.token(officerID, models.UserTypeOfficer)
	farmer := f.token(farmerID, models.UserTypeFarmer)

	w, body := f.do(http.MethodPut, "/api/v1/crop-submissions/"+id, officer, map[string]interface{}{"status": "approved"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["message"] != "Crop submission updated successfully" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	sub, _ := body["submission"].(map[string]interface{})
	if sub["status"] != "approved" || sub["officerId"] != officerID {
		t.Fatalf("unexpected submission %v", sub)
	}

	w, body = f.do(http.MethodGet, "/api/v1/crop-submissions/"+id, farmer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	sub, _ = body["submission"].(map[string]interface{})
	officerSummary, _ := sub["officer"].(map[string]interface{})
	if officerSummary["name"] != "Meera Officer" {
		t.Fatalf("expected officer summary, got %v", sub["officer"])
	}

	w, body = f.do(http.MethodGet, "/api/v1/notifications", farmer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	items, _ := body["items"].([]interface{})
	if len(items) != 1 || body["unread"] != float64(1) {
		t.Fatalf("expected one unread notification, got %s", w.Body.String())
	}
	first, _ := items[0].(map[string]interface{})
	if first["message"] != "Your crop submission has been approved" {
		t.Fatalf("unexpected notification %v", first)
	}

	w, _ = f.do(http.MethodPatch, "/api/v1/notifications/"+first["id"].(string)+"/read", farmer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w, body = f.do(http.MethodDelete, "/api/v1/crop-submissions/"+id, farmer, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if body["kind"] != "invalid_state" || body["error"] != "cannot delete processed submissions" {
		t.Fatalf("unexpected error body %s", w.Body.String())
	}
}

func TestSubmissionErrorStatuses(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSubmission()
	farmer := f.token(farmerID, models.UserTypeFarmer)
	otherFarmer := f.token(farmer2ID, models.UserTypeFarmer)
	officer := f.token(officerID, models.UserTypeOfficer)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		code   int
		kind   string
	}{
		{"get missing", http.MethodGet, "/api/v1/crop-submissions/missing", farmer, nil, http.StatusNotFound, "not_found"},
		{"update missing", http.MethodPut, "/api/v1/crop-submissions/missing", officer, map[string]string{"status": "approved"}, http.StatusNotFound, "not_found"},
		{"update by other farmer", http.MethodPut, "/api/v1/crop-submissions/" + id, otherFarmer, map[string]string{"cropType": "rice"}, http.StatusForbidden, "forbidden"},
		{"unknown status", http.MethodPut, "/api/v1/crop-submissions/" + id, officer, map[string]string{"status": "shipped"}, http.StatusBadRequest, "invalid_input"},
		{"delete by officer", http.MethodDelete, "/api/v1/crop-submissions/" + id, officer, nil, http.StatusForbidden, "forbidden"},
		{"delete by other farmer", http.MethodDelete, "/api/v1/crop-submissions/" + id, otherFarmer, nil, http.StatusForbidden, "forbidden"},
		{"create by officer", http.MethodPost, "/api/v1/crop-submissions", officer, map[string]string{"cropType": "rice"}, http.StatusForbidden, "forbidden"},
		{"create without quantity", http.MethodPost, "/api/v1/crop-submissions", farmer, map[string]string{"cropType": "rice", "harvestDate": "2025-08-01"}, http.StatusBadRequest, "invalid_input"},
		{"bad date", http.MethodPut, "/api/v1/crop-submissions/" + id, farmer, map[string]string{"harvestDate": "soon"}, http.StatusBadRequest, "invalid_input"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := f.do(tc.method, tc.path, tc.token, tc.body)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, w.Code, w.Body.String())
			}
			if body["kind"] != tc.kind {
				t.Fatalf("expected kind %s, got %v", tc.kind, body["kind"])
			}
		})
	}
}

func TestFarmerListAndDelete(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSubmission()
	farmer := f.token(farmerID, models.UserTypeFarmer)

	w, body := f.do(http.MethodGet, "/api/v1/crop-submissions?limit=5", farmer, nil)
	if w.Code != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("expected one submission, got %d: %s", w.Code, w.Body.String())
	}

	w, body = f.do(http.MethodDelete, "/api/v1/crop-submissions/"+id, farmer, nil)
	if w.Code != http.StatusOK || body["message"] != "Crop submission deleted successfully" {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w, _ = f.do(http.MethodGet, "/api/v1/crop-submissions/"+id, farmer, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	f := newAPIFixture(t)
	w, body := f.do(http.MethodGet, "/api/v1/nope", "", nil)
	if w.Code != http.StatusNotFound || body["kind"] != "not_found" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
