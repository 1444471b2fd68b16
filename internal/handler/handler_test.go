package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campushub/internal/model"
	"campushub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(store.New()).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestComplaintLifecycle(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/complaints", map[string]any{
		"category":     "Academic",
		"subject":      "Broken projector",
		"description":  "Projector in CS-101 keeps flickering",
		"contactEmail": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created model.Complaint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, model.StatusPending, created.Status)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, r, http.MethodGet, "/api/complaints", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []model.Complaint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	found := false
	for _, c := range list {
		if c.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "created complaint missing from list")

	resp = doJSON(t, r, http.MethodPatch, "/api/complaints/"+created.ID+"/status",
		map[string]string{"status": model.StatusResolved})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, r, http.MethodGet, "/api/complaints/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var got model.Complaint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, model.StatusResolved, got.Status)
}

func TestUpdateComplaintStatusMissingField(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/complaints", map[string]any{
		"category":     "Services",
		"subject":      "Slow WiFi",
		"description":  "Hostel block B WiFi drops every evening",
		"contactEmail": "x@y.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Complaint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = doJSON(t, r, http.MethodPatch, "/api/complaints/"+created.ID+"/status",
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateComplaintStatusUnknownID(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodPatch, "/api/complaints/"+uuid.NewString()+"/status",
		map[string]string{"status": model.StatusUnderReview})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateEventValidation(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{
		"description": "missing title and friends",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, r, http.MethodPost, "/api/events", map[string]any{
		"title":       "Hackathon",
		"description": "24h build sprint",
		"category":    "Academic",
		"date":        "2024-12-14",
		"time":        "09:00 AM",
		"location":    "Innovation Lab",
		"featured":    true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Event
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.True(t, created.Featured)
	assert.NotEmpty(t, created.ID)
}

func TestCreateFeedbackRatingBounds(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/feedback", map[string]any{
		"rating":     6,
		"categories": "Events",
		"message":    "out of range",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, r, http.MethodPost, "/api/feedback", map[string]any{
		"rating":     5,
		"categories": "Events,Support",
		"message":    "Great fest organization",
		"anonymous":  true,
	})
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestGetClubNotFound(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodGet, "/api/clubs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListClubsSeeded(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodGet, "/api/clubs", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var clubs []model.Club
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &clubs))
	assert.Len(t, clubs, 6)
}

func TestTimetableUnknownDayReturnsEmptyList(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodGet, "/api/timetable/Sunday", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestProjectsByClubRoute(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodGet, "/api/clubs", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var clubs []model.Club
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &clubs))
	require.NotEmpty(t, clubs)

	var roboticsID string
	for _, c := range clubs {
		if c.Name == "Robotics Club" {
			roboticsID = c.ID
		}
	}
	require.NotEmpty(t, roboticsID)

	resp = doJSON(t, r, http.MethodGet, "/api/projects/club/"+roboticsID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var projects []model.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Autonomous Rover", projects[0].Name)
}

func TestAttendanceListed(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodGet, "/api/attendance", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var records []model.AttendanceRecord
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &records))
	assert.Len(t, records, 5)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	resp := doJSON(t, r, http.MethodGet, "/api/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}
