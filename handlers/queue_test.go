package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/services/queue"

	"github.com/gin-gonic/gin"
)

// fakeQueueService records the arguments of the last call and answers
// with canned data.
type fakeQueueService struct {
	lastProfileID string
	lastQueueID   string
	lastSchedule  models.QueueSchedule

	listResp  *models.QueueListResponse
	slotsResp *models.QueueSlotsResponse
	err       error
}

func (f *fakeQueueService) ListQueues(_ context.Context, profileID string) (*models.QueueListResponse, error) {
	f.lastProfileID = profileID
	return f.listResp, f.err
}

func (f *fakeQueueService) GetQueueSlots(_ context.Context, profileID, queueID string) (*models.QueueSlotsResponse, error) {
	f.lastProfileID = profileID
	f.lastQueueID = queueID
	return f.slotsResp, f.err
}

func (f *fakeQueueService) CreateQueue(_ context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	f.lastSchedule = schedule
	return json.RawMessage(`{"created":true}`), f.err
}

func (f *fakeQueueService) UpdateQueue(_ context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	f.lastSchedule = schedule
	return json.RawMessage(`{"updated":true}`), f.err
}

func (f *fakeQueueService) DeleteQueue(_ context.Context, profileID, queueID string) (json.RawMessage, error) {
	f.lastProfileID = profileID
	f.lastQueueID = queueID
	return json.RawMessage(`{"deleted":true}`), f.err
}

func (f *fakeQueueService) Preview(_ context.Context, profileID string, count int) (*models.QueuePreviewResponse, error) {
	f.lastProfileID = profileID
	return &models.QueuePreviewResponse{ProfileID: profileID, Count: count}, f.err
}

func (f *fakeQueueService) NextSlot(_ context.Context, profileID, queueID string) (json.RawMessage, error) {
	f.lastProfileID = profileID
	f.lastQueueID = queueID
	return json.RawMessage(`{"nextSlot":null}`), f.err
}

// newQueueRouter wires the handler behind a stand-in for the session
// middleware.
func newQueueRouter(service queue.QueueService, session *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if session != nil {
			c.Set("session", session)
		}
		c.Next()
	})

	handler := NewQueueHandler(service)
	router.GET("/api/queue", handler.GetQueueHandler)
	router.POST("/api/queue", handler.CreateQueueHandler)
	router.DELETE("/api/queue", handler.DeleteQueueHandler)
	router.GET("/api/queue/timezones", handler.TimezonesHandler)
	return router
}

func TestGetQueueHandler(t *testing.T) {
	session := &models.Session{ID: "sess-1", DefaultProfileID: "prof-default"}

	t.Run("Lists All Queues With Session Default Profile", func(t *testing.T) {
		service := &fakeQueueService{listResp: &models.QueueListResponse{Count: 0}}
		router := newQueueRouter(service, session)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/queue?all=true", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
		}
		if service.lastProfileID != "prof-default" {
			t.Errorf("profileId = %q, want session default", service.lastProfileID)
		}
	})

	t.Run("Query Profile Overrides Session Default", func(t *testing.T) {
		service := &fakeQueueService{listResp: &models.QueueListResponse{}}
		router := newQueueRouter(service, session)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/queue?all=true&profileId=prof-override", nil))

		if service.lastProfileID != "prof-override" {
			t.Errorf("profileId = %q, want prof-override", service.lastProfileID)
		}
	})

	t.Run("Groups Slots By Day", func(t *testing.T) {
		exists := true
		service := &fakeQueueService{slotsResp: &models.QueueSlotsResponse{
			Exists: &exists,
			Schedule: &models.QueueSchedule{
				ID:   "q1",
				Name: "Morning",
				Slots: []models.QueueSlot{
					{DayOfWeek: 3, TimeOfDay: 10 * 60},
					{DayOfWeek: 1, TimeOfDay: 9 * 60},
					{DayOfWeek: 1, TimeOfDay: 8 * 60},
				},
			},
		}}
		router := newQueueRouter(service, session)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/queue?queueId=q1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
		}
		if service.lastQueueID != "q1" {
			t.Errorf("queueId = %q, want q1", service.lastQueueID)
		}

		var body struct {
			ByDay []queue.DaySlots `json:"byDay"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if len(body.ByDay) != 2 {
			t.Fatalf("expected 2 day groups, got %+v", body.ByDay)
		}
		if body.ByDay[0].DayOfWeek != 1 || len(body.ByDay[0].Slots) != 2 {
			t.Errorf("unexpected first group: %+v", body.ByDay[0])
		}
		if body.ByDay[0].Slots[0].TimeOfDay != 8*60 {
			t.Errorf("slots within a day must be sorted, got %+v", body.ByDay[0].Slots)
		}
	})

	t.Run("Missing Profile", func(t *testing.T) {
		service := &fakeQueueService{}
		router := newQueueRouter(service, &models.Session{ID: "sess-2"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/queue", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCreateQueueHandler(t *testing.T) {
	session := &models.Session{ID: "sess-1", DefaultProfileID: "prof-default"}

	t.Run("Fills Profile From Session", func(t *testing.T) {
		service := &fakeQueueService{}
		router := newQueueRouter(service, session)

		payload := `{"name":"Morning","timezone":"UTC","slots":[{"dayOfWeek":1,"time":"09:00"}]}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/queue", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
		}
		if service.lastSchedule.ProfileID != "prof-default" {
			t.Errorf("profileId = %q, want session default", service.lastSchedule.ProfileID)
		}
		if len(service.lastSchedule.Slots) != 1 || service.lastSchedule.Slots[0].TimeOfDay != 9*60 {
			t.Errorf("unexpected slots: %+v", service.lastSchedule.Slots)
		}
	})

	t.Run("Provider Error Becomes 400", func(t *testing.T) {
		service := &fakeQueueService{err: &lateapi.ProviderError{StatusCode: 422, Message: "slot already taken"}}
		router := newQueueRouter(service, session)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/queue", strings.NewReader(`{"name":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if body["error"] != "slot already taken" {
			t.Errorf("error = %q, want provider message", body["error"])
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		service := &fakeQueueService{}
		router := newQueueRouter(service, session)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/queue", strings.NewReader(`{"slots":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestTimezonesHandler(t *testing.T) {
	router := newQueueRouter(&fakeQueueService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/queue/timezones?extra=Asia/Kathmandu", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var body struct {
		Timezones []string `json:"timezones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(body.Timezones) == 0 || body.Timezones[0] != "UTC" {
		t.Errorf("expected UTC first, got %v", body.Timezones[:1])
	}
	found := false
	for _, tz := range body.Timezones {
		if tz == "Asia/Kathmandu" {
			found = true
		}
	}
	if !found {
		t.Error("expected extra zone Asia/Kathmandu in options")
	}
}
