package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"latewiz/lateapi"
	"latewiz/models"
)

// memoryCache is an in-process ResourceCache storing JSON blobs.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, resource, id string, out interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[resource+":"+id]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (c *memoryCache) Set(_ context.Context, resource, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[resource+":"+id] = data
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, resource, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, resource+":"+id)
	return nil
}

func (c *memoryCache) InvalidateResource(_ context.Context, resource string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, resource+":") {
			delete(c.entries, key)
		}
	}
	return nil
}

func newQueueService(t *testing.T, handler http.HandlerFunc) (*DefaultQueueService, *memoryCache, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cache := newMemoryCache()
	svc := &DefaultQueueService{
		API:   lateapi.NewClient(server.URL, "test-key", server.Client()),
		Cache: cache,
	}
	return svc, cache, &calls
}

func TestListQueuesCaching(t *testing.T) {
	ctx := context.Background()
	svc, _, calls := newQueueService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"queues":[{"_id":"q1","name":"Morning"}],"count":1}`))
	})

	first, err := svc.ListQueues(ctx, "prof-1")
	if err != nil {
		t.Fatalf("ListQueues returned error: %v", err)
	}
	second, err := svc.ListQueues(ctx, "prof-1")
	if err != nil {
		t.Fatalf("cached ListQueues returned error: %v", err)
	}

	if *calls != 1 {
		t.Errorf("provider called %d times, want 1 (second read from cache)", *calls)
	}
	if first.Count != 1 || second.Count != 1 || second.Queues[0].ID != "q1" {
		t.Errorf("cached response diverged: first=%+v second=%+v", first, second)
	}

	if _, err := svc.ListQueues(ctx, ""); err == nil {
		t.Error("expected error for empty profile id")
	}
}

func TestCreateQueueValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, calls := newQueueService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	schedule := models.QueueSchedule{
		ProfileID: "prof-1",
		Name:      "Broken",
		Slots:     []models.QueueSlot{{DayOfWeek: 7, TimeOfDay: 0}},
	}
	if _, err := svc.CreateQueue(ctx, schedule); err == nil {
		t.Error("expected out-of-range slot to be rejected")
	}

	schedule.Slots = []models.QueueSlot{{DayOfWeek: 1, TimeOfDay: 24 * 60}}
	if _, err := svc.CreateQueue(ctx, schedule); err == nil {
		t.Error("expected out-of-range time to be rejected")
	}

	if *calls != 0 {
		t.Errorf("invalid schedules must not reach the provider, saw %d calls", *calls)
	}

	schedule.Slots = []models.QueueSlot{{DayOfWeek: 1, TimeOfDay: 9 * 60}}
	if _, err := svc.CreateQueue(ctx, schedule); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
}

func TestMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()
	svc, _, calls := newQueueService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"queues":[],"count":0}`))
			return
		}
		w.Write([]byte(`{}`))
	})

	if _, err := svc.ListQueues(ctx, "prof-1"); err != nil {
		t.Fatalf("ListQueues returned error: %v", err)
	}
	if _, err := svc.GetQueueSlots(ctx, "prof-1", "q1"); err != nil {
		t.Fatalf("GetQueueSlots returned error: %v", err)
	}

	schedule := models.QueueSchedule{
		ProfileID: "prof-1",
		Name:      "Evenings",
		Slots:     []models.QueueSlot{{DayOfWeek: 5, TimeOfDay: 18 * 60}},
	}
	if _, err := svc.CreateQueue(ctx, schedule); err != nil {
		t.Fatalf("CreateQueue returned error: %v", err)
	}

	before := *calls
	if _, err := svc.ListQueues(ctx, "prof-1"); err != nil {
		t.Fatalf("ListQueues after create returned error: %v", err)
	}
	if _, err := svc.GetQueueSlots(ctx, "prof-1", "q1"); err != nil {
		t.Fatalf("GetQueueSlots after create returned error: %v", err)
	}
	if *calls != before+2 {
		t.Errorf("expected both reads to refetch after a mutation, provider calls went %d -> %d", before, *calls)
	}
}
