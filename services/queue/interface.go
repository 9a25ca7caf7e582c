package queue

import (
	"context"
	"encoding/json"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"
)

// QueueService forwards queue operations to the provider, normalizing
// slot schemas at the boundary and keeping the resource cache honest
// around mutations.
type QueueService interface {
	ListQueues(ctx context.Context, profileID string) (*models.QueueListResponse, error)
	GetQueueSlots(ctx context.Context, profileID, queueID string) (*models.QueueSlotsResponse, error)
	CreateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error)
	UpdateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error)
	DeleteQueue(ctx context.Context, profileID, queueID string) (json.RawMessage, error)
	Preview(ctx context.Context, profileID string, count int) (*models.QueuePreviewResponse, error)
	NextSlot(ctx context.Context, profileID, queueID string) (json.RawMessage, error)
}

// DefaultQueueService is the production implementation.
type DefaultQueueService struct {
	API   *lateapi.Client
	Cache utils.ResourceCache
}
