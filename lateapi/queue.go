package lateapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"latewiz/models"
)

// ListQueues fetches every queue configured for a profile.
func (c *Client) ListQueues(ctx context.Context, profileID string) (*models.QueueListResponse, error) {
	query := url.Values{"profileId": {profileID}, "all": {"true"}}
	var out models.QueueListResponse
	if err := c.do(ctx, http.MethodGet, "/queue", query, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetQueueSlots fetches one queue's schedule plus the provider-computed
// next slot timestamps. An empty queueID means the profile's default queue.
func (c *Client) GetQueueSlots(ctx context.Context, profileID, queueID string) (*models.QueueSlotsResponse, error) {
	query := url.Values{"profileId": {profileID}}
	if queueID != "" {
		query.Set("queueId", queueID)
	}
	var out models.QueueSlotsResponse
	if err := c.do(ctx, http.MethodGet, "/queue", query, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateQueue creates a queue schedule.
func (c *Client) CreateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/queue", nil, nil, schedule, &out)
	return out, err
}

// UpdateQueue updates a queue schedule.
func (c *Client) UpdateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPatch, "/queue", nil, nil, schedule, &out)
	return out, err
}

// DeleteQueue removes a queue schedule.
func (c *Client) DeleteQueue(ctx context.Context, profileID, queueID string) (json.RawMessage, error) {
	query := url.Values{"profileId": {profileID}, "queueId": {queueID}}
	var out json.RawMessage
	err := c.do(ctx, http.MethodDelete, "/queue", query, nil, nil, &out)
	return out, err
}

// PreviewQueue asks the provider for the next count future slot
// timestamps across the profile's active queues.
func (c *Client) PreviewQueue(ctx context.Context, profileID string, count int) (*models.QueuePreviewResponse, error) {
	query := url.Values{"profileId": {profileID}, "count": {strconv.Itoa(count)}}
	var out models.QueuePreviewResponse
	if err := c.do(ctx, http.MethodGet, "/queue/preview", query, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NextQueueSlot asks the provider for the single next open slot.
func (c *Client) NextQueueSlot(ctx context.Context, profileID, queueID string) (json.RawMessage, error) {
	query := url.Values{"profileId": {profileID}}
	if queueID != "" {
		query.Set("queueId", queueID)
	}
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/queue/next", query, nil, nil, &out)
	return out, err
}
