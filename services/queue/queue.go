package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"latewiz/models"
	"latewiz/utils"

	"go.uber.org/zap"
)

// Cache resource names. Queue data is cached per profile and wiped
// wholesale on any mutation; the provider recomputes next-slot
// projections on every schedule change, so partial invalidation is not
// worth the bookkeeping.
const (
	resourceQueues  = "queues"
	resourceSlots   = "queue-slots"
	resourcePreview = "queue-preview"
)

const defaultPreviewCount = 10

func (s *DefaultQueueService) ListQueues(ctx context.Context, profileID string) (*models.QueueListResponse, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}

	var cached models.QueueListResponse
	if hit, err := s.Cache.Get(ctx, resourceQueues, profileID, &cached); err == nil && hit {
		return &cached, nil
	}

	resp, err := s.API.ListQueues(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queues: %w", err)
	}
	if err := s.Cache.Set(ctx, resourceQueues, profileID, resp); err != nil {
		utils.GetLogger().Warn("Failed to cache queues", zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultQueueService) GetQueueSlots(ctx context.Context, profileID, queueID string) (*models.QueueSlotsResponse, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}

	cacheID := profileID
	if queueID != "" {
		cacheID = profileID + ":" + queueID
	}
	var cached models.QueueSlotsResponse
	if hit, err := s.Cache.Get(ctx, resourceSlots, cacheID, &cached); err == nil && hit {
		return &cached, nil
	}

	resp, err := s.API.GetQueueSlots(ctx, profileID, queueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queue slots: %w", err)
	}
	if err := s.Cache.Set(ctx, resourceSlots, cacheID, resp); err != nil {
		utils.GetLogger().Warn("Failed to cache queue slots", zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultQueueService) CreateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	if schedule.ProfileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	for _, slot := range schedule.Slots {
		if !slot.Valid() {
			return nil, fmt.Errorf("slot day %d time %s is out of range", slot.DayOfWeek, slot.Time())
		}
	}

	out, err := s.API.CreateQueue(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}
	s.invalidate(ctx, schedule.ProfileID)
	return out, nil
}

func (s *DefaultQueueService) UpdateQueue(ctx context.Context, schedule models.QueueSchedule) (json.RawMessage, error) {
	for _, slot := range schedule.Slots {
		if !slot.Valid() {
			return nil, fmt.Errorf("slot day %d time %s is out of range", slot.DayOfWeek, slot.Time())
		}
	}

	out, err := s.API.UpdateQueue(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to update queue: %w", err)
	}
	s.invalidate(ctx, schedule.ProfileID)
	return out, nil
}

func (s *DefaultQueueService) DeleteQueue(ctx context.Context, profileID, queueID string) (json.RawMessage, error) {
	if profileID == "" || queueID == "" {
		return nil, fmt.Errorf("profile id and queue id are required")
	}

	out, err := s.API.DeleteQueue(ctx, profileID, queueID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete queue: %w", err)
	}
	s.invalidate(ctx, profileID)
	return out, nil
}

func (s *DefaultQueueService) Preview(ctx context.Context, profileID string, count int) (*models.QueuePreviewResponse, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	if count <= 0 {
		count = defaultPreviewCount
	}

	cacheID := fmt.Sprintf("%s:%d", profileID, count)
	var cached models.QueuePreviewResponse
	if hit, err := s.Cache.Get(ctx, resourcePreview, cacheID, &cached); err == nil && hit {
		return &cached, nil
	}

	resp, err := s.API.PreviewQueue(ctx, profileID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to preview queue: %w", err)
	}
	if err := s.Cache.Set(ctx, resourcePreview, cacheID, resp); err != nil {
		utils.GetLogger().Warn("Failed to cache queue preview", zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultQueueService) NextSlot(ctx context.Context, profileID, queueID string) (json.RawMessage, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.API.NextQueueSlot(ctx, profileID, queueID)
}

func (s *DefaultQueueService) invalidate(ctx context.Context, profileID string) {
	logger := utils.GetLogger()
	if profileID != "" {
		if err := s.Cache.Invalidate(ctx, resourceQueues, profileID); err != nil {
			logger.Warn("Failed to invalidate queue cache", zap.Error(err))
		}
	}
	if err := s.Cache.InvalidateResource(ctx, resourceSlots); err != nil {
		logger.Warn("Failed to invalidate queue slot cache", zap.Error(err))
	}
	if err := s.Cache.InvalidateResource(ctx, resourcePreview); err != nil {
		logger.Warn("Failed to invalidate queue preview cache", zap.Error(err))
	}
}
