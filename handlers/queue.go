package handlers

import (
	"net/http"
	"strconv"

	"latewiz/middleware"
	"latewiz/models"
	"latewiz/services/queue"

	"github.com/gin-gonic/gin"
)

// QueueHandler serves queue schedules and slot utilities.
type QueueHandler struct {
	Service queue.QueueService
}

func NewQueueHandler(service queue.QueueService) *QueueHandler {
	return &QueueHandler{Service: service}
}

// GetQueueHandler lists all queues (all=true) or one queue's slots, with
// the slots regrouped by weekday for display.
func (h *QueueHandler) GetQueueHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	if c.Query("all") == "true" {
		resp, err := h.Service.ListQueues(c.Request.Context(), profileID)
		if err != nil {
			respondError(c, err, "Failed to fetch queues")
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.Service.GetQueueSlots(c.Request.Context(), profileID, c.Query("queueId"))
	if err != nil {
		respondError(c, err, "Failed to fetch queue slots")
		return
	}

	var grouped []queue.DaySlots
	if resp.Schedule != nil {
		grouped = queue.GroupSlots(resp.Schedule.Slots)
	}
	c.JSON(http.StatusOK, gin.H{
		"exists":    resp.Exists,
		"schedule":  resp.Schedule,
		"nextSlots": resp.NextSlots,
		"byDay":     grouped,
	})
}

// CreateQueueHandler creates a queue schedule.
func (h *QueueHandler) CreateQueueHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var schedule models.QueueSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue payload", "message": err.Error()})
		return
	}
	schedule.ProfileID = session.ProfileID(schedule.ProfileID)

	out, err := h.Service.CreateQueue(c.Request.Context(), schedule)
	if err != nil {
		respondError(c, err, "Failed to create queue")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// UpdateQueueHandler updates a queue schedule.
func (h *QueueHandler) UpdateQueueHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var schedule models.QueueSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue payload", "message": err.Error()})
		return
	}
	schedule.ProfileID = session.ProfileID(schedule.ProfileID)

	out, err := h.Service.UpdateQueue(c.Request.Context(), schedule)
	if err != nil {
		respondError(c, err, "Failed to update queue")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// DeleteQueueHandler removes a queue schedule.
func (h *QueueHandler) DeleteQueueHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	queueID := c.Query("queueId")
	if profileID == "" || queueID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile or queue id"})
		return
	}

	out, err := h.Service.DeleteQueue(c.Request.Context(), profileID, queueID)
	if err != nil {
		respondError(c, err, "Failed to delete queue")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// PreviewQueueHandler returns the next N provider-computed slot timestamps.
func (h *QueueHandler) PreviewQueueHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	count, _ := strconv.Atoi(c.Query("count"))
	resp, err := h.Service.Preview(c.Request.Context(), profileID, count)
	if err != nil {
		respondError(c, err, "Failed to preview queue")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextSlotHandler returns the single next open slot.
func (h *QueueHandler) NextSlotHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	out, err := h.Service.NextSlot(c.Request.Context(), profileID, c.Query("queueId"))
	if err != nil {
		respondError(c, err, "Failed to get next slot")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// TimezonesHandler returns the selectable timezone list, including any
// extra zones the client already has configured.
func (h *QueueHandler) TimezonesHandler(c *gin.Context) {
	options := queue.TimezoneOptions(c.QueryArray("extra")...)
	c.JSON(http.StatusOK, gin.H{"timezones": options})
}
