package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PUT("/read-all", h.markAllRead)
		notifications.PUT("/:notificationID/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Returns notifications for the authenticated account, newest first
// @Tags notifications
// @Produce  json
// @Param   unreadOnly query bool false "Return only unread notifications"
// @Success 200 {object} dto.Envelope{data=[]dto.NotificationResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to list notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unreadOnly", "false"))
	notifications, err := h.notificationService.List(c.Request.Context(), accountID, unreadOnly)
	if err != nil {
		respondError(c, logger, "list notifications", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToNotificationResponses(notifications)))
}

// unreadCount godoc
// @Summary Unread notification count
// @Description Returns the number of unread notifications for the authenticated account
// @Tags notifications
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.UnreadCountResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to count notifications"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "count notifications", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.UnreadCountResponse{UnreadCount: count}))
}

// markRead godoc
// @Summary Mark a notification read
// @Description Flags a notification as read; marking an already-read notification succeeds unchanged
// @Tags notifications
// @Produce  json
// @Param   notificationID path string true "Notification ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Notification not found"
// @Failure 500 {object} dto.Envelope "Failed to mark notification read"
// @Security BearerAuth
// @Router /notifications/{notificationID}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), accountID, c.Param("notificationID")); err != nil {
		respondError(c, logger, "mark notification read", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

// markAllRead godoc
// @Summary Mark all notifications read
// @Description Flags every unread notification for the authenticated account as read
// @Tags notifications
// @Produce  json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to mark notifications read"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), accountID); err != nil {
		respondError(c, logger, "mark notifications read", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}
