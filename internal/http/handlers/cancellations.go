package handlers

import (
	"net/http"

	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) cancellationService(c *gin.Context) services.CancellationService {
	return services.CancellationService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

// PushCancellation handles POST /api/cancellations/push?ticket_id=...
func (h *Handler) PushCancellation(c *gin.Context) {
	ticketID, ok := requiredQuery(c, "ticket_id")
	if !ok {
		return
	}
	item, err := h.cancellationService(c).Push(c.Request.Context(), ticketID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cancellation recorded", "cancellation": item})
}

func (h *Handler) PopCancellation(c *gin.Context) {
	item, err := h.cancellationService(c).Pop(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cancellation removed", "cancellation": item})
}

func (h *Handler) ListCancellations(c *gin.Context) {
	items, err := h.cancellationService(c).List(c.Request.Context())
	okOrError(c, err, items)
}
