package handlers

import (
	"net/http"

	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) boardingService(c *gin.Context) services.BoardingService {
	return services.BoardingService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

// Enqueue handles POST /api/boarding-queue/:flight_id/enqueue?ticket_id=...
func (h *Handler) Enqueue(c *gin.Context) {
	ticketID, ok := requiredQuery(c, "ticket_id")
	if !ok {
		return
	}
	pos, err := h.boardingService(c).Enqueue(c.Request.Context(), c.Param("flight_id"), ticketID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passenger added to queue", "position": pos})
}

func (h *Handler) Dequeue(c *gin.Context) {
	item, err := h.boardingService(c).Dequeue(c.Request.Context(), c.Param("flight_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passenger boarded", "boarded": item})
}

func (h *Handler) BoardingQueue(c *gin.Context) {
	items, err := h.boardingService(c).List(c.Request.Context(), c.Param("flight_id"))
	okOrError(c, err, items)
}
