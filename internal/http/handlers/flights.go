package handlers

import (
	"net/http"

	"airline/internal/domain/models"
	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) flightService(c *gin.Context) services.FlightService {
	return services.FlightService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) CreateFlight(c *gin.Context) {
	var in models.FlightRouteCreate
	if !BindJSONOrError(c, &in) {
		return
	}
	flight, err := h.flightService(c).Create(c.Request.Context(), in)
	okOrError(c, err, flight)
}

func (h *Handler) ListFlights(c *gin.Context) {
	flights, err := h.flightService(c).List(c.Request.Context())
	okOrError(c, err, flights)
}

func (h *Handler) DeleteFlight(c *gin.Context) {
	if err := h.flightService(c).Delete(c.Request.Context(), c.Param("flight_id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("Flight deleted"))
}

// Schedule handles GET /api/scheduler/heap.
func (h *Handler) Schedule(c *gin.Context) {
	svc := services.SchedulerService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
	flights, err := svc.Heap(c.Request.Context())
	okOrError(c, err, flights)
}
