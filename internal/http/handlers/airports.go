package handlers

import (
	"net/http"

	"airline/internal/domain/models"
	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) airportService(c *gin.Context) services.AirportService {
	return services.AirportService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

// CreateAirport handles POST /api/airports.
func (h *Handler) CreateAirport(c *gin.Context) {
	var in models.AirportCreate
	if !BindJSONOrError(c, &in) {
		return
	}
	airport, err := h.airportService(c).Create(c.Request.Context(), in)
	okOrError(c, err, airport)
}

func (h *Handler) ListAirports(c *gin.Context) {
	airports, err := h.airportService(c).List(c.Request.Context())
	okOrError(c, err, airports)
}

func (h *Handler) DeleteAirport(c *gin.Context) {
	if err := h.airportService(c).Delete(c.Request.Context(), c.Param("code")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("Airport deleted"))
}
