package handlers

import (
	"encoding/json"
	"net/http"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) passengerService(c *gin.Context) services.PassengerService {
	return services.PassengerService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) CreatePassenger(c *gin.Context) {
	var in models.PassengerCreate
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.passengerService(c).Create(c.Request.Context(), in)
	okOrError(c, err, p)
}

// BulkCreatePassengers handles POST /api/passengers/bulk. Entries are
// validated one by one by the service so one bad entry does not reject the
// batch; only a malformed JSON array does.
func (h *Handler) BulkCreatePassengers(c *gin.Context) {
	var in []models.PassengerCreate
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "expected a JSON array of passengers: " + err.Error(), Err: err})
		return
	}
	res := h.passengerService(c).BulkCreate(c.Request.Context(), in)
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListPassengers(c *gin.Context) {
	passengers, err := h.passengerService(c).List(c.Request.Context())
	okOrError(c, err, passengers)
}

func (h *Handler) SearchPassenger(c *gin.Context) {
	p, err := h.passengerService(c).Search(c.Request.Context(), c.Param("ticket_id"))
	okOrError(c, err, p)
}

func (h *Handler) PassengerHashTable(c *gin.Context) {
	table, err := h.passengerService(c).HashTable(c.Request.Context())
	okOrError(c, err, table)
}

// BoardingPass streams the PDF inline.
func (h *Handler) BoardingPass(c *gin.Context) {
	svc := services.DocsService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.BoardingPass(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
