package handlers

import (
	"context"
	"net/http"
	"time"

	"airline/internal/domain/models"
	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) systemService(c *gin.Context) services.SystemService {
	return services.SystemService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the database behind the store.
func (h *Handler) DBCheck(c *gin.Context) {
	if h.Ping == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": errNoDatabase.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Ping(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database unreachable: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}

// Routes lists the registered routes of engine.
func Routes(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := engine.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
		}
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}

func (h *Handler) Analytics(c *gin.Context) {
	svc := services.AnalyticsService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
	summary, err := svc.Summary(c.Request.Context())
	okOrError(c, err, summary)
}

func (h *Handler) InitializeData(c *gin.Context) {
	if err := h.systemService(c).Initialize(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("Sample data initialized successfully"))
}

func (h *Handler) ResetSystem(c *gin.Context) {
	if err := h.systemService(c).Reset(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("System reset successfully"))
}

func (h *Handler) ExportData(c *gin.Context) {
	snap, err := h.systemService(c).Export(c.Request.Context())
	okOrError(c, err, snap)
}

func (h *Handler) ImportData(c *gin.Context) {
	var snap models.Snapshot
	if !BindJSONOrError(c, &snap) {
		return
	}
	if err := h.systemService(c).Import(c.Request.Context(), snap); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Data imported successfully",
		"airports":       len(snap.Airports),
		"flights":        len(snap.Flights),
		"passengers":     len(snap.Passengers),
		"boarding_queue": len(snap.BoardingQueue),
		"cancellations":  len(snap.Cancellations),
	})
}
