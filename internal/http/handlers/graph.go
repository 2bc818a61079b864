package handlers

import (
	"airline/internal/http/middleware"
	"airline/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) graphService(c *gin.Context) services.GraphService {
	return services.GraphService{Store: h.Store, FetchLimit: h.FetchLimit, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) AdjacencyList(c *gin.Context) {
	adj, err := h.graphService(c).AdjacencyList(c.Request.Context())
	okOrError(c, err, adj)
}

// PathSearch returns a handler for GET /api/graph/{bfs|dfs}/:source/:destination.
func (h *Handler) PathSearch(algorithm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.graphService(c).Path(c.Request.Context(), algorithm, c.Param("source"), c.Param("destination"))
		okOrError(c, err, res)
	}
}
