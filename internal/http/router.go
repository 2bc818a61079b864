package api

import (
	"log"
	stdhttp "net/http"

	intconfig "airline/internal/config"
	h "airline/internal/http/handlers"
	"airline/internal/http/middleware"
	"airline/internal/validation"
	"airline/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	binding.Validator = validation.Gin()
	binding.EnableDecoderDisallowUnknownFields = true
}

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger("/metrics", "/api/health"),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Metrics(),
		middleware.RateLimit(env.RateLimit, env.RateLimitBurst),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"detail":     "Not Found",
			"code":       "route_not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes(r))

		airports := api.Group("/airports")
		airports.POST("", hd.CreateAirport)
		airports.GET("", hd.ListAirports)
		airports.DELETE("/:code", hd.DeleteAirport)

		flights := api.Group("/flights")
		flights.POST("", hd.CreateFlight)
		flights.GET("", hd.ListFlights)
		flights.DELETE("/:flight_id", hd.DeleteFlight)

		graph := api.Group("/graph")
		graph.GET("/adjacency-list", hd.AdjacencyList)
		graph.GET("/bfs/:source/:destination", hd.PathSearch(views.AlgorithmBFS))
		graph.GET("/dfs/:source/:destination", hd.PathSearch(views.AlgorithmDFS))

		passengers := api.Group("/passengers")
		passengers.POST("", hd.CreatePassenger)
		passengers.GET("", hd.ListPassengers)
		passengers.POST("/bulk", hd.BulkCreatePassengers)
		passengers.GET("/search/:ticket_id", hd.SearchPassenger)
		passengers.GET("/hash-table", hd.PassengerHashTable)
		passengers.GET("/boarding-pass/:ticket_id", hd.BoardingPass)

		queue := api.Group("/boarding-queue")
		queue.POST("/:flight_id/enqueue", hd.Enqueue)
		queue.POST("/:flight_id/dequeue", hd.Dequeue)
		queue.GET("/:flight_id", hd.BoardingQueue)

		cancellations := api.Group("/cancellations")
		cancellations.POST("/push", hd.PushCancellation)
		cancellations.POST("/pop", hd.PopCancellation)
		cancellations.GET("", hd.ListCancellations)

		api.GET("/scheduler/heap", hd.Schedule)
		api.GET("/analytics", hd.Analytics)

		api.POST("/initialize-data", hd.InitializeData)
		api.POST("/reset-system", hd.ResetSystem)
		api.GET("/export/all-data", hd.ExportData)
		api.POST("/import/data", hd.ImportData)
	}

	return r
}
