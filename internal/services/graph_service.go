package services

import (
	"context"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/views"
)

// GraphService builds the route graph from airports and flights.
type GraphService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

func (s GraphService) AdjacencyList(ctx context.Context) (views.AdjacencyList, error) {
	limit := fetchLimit(s.FetchLimit)
	flights, err := s.Store.Flights.List(ctx, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	airports, err := s.Store.Airports.List(ctx, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return views.BuildAdjacencyList(airports, flights), nil
}

// Path searches a route between two known airports with BFS or DFS.
func (s GraphService) Path(ctx context.Context, algorithm, source, destination string) (models.PathResult, error) {
	if algorithm != views.AlgorithmBFS && algorithm != views.AlgorithmDFS {
		return models.PathResult{}, domain.ValidationError{Field: "algorithm", Msg: "must be bfs or dfs"}
	}
	adj, err := s.AdjacencyList(ctx)
	if err != nil {
		return models.PathResult{}, err
	}
	for _, code := range []string{source, destination} {
		if _, ok := adj[code]; !ok {
			return models.PathResult{}, domain.NotFoundError{Resource: "airport", Msg: "Airport not found"}
		}
	}

	if algorithm == views.AlgorithmDFS {
		return views.DepthFirstPath(adj, source, destination), nil
	}
	return views.ShortestPath(adj, source, destination), nil
}
