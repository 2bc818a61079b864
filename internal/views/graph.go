package views

import "airline/internal/domain/models"

// AdjacencyList maps an airport code to its neighbors.
type AdjacencyList map[string][]models.Neighbor

// BuildAdjacencyList treats every flight as an undirected edge. A side whose
// airport code is unknown gets no entry; airports without flights map to an
// empty list. Neighbor order follows the order of flights.
func BuildAdjacencyList(airports []models.Airport, flights []models.FlightRoute) AdjacencyList {
	adj := make(AdjacencyList, len(airports))
	for _, a := range airports {
		adj[a.Code] = []models.Neighbor{}
	}

	for _, f := range flights {
		if _, ok := adj[f.SourceCode]; ok {
			adj[f.SourceCode] = append(adj[f.SourceCode], models.Neighbor{
				Destination:   f.DestinationCode,
				FlightID:      f.FlightID,
				DepartureTime: f.DepartureTime,
			})
		}
		if _, ok := adj[f.DestinationCode]; ok {
			adj[f.DestinationCode] = append(adj[f.DestinationCode], models.Neighbor{
				Destination:   f.SourceCode,
				FlightID:      f.FlightID,
				DepartureTime: f.DepartureTime,
			})
		}
	}
	return adj
}
