package views

import "airline/internal/domain/models"

const (
	AlgorithmBFS = "bfs"
	AlgorithmDFS = "dfs"
)

// ShortestPath runs a breadth-first search and returns a fewest-hops route
// from src to dst, or an empty path when dst is unreachable.
func ShortestPath(adj AdjacencyList, src, dst string) models.PathResult {
	res := models.PathResult{Algorithm: AlgorithmBFS, Source: src, Destination: dst, Path: []string{}}
	if src == dst {
		res.Path = []string{src}
		return res
	}

	prev := map[string]string{src: ""}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if _, seen := prev[n.Destination]; seen {
				continue
			}
			prev[n.Destination] = cur
			if n.Destination == dst {
				res.Path = walkBack(prev, src, dst)
				res.Hops = len(res.Path) - 1
				return res
			}
			queue = append(queue, n.Destination)
		}
	}
	return res
}

func walkBack(prev map[string]string, src, dst string) []string {
	var rev []string
	for at := dst; ; at = prev[at] {
		rev = append(rev, at)
		if at == src {
			break
		}
	}
	path := make([]string, len(rev))
	for i, code := range rev {
		path[len(rev)-1-i] = code
	}
	return path
}

// DepthFirstPath returns the first route found by a depth-first walk that
// follows neighbor order. It is not necessarily the shortest.
func DepthFirstPath(adj AdjacencyList, src, dst string) models.PathResult {
	res := models.PathResult{Algorithm: AlgorithmDFS, Source: src, Destination: dst, Path: []string{}}
	visited := map[string]bool{}
	var path []string

	var visit func(code string) bool
	visit = func(code string) bool {
		visited[code] = true
		path = append(path, code)
		if code == dst {
			return true
		}
		for _, n := range adj[code] {
			if visited[n.Destination] {
				continue
			}
			if visit(n.Destination) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}

	if visit(src) {
		res.Path = path
		res.Hops = len(path) - 1
	}
	return res
}
