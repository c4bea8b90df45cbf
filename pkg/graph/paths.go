package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

type hop struct {
	target string
	effect string
}

// PathsTo finds all simple directed paths of length <= maxHops that end at
// the target node, formatted as readable chains with per-hop effects. Used
// by the report's network section to explain why a marker may be low.
// Parallel edges between the same pair collapse to the first one seen.
func PathsTo(g model.Graph, target string, maxHops int) []string {
	known := make(map[string]struct{}, len(g.Nodes))
	for _, node := range g.Nodes {
		known[node.ID] = struct{}{}
	}
	if _, ok := known[target]; !ok || maxHops < 1 {
		return nil
	}

	adjacency := make(map[string][]hop)
	seen := make(map[string]struct{})
	for _, edge := range g.Edges {
		pair := edge.Source + "\x00" + edge.Target
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		adjacency[edge.Source] = append(adjacency[edge.Source], hop{target: edge.Target, effect: string(edge.Relation)})
	}

	chains := make(map[string]struct{})
	var walk func(path []string, effects []string)
	walk = func(path []string, effects []string) {
		current := path[len(path)-1]
		if current == target {
			if len(path) > 1 {
				chains[formatChain(path, effects)] = struct{}{}
			}
			return
		}
		if len(path) > maxHops {
			return
		}
		for _, next := range adjacency[current] {
			if contains(path, next.target) {
				continue
			}
			step := fmt.Sprintf("%s -%s-> %s", current, next.effect, next.target)
			walk(append(path, next.target), append(effects, step))
		}
	}

	for id := range known {
		if id == target {
			continue
		}
		walk([]string{id}, nil)
	}

	out := make([]string, 0, len(chains))
	for chain := range chains {
		out = append(out, chain)
	}
	sort.Strings(out)
	return out
}

func formatChain(path, effects []string) string {
	return strings.Join(path, " -> ") + "   [" + strings.Join(effects, "; ") + "]"
}

func contains(path []string, id string) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}
	return false
}
