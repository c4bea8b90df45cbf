// Developer tool: parses the relationship table, builds the graph and prints
// its shape. Useful after editing data/network_relationships.csv.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/jubyaid123/hemovita/pkg/graph"
)

func main() {
	path := flag.String("path", "data/network_relationships.csv", "relationship table to inspect")
	flag.Parse()

	color.Cyan("🔍 Inspecting interaction network: %s\n", *path)

	raw, err := os.ReadFile(*path)
	if err != nil {
		color.Red("Failed to read relationship table: %v", err)
		os.Exit(1)
	}

	parsed := graph.ParseRelationships(raw)
	for _, skipped := range parsed.Skipped {
		color.Yellow("Skipping line %d (%d fields): %s", skipped.Line, skipped.Fields, skipped.Raw)
	}
	if len(parsed.Records) == 0 {
		color.Red("No usable data rows")
		os.Exit(1)
	}

	builder := graph.NewBuilder(graph.DefaultRules())
	g := builder.Build(parsed.Records)

	color.Green("Parsed %d records (%d skipped)", len(parsed.Records), len(parsed.Skipped))
	color.Green("Graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	relationCounts := map[string]int{}
	for _, edge := range g.Edges {
		relationCounts[string(edge.Relation)]++
	}
	relations := make([]string, 0, len(relationCounts))
	for relation := range relationCounts {
		relations = append(relations, relation)
	}
	sort.Strings(relations)

	fmt.Println()
	color.Yellow("Edges by relation:")
	for _, relation := range relations {
		fmt.Printf("  %-12s %d\n", relation, relationCounts[relation])
	}

	fmt.Println()
	color.Yellow("Nodes by importance:")
	sorted := make([]int, len(g.Nodes))
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(a, b int) bool {
		na, nb := g.Nodes[sorted[a]], g.Nodes[sorted[b]]
		if na.Importance != nb.Importance {
			return na.Importance > nb.Importance
		}
		return na.ID < nb.ID
	})
	for _, idx := range sorted {
		node := g.Nodes[idx]
		fmt.Printf("  %-24s importance=%.2f risk=%.2f confidence=%.2f [%s/%s]\n",
			node.ID, node.Importance, node.Risk, node.Confidence, node.Type, node.Cluster)
	}
}
