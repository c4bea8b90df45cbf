package model

// Relation is the qualitative interaction type between two nutrients/markers.
type Relation string

const (
	RelationBooster    Relation = "booster"
	RelationAntagonist Relation = "antagonist"
	RelationCofactor   Relation = "cofactor"
	RelationShared     Relation = "shared"
)

// NodeType is the broad category of a graph node, inferred from its identifier.
type NodeType string

const (
	NodeTypeVitamin  NodeType = "vitamin"
	NodeTypeMineral  NodeType = "mineral"
	NodeTypeMarker   NodeType = "marker"
	NodeTypeCompound NodeType = "compound"
)

// Cluster groups related nodes for the visualization layer.
type Cluster string

const (
	ClusterIron       Cluster = "iron"
	ClusterBComplex   Cluster = "b-complex"
	ClusterFatSoluble Cluster = "fat-soluble"
	ClusterOther      Cluster = "other"
)

// EdgeRecord is one raw parsed row of the relationship table.
// Source/Target are identifiers as written in the table; they are not
// required to pre-exist anywhere.
type EdgeRecord struct {
	Source          string
	Target          string
	Effect          string
	ConfidenceLabel string
	Notes           string
}

// GraphNode is a derived, immutable node of the interaction graph.
type GraphNode struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Type       NodeType `json:"type"`
	Cluster    Cluster  `json:"cluster"`
	Importance float64  `json:"importance"`
	Risk       float64  `json:"risk"`
	Confidence float64  `json:"confidence"`
}

// GraphEdge is one classified edge. The graph is a directed multigraph:
// parallel edges between the same pair are kept and classified independently.
type GraphEdge struct {
	Source          string   `json:"source"`
	Target          string   `json:"target"`
	Relation        Relation `json:"relation"`
	Strength        float64  `json:"strength"`
	ConfidenceLabel string   `json:"confidence"`
	Notes           string   `json:"notes"`
}

// Graph is the full derived node/edge graph.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}
