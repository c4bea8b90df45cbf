package dto

// GraphNodeResponse mirrors model.GraphNode at the HTTP boundary.
type GraphNodeResponse struct {
	Id         string  `json:"id"`
	Label      string  `json:"label"`
	Type       string  `json:"type"`
	Cluster    string  `json:"cluster"`
	Importance float64 `json:"importance"`
	Risk       float64 `json:"risk"`
	Confidence float64 `json:"confidence"`
}

// GraphLinkResponse is one classified edge. The edge collection is named
// "links" at this boundary, which is what the visualization layer expects.
type GraphLinkResponse struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Relation   string  `json:"relation"`
	Strength   float64 `json:"strength"`
	Confidence string  `json:"confidence"`
	Notes      string  `json:"notes"`
}

type GetGraphResponse struct {
	Nodes []GraphNodeResponse `json:"nodes"`
	Links []GraphLinkResponse `json:"links"`
}

// HighlightRequest carries explicit nutrient name lists. When both lists are
// empty the latest stored snapshot is used instead.
type HighlightRequest struct {
	Deficiencies []string `json:"deficiencies"`
	HighRisk     []string `json:"highRisk"`
}

type HighlightResponse struct {
	NodeIds []string `json:"node_ids"`
}

// SaveSnapshotRequest stores an externally produced recommendation snapshot.
// CreatedAt (unix millis) and the id are assigned server-side when absent.
type SaveSnapshotRequest struct {
	Deficiencies []string `json:"deficiencies"`
	HighRisk     []string `json:"highRisk"`
	NetworkNotes []string `json:"networkNotes"`
	CreatedAt    int64    `json:"createdAt" validate:"omitempty,gte=0"`
}

type SnapshotResponse struct {
	Id           string   `json:"id"`
	Deficiencies []string `json:"deficiencies"`
	HighRisk     []string `json:"highRisk"`
	NetworkNotes []string `json:"networkNotes"`
	CreatedAt    int64    `json:"createdAt"`
}
