package mapper

import (
	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/model"
)

func ToGraphResponse(g model.Graph) *dto.GetGraphResponse {
	nodes := make([]dto.GraphNodeResponse, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		nodes = append(nodes, dto.GraphNodeResponse{
			Id:         node.ID,
			Label:      node.Label,
			Type:       string(node.Type),
			Cluster:    string(node.Cluster),
			Importance: node.Importance,
			Risk:       node.Risk,
			Confidence: node.Confidence,
		})
	}

	links := make([]dto.GraphLinkResponse, 0, len(g.Edges))
	for _, edge := range g.Edges {
		links = append(links, dto.GraphLinkResponse{
			Source:     edge.Source,
			Target:     edge.Target,
			Relation:   string(edge.Relation),
			Strength:   edge.Strength,
			Confidence: edge.ConfidenceLabel,
			Notes:      edge.Notes,
		})
	}

	return &dto.GetGraphResponse{Nodes: nodes, Links: links}
}

func ToSnapshotResponse(snapshot *model.RecommendationSnapshot) *dto.SnapshotResponse {
	if snapshot == nil {
		return nil
	}
	return &dto.SnapshotResponse{
		Id:           snapshot.ID,
		Deficiencies: snapshot.Deficiencies,
		HighRisk:     snapshot.HighRisk,
		NetworkNotes: snapshot.NetworkNotes,
		CreatedAt:    snapshot.CreatedAt,
	}
}
