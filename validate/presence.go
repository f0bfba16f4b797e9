package validate

import (
	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

// PresenceRequirement names an entity type that must have at least one
// instance in the graph.
type PresenceRequirement struct {
	Name string
	Type store.IRI
}

// PresenceResult is the instance count found for one requirement.
type PresenceResult struct {
	Name  string    `json:"name"`
	Type  store.IRI `json:"type"`
	Count int       `json:"count"`
}

// Satisfied reports whether at least one instance was found.
func (r PresenceResult) Satisfied() bool {
	return r.Count > 0
}

// DefaultRequirements returns the required entity types in report
// order.
func DefaultRequirements() []PresenceRequirement {
	return []PresenceRequirement{
		{Name: "CreativeWork", Type: vocabulary.CreativeWork},
		{Name: "Participant", Type: vocabulary.Participant},
		{Name: "Person", Type: vocabulary.Person},
		{Name: "Location", Type: vocabulary.Location},
		{Name: "Asset", Type: vocabulary.Asset},
	}
}

// CheckPresence counts, for each requirement, the distinct subjects
// typed as that entity type. Every requirement is evaluated; a missing
// type does not stop the scan.
func CheckPresence(g store.Graph, reqs []PresenceRequirement) []PresenceResult {
	results := make([]PresenceResult, 0, len(reqs))
	for _, req := range reqs {
		subjects := g.Subjects(vocabulary.RDFType, store.Resource(req.Type))
		results = append(results, PresenceResult{
			Name:  req.Name,
			Type:  req.Type,
			Count: len(subjects),
		})
	}
	return results
}
