package validate

import (
	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

// ReferenceDefect records a hasLocation triple whose object is an
// inline string instead of a resource reference.
type ReferenceDefect struct {
	Subject store.IRI `json:"subject"`
	Value   string    `json:"value"`
}

// CheckLocationReferences inspects every hasLocation triple's object
// kind. A literal object is a blocking structural defect: a location
// reference must point at a Location entity, not embed a string.
// Whether the referenced entity exists is not checked here.
func CheckLocationReferences(g store.Graph) []ReferenceDefect {
	var defects []ReferenceDefect
	for _, t := range g.Match(store.Empty, vocabulary.HasLocation, nil) {
		if t.Object.IsLiteral() {
			defects = append(defects, ReferenceDefect{
				Subject: t.Subject,
				Value:   t.Object.Value,
			})
		}
	}
	return defects
}
