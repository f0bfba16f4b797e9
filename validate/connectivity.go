package validate

import (
	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

// Connection is one traversal of the two-hop chain
// Participant → Person → Location.
type Connection struct {
	Participant store.IRI  `json:"participant"`
	Person      store.IRI  `json:"person"`
	Location    store.Term `json:"location"`
}

// ConnectivityResult holds the outcome of the two-hop scan.
type ConnectivityResult struct {
	// Connections are correctly typed Participant→Person→Location
	// chains.
	Connections []Connection `json:"connections,omitempty"`

	// Malformed are chains that exist but terminate in a literal
	// instead of a Location reference. Each is a blocking defect.
	Malformed []Connection `json:"malformed,omitempty"`
}

// Found reports whether at least one well-formed connection exists.
func (r ConnectivityResult) Found() bool {
	return len(r.Connections) > 0
}

// CheckConnectivity walks every Participant's structural
// characteristic Persons and each Person's locations. The two-hop
// chain is the minimum linkage proving a participant's location is
// reachable through the graph's own typed structure; a direct
// Participant→Location edge is not required and not looked for.
//
// Zero connections overall is advisory, not blocking; the runner
// turns that into a warning.
func CheckConnectivity(g store.Graph) ConnectivityResult {
	var result ConnectivityResult
	participants := g.Subjects(vocabulary.RDFType, store.Resource(vocabulary.Participant))
	for _, participant := range participants {
		for _, person := range g.Objects(participant, vocabulary.HasParticipantStructuralCharacteristic) {
			if person.IsLiteral() {
				continue
			}
			for _, location := range g.Objects(person.IRI(), vocabulary.HasLocation) {
				conn := Connection{
					Participant: participant,
					Person:      person.IRI(),
					Location:    location,
				}
				if location.IsLiteral() {
					result.Malformed = append(result.Malformed, conn)
				} else {
					result.Connections = append(result.Connections, conn)
				}
			}
		}
	}
	return result
}
