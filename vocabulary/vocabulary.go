// Package vocabulary provides the fixed IRI vocabulary the validation
// contract depends on: the OMC ontology namespace for production
// metadata entity types and relationships, the RDF/RDFS standard
// namespaces, and the instance identifier namespace.
//
// Internal code always works with these typed constants; raw IRI
// strings appear only at the parsing boundary.
package vocabulary

import "github.com/me-nexus/omccheck/store"

// Namespace bases.
const (
	// OMCBase is the ontology namespace for production-metadata
	// entity types and relationships.
	OMCBase = "https://movielabs.com/omc/rdf/schema/v2.8#"

	// EntityBase is the namespace under which entity instances are
	// minted.
	EntityBase = "https://me-nexus.com/id/"

	// RDFBase is the standard RDF namespace.
	RDFBase = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSBase is the standard RDF Schema namespace.
	RDFSBase = "http://www.w3.org/2000/01/rdf-schema#"
)

// Entity type classes.
const (
	CreativeWork = store.IRI(OMCBase + "CreativeWork")
	Participant  = store.IRI(OMCBase + "Participant")
	Person       = store.IRI(OMCBase + "Person")
	Location     = store.IRI(OMCBase + "Location")
	Asset        = store.IRI(OMCBase + "Asset")
)

// Relationship predicates.
const (
	// HasLocation links an entity to a Location. Its object must be a
	// resource reference, never an inline string.
	HasLocation = store.IRI(OMCBase + "hasLocation")

	// HasParticipantStructuralCharacteristic links a Participant to
	// the Person that structurally characterises it.
	HasParticipantStructuralCharacteristic = store.IRI(OMCBase + "hasParticipantStructuralCharacteristic")

	// HasIdentifier links an entity to its identifier structure.
	HasIdentifier = store.IRI(OMCBase + "hasIdentifier")
)

// Standard predicates.
const (
	// RDFType is the rdf:type predicate.
	RDFType = store.IRI(RDFBase + "type")

	// RDFSLabel is the rdfs:label predicate.
	RDFSLabel = store.IRI(RDFSBase + "label")
)

// Class returns the entity type IRI for a class name under base, e.g.
// Class(OMCBase, "Participant"). Configurations that relocate the
// ontology namespace use this to rebuild the type map.
func Class(base, name string) store.IRI {
	return store.IRI(base + name)
}
