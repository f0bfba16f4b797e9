package validate

import (
	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

const (
	work        = store.IRI(vocabulary.EntityBase + "work-1")
	participant = store.IRI(vocabulary.EntityBase + "participant-1")
	person      = store.IRI(vocabulary.EntityBase + "person-1")
	location    = store.IRI(vocabulary.EntityBase + "location-1")
	asset       = store.IRI(vocabulary.EntityBase + "asset-1")
)

// typeTriple asserts subject as an instance of class.
func typeTriple(g *store.MemoryGraph, subject, class store.IRI) {
	g.Add(store.Triple{Subject: subject, Predicate: vocabulary.RDFType, Object: store.Resource(class)})
}

// baseGraph returns a graph with one instance of each required entity
// type and a well-formed Participant→Person→Location chain.
func baseGraph() *store.MemoryGraph {
	g := store.NewMemoryGraph()
	typeTriple(g, work, vocabulary.CreativeWork)
	typeTriple(g, participant, vocabulary.Participant)
	typeTriple(g, person, vocabulary.Person)
	typeTriple(g, location, vocabulary.Location)
	typeTriple(g, asset, vocabulary.Asset)
	g.Add(store.Triple{
		Subject:   participant,
		Predicate: vocabulary.HasParticipantStructuralCharacteristic,
		Object:    store.Resource(person),
	})
	g.Add(store.Triple{
		Subject:   person,
		Predicate: vocabulary.HasLocation,
		Object:    store.Resource(location),
	})
	return g
}
