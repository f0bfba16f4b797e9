package store

// MemoryGraph is an immutable-after-load Graph backed by an
// insertion-ordered, deduplicated slice. Queries iterate in insertion
// order, so two loads of the same file produce identical results.
type MemoryGraph struct {
	triples []Triple
	seen    map[Triple]struct{}
}

// NewMemoryGraph returns an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{seen: make(map[Triple]struct{})}
}

// Add inserts a triple. Duplicates (by value equality) are ignored.
func (g *MemoryGraph) Add(t Triple) {
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
}

// Len returns the number of distinct triples held.
func (g *MemoryGraph) Len() int {
	return len(g.triples)
}

// Match returns all triples matching the pattern. Empty subject or
// predicate matches anything; a nil object matches anything.
func (g *MemoryGraph) Match(subject, predicate IRI, object *Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if subject != Empty && t.Subject != subject {
			continue
		}
		if predicate != Empty && t.Predicate != predicate {
			continue
		}
		if object != nil && t.Object != *object {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Subjects returns the distinct subjects of triples matching
// (*, predicate, object), in first-seen order.
func (g *MemoryGraph) Subjects(predicate IRI, object Term) []IRI {
	var out []IRI
	seen := make(map[IRI]struct{})
	for _, t := range g.Match(Empty, predicate, &object) {
		if _, ok := seen[t.Subject]; ok {
			continue
		}
		seen[t.Subject] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}

// Objects returns the objects of triples matching (subject, predicate, *).
func (g *MemoryGraph) Objects(subject, predicate IRI) []Term {
	var out []Term
	for _, t := range g.Match(subject, predicate, nil) {
		out = append(out, t.Object)
	}
	return out
}
