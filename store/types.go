// Package store provides the in-memory triple model and pattern query
// capability that the validation checks run against.
//
// A loaded graph is an immutable, deduplicated set of triples. Objects
// carry an explicit kind tag (resource reference vs literal value)
// because several checks depend on that distinction and must not rely
// on guessing from the value's shape.
package store

import "fmt"

// IRI identifies a resource. It is an opaque identifier; the store
// never interprets its contents.
type IRI string

// Empty is the wildcard IRI in pattern queries.
const Empty IRI = ""

// LocalName returns the final path or fragment segment of the IRI,
// which is what reports print for readability.
func (i IRI) LocalName() string {
	s := string(i)
	for idx := len(s) - 1; idx >= 0; idx-- {
		if s[idx] == '/' || s[idx] == '#' {
			return s[idx+1:]
		}
	}
	return s
}

// TermKind distinguishes the two object value kinds.
type TermKind int

const (
	// KindResource marks an object that references another entity.
	KindResource TermKind = iota
	// KindLiteral marks an inline scalar value.
	KindLiteral
)

// Term is the tagged object value of a triple: either a resource
// reference or a literal.
type Term struct {
	Kind  TermKind
	Value string
}

// Resource returns a Term referencing the given IRI.
func Resource(iri IRI) Term {
	return Term{Kind: KindResource, Value: string(iri)}
}

// Literal returns a Term holding an inline scalar value.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// IsLiteral reports whether the term is an inline value rather than a
// reference.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// IRI returns the referenced IRI, or Empty for literals.
func (t Term) IRI() IRI {
	if t.Kind != KindResource {
		return Empty
	}
	return IRI(t.Value)
}

func (t Term) String() string {
	if t.Kind == KindLiteral {
		return fmt.Sprintf("%q", t.Value)
	}
	return "<" + t.Value + ">"
}

// Triple is a single (subject, predicate, object) fact.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> %s", t.Subject, t.Predicate, t.Object)
}

// Graph is the pattern query capability the checkers depend on. Any
// triple-store collaborator can back it; the checks never see the
// parser or serialization format.
type Graph interface {
	// Match returns all triples matching the pattern. Empty subject or
	// predicate matches anything; a nil object matches anything.
	Match(subject, predicate IRI, object *Term) []Triple

	// Subjects returns the distinct subjects of triples matching
	// (*, predicate, object), in first-seen order.
	Subjects(predicate IRI, object Term) []IRI

	// Objects returns the objects of triples matching
	// (subject, predicate, *), in first-seen order.
	Objects(subject, predicate IRI) []Term

	// Len returns the number of distinct triples held.
	Len() int
}
