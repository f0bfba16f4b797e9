package store

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// LoadTurtleFile parses a Turtle file into a MemoryGraph. Any read or
// parse error is fatal: the file is rejected before validation runs.
func LoadTurtleFile(path string) (*MemoryGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	g, err := DecodeTurtle(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// DecodeTurtle parses Turtle-serialized triples from r into a
// MemoryGraph. Blank nodes are kept as resource references under their
// decoder-assigned labels, so structural checks treat them as
// references rather than literals.
func DecodeTurtle(r io.Reader) (*MemoryGraph, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	g := NewMemoryGraph()
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode turtle: %w", err)
		}
		g.Add(convertTriple(triple))
	}
	return g, nil
}

func convertTriple(t rdf.Triple) Triple {
	return Triple{
		Subject:   IRI(t.Subj.String()),
		Predicate: IRI(t.Pred.String()),
		Object:    convertTerm(t.Obj),
	}
}

func convertTerm(term rdf.Term) Term {
	if term.Type() == rdf.TermLiteral {
		return Literal(term.String())
	}
	return Resource(IRI(term.String()))
}
