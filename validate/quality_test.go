package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

func label(g *store.MemoryGraph, subject store.IRI, value string) {
	g.Add(store.Triple{Subject: subject, Predicate: vocabulary.RDFSLabel, Object: store.Literal(value)})
}

func TestCheckSpelling(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   int
	}{
		{name: "clean label", labels: []string{"Duluth, Minnesota"}, want: 0},
		{name: "exact misspelling", labels: []string{"minessotta"}, want: 1},
		{name: "mixed case", labels: []string{"Duluth, MinessottA"}, want: 1},
		{name: "substring match", labels: []string{"somewhere in Minessotta, USA"}, want: 1},
		{name: "two offending labels", labels: []string{"Minessotta", "also Minessotta"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := store.NewMemoryGraph()
			for i, l := range tt.labels {
				label(g, store.IRI(fmt.Sprintf("%sentity-%d", vocabulary.EntityBase, i)), l)
			}

			issues := CheckSpelling(g, DefaultMisspellings())
			require.Len(t, issues, tt.want)
			for _, issue := range issues {
				assert.Equal(t, "minessotta", issue.Token)
				assert.Equal(t, "Minnesota", issue.Correction)
			}
		})
	}
}

func TestCheckSpelling_ResourceLabelsIgnored(t *testing.T) {
	g := store.NewMemoryGraph()
	g.Add(store.Triple{
		Subject:   person,
		Predicate: vocabulary.RDFSLabel,
		Object:    store.Resource(store.IRI(vocabulary.EntityBase + "minessotta")),
	})

	assert.Empty(t, CheckSpelling(g, DefaultMisspellings()))
}

func TestCountCircularIdentifiers(t *testing.T) {
	g := store.NewMemoryGraph()

	// Two distinct self-loops.
	for _, s := range []store.IRI{person, asset} {
		g.Add(store.Triple{
			Subject:   s,
			Predicate: vocabulary.HasIdentifier,
			Object:    store.Resource(s),
		})
	}
	// A proper identifier reference does not count.
	g.Add(store.Triple{
		Subject:   participant,
		Predicate: vocabulary.HasIdentifier,
		Object:    store.Resource(store.IRI(vocabulary.EntityBase + "identifier-1")),
	})

	assert.Equal(t, 2, CountCircularIdentifiers(g))
}

func TestCountCircularIdentifiers_Empty(t *testing.T) {
	assert.Zero(t, CountCircularIdentifiers(store.NewMemoryGraph()))
}
