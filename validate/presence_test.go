package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

func TestCheckPresence_AllSatisfied(t *testing.T) {
	results := CheckPresence(baseGraph(), DefaultRequirements())
	require.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.Satisfied(), "%s should be present", r.Name)
		assert.Equal(t, 1, r.Count)
	}
}

func TestCheckPresence_EachMissingTypeReported(t *testing.T) {
	// Dropping any one required type must surface exactly that name,
	// and the scan must still evaluate the remaining requirements.
	for _, missing := range DefaultRequirements() {
		t.Run(missing.Name, func(t *testing.T) {
			g := store.NewMemoryGraph()
			for _, req := range DefaultRequirements() {
				if req.Name == missing.Name {
					continue
				}
				typeTriple(g, store.IRI(vocabulary.EntityBase+req.Name), req.Type)
			}

			results := CheckPresence(g, DefaultRequirements())
			require.Len(t, results, 5)
			for _, r := range results {
				if r.Name == missing.Name {
					assert.False(t, r.Satisfied())
					assert.Zero(t, r.Count)
				} else {
					assert.True(t, r.Satisfied())
				}
			}
		})
	}
}

func TestCheckPresence_CountsDistinctSubjects(t *testing.T) {
	g := baseGraph()
	typeTriple(g, store.IRI(vocabulary.EntityBase+"person-2"), vocabulary.Person)
	// Duplicate assertion must not inflate the count.
	typeTriple(g, person, vocabulary.Person)

	results := CheckPresence(g, DefaultRequirements())
	for _, r := range results {
		if r.Name == "Person" {
			assert.Equal(t, 2, r.Count)
		}
	}
}

func TestCheckPresence_OrderFollowsRequirements(t *testing.T) {
	results := CheckPresence(baseGraph(), DefaultRequirements())
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"CreativeWork", "Participant", "Person", "Location", "Asset"}, names)
}
