package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandArgs_PlainPathsPassThrough(t *testing.T) {
	paths, err := expandArgs([]string{"a.ttl", "missing/b.ttl"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ttl", "missing/b.ttl"}, paths)
}

func TestExpandArgs_Glob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.ttl", "two.ttl", "skip.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "three.ttl"), nil, 0o644))

	paths, err := expandArgs([]string{filepath.Join(dir, "**", "*.ttl")})
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestExpandArgs_NoMatches(t *testing.T) {
	_, err := expandArgs([]string{filepath.Join(t.TempDir(), "*.ttl")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	cfg, err := loadConfig(options{format: "json", noColor: true})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoadConfig_BadFormatFlag(t *testing.T) {
	_, err := loadConfig(options{format: "yaml"})
	require.Error(t, err)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ttl")
	require.NoError(t, os.WriteFile(good, []byte(goodTurtle), 0o644))

	err := run(options{logLevel: "error", noColor: true}, []string{good})
	assert.NoError(t, err)

	bad := filepath.Join(dir, "bad.ttl")
	require.NoError(t, os.WriteFile(bad, []byte(badTurtle), 0o644))

	err = run(options{logLevel: "error", noColor: true}, []string{bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, errValidationFailed)
}

const goodTurtle = `@prefix omc: <https://movielabs.com/omc/rdf/schema/v2.8#> .
@prefix me: <https://me-nexus.com/id/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

me:work-1 rdf:type omc:CreativeWork .
me:participant-1 rdf:type omc:Participant .
me:person-1 rdf:type omc:Person .
me:location-1 rdf:type omc:Location .
me:asset-1 rdf:type omc:Asset .
me:participant-1 omc:hasParticipantStructuralCharacteristic me:person-1 .
me:person-1 omc:hasLocation me:location-1 .
`

// badTurtle is missing the Asset type and embeds a location string.
const badTurtle = `@prefix omc: <https://movielabs.com/omc/rdf/schema/v2.8#> .
@prefix me: <https://me-nexus.com/id/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

me:work-1 rdf:type omc:CreativeWork .
me:participant-1 rdf:type omc:Participant .
me:person-1 rdf:type omc:Person .
me:location-1 rdf:type omc:Location .
me:person-1 omc:hasLocation "Duluth, Minessotta" .
`
