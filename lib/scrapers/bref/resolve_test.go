package bref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var testIndex = []IndexEntry{
	{Name: "LeBron James", ID: "jamesle01"},
	{Name: "Mike James", ID: "jamesmi01"},
	{Name: "Stephen Curry", ID: "curryst01"},
	{Name: "Luka Dončić", ID: "doncilu01"},
	{Name: "Kevin Durant", ID: "duranke01"},
}

func TestResolveExact(t *testing.T) {
	id, err := Resolve("Stephen Curry", testIndex)
	require.NoError(t, err)
	require.Equal(t, "curryst01", id)

	// casing and whitespace are irrelevant
	id, err = Resolve("  stephen   CURRY ", testIndex)
	require.NoError(t, err)
	require.Equal(t, "curryst01", id)

	// diacritics fold both ways
	id, err = Resolve("Luka Doncic", testIndex)
	require.NoError(t, err)
	require.Equal(t, "doncilu01", id)
}

func TestResolveSubstring(t *testing.T) {
	// exactly one indexed player contains "lebron"
	id, err := Resolve("LeBron", testIndex)
	require.NoError(t, err)
	require.Equal(t, "jamesle01", id)
}

func TestResolveAmbiguous(t *testing.T) {
	// two distinct players contain "james", resolution must not guess
	_, err := Resolve("James", testIndex)

	var ambiguous *AmbiguousNameError
	require.ErrorAs(t, err, &ambiguous)
	require.ElementsMatch(t,
		[]string{"LeBron James", "Mike James"},
		ambiguous.Candidates,
	)
}

func TestResolveFuzzy(t *testing.T) {
	// one-letter typo, no containment, Jaro-Winkler kicks in
	id, err := Resolve("Lebrom James", testIndex)
	require.NoError(t, err)
	require.Equal(t, "jamesle01", id)
}

func TestResolveDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		id, err := Resolve("Lebrom James", testIndex)
		require.NoError(t, err)
		require.Equal(t, "jamesle01", id)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := Resolve("Zydrunas Q", testIndex)
	require.True(t, errors.Is(err, ErrPlayerNotFound))

	_, err = Resolve("   ", testIndex)
	require.True(t, errors.Is(err, ErrPlayerNotFound))

	_, err = Resolve("LeBron James", nil)
	require.True(t, errors.Is(err, ErrPlayerNotFound))
}
