package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownPlaces(t *testing.T) {
	cases := map[string]Code{
		"What's the weather in Jurong now?":     West,
		"Picnic in Bishan tomorrow at 3pm":      Central,
		"Is it raining at PASIR RIS?":           East,
		"pasir ris beach bbq":                   East,
		"cycling around woodlands":              North,
		"ferry from HarbourFront":               South,
		"haze over toa payoh today":             Central,
		"Ang Mo Kio park at 9am":                North,
	}
	for text, want := range cases {
		require.Equal(t, want, Resolve(text), "query: %s", text)
	}
}

func TestResolveEveryTableToken(t *testing.T) {
	for _, e := range placeTable {
		// Containment can hit a shorter token first ("jurongeast" contains
		// "east"), so Resolve only guarantees some region; exact area
		// lookup must return the table's own mapping.
		require.NotEqual(t, National, Resolve("near "+e.token+" please"), "token: %s", e.token)
		require.Equal(t, e.region, FromArea(e.token), "token: %s", e.token)
	}
}

func TestResolveFallsBackToNational(t *testing.T) {
	require.Equal(t, National, Resolve("will it rain today?"))
	require.Equal(t, National, Resolve(""))
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Both places are present; the table lists bishan before bedok.
	require.Equal(t, Central, Resolve("commute from Bishan to Bedok"))
}

func TestFromArea(t *testing.T) {
	require.Equal(t, North, FromArea("Ang Mo Kio"))
	require.Equal(t, West, FromArea("Boon Lay"))
	require.Equal(t, Code(""), FromArea("Atlantis"))
}
