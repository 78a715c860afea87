package bref

import (
	"context"
	"strings"

	"shotcharts-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

const (
	// similarityThreshold is the minimum Jaro-Winkler score for a fuzzy
	// candidate to count as a match at all.
	similarityThreshold = 0.85
	// tieEpsilon bounds how close two fuzzy scores may be before
	// resolution refuses to pick between them.
	tieEpsilon = 0.005
)

// Resolve maps a free-text player name to a page identifier using the
// given index. It tries, in order: exact match on the normalized name,
// substring containment, then Jaro-Winkler similarity. Multiple equally
// good candidates produce *AmbiguousNameError instead of a guess. The
// result is deterministic for identical input, earlier index entries
// win exact ties.
func Resolve(name string, index []IndexEntry) (string, error) {
	normalized := textutil.NormalizeName(name)
	if normalized == "" {
		return "", ErrPlayerNotFound
	}

	for _, entry := range index {
		if textutil.NormalizeName(entry.Name) == normalized {
			return entry.ID, nil
		}
	}

	var contained []IndexEntry
	for _, entry := range index {
		if strings.Contains(textutil.NormalizeName(entry.Name), normalized) {
			contained = append(contained, entry)
		}
	}
	if len(contained) == 1 {
		return contained[0].ID, nil
	}
	if len(contained) > 1 {
		return "", &AmbiguousNameError{
			Name:       name,
			Candidates: entryNames(contained),
		}
	}

	best := -1.0
	secondBest := -1.0
	var bestEntry, secondEntry IndexEntry
	for _, entry := range index {
		score := matchr.JaroWinkler(normalized, textutil.NormalizeName(entry.Name), false)
		if score > best {
			secondBest = best
			secondEntry = bestEntry
			best = score
			bestEntry = entry
		} else if score > secondBest {
			secondBest = score
			secondEntry = entry
		}
	}

	if best < similarityThreshold {
		return "", ErrPlayerNotFound
	}
	if secondBest >= similarityThreshold && best-secondBest <= tieEpsilon {
		return "", &AmbiguousNameError{
			Name:       name,
			Candidates: entryNames([]IndexEntry{bestEntry, secondEntry}),
		}
	}
	return bestEntry.ID, nil
}

func entryNames(entries []IndexEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ResolvePlayer searches the site for the name and resolves the result
// list to a single identifier.
func (c *Client) ResolvePlayer(ctx context.Context, name string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:ResolvePlayer")
	defer span.End()

	index, err := c.SearchPlayers(ctx, name)
	if err != nil {
		return "", err
	}
	return Resolve(name, index)
}
