package bref

import (
	"context"
	"regexp"

	"shotcharts-backend/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// IndexEntry is one player in the site's search index.
type IndexEntry struct {
	// Name is the display name as listed on the site.
	Name string
	// ID is the player's page identifier, e.g. "jamesle01".
	ID string
}

var playerHrefRegex = regexp.MustCompile(`/players/[a-z]/([a-z0-9.]+)\.html$`)

// SearchPlayers queries the site search endpoint and returns every
// player the result page links to, in page order, deduplicated by id.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]IndexEntry, error) {
	ctx, span := tracer.Start(ctx, "client:SearchPlayers")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	doc, err := c.fetchDocument(
		c.Http.R().
			SetContext(ctx).
			SetQueryParam("search", query),
		"/search/search.fcgi",
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch search results")
		return nil, err
	}

	var entries []IndexEntry
	seen := map[string]struct{}{}
	for _, anchor := range htmlutil.GetAnchors(ctx, doc.Find("a")) {
		groups := playerHrefRegex.FindStringSubmatch(anchor.Href)
		if len(groups) < 2 || anchor.Name == "" {
			continue
		}
		id := groups[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		entries = append(entries, IndexEntry{
			Name: anchor.Name,
			ID:   id,
		})
	}

	span.SetAttributes(attribute.Int("results", len(entries)))
	return entries, nil
}
