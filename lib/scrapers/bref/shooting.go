package bref

import (
	"context"
	"fmt"
	"strconv"

	"shotcharts-backend/lib/htmlutil"
	"shotcharts-backend/lib/textutil"
	"shotcharts-backend/lib/zonestats"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// zoneLabels maps normalized table row labels to zones. Labels are
// normalized with textutil.NormalizeName before lookup so minor
// whitespace/casing drift on the site does not break extraction.
var zoneLabels = map[string]zonestats.Zone{}

func init() {
	for _, z := range zonestats.Zones {
		zoneLabels[textutil.NormalizeName(z.String())] = z
	}
}

// GetShooting fetches the season shooting page for a resolved player
// identifier and extracts it into a per-zone profile. One page fetch
// per call, serialized through the client's rate limiter.
func (c *Client) GetShooting(ctx context.Context, playerID, season string) (*zonestats.PlayerShootingProfile, error) {
	ctx, span := tracer.Start(ctx, "client:GetShooting")
	defer span.End()
	span.SetAttributes(
		attribute.String("player_id", playerID),
		attribute.String("season", season),
	)

	if playerID == "" {
		return nil, &ParseError{Reason: "empty player id"}
	}

	path := fmt.Sprintf("/players/%s/%s/shooting/%s", playerID[:1], playerID, season)
	doc, err := c.fetchDocument(c.Http.R().SetContext(ctx), path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch shooting page")
		return nil, err
	}

	zones, err := parseShootingTable(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse shooting table")
		return nil, err
	}

	name := htmlutil.CleanText(doc.Find("h1").First().Text())
	if name == "" {
		name = playerID
	}

	return &zonestats.PlayerShootingProfile{
		Name:   name,
		Season: season,
		Zones:  zones,
	}, nil
}

// parseShootingTable extracts (zone, FGM, FGA) rows from the #shooting
// table. Rows with a missing or non-numeric make/attempt cell mean the
// zone is absent from the profile, never that it is zero: a 0% zone is
// a real statistic and only comes from a parsed "0" make count.
func parseShootingTable(doc *goquery.Document) (map[zonestats.Zone]zonestats.ZoneStats, error) {
	table := doc.Find("table#shooting")
	if table.Length() == 0 {
		return nil, &ParseError{Reason: "shooting table not found"}
	}

	zones := map[zonestats.Zone]zonestats.ZoneStats{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 3 {
			return
		}

		label := textutil.NormalizeName(cells.Eq(0).Text())
		zone, ok := zoneLabels[label]
		if !ok {
			return
		}

		makes, err := parseCount(cells.Eq(1).Text())
		if err != nil {
			return
		}
		attempts, err := parseCount(cells.Eq(2).Text())
		if err != nil {
			return
		}
		if attempts <= 0 || makes > attempts {
			return
		}

		zones[zone] = zonestats.ZoneStats{
			Attempts: attempts,
			Makes:    makes,
		}
	})

	return zones, nil
}

func parseCount(s string) (int, error) {
	s = htmlutil.CleanText(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	return n, nil
}
