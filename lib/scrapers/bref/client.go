// Package bref scrapes per-zone shooting statistics for a player-season
// from basketball-reference.com.
package bref

import (
	"bytes"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"shotcharts-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("shotcharts.lib.scrapers.bref")

const DefaultBaseUrl = "https://www.basketball-reference.com"

// DefaultRequestInterval is the courtesy gap between consecutive
// outbound fetches. basketball-reference rate limits aggressive
// crawlers, so the gap is generous.
const DefaultRequestInterval = 3 * time.Second

// sharedLimiter serializes fetches of every client that does not bring
// its own limiter. It is the only piece of process-wide mutable state
// in the scraper.
var sharedLimiter = rate.NewLimiter(rate.Every(DefaultRequestInterval), 1)

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Limiter overrides the process-wide request limiter. Tests inject
	// a permissive one to avoid real delays.
	Limiter *rate.Limiter
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	parsedBaseUrl, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	limiter := opts.Limiter
	if limiter == nil {
		limiter = sharedLimiter
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(client, "shotcharts.scrapers.bref.http")

	return &Client{
		BaseUrl: parsedBaseUrl,
		Http:    client,
	}, nil
}

// fetchDocument performs a single rate-limited GET and parses the body.
// Transport failures surface as *NetworkError and are never retried.
func (c *Client) fetchDocument(req *resty.Request, path string) (*goquery.Document, error) {
	res, err := req.Get(path)
	if err != nil {
		return nil, &NetworkError{URL: path, Err: err}
	}
	if res.StatusCode() != 200 {
		return nil, &NetworkError{
			URL: path,
			Err: fmt.Errorf("unexpected status: %s", res.Status()),
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return doc, nil
}
