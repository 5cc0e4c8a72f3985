package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"filmlog/internal/library"
	"filmlog/internal/logging"
)

// HTTPDoer describes the HTTP client used by the OMDb service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the OMDb API.
type Client struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Options configures a Client. Zero values fall back to sane defaults.
type Options struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	HTTPClient        HTTPDoer
	Logger            *slog.Logger
}

// NewClient constructs an OMDb client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		apiKey:  strings.TrimSpace(opts.APIKey),
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logging.NewComponentLogger(opts.Logger, "omdb"),
	}
}

// payload matches the OMDb title-lookup response. OMDb reports misses with
// HTTP 200 and Response "False".
type payload struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Lookup resolves title to a movie record.
func (c *Client) Lookup(ctx context.Context, title string) (library.Movie, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return library.Movie{}, err
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("t", strings.TrimSpace(title))
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return library.Movie{}, fmt.Errorf("build omdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return library.Movie{}, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return library.Movie{}, fmt.Errorf("%w: omdb returned status %d", library.ErrNetwork, resp.StatusCode)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return library.Movie{}, fmt.Errorf("%w: decode omdb response: %v", library.ErrNetwork, err)
	}

	if !strings.EqualFold(body.Response, "True") {
		reason := strings.TrimSpace(body.Error)
		if reason == "" {
			reason = "no match"
		}
		return library.Movie{}, fmt.Errorf("%w: %q (%s)", library.ErrNotFound, title, reason)
	}

	movie := library.Movie{
		Title:     strings.TrimSpace(body.Title),
		Year:      parseYear(body.Year),
		Rating:    parseRating(body.ImdbRating),
		PosterURL: normalizePoster(body.Poster),
	}

	c.logger.Debug("resolved title",
		logging.String("query", title),
		logging.String("title", movie.Title),
		logging.Int("year", movie.Year),
		logging.Float64("rating", movie.Rating))
	return movie, nil
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// parseYear extracts the first four-digit run; OMDb reports series as ranges
// like "2010–2013".
func parseYear(value string) int {
	match := yearPattern.FindString(value)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

func parseRating(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return 0
	}
	rating, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return rating
}

func normalizePoster(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}
