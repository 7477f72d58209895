// Package espn fetches NWSL games from the public ESPN scoreboard API.
package espn

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/timeutil"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches one day of games per call and maps them to GameRecords.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchGames retrieves games for date (YYYY-MM-DD, empty for today UTC). A non-success response is
// returned as a *providers.StatusError; events that cannot be mapped are skipped.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, err
	}

	games := make([]domaingames.GameRecord, 0, len(payload.Events))
	for _, e := range payload.Events {
		g, err := mapEvent(e)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, c.logger), "skipping unmappable event",
				logging.FieldProvider, providerName,
				logging.FieldEventID, e.ID,
				logging.FieldError, err,
			)
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("dates", c.resolveDate(date))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			return parsed.Format(timeutil.FeedDateLayout)
		}
	}
	return c.now().UTC().Format(timeutil.FeedDateLayout)
}
