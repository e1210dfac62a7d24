package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"linesight/internal/signal"
)

const defaultTimeout = 15 * time.Second

// Client fetches games from an odds feed over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// Games fetches the upcoming slate. Individual games that fail to
// normalize are logged and skipped; only transport and decode failures
// fail the whole call.
func (c *Client) Games(ctx context.Context) ([]*signal.GameContext, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned %d: %s", resp.StatusCode, body)
	}

	var raw []rawGame
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding games: %w", err)
	}

	games := make([]*signal.GameContext, 0, len(raw))
	for _, rg := range raw {
		game, err := normalize(rg)
		if err != nil {
			c.logger.Warn("skipping malformed game", "error", err)
			continue
		}
		games = append(games, game)
	}
	c.logger.Info("feed fetched", "games", len(games), "skipped", len(raw)-len(games))
	return games, nil
}
