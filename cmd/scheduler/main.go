// The scheduler is the daily trigger for the scoring pipeline. It keeps
// the API itself stateless and timer-free: on each cron tick it pulls
// the latest signal snapshots from the aggregation feed and POSTs them
// to the pipeline endpoint.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"spendsense/internal/config"
	"spendsense/internal/logger"
)

const requestTimeout = 2 * time.Minute

// feedResponse is the shape of the signal aggregation feed. Snapshots
// are forwarded verbatim; the pipeline endpoint owns validation.
type feedResponse struct {
	Snapshots json.RawMessage `json:"snapshots"`
}

// pipelineRequest mirrors the pipeline endpoint's payload.
type pipelineRequest struct {
	ComputedAt  time.Time       `json:"computed_at"`
	TriggeredBy string          `json:"triggered_by"`
	Snapshots   json.RawMessage `json:"snapshots"`
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.SignalFeedURL == "" {
		return fmt.Errorf("SIGNAL_FEED_URL is required")
	}
	if cfg.PipelineAPIKey == "" {
		return fmt.Errorf("PIPELINE_API_KEY is required")
	}

	log := logger.Get()
	client := &http.Client{Timeout: requestTimeout}

	c := cron.New()
	if _, err := c.AddFunc(cfg.ScoreCronSpec, func() {
		if err := runScoring(client, cfg); err != nil {
			log.Errorw("scoring run failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", cfg.ScoreCronSpec, err)
	}

	log.Infof("Scheduler started: scoring on %q, feed %s", cfg.ScoreCronSpec, cfg.SignalFeedURL)
	c.Run()
	return nil
}

// runScoring performs one pull-and-score round trip.
func runScoring(client *http.Client, cfg *config.Config) error {
	log := logger.Get()
	start := time.Now()

	resp, err := client.Get(cfg.SignalFeedURL)
	if err != nil {
		return fmt.Errorf("fetching signal feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("signal feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return fmt.Errorf("decoding signal feed: %w", err)
	}
	if len(feed.Snapshots) == 0 {
		log.Warn("signal feed returned no snapshots; skipping run")
		return nil
	}

	body, err := json.Marshal(pipelineRequest{
		ComputedAt:  time.Now().UTC(),
		TriggeredBy: "scheduler",
		Snapshots:   feed.Snapshots,
	})
	if err != nil {
		return fmt.Errorf("encoding pipeline request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cfg.PipelineURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building pipeline request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", cfg.PipelineAPIKey)

	pipeResp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling pipeline: %w", err)
	}
	defer pipeResp.Body.Close()

	var result struct {
		UsersScored int `json:"users_scored"`
	}
	if pipeResp.StatusCode != http.StatusOK {
		var apiErr json.RawMessage
		_ = json.NewDecoder(pipeResp.Body).Decode(&apiErr)
		return fmt.Errorf("pipeline returned status %d: %s", pipeResp.StatusCode, apiErr)
	}
	if err := json.NewDecoder(pipeResp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding pipeline response: %w", err)
	}

	log.Infow("scoring run complete",
		"users_scored", result.UsersScored,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
