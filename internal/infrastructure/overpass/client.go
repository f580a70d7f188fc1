package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a client for the Overpass API. The request timeout
// comes from config; an abandoned import cancels the in-flight fetch
// through the context.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.GeodataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// overpassResponse mirrors the wire format of an Overpass JSON reply.
type overpassResponse struct {
	Elements []struct {
		Type string            `json:"type"`
		ID   int64             `json:"id"`
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// FetchByRadius queries nodes carrying accessibility-relevant tags around
// the center and returns them as raw tagged elements.
func (c *client) FetchByRadius(
	ctx context.Context,
	center domain.Coordinate,
	radiusM float64,
) ([]domain.RawElement, error) {
	query := buildQuery(center, radiusM)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("Calling Overpass API",
		zap.Float64("lat", center.Lat),
		zap.Float64("lon", center.Lon),
		zap.Float64("radius_m", radiusM))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	elements := make([]domain.RawElement, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		if el.Type != "node" {
			continue
		}
		elements = append(elements, domain.RawElement{
			ID:   el.ID,
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags,
		})
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(elements)))

	return elements, nil
}

// buildQuery assembles the Overpass QL union for accessibility nodes.
func buildQuery(center domain.Coordinate, radiusM float64) string {
	around := fmt.Sprintf("around:%.0f,%.6f,%.6f", radiusM, center.Lat, center.Lon)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	for _, selector := range []string{
		`["wheelchair"]`,
		`["highway"="elevator"]`,
		`["elevator"]`,
		`["ramp"]`,
		`["tactile_paving"]`,
	} {
		fmt.Fprintf(&b, "node(%s)%s;", around, selector)
	}
	b.WriteString(");out body;")

	return b.String()
}
