package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"caretier/internal/model"
)

// AdjudicatorClient asks an external care-planning service for a secondary
// opinion on the daily-hours band. The call is strictly best-effort: the
// engine falls back to its deterministic baseline on any error or timeout,
// so correctness never depends on this service being up.
type AdjudicatorClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAdjudicatorClient creates a client against the given base URL. The
// timeout is deliberately short; adjudication must never stall a submission.
func NewAdjudicatorClient(baseURL string) *AdjudicatorClient {
	return &AdjudicatorClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

type adjudicateRequest struct {
	Band            model.HoursBand      `json:"band"`
	HoursLow        float64              `json:"hoursLow"`
	HoursHigh       float64              `json:"hoursHigh"`
	Factors         []string             `json:"factors"`
	DomainSubtotals map[model.Domain]int `json:"domainSubtotals"`
}

type adjudicateResponse struct {
	Band model.HoursBand `json:"band"`
}

// AdjudicateBand implements engine.Adjudicator.
func (c *AdjudicatorClient) AdjudicateBand(ctx context.Context, estimate model.HoursEstimate, subtotals map[model.Domain]int) (model.HoursBand, error) {
	body, err := json.Marshal(adjudicateRequest{
		Band:            estimate.Band,
		HoursLow:        estimate.HoursLow,
		HoursHigh:       estimate.HoursHigh,
		Factors:         estimate.ContributingFactors,
		DomainSubtotals: subtotals,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/adjudicate", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("adjudicator returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var out adjudicateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	if low, high := model.HoursBandRange(out.Band); low == 0 && high == 0 {
		return "", fmt.Errorf("adjudicator returned unknown band %q", out.Band)
	}
	return out.Band, nil
}
