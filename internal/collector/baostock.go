package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/model"
)

// BaostockFetcher pulls index k-data from a baostock HTTP gateway. The
// gateway is session-based: every fetch acquires a session token (login),
// runs its query, and releases the session (logout) even when the query
// fails.
type BaostockFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewBaostockFetcher creates a fetcher with optional proxy support.
func NewBaostockFetcher(baseURL, proxyURL string) *BaostockFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BaostockFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BaostockFetcher) Name() string { return "baostock" }

type bsEnvelope struct {
	ErrorCode string     `json:"error_code"`
	ErrorMsg  string     `json:"error_msg"`
	Token     string     `json:"token,omitempty"`
	Data      [][]string `json:"data,omitempty"`
}

func (f *BaostockFetcher) login() (string, error) {
	resp, err := f.Client.Post(f.BaseURL+"/api/v1/login", "application/json", nil)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login: status %d, body: %s", resp.StatusCode, string(body))
	}
	var env bsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if env.ErrorCode != "0" {
		return "", fmt.Errorf("login rejected: %s", env.ErrorMsg)
	}
	return env.Token, nil
}

func (f *BaostockFetcher) logout(token string) {
	req, err := http.NewRequest("POST", f.BaseURL+"/api/v1/logout", nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.Client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("baostock logout failed")
		return
	}
	resp.Body.Close()
}

// FetchDaily queries daily k-data rows (date, close, high, low) for an index
// code over the trailing window.
func (f *BaostockFetcher) FetchDaily(code string, days int) (*model.PriceSeries, error) {
	token, err := f.login()
	if err != nil {
		return nil, fmt.Errorf("baostock session: %w", err)
	}
	defer f.logout(token)

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	endpoint := fmt.Sprintf(
		"%s/api/v1/history_k_data?code=%s&fields=date,close,high,low&start_date=%s&end_date=%s&frequency=d",
		f.BaseURL, url.QueryEscape(code),
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch k-data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch k-data: status %d, body: %s", resp.StatusCode, string(body))
	}
	var env bsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode k-data: %w", err)
	}
	if env.ErrorCode != "0" {
		return nil, fmt.Errorf("k-data query: %s", env.ErrorMsg)
	}
	if len(env.Data) == 0 {
		return nil, ErrNoData
	}

	points := make([]model.PricePoint, 0, len(env.Data))
	for _, row := range env.Data {
		if len(row) < 4 {
			continue
		}
		date, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue
		}
		closeV, err1 := strconv.ParseFloat(row[1], 64)
		highV, err2 := strconv.ParseFloat(row[2], 64)
		lowV, err3 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		points = append(points, model.PricePoint{Date: date, Close: closeV, High: highV, Low: lowV})
	}
	if len(points) == 0 {
		return nil, ErrNoData
	}
	return &model.PriceSeries{Code: code, Points: normalize(points), FetchedAt: time.Now()}, nil
}

// normalize sorts ascending by date and drops duplicate dates, keeping the
// first occurrence.
func normalize(points []model.PricePoint) []model.PricePoint {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	out := points[:0]
	var last time.Time
	for _, p := range points {
		if !last.IsZero() && p.Date.Equal(last) {
			continue
		}
		out = append(out, p)
		last = p.Date
	}
	return out
}
