package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"RotationSentinel/internal/model"
)

// EastMoneyFetcher pulls fund ETF daily history from the East Money kline
// endpoint. The fund feed only carries closes, so high and low are
// synthesized equal to close. That degrades ADX fidelity for fund-sourced
// assets, which downstream code tolerates.
type EastMoneyFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewEastMoneyFetcher creates a fetcher with optional proxy support.
func NewEastMoneyFetcher(baseURL, proxyURL string) *EastMoneyFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = "https://push2his.eastmoney.com"
	}
	return &EastMoneyFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *EastMoneyFetcher) Name() string { return "eastmoney" }

// secID prefixes the code with the exchange market flag the endpoint
// expects: Shanghai-listed funds start with 5, everything else is Shenzhen.
func secID(code string) string {
	if strings.HasPrefix(code, "5") {
		return "1." + code
	}
	return "0." + code
}

type emKlineResponse struct {
	Data *struct {
		Klines []string `json:"klines"`
	} `json:"data"`
}

// FetchDaily queries forward-adjusted daily klines for a fund code over the
// trailing window.
func (f *EastMoneyFetcher) FetchDaily(code string, days int) (*model.PriceSeries, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	endpoint := fmt.Sprintf(
		"%s/api/qt/stock/kline/get?secid=%s&klt=101&fqt=1&fields1=f1,f2,f3&fields2=f51,f53&beg=%s&end=%s",
		f.BaseURL, secID(code), start.Format("20060102"), end.Format("20060102"))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eastmoney fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("eastmoney: status %d, body: %s", resp.StatusCode, string(body))
	}

	var kr emKlineResponse
	if err := json.NewDecoder(resp.Body).Decode(&kr); err != nil {
		return nil, fmt.Errorf("eastmoney decode: %w", err)
	}
	if kr.Data == nil || len(kr.Data.Klines) == 0 {
		return nil, ErrNoData
	}

	points := make([]model.PricePoint, 0, len(kr.Data.Klines))
	for _, line := range kr.Data.Klines {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			continue
		}
		closeV, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		points = append(points, model.PricePoint{Date: date, Close: closeV, High: closeV, Low: closeV})
	}
	if len(points) == 0 {
		return nil, ErrNoData
	}
	return &model.PriceSeries{Code: code, Points: normalize(points), FetchedAt: time.Now()}, nil
}
