// Package nasdaq fetches time series from the Nasdaq Data Link
// (formerly Quandl) v3 REST API.
package nasdaq

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/safehaven/date"
)

// DefaultBaseURL is the Nasdaq Data Link API root.
const DefaultBaseURL = "https://data.nasdaq.com/api/v3"

// Default dataset codes for the S&P 500 study.
const (
	// PriceCode is the monthly S&P 500 price level.
	PriceCode = "MULTPL/SP500_REAL_PRICE_MONTH"
	// YieldCode is the monthly S&P 500 dividend yield, in percent.
	YieldCode = "MULTPL/SP500_DIV_YIELD_MONTH"
)

// Client queries the Nasdaq Data Link API with an API token, through a
// daily-expiring disk cache so a study re-run within the day is free.
type Client struct {
	Key     string
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the public API.
func NewClient(key string) *Client {
	return &Client{Key: key, BaseURL: DefaultBaseURL, HTTP: newDailyCachingClient()}
}

// Dataset fetches one dataset's observations within the range bounds.
// Rows with a null value are skipped.
func (c *Client) Dataset(code string, r date.Range) (*date.History[float64], error) {
	// https://data.nasdaq.com/api/v3/datasets/MULTPL/SP500_REAL_PRICE_MONTH.json
	//  ?api_token=...&start_date=1900-01-01&end_date=2020-12-31&order=asc
	// {
	//   "dataset": {
	//     "dataset_code": "SP500_REAL_PRICE_MONTH",
	//     "column_names": ["Date", "Value"],
	//     "data": [["1900-01-01", 6.1], ...]
	//   }
	// }
	q := url.Values{}
	q.Set("api_token", c.Key)
	q.Set("start_date", r.From.String())
	q.Set("end_date", r.To.String())
	q.Set("order", "asc")
	addr := fmt.Sprintf("%s/datasets/%s.json?%s", c.BaseURL, code, q.Encode())

	var envelope struct {
		Dataset struct {
			DatasetCode string  `json:"dataset_code"`
			ColumnNames []string `json:"column_names"`
			Data        [][]any  `json:"data"`
		} `json:"dataset"`
	}
	if err := jwget(c.HTTP, addr, &envelope); err != nil {
		return nil, fmt.Errorf("fetching dataset %s: %w", code, err)
	}

	history := &date.History[float64]{}
	for _, row := range envelope.Dataset.Data {
		if len(row) < 2 {
			return nil, fmt.Errorf("dataset %s: malformed row %v", code, row)
		}
		str, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("dataset %s: row date %v is not a string", code, row[0])
		}
		on, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", code, err)
		}
		value, ok := row[1].(float64)
		if !ok {
			continue // null observation
		}
		history.Append(on, value)
	}
	return history, nil
}

// NewestAvailable returns the newest observation date the dataset
// carries. The metadata envelope is loosely shaped, so it is probed
// with a jsonpath instead of a dedicated struct.
func (c *Client) NewestAvailable(code string) (date.Date, error) {
	addr := fmt.Sprintf("%s/datasets/%s/metadata.json?api_token=%s", c.BaseURL, code, url.QueryEscape(c.Key))
	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return date.Date{}, fmt.Errorf("fetching metadata for %s: %w", code, err)
	}
	jval, err := jsonpath.Get("$.dataset.newest_available_date", jobj)
	if err != nil {
		return date.Date{}, fmt.Errorf("metadata for %s has no newest_available_date: %w", code, err)
	}
	str, ok := jval.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("metadata for %s: newest_available_date is %T, want string", code, jval)
	}
	return date.Parse(str)
}

// Fetch retrieves both the price and yield series for the study.
func (c *Client) Fetch(priceCode, yieldCode string, r date.Range) (prices, yields *date.History[float64], err error) {
	prices, err = c.Dataset(priceCode, r)
	if err != nil {
		return nil, nil, err
	}
	yields, err = c.Dataset(yieldCode, r)
	if err != nil {
		return nil, nil, err
	}
	return prices, yields, nil
}
