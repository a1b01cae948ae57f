// Package nea is a typed client for the data.gov.sg real-time environment
// endpoints. Each call parses the upstream payload into a validated record;
// a payload missing the fields we consume is a plain error for the caller
// to degrade on, never a panic.
package nea

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.data.gov.sg/v1/environment"

// Client fetches weather, PSI, and UV readings from data.gov.sg.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. An empty base URL selects the public
// endpoint; timeout zero selects the standard 10 seconds per call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AreaForecast is one entry of the 2-hour forecast grid.
type AreaForecast struct {
	Area     string `json:"area"`
	Forecast string `json:"forecast"`
}

// GeneralForecast is the island-wide 24-hour outlook.
type GeneralForecast struct {
	Forecast      string
	TempLow       float64
	TempHigh      float64
	WindSpeed     string
	WindDirection string
}

// DailyOutlook is one day of the 4-day outlook.
type DailyOutlook struct {
	Date     string
	Forecast string
	TempLow  float64
	TempHigh float64
}

// PSIReadings carries both granularities keyed by region name (plus
// "national"). Either map may be empty when upstream omits it.
type PSIReadings struct {
	ThreeHourly      map[string]float64
	TwentyFourHourly map[string]float64
}

// UVIndex is the most recent ultraviolet index reading.
type UVIndex struct {
	Value     float64
	Timestamp string
}

// TwoHourForecast returns the area forecasts valid around the given time.
func (c *Client) TwoHourForecast(ctx context.Context, at time.Time) ([]AreaForecast, error) {
	endpoint := fmt.Sprintf("%s/2-hour-weather-forecast?date_time=%s", c.baseURL, url.QueryEscape(at.Format("2006-01-02T15:04:05")))

	var raw struct {
		Items []struct {
			Forecasts []AreaForecast `json:"forecasts"`
		} `json:"items"`
	}
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	if len(raw.Items) == 0 || len(raw.Items[0].Forecasts) == 0 {
		return nil, errors.New("2-hour forecast: no forecasts in response")
	}
	return raw.Items[0].Forecasts, nil
}

// TwentyFourHourForecast returns the general island-wide outlook.
func (c *Client) TwentyFourHourForecast(ctx context.Context) (GeneralForecast, error) {
	var raw struct {
		Items []struct {
			General struct {
				Forecast    string `json:"forecast"`
				Temperature struct {
					Low  float64 `json:"low"`
					High float64 `json:"high"`
				} `json:"temperature"`
				Wind struct {
					Speed struct {
						Low  float64 `json:"low"`
						High float64 `json:"high"`
					} `json:"speed"`
					Direction string `json:"direction"`
				} `json:"wind"`
			} `json:"general"`
		} `json:"items"`
	}
	if err := c.get(ctx, c.baseURL+"/24-hour-weather-forecast", &raw); err != nil {
		return GeneralForecast{}, err
	}
	if len(raw.Items) == 0 || raw.Items[0].General.Forecast == "" {
		return GeneralForecast{}, errors.New("24-hour forecast: general block missing")
	}
	general := raw.Items[0].General
	return GeneralForecast{
		Forecast:      general.Forecast,
		TempLow:       general.Temperature.Low,
		TempHigh:      general.Temperature.High,
		WindSpeed:     fmt.Sprintf("%.0f-%.0f km/h", general.Wind.Speed.Low, general.Wind.Speed.High),
		WindDirection: general.Wind.Direction,
	}, nil
}

// FourDayOutlook returns the multi-day outlook used for future-date queries.
func (c *Client) FourDayOutlook(ctx context.Context) ([]DailyOutlook, error) {
	var raw struct {
		Items []struct {
			Forecasts []struct {
				Date        string `json:"date"`
				Forecast    string `json:"forecast"`
				Temperature struct {
					Low  float64 `json:"low"`
					High float64 `json:"high"`
				} `json:"temperature"`
			} `json:"forecasts"`
		} `json:"items"`
	}
	if err := c.get(ctx, c.baseURL+"/4-day-weather-forecast", &raw); err != nil {
		return nil, err
	}
	if len(raw.Items) == 0 || len(raw.Items[0].Forecasts) == 0 {
		return nil, errors.New("4-day outlook: no forecasts in response")
	}
	out := make([]DailyOutlook, 0, len(raw.Items[0].Forecasts))
	for _, f := range raw.Items[0].Forecasts {
		out = append(out, DailyOutlook{
			Date:     f.Date,
			Forecast: f.Forecast,
			TempLow:  f.Temperature.Low,
			TempHigh: f.Temperature.High,
		})
	}
	return out, nil
}

// PSI returns the current pollutant readings at both granularities.
func (c *Client) PSI(ctx context.Context) (PSIReadings, error) {
	var raw struct {
		Items []struct {
			Readings struct {
				ThreeHourly      map[string]float64 `json:"psi_three_hourly"`
				TwentyFourHourly map[string]float64 `json:"psi_twenty_four_hourly"`
			} `json:"readings"`
		} `json:"items"`
	}
	if err := c.get(ctx, c.baseURL+"/psi", &raw); err != nil {
		return PSIReadings{}, err
	}
	if len(raw.Items) == 0 {
		return PSIReadings{}, errors.New("psi: no items in response")
	}
	readings := raw.Items[0].Readings
	return PSIReadings{
		ThreeHourly:      readings.ThreeHourly,
		TwentyFourHourly: readings.TwentyFourHourly,
	}, nil
}

// UV returns the most recent UV index reading.
func (c *Client) UV(ctx context.Context) (UVIndex, error) {
	var raw struct {
		Items []struct {
			Index []struct {
				Value     float64 `json:"value"`
				Timestamp string  `json:"timestamp"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := c.get(ctx, c.baseURL+"/uv-index", &raw); err != nil {
		return UVIndex{}, err
	}
	// Entries are newest first; the latest reading of the latest item wins.
	for i := len(raw.Items) - 1; i >= 0; i-- {
		if len(raw.Items[i].Index) > 0 {
			entry := raw.Items[i].Index[0]
			return UVIndex{Value: entry.Value, Timestamp: entry.Timestamp}, nil
		}
	}
	return UVIndex{}, errors.New("uv: no index readings in response")
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build nea request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nea request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("nea request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read nea response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode nea response: %w", err)
	}
	return nil
}
