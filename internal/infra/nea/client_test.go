package nea

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second)
}

func TestTwoHourForecast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, "2-hour-weather-forecast")
		require.NotEmpty(t, r.URL.Query().Get("date_time"))
		w.Write([]byte(`{"items":[{"forecasts":[{"area":"Ang Mo Kio","forecast":"Cloudy"},{"area":"Bedok","forecast":"Light Rain"}]}]}`))
	})

	forecasts, err := client.TwoHourForecast(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	require.Equal(t, "Ang Mo Kio", forecasts[0].Area)
	require.Equal(t, "Light Rain", forecasts[1].Forecast)
}

func TestTwoHourForecastEmptyItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	_, err := client.TwoHourForecast(context.Background(), time.Now())
	require.Error(t, err)
}

func TestTwentyFourHourForecast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"general":{"forecast":"Thundery Showers","temperature":{"low":24,"high":32},"wind":{"speed":{"low":10,"high":20},"direction":"NE"}}}]}`))
	})

	general, err := client.TwentyFourHourForecast(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Thundery Showers", general.Forecast)
	require.Equal(t, 24.0, general.TempLow)
	require.Equal(t, 32.0, general.TempHigh)
	require.Equal(t, "10-20 km/h", general.WindSpeed)
	require.Equal(t, "NE", general.WindDirection)
}

func TestTwentyFourHourForecastMissingGeneral(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{}]}`))
	})
	_, err := client.TwentyFourHourForecast(context.Background())
	require.Error(t, err)
}

func TestFourDayOutlook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"forecasts":[{"date":"2025-11-15","forecast":"Showers","temperature":{"low":24,"high":31}},{"date":"2025-11-16","forecast":"Fair","temperature":{"low":25,"high":33}}]}]}`))
	})

	days, err := client.FourDayOutlook(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, "2025-11-15", days[0].Date)
	require.Equal(t, "Fair", days[1].Forecast)
}

func TestPSIPrefersBothGranularities(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"readings":{"psi_three_hourly":{"national":54,"west":58},"psi_twenty_four_hourly":{"national":50}}}]}`))
	})

	readings, err := client.PSI(context.Background())
	require.NoError(t, err)
	require.Equal(t, 58.0, readings.ThreeHourly["west"])
	require.Equal(t, 50.0, readings.TwentyFourHourly["national"])
}

func TestUVTakesLatestReading(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"index":[{"value":7,"timestamp":"2025-11-14T12:00:00+08:00"},{"value":5,"timestamp":"2025-11-14T11:00:00+08:00"}]}]}`))
	})

	uv, err := client.UV(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7.0, uv.Value)
}

func TestUVNoReadings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"index":[]}]}`))
	})
	_, err := client.UV(context.Background())
	require.Error(t, err)
}

func TestServerErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})
	_, err := client.PSI(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

func TestMalformedJSONSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":`))
	})
	_, err := client.UV(context.Background())
	require.Error(t, err)
}
