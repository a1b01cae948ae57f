package envreport

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steadyday/steadyday/internal/domain/region"
	"github.com/steadyday/steadyday/internal/infra/nea"
)

type stubNEA struct {
	twoHour       []nea.AreaForecast
	twoHourErr    error
	general       nea.GeneralForecast
	generalErr    error
	outlook       []nea.DailyOutlook
	outlookErr    error
	psi           nea.PSIReadings
	psiErr        error
	uv            nea.UVIndex
	uvErr         error
	twoHourAskeds []time.Time
}

func (s *stubNEA) TwoHourForecast(_ context.Context, at time.Time) ([]nea.AreaForecast, error) {
	s.twoHourAskeds = append(s.twoHourAskeds, at)
	return s.twoHour, s.twoHourErr
}

func (s *stubNEA) TwentyFourHourForecast(context.Context) (nea.GeneralForecast, error) {
	return s.general, s.generalErr
}

func (s *stubNEA) FourDayOutlook(context.Context) ([]nea.DailyOutlook, error) {
	return s.outlook, s.outlookErr
}

func (s *stubNEA) PSI(context.Context) (nea.PSIReadings, error) {
	return s.psi, s.psiErr
}

func (s *stubNEA) UV(context.Context) (nea.UVIndex, error) {
	return s.uv, s.uvErr
}

func newTestService(stub *stubNEA) *service {
	return &service{
		nea:    stub,
		logger: slog.New(slog.NewTextHandler(testWriter{}, nil)),
	}
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestFetchTwoHourRegionalGrouping(t *testing.T) {
	svc := newTestService(&stubNEA{twoHour: []nea.AreaForecast{
		{Area: "Bishan", Forecast: "Partly Cloudy"},
		{Area: "Toa Payoh", Forecast: "Partly Cloudy"},
		{Area: "Bedok", Forecast: "Showers"},
	}})

	r := svc.fetchTwoHour(context.Background(), time.Now(), region.Central)
	require.True(t, r.Live)
	require.Equal(t, "2-Hour Weather Forecast for Central Region: Partly Cloudy", r.Summary)
}

func TestFetchTwoHourMixedForecasts(t *testing.T) {
	svc := newTestService(&stubNEA{twoHour: []nea.AreaForecast{
		{Area: "Bishan", Forecast: "Partly Cloudy"},
		{Area: "Toa Payoh", Forecast: "Thundery Showers"},
	}})

	r := svc.fetchTwoHour(context.Background(), time.Now(), region.Central)
	require.True(t, r.Live)
	require.Contains(t, r.Summary, "2-Hour Weather Forecast:")
	require.Contains(t, r.Summary, "Central areas (e.g., Bishan): Partly Cloudy")
	require.Contains(t, r.Summary, "Central areas (e.g., Toa Payoh): Thundery Showers")
}

func TestFetchTwoHourNationalProxy(t *testing.T) {
	svc := newTestService(&stubNEA{twoHour: []nea.AreaForecast{
		{Area: "Bedok", Forecast: "Fair"},
	}})

	r := svc.fetchTwoHour(context.Background(), time.Now(), region.West)
	require.True(t, r.Live)
	require.Equal(t, "2-Hour Weather Forecast for West Region: Fair (using national proxy)", r.Summary)
}

func TestFetchTwoHourFailures(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		svc := newTestService(&stubNEA{twoHourErr: errors.New("boom")})
		r := svc.fetchTwoHour(context.Background(), time.Now(), region.Central)
		require.False(t, r.Live)
		require.Contains(t, r.Summary, "unavailable")
	})
	t.Run("empty payload", func(t *testing.T) {
		svc := newTestService(&stubNEA{})
		r := svc.fetchTwoHour(context.Background(), time.Now(), region.Central)
		require.False(t, r.Live)
	})
}

func TestFetchTwentyFourHour(t *testing.T) {
	svc := newTestService(&stubNEA{general: nea.GeneralForecast{
		Forecast:      "Thundery Showers",
		TempLow:       24,
		TempHigh:      33,
		WindSpeed:     "10 - 20 km/h",
		WindDirection: "NE",
	}})

	r := svc.fetchTwentyFourHour(context.Background())
	require.True(t, r.Live)
	require.Contains(t, r.Summary, "- Forecast: Thundery Showers")
	require.Contains(t, r.Summary, "- Temperature Range: 24°C to 33°C")
	require.Contains(t, r.Summary, "- Wind: 10 - 20 km/h NE")

	svc = newTestService(&stubNEA{generalErr: errors.New("boom")})
	require.False(t, svc.fetchTwentyFourHour(context.Background()).Live)
}

func TestFetchFourDay(t *testing.T) {
	svc := newTestService(&stubNEA{outlook: []nea.DailyOutlook{
		{Date: "2025-11-15", Forecast: "Afternoon thundery showers", TempLow: 24, TempHigh: 32},
		{Date: "2025-11-16", Forecast: "Fair", TempLow: 25, TempHigh: 33},
	}})

	r := svc.fetchFourDay(context.Background())
	require.True(t, r.Live)
	require.Contains(t, r.Summary, "- **2025-11-15:** Afternoon thundery showers (Temp: 24°C - 32°C)")
	require.Contains(t, r.Summary, "- **2025-11-16:** Fair (Temp: 25°C - 33°C)")

	svc = newTestService(&stubNEA{outlookErr: errors.New("boom")})
	require.False(t, svc.fetchFourDay(context.Background()).Live)
}

func TestFetchPSI(t *testing.T) {
	t.Run("3-hour regional reading preferred", func(t *testing.T) {
		svc := newTestService(&stubNEA{psi: nea.PSIReadings{
			ThreeHourly:      map[string]float64{"west": 42},
			TwentyFourHourly: map[string]float64{"west": 99},
		}})
		r := svc.fetchPSI(context.Background(), region.West)
		require.True(t, r.Live)
		require.Equal(t, "Live 3-Hour PSI for **West**: **42**", r.Summary)
	})

	t.Run("falls back to 24-hour", func(t *testing.T) {
		svc := newTestService(&stubNEA{psi: nea.PSIReadings{
			TwentyFourHourly: map[string]float64{"east": 55.5},
		}})
		r := svc.fetchPSI(context.Background(), region.East)
		require.True(t, r.Live)
		require.Equal(t, "Live 24-Hour PSI for **East**: **55.5**", r.Summary)
	})

	t.Run("falls back to national", func(t *testing.T) {
		svc := newTestService(&stubNEA{psi: nea.PSIReadings{
			ThreeHourly: map[string]float64{"national": 38},
		}})
		r := svc.fetchPSI(context.Background(), region.North)
		require.True(t, r.Live)
		require.Equal(t, "Live 3-Hour PSI for **North**: **38** (Based on National reading)", r.Summary)
	})

	t.Run("no readings at all", func(t *testing.T) {
		svc := newTestService(&stubNEA{})
		r := svc.fetchPSI(context.Background(), region.North)
		require.False(t, r.Live)
	})

	t.Run("api error", func(t *testing.T) {
		svc := newTestService(&stubNEA{psiErr: errors.New("boom")})
		r := svc.fetchPSI(context.Background(), region.North)
		require.False(t, r.Live)
		require.Contains(t, r.Summary, "Network error")
	})
}

func TestFetchUV(t *testing.T) {
	svc := newTestService(&stubNEA{uv: nea.UVIndex{Value: 7}})
	r := svc.fetchUV(context.Background())
	require.True(t, r.Live)
	require.Equal(t, "Current Live UV Index: 7", r.Summary)

	svc = newTestService(&stubNEA{uvErr: errors.New("boom")})
	require.False(t, svc.fetchUV(context.Background()).Live)
}
