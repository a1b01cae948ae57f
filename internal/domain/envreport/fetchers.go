package envreport

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/steadyday/steadyday/internal/domain/region"
	"github.com/steadyday/steadyday/internal/infra/nea"
)

// NEAClient is the slice of the data.gov.sg client the report pipeline
// consumes. Every fetch below converts an error into a degraded Reading;
// nothing propagates past this file.
type NEAClient interface {
	TwoHourForecast(ctx context.Context, at time.Time) ([]nea.AreaForecast, error)
	TwentyFourHourForecast(ctx context.Context) (nea.GeneralForecast, error)
	FourDayOutlook(ctx context.Context) ([]nea.DailyOutlook, error)
	PSI(ctx context.Context) (nea.PSIReadings, error)
	UV(ctx context.Context) (nea.UVIndex, error)
}

func (s *service) fetchTwoHour(ctx context.Context, at time.Time, target region.Code) Reading {
	forecasts, err := s.nea.TwoHourForecast(ctx, at)
	if err != nil {
		s.logger.Warn("2-hour forecast fetch failed", "error", err)
		return Reading{Summary: "Current 2-hour forecast is unavailable (API Error).", Live: false}
	}

	var regional []nea.AreaForecast
	for _, f := range forecasts {
		if region.FromArea(f.Area) == target {
			regional = append(regional, f)
		}
	}

	if len(regional) == 0 {
		if len(forecasts) == 0 {
			return Reading{Summary: "Current 2-hour forecast is unavailable (API Error).", Live: false}
		}
		// National proxy: the first grid entry stands in for the region.
		summary := fmt.Sprintf("2-Hour Weather Forecast for %s Region: %s (using national proxy)", title(target), forecasts[0].Forecast)
		return Reading{Summary: summary, Live: true}
	}

	// Group areas by forecast text, preserving first-seen order.
	var order []string
	grouped := make(map[string][]string)
	for _, f := range regional {
		if _, ok := grouped[f.Forecast]; !ok {
			order = append(order, f.Forecast)
		}
		grouped[f.Forecast] = append(grouped[f.Forecast], f.Area)
	}

	if len(order) == 1 {
		return Reading{
			Summary: fmt.Sprintf("2-Hour Weather Forecast for %s Region: %s", title(target), order[0]),
			Live:    true,
		}
	}

	lines := make([]string, 0, len(order))
	for _, forecast := range order {
		areas := grouped[forecast]
		lines = append(lines, fmt.Sprintf("%s areas (e.g., %s): %s", title(target), areas[0], forecast))
	}
	return Reading{Summary: "2-Hour Weather Forecast:\n" + strings.Join(lines, "\n"), Live: true}
}

func (s *service) fetchTwentyFourHour(ctx context.Context) Reading {
	general, err := s.nea.TwentyFourHourForecast(ctx)
	if err != nil {
		s.logger.Warn("24-hour forecast fetch failed", "error", err)
		return Reading{Summary: "24-hour forecast is unavailable (API Error).", Live: false}
	}
	summary := fmt.Sprintf(
		"24-Hour Weather Outlook (General):\n- Forecast: %s\n- Temperature Range: %.0f°C to %.0f°C\n- Wind: %s %s",
		general.Forecast, general.TempLow, general.TempHigh, general.WindSpeed, general.WindDirection,
	)
	return Reading{Summary: summary, Live: true}
}

func (s *service) fetchFourDay(ctx context.Context) Reading {
	days, err := s.nea.FourDayOutlook(ctx)
	if err != nil {
		s.logger.Warn("4-day outlook fetch failed", "error", err)
		return Reading{Summary: "4-day weather outlook is unavailable (API Error).", Live: false}
	}
	var b strings.Builder
	b.WriteString("4-Day Weather Outlook:")
	for _, d := range days {
		fmt.Fprintf(&b, "\n- **%s:** %s (Temp: %.0f°C - %.0f°C)", d.Date, d.Forecast, d.TempLow, d.TempHigh)
	}
	return Reading{Summary: b.String(), Live: true}
}

func (s *service) fetchPSI(ctx context.Context, target region.Code) Reading {
	readings, err := s.nea.PSI(ctx)
	if err != nil {
		s.logger.Warn("psi fetch failed", "error", err)
		return Reading{Summary: "Live PSI data is unavailable: Network error.", Live: false}
	}

	values := readings.ThreeHourly
	sourceType := "3-Hour"
	if len(values) == 0 {
		values = readings.TwentyFourHourly
		sourceType = "24-Hour"
		if len(values) == 0 {
			return Reading{Summary: "Live PSI data is unavailable: Both 3-hour and 24-hour readings are missing.", Live: false}
		}
	}

	if value, ok := values[string(target)]; ok {
		return Reading{
			Summary: fmt.Sprintf("Live %s PSI for **%s**: **%s**", sourceType, title(target), formatNumber(value)),
			Live:    true,
		}
	}
	if value, ok := values["national"]; ok {
		return Reading{
			Summary: fmt.Sprintf("Live %s PSI for **%s**: **%s** (Based on National reading)", sourceType, title(target), formatNumber(value)),
			Live:    true,
		}
	}
	return Reading{
		Summary: fmt.Sprintf("Live PSI data is unavailable: Region '%s' and national reading missing.", target),
		Live:    false,
	}
}

func (s *service) fetchUV(ctx context.Context) Reading {
	uv, err := s.nea.UV(ctx)
	if err != nil {
		s.logger.Warn("uv fetch failed", "error", err)
		return Reading{Summary: "Live UV index data is unavailable (No reading found).", Live: false}
	}
	return Reading{Summary: "Current Live UV Index: " + formatNumber(uv.Value), Live: true}
}

func title(code region.Code) string {
	r := string(code)
	if r == "" {
		return r
	}
	return strings.ToUpper(r[:1]) + r[1:]
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
