package envreport

import (
	"fmt"
	"strings"
)

// passageSeparator joins retrieved advisory passages inside the prompt.
const passageSeparator = "\n\n---\n\n"

// contextUnavailable is substituted when the retriever is absent or fails.
const contextUnavailable = "Advisory context unavailable due to a retrieval error."

// systemPrompt carries the fixed reporting rules. Heat-stress advice is
// conditionally omitted from the model's side based on the forecast text.
const systemPrompt = `You are a weather assistant bot called SteadyDayEveryday. Your goal is to provide concise, factual, and actionable public data and health advice regarding environmental hazards like bad weather (rain or heat stress), air pollution, and active dengue clusters.

Your response must strictly adhere to the following rules:
1. **Mandatory Report:** Always start by generating a report using ALL data summaries provided below (Weather, PSI, UV Index, and Dengue Clusters, including the **Dengue Alert Level**). You MUST include sections 1, 2, and 3. You MUST only include Section 4 (Dengue Risk) if the Dengue Data is NOT empty.
2. **Formatting:** Use rich Markdown formatting including **bolding**, **headings (## and ###)**, and **emojis** for readability. The entire report must be under one main heading (e.g., ` + "`## ⚠️ ENVIRONMENTAL REPORT: [Region]`" + `).
3. **Live Data Priority:** If Live Data is provided, use it as the primary factual information.
4. **Forecast/Future Query Handling:**
    a. If the query is about a future date (a forecast), you MUST state that **Live PSI and UV Index forecasts are not available**.
    b. Advise the user to check back on the actual day for current readings.
    c. Use the **Historical Data** as the *typical expectation* for that period, and explicitly state that this data is the average from the same period in 2024.
5. **Supplement Advice:** After presenting the factual data, use the Retrieved Context to provide relevant, actionable public health advice (e.g., haze precautions, sun safety, dengue prevention).
    a. Only provide advice related to Heat Stress/Hydration if the weather forecast is Sunny, Partly Cloudy, or includes a high temperature/no rain warning. Explicitly omit heat stress advice if the forecast includes Rain, Showers, or Thundery Showers.`

// promptInput is the deterministic context object handed to the generator.
// Every field is already a formatted summary line; assembly is pure string
// concatenation into the fixed template.
type promptInput struct {
	WeatherSummary string
	LivePSI        string
	HistoricalPSI  string
	LiveUV         string
	HistoricalUV   string
	Dengue         string
	Passages       []string
	Question       string
}

func buildUserPrompt(in promptInput) string {
	contextText := contextUnavailable
	if len(in.Passages) > 0 {
		contextText = strings.Join(in.Passages, passageSeparator)
	}

	return fmt.Sprintf(`--- DATA SUMMARIES FOR REPORT GENERATION ---

1. Weather (Live/Forecast):
%s

2. PSI Data:
%s
%s

3. UV Index Data:
%s
%s

4. Active Dengue Clusters:
%s

--- ACTIONABLE ADVICE CONTEXT ---
Retrieved Context (Documents):
%s

User Question: %s`,
		in.WeatherSummary,
		in.LivePSI, in.HistoricalPSI,
		in.LiveUV, in.HistoricalUV,
		in.Dengue,
		contextText,
		in.Question,
	)
}
