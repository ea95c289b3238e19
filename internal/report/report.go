// Package report generates the prose personality report by sending the
// aggregate numbers to OpenAI. The core never calls this; commands construct
// a Generator once and inject it where needed.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Payload carries the aggregates the report is written from.
type Payload struct {
	Stats      analysis.BasicStats      `json:"stats"`
	Habits     analysis.ListeningHabits `json:"habits"`
	TopArtists []analysis.TopArtistRow  `json:"top_artists"`
	TopTracks  []analysis.TopTrackRow   `json:"top_tracks"`
}

// Style shapes the generated prose.
type Style struct {
	Tone           string
	TargetWords    int
	BulletCount    int
	FocusAreas     []string
	IncludeTagline bool
}

// DefaultStyle matches the tone the report was originally tuned for.
func DefaultStyle() Style {
	return Style{
		Tone:           "funny, witty, playful, slightly self-deprecating",
		TargetWords:    200,
		BulletCount:    4,
		IncludeTagline: true,
	}
}

// Generator holds the injected OpenAI client. No package-level state.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator wraps an already-configured client. An empty model selects
// DefaultModel.
func NewGenerator(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces the report text. Any API failure surfaces as an error;
// callers must not swallow it silently.
func (g *Generator) Generate(ctx context.Context, payload Payload, style Style) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}

	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(900),
		Instructions:    openai.String(instructions(style)),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(string(body), responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := callWithRetry(ctx, g.client, params)
	if err != nil {
		return "", fmt.Errorf("generating report: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("generating report: empty response")
	}
	return text, nil
}

func instructions(style Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly music analyst with a %s voice. ", style.Tone)
	fmt.Fprintf(&b, "Write a concise personality report based on lifetime Spotify stats, around %d words, ", style.TargetWords)
	fmt.Fprintf(&b, "with %d punchy bullets carrying short, funny labels. ", style.BulletCount)
	b.WriteString("Keep the roasting kind: no insults, no profanity, no hate. ")
	if len(style.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus on: %s. ", strings.Join(style.FocusAreas, ", "))
	}
	if style.IncludeTagline {
		b.WriteString(`End with a one-liner "verdict" tagline.`)
	}
	return b.String()
}

func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxAttempts = 3
	rateLimitWaits := []time.Duration{30 * time.Second, 60 * time.Second}
	serverErrorWaits := []time.Duration{5 * time.Second, 20 * time.Second}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		if attempt == maxAttempts-1 {
			return nil, err
		}
		switch {
		case isRateLimitError(err):
			time.Sleep(rateLimitWaits[attempt])
		case isServerError(err):
			time.Sleep(serverErrorWaits[attempt])
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed after %d attempts", maxAttempts)
}

func isRateLimitError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") || strings.Contains(s, "rate limit") || strings.Contains(s, "too many requests")
}

func isServerError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "500") || strings.Contains(s, "internal server error") || strings.Contains(s, "server_error")
}
