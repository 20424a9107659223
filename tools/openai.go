package tools

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"learnhub/apperr"
	"learnhub/config"
	"learnhub/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	systemPrompt = "You are a concise learning coach that produces structured mini-lessons."
	maxTokens    = 600
	temperature  = 0.7
)

// LessonGenerator turns a prompt into a mini-lesson using an OpenAI compatible
// chat completion endpoint. Without an API key it never touches the network
// and answers with BuildFallback.
type LessonGenerator struct {
	client  openai.Client
	model   string
	enabled bool
	log     *logger.Logger
}

func NewLessonGenerator(cfg config.OpenAI, log *logger.Logger) *LessonGenerator {
	g := &LessonGenerator{model: cfg.Model, enabled: cfg.Enabled(), log: log}
	if !g.enabled {
		return g
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		// exactly one outbound call per lesson
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	g.client = openai.NewClient(opts...)
	return g
}

// Generate returns a non-empty lesson or an Unavailable error when the
// endpoint answered with a failure status or could not be reached. An empty
// or unreadable completion is answered with the fallback instead.
func (g *LessonGenerator) Generate(ctx context.Context, req LessonRequest) (string, error) {
	if !g.enabled {
		return BuildFallback(req), nil
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(req)),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		if unavailable(err) {
			g.log.Warn("lesson generation failed", "model", g.model, "error", err)
			return "", apperr.Unavailable("Lesson generation is temporarily unavailable", err)
		}
		g.log.Warn("unreadable completion, using fallback", "model", g.model, "error", err)
		return BuildFallback(req), nil
	}

	if len(resp.Choices) == 0 {
		return BuildFallback(req), nil
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return BuildFallback(req), nil
	}
	return content, nil
}

// unavailable reports failures of the call itself: a non-2xx status or a
// transport error. Anything else happened while reading a 2xx body.
func unavailable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return true
	}
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
