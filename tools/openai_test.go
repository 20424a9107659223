package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"learnhub/apperr"
	"learnhub/config"
	"learnhub/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(b)
}

func newTestGenerator(baseURL string) *LessonGenerator {
	return NewLessonGenerator(config.OpenAI{
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	}, logger.NewNop())
}

func TestGenerateUnconfiguredReturnsFallback(t *testing.T) {
	gen := NewLessonGenerator(config.OpenAI{Model: "gpt-4o-mini"}, logger.NewNop())

	req := LessonRequest{Prompt: "What is 2+2?"}
	got, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, BuildFallback(req), got)
	assert.Contains(t, got, "the requested topic")
}

func TestGenerateReturnsCompletion(t *testing.T) {
	var calls int32
	srv := completionServer(t, http.StatusOK, completionBody("  Four.  "), &calls)

	got, err := newTestGenerator(srv.URL).Generate(context.Background(), LessonRequest{Prompt: "What is 2+2?"})
	require.NoError(t, err)
	assert.Equal(t, "Four.", got)
	assert.EqualValues(t, 1, calls)
}

func TestGenerateSendsChatRequest(t *testing.T) {
	var received struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
	}
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("ok")))
	}))
	defer srv.Close()

	req := LessonRequest{Prompt: "Explain fractions", UserName: "Dana", CategoryName: "Mathematics"}
	_, err := newTestGenerator(srv.URL).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "gpt-4o-mini", received.Model)
	assert.Equal(t, 600, received.MaxTokens)
	assert.InDelta(t, 0.7, received.Temperature, 1e-9)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, systemPrompt, received.Messages[0].Content)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.Equal(t, BuildPrompt(req), received.Messages[1].Content)
}

func TestGenerateEmptyCompletionFallsBack(t *testing.T) {
	var calls int32
	srv := completionServer(t, http.StatusOK, completionBody("   "), &calls)

	req := LessonRequest{Prompt: "What is 2+2?", Topic: "arithmetic"}
	got, err := newTestGenerator(srv.URL).Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, BuildFallback(req), got)
}

func TestGenerateNoChoicesFallsBack(t *testing.T) {
	var calls int32
	srv := completionServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[]}`, &calls)

	got, err := newTestGenerator(srv.URL).Generate(context.Background(), LessonRequest{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, BuildFallback(LessonRequest{}), got)
}

func TestGenerateServerErrorIsUnavailable(t *testing.T) {
	var calls int32
	srv := completionServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, &calls)

	got, err := newTestGenerator(srv.URL).Generate(context.Background(), LessonRequest{Prompt: "q"})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	assert.EqualValues(t, 1, calls, "no retries")
}

func TestGenerateUnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestGenerator(url).Generate(context.Background(), LessonRequest{Prompt: "q"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}

func TestBuildFallbackShape(t *testing.T) {
	req := LessonRequest{Prompt: "p", CategoryName: "Science"}
	got := BuildFallback(req)

	assert.Equal(t, got, BuildFallback(req))
	assert.True(t, strings.HasPrefix(got, "Intro: Here's a quick overview about Science."))

	var bullets, exercises, reflections int
	for _, line := range strings.Split(got, "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			bullets++
		case strings.HasPrefix(line, "Try this:"):
			exercises++
		case strings.HasPrefix(line, "Reflect:"):
			reflections++
		}
	}
	assert.Equal(t, 3, bullets)
	assert.Equal(t, 1, exercises)
	assert.Equal(t, 1, reflections)
}

func TestBuildFallbackSubjectOrder(t *testing.T) {
	assert.Contains(t, BuildFallback(LessonRequest{Topic: "algebra", CategoryName: "Mathematics"}), "about algebra.")
	assert.Contains(t, BuildFallback(LessonRequest{CategoryName: "Mathematics"}), "about Mathematics.")
	assert.Contains(t, BuildFallback(LessonRequest{}), "about the requested topic.")
}

func TestBuildPromptOrder(t *testing.T) {
	got := BuildPrompt(LessonRequest{
		Prompt:          "Explain photosynthesis",
		Topic:           "plants",
		UserName:        "Dana",
		CategoryName:    "Science",
		SubCategoryName: "Biology",
	})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "The learner is interested in plants.", lines[0])
	assert.Equal(t, "The learner's name is Dana.", lines[1])
	assert.Equal(t, `Create a concise learning session for the following prompt: "Explain photosynthesis".`, lines[2])
	assert.Equal(t, "Category of interest: Science.", lines[8])
	assert.Equal(t, "Sub-category of interest: Biology.", lines[9])

	assert.NotContains(t, BuildPrompt(LessonRequest{Prompt: "x"}), "learner")
}
