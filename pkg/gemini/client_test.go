package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rev-chat-relay/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	var lastReq gemini.GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&lastReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch lastReq.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		case "not_json":
			w.Write([]byte(`<html>`))
			return
		case "no_candidates":
			w.Write([]byte(`{"promptFeedback":{}}`))
			return
		}

		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key", gemini.WithModel("test-model"), gemini.WithAPIURL(ts.URL))

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			GenerationConfig: &gemini.GenerationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 200},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		require.NoError(t, err)

		text, err := resp.Text()
		require.NoError(t, err)
		assert.Equal(t, "mocked response string", text)

		require.NotNil(t, lastReq.GenerationConfig)
		assert.Equal(t, 40, lastReq.GenerationConfig.TopK)
		assert.Equal(t, 0.95, lastReq.GenerationConfig.TopP)
		assert.Equal(t, 200, lastReq.GenerationConfig.MaxOutputTokens)
		assert.Equal(t, gemini.RoleUser, lastReq.Contents[0].Role)
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		}

		_, err := client.GenerateContent(context.Background(), req)
		require.Error(t, err)

		var apiErr *gemini.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "boom")
	})

	t.Run("Undecodable Body", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "not_json"}}}},
		}

		_, err := client.GenerateContent(context.Background(), req)
		assert.True(t, errors.Is(err, gemini.ErrInvalidResponse))
	})

	t.Run("Missing Candidates", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "no_candidates"}}}},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		require.NoError(t, err)

		_, err = resp.Text()
		assert.True(t, errors.Is(err, gemini.ErrInvalidResponse))
	})

	t.Run("Wrong Key", func(t *testing.T) {
		c2 := gemini.NewClient("other", gemini.WithModel("test-model"), gemini.WithAPIURL(ts.URL+"/"))

		_, err := c2.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		var apiErr *gemini.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestClient_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	client := gemini.NewClient("k", gemini.WithAPIURL(ts.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "slow"}}}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGenerateResponse_Text(t *testing.T) {
	cases := []struct {
		name string
		resp *gemini.GenerateResponse
		want string
		ok   bool
	}{
		{name: "nil", resp: nil},
		{name: "empty candidates", resp: &gemini.GenerateResponse{}},
		{name: "no content", resp: &gemini.GenerateResponse{Candidates: []gemini.Candidate{{FinishReason: "SAFETY"}}}},
		{name: "no parts", resp: &gemini.GenerateResponse{Candidates: []gemini.Candidate{{Content: &gemini.Content{}}}}},
		{name: "empty text", resp: &gemini.GenerateResponse{Candidates: []gemini.Candidate{{Content: &gemini.Content{Parts: []gemini.Part{{}}}}}}},
		{
			name: "first part wins",
			resp: &gemini.GenerateResponse{Candidates: []gemini.Candidate{{Content: &gemini.Content{Parts: []gemini.Part{{Text: "a"}, {Text: "b"}}}}}},
			want: "a",
			ok:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.resp.Text()
			if !tc.ok {
				assert.True(t, errors.Is(err, gemini.ErrInvalidResponse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyConfigured(t *testing.T) {
	assert.False(t, gemini.KeyConfigured(""))
	assert.False(t, gemini.KeyConfigured(gemini.PlaceholderAPIKey))
	assert.True(t, gemini.KeyConfigured("AIza-real"))

	assert.False(t, gemini.NewClient(gemini.PlaceholderAPIKey).Configured())
	assert.Equal(t, gemini.DefaultModel, gemini.NewClient("k").Model())
	assert.Equal(t, "custom", gemini.NewClient("k", gemini.WithModel("custom")).Model())
}

func TestClient_TransportErrorHidesKey(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	client := gemini.NewClient("secret-key-123", gemini.WithAPIURL(base))
	_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key-123")
	assert.Contains(t, err.Error(), "REDACTED")
}
