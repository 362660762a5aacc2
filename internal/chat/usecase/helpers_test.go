package usecase

import (
	"context"
	"sync"

	"rev-chat-relay/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGeminiClient struct {
	mu         sync.Mutex
	configured bool
	calls      int
	requests   []gemini.GenerateRequest
	respond    func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

func newMockGemini(respond func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)) *mockGeminiClient {
	return &mockGeminiClient{configured: true, respond: respond}
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.respond(ctx, req)
}

func (m *mockGeminiClient) Model() string    { return "gemini-test" }
func (m *mockGeminiClient) Configured() bool { return m.configured }

func (m *mockGeminiClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockGeminiClient) lastRequest() gemini.GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content: &gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: text}}},
		}},
	}
}

func replyWith(text string) func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
		return textResponse(text), nil
	}
}
