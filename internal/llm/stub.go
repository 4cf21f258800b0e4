package llm

import (
	"context"
	"sync"
)

// StubClient is a canned-response Client for tests.
type StubClient struct {
	mu               sync.Mutex
	Response         string
	Err              error
	calls            int
	LastInstructions string
	LastUserText     string
}

func NewStubClient(response string, err error) *StubClient {
	return &StubClient{Response: response, Err: err}
}

// Infer implements Client
func (s *StubClient) Infer(ctx context.Context, instructions, userText string, wantStructured bool) (string, error) {
	s.mu.Lock()
	s.calls++
	s.LastInstructions = instructions
	s.LastUserText = userText
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Calls returns how many times Infer was invoked
func (s *StubClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
