package service

import (
	"context"
	"sync"
)

type fakeAIService struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeAIService) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeAIService) Model() string { return "fake" }

func (f *fakeAIService) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
