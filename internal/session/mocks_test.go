package session

import (
	"context"
	"io"

	"plexiterm/internal/answer"
	"plexiterm/internal/provider/models"
)

// mockUI records everything the session writes and plays back scripted
// choice selections.
type mockUI struct {
	Messages []string
	Warnings []string
	Statuses []string

	ChoicePrompts []string
	ChoiceOptions [][]string
	ChoiceReturns []int
	ChoiceErr     error

	InputReturns []string
	InputErr     error

	Model string
}

func (m *mockUI) ReadInput(ctx context.Context, prompt string) (string, error) {
	if m.InputErr != nil {
		return "", m.InputErr
	}
	if len(m.InputReturns) == 0 {
		return "", context.Canceled
	}
	next := m.InputReturns[0]
	m.InputReturns = m.InputReturns[1:]
	return next, nil
}

func (m *mockUI) ReadChoice(ctx context.Context, prompt string, options []string) (int, error) {
	m.ChoicePrompts = append(m.ChoicePrompts, prompt)
	m.ChoiceOptions = append(m.ChoiceOptions, options)
	if m.ChoiceErr != nil {
		return 0, m.ChoiceErr
	}
	if len(m.ChoiceReturns) == 0 {
		return len(options) - 1, nil
	}
	next := m.ChoiceReturns[0]
	m.ChoiceReturns = m.ChoiceReturns[1:]
	return next, nil
}

func (m *mockUI) WriteMessage(content string) {
	m.Messages = append(m.Messages, content)
}

func (m *mockUI) WriteWarning(content string) {
	m.Warnings = append(m.Warnings, content)
}

func (m *mockUI) WriteStatus(phase string, message string) {
	m.Statuses = append(m.Statuses, phase+":"+message)
}

func (m *mockUI) SetModel(name string) {
	m.Model = name
}

// mockProvider implements models.Provider with pluggable behaviour.
type mockProvider struct {
	SearchFunc       func(ctx context.Context, query string, opts models.QueryOptions) (answer.Payload, error)
	SearchStreamFunc func(ctx context.Context, query string, opts models.QueryOptions) (models.ResponseStream, error)

	LastQuery string
	LastOpts  models.QueryOptions
	model     string
}

func (p *mockProvider) Search(ctx context.Context, query string, opts models.QueryOptions) (answer.Payload, error) {
	p.LastQuery = query
	p.LastOpts = opts
	if p.SearchFunc != nil {
		return p.SearchFunc(ctx, query, opts)
	}
	return answer.Payload{}, nil
}

func (p *mockProvider) SearchStream(ctx context.Context, query string, opts models.QueryOptions) (models.ResponseStream, error) {
	p.LastQuery = query
	p.LastOpts = opts
	if p.SearchStreamFunc != nil {
		return p.SearchStreamFunc(ctx, query, opts)
	}
	return &mockStream{}, nil
}

func (p *mockProvider) SetModel(model string) error {
	p.model = model
	return nil
}

func (p *mockProvider) GetModel() string {
	if p.model == "" {
		return "gemini-2.0-flash"
	}
	return p.model
}

// mockStream yields a fixed chunk sequence then an optional error or io.EOF.
type mockStream struct {
	Chunks []*models.StreamChunk
	Err    error
	closed bool
}

func (s *mockStream) Next() (*models.StreamChunk, error) {
	if len(s.Chunks) == 0 {
		if s.Err != nil {
			err := s.Err
			s.Err = nil
			return nil, err
		}
		return nil, io.EOF
	}
	next := s.Chunks[0]
	s.Chunks = s.Chunks[1:]
	return next, nil
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}
