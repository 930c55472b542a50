// Package session owns the interactive loop: it reads input through the UI,
// classifies it, and dispatches to the filesystem navigator, the context
// store, the shell executor, or the AI query flow. Every failure is rendered
// back to the user here; the loop only ends on exit or interrupt.
package session

import (
	"context"
	"errors"
	"strings"

	"plexiterm/internal/config"
	"plexiterm/internal/contextstore"
	"plexiterm/internal/navigator"
	"plexiterm/internal/paste"
	"plexiterm/internal/provider/models"
	"plexiterm/internal/query"
	"plexiterm/internal/shellexec"
	"plexiterm/internal/ui"
)

// ErrExit signals that the user asked to end the session.
var ErrExit = errors.New("session ended")

// Paste menu options, in popup order. Cancelling the popup selects the last
// option, so Discard goes last.
const (
	pasteAddToContext = iota
	pasteSendAsQuestion
	pasteDiscard
)

var pasteOptions = []string{"Add to context", "Send as question", "Discard"}

// Session dispatches user input to the command handlers and the query flow.
type Session struct {
	cfg        *config.Config
	ui         ui.UserInterface
	store      *contextstore.Store
	nav        *navigator.Navigator
	composer   *query.Composer
	provider   models.Provider
	exec       *shellexec.Executor
	classifier *paste.Classifier
}

// New creates a Session with all collaborators injected.
func New(
	cfg *config.Config,
	userInterface ui.UserInterface,
	store *contextstore.Store,
	nav *navigator.Navigator,
	composer *query.Composer,
	provider models.Provider,
	exec *shellexec.Executor,
	classifier *paste.Classifier,
) *Session {
	return &Session{
		cfg:        cfg,
		ui:         userInterface,
		store:      store,
		nav:        nav,
		composer:   composer,
		provider:   provider,
		exec:       exec,
		classifier: classifier,
	}
}

// Run executes the main input loop until the user exits or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.ui.SetModel(s.provider.GetModel())

	for {
		input, err := s.ui.ReadInput(ctx, s.nav.RelPath())
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := s.Handle(ctx, input); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

// Handle dispatches a single input submission. It returns ErrExit when the
// user asked to quit and the context error when ctx was cancelled mid-flight;
// every other failure is rendered to the UI and swallowed so the loop
// survives it.
func (s *Session) Handle(ctx context.Context, input string) error {
	// Bracketed paste delivers multi-line text as one submission. Intercept
	// it before command parsing; a paste is never a command.
	if isPaste, stats := s.classifier.Classify(input); isPaste {
		return s.handlePaste(ctx, input, stats)
	}

	trimmed := strings.TrimSpace(input)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return nil
	}
	cmd := fields[0]
	args := fields[1:]

	switch {
	case cmd == "exit":
		return ErrExit

	case cmd == "ls" || cmd == "cd" || cmd == "pwd" || cmd == "cat" || cmd == "tree":
		s.handleFSCommand(cmd, args)
		return nil

	case strings.HasPrefix(cmd, "@"):
		s.handleContextCommand(cmd, args)
		return nil

	case strings.HasPrefix(trimmed, "!"):
		return s.handleShell(ctx, strings.TrimSpace(trimmed[1:]))

	default:
		return s.handleQuery(ctx, trimmed)
	}
}

// handlePaste shows the paste preview and action menu, then routes the
// pasted text according to the user's choice.
func (s *Session) handlePaste(ctx context.Context, text string, stats paste.Stats) error {
	prompt := pastePrompt(stats, paste.Preview(text, s.cfg.Paste.PreviewLines))

	choice, err := s.ui.ReadChoice(ctx, prompt, pasteOptions)
	if err != nil {
		return err
	}

	switch choice {
	case pasteAddToContext:
		entry := s.store.AddPaste(text)
		s.ui.WriteMessage(addedPasteMessage(entry))
	case pasteSendAsQuestion:
		return s.handleQuery(ctx, text)
	case pasteDiscard:
		s.ui.WriteMessage("Paste discarded.")
	}
	return nil
}
