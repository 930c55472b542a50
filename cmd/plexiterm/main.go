// Package main wires the terminal AI search assistant together: the Bubble
// Tea UI on the main goroutine and the session loop on a second one, talking
// through the UserInterface channels.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"google.golang.org/genai"

	"plexiterm/internal/boundary"
	"plexiterm/internal/config"
	"plexiterm/internal/contextstore"
	"plexiterm/internal/fsutil"
	"plexiterm/internal/gitutil"
	"plexiterm/internal/navigator"
	"plexiterm/internal/paste"
	"plexiterm/internal/provider/gemini"
	provider "plexiterm/internal/provider/models"
	"plexiterm/internal/query"
	"plexiterm/internal/session"
	"plexiterm/internal/shellexec"
	"plexiterm/internal/ui"
	uiservices "plexiterm/internal/ui/services"
)

func createRealUI() *ui.UI {
	channels := ui.NewUIChannels()
	renderer := uiservices.GlamourRenderer{}
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory)
}

func createProvider(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return gemini.New(gemini.NewRealGeminiClient(genaiClient), cfg.Query.Model), nil
}

// createSession builds the session and every collaborator it needs. The
// boundary is the user's home directory; navigation starts wherever the
// program was launched, falling back to the boundary root.
func createSession(ctx context.Context, cfg *config.Config, userInterface ui.UserInterface) (*session.Session, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	bound, err := boundary.New(home)
	if err != nil {
		return nil, fmt.Errorf("failed to establish boundary: %w", err)
	}

	startDir, err := os.Getwd()
	if err != nil {
		startDir = bound.Root()
	}

	fs := fsutil.NewOSFileSystem()
	detector := fsutil.NewSystemBinaryDetector(cfg.Context.BinaryDetectionSampleSize)
	ignore := gitutil.NewIgnoreMatcher(bound.Root(), fs)

	store := contextstore.New(bound, fs, detector, cfg.Context.MaxFileSize, cfg.Context.BinaryDetectionSampleSize)
	nav := navigator.New(bound, fs, ignore, cfg.Tree.MaxDepth, startDir)
	composer := query.NewComposer(fs)
	exec := shellexec.New(os.Getenv("SHELL"), time.Duration(cfg.Shell.TimeoutSeconds)*time.Second, int(cfg.Shell.MaxOutputSize))
	classifier := paste.NewClassifier(cfg.Paste.LineThreshold, cfg.Paste.CharThreshold)

	providerClient, err := createProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return session.New(cfg, userInterface, store, nav, composer, providerClient, exec, classifier), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	userInterface := createRealUI()

	sessionCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready()

		userInterface.WriteStatus("thinking", "Initializing...")
		sess, err := createSession(sessionCtx, cfg, userInterface)
		if err != nil {
			userInterface.WriteStatus("error", "Initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // degraded mode: UI stays up so the user can read the error
		}
		userInterface.WriteStatus("", "")

		if err := sess.Run(sessionCtx); err != nil && sessionCtx.Err() == nil {
			userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
		}
		userInterface.Quit()
	}()

	// UI runs on the main goroutine and blocks until exit.
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	cancel()
	wg.Wait()
}
