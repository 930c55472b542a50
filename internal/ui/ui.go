// Package ui implements the terminal front-end with Bubble Tea. The
// interactive loop runs on its own goroutine and talks to the UI through
// channels; the Bubble Tea program owns the terminal.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"plexiterm/internal/ui/services"
)

// UI implements the UserInterface using Bubble Tea
type UI struct {
	program *tea.Program

	// Session -> UI channels
	inputReq     chan inputRequest
	inputResp    chan string
	choiceReq    chan choiceRequest
	choiceResp   chan int
	statusChan   chan statusMsg
	messageChan  chan chatMsg
	setModelChan chan string

	// Ready signal
	readyChan chan struct{}
}

// Internal message types
type inputRequest struct {
	prompt string
}

type choiceRequest struct {
	prompt  string
	options []string
}

type statusMsg struct {
	phase   string
	message string
}

type chatMsg struct {
	role    string
	content string
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	InputReq     chan inputRequest
	InputResp    chan string
	ChoiceReq    chan choiceRequest
	ChoiceResp   chan int
	StatusChan   chan statusMsg
	MessageChan  chan chatMsg
	SetModelChan chan string
	ReadyChan    chan struct{} // Signals when UI is ready to accept requests
}

// NewUIChannels creates a new UIChannels struct with default buffers
func NewUIChannels() *UIChannels {
	return &UIChannels{
		InputReq:     make(chan inputRequest),
		InputResp:    make(chan string),
		ChoiceReq:    make(chan choiceRequest),
		ChoiceResp:   make(chan int),
		StatusChan:   make(chan statusMsg, 10),
		MessageChan:  make(chan chatMsg, 10),
		SetModelChan: make(chan string, 1),
		ReadyChan:    make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI
func NewUI(
	channels *UIChannels,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) *UI {
	ui := &UI{
		inputReq:     channels.InputReq,
		inputResp:    channels.InputResp,
		choiceReq:    channels.ChoiceReq,
		choiceResp:   channels.ChoiceResp,
		statusChan:   channels.StatusChan,
		messageChan:  channels.MessageChan,
		setModelChan: channels.SetModelChan,
		readyChan:    channels.ReadyChan,
	}

	model := newBubbleTeaModel(
		ui.inputReq,
		ui.inputResp,
		ui.choiceReq,
		ui.choiceResp,
		ui.statusChan,
		ui.messageChan,
		ui.setModelChan,
		ui.readyChan,
		renderer,
		spinnerFactory,
	)

	ui.program = tea.NewProgram(model, tea.WithAltScreen())

	return ui
}

// Start starts the UI program
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// ReadInput prompts the user for input
func (u *UI) ReadInput(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.inputReq <- inputRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.inputResp:
			return response, nil
		}
	}
}

// ReadChoice shows a choice popup and returns the selected option index
func (u *UI) ReadChoice(ctx context.Context, prompt string, options []string) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case u.choiceReq <- choiceRequest{prompt: prompt, options: options}:
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case choice := <-u.choiceResp:
			return choice, nil
		}
	}
}

// WriteStatus updates the status bar
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
		// Drop if channel is full
	}
}

// WriteMessage sends a message to the UI
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- chatMsg{role: "assistant", content: content}:
	default:
		// Drop if channel is full
	}
}

// WriteWarning sends a warning to the UI
func (u *UI) WriteWarning(content string) {
	select {
	case u.messageChan <- chatMsg{role: "warning", content: content}:
	default:
		// Drop if channel is full
	}
}

// SetModel updates the model name shown in the status bar
func (u *UI) SetModel(name string) {
	select {
	case u.setModelChan <- name:
	default:
		// Drop if channel is full
	}
}

// Ready returns a channel that is closed when the UI is ready to accept requests
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}

// Quit asks the Bubble Tea program to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}
