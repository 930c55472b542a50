package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"plexiterm/internal/ui/models"
	"plexiterm/internal/ui/services"
	"plexiterm/internal/ui/views"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer services.MarkdownRenderer

	// Channels for communication with the session loop
	inputReq     <-chan inputRequest
	inputResp    chan<- string
	choiceReq    <-chan choiceRequest
	choiceResp   chan<- int
	statusChan   <-chan statusMsg
	messageChan  <-chan chatMsg
	setModelChan <-chan string

	// Ready signal
	readyChan chan<- struct{}
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.renderer)
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	inputReq <-chan inputRequest,
	inputResp chan<- string,
	choiceReq <-chan choiceRequest,
	choiceResp chan<- int,
	statusChan <-chan statusMsg,
	messageChan <-chan chatMsg,
	setModelChan <-chan string,
	readyChan chan<- struct{},
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Ask a question or type a command..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinnerFactory()

	return BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  sp,
			Messages: []models.Message{},
		},
		renderer:     renderer,
		inputReq:     inputReq,
		inputResp:    inputResp,
		choiceReq:    choiceReq,
		choiceResp:   choiceResp,
		statusChan:   statusChan,
		messageChan:  messageChan,
		setModelChan: setModelChan,
		readyChan:    readyChan,
	}
}

// Internal messages
type tickMsg time.Time
type inputRequestMsg inputRequest
type choiceRequestMsg choiceRequest
type statusUpdateMsg statusMsg
type messageReceivedMsg chatMsg
type modelChangedMsg string

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForInputRequests(m.inputReq),
		listenForChoiceRequests(m.choiceReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForModelChanges(m.setModelChan),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case inputRequestMsg:
		m.state.CanSubmit = true
		m.state.PromptLabel = msg.prompt
		return m, listenForInputRequests(m.inputReq)

	case choiceRequestMsg:
		m.state.PendingChoice = &models.ChoiceRequest{
			Prompt:  msg.prompt,
			Options: msg.options,
		}
		m.state.ChoiceIndex = 0
		return m, listenForChoiceRequests(m.choiceReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    msg.role,
			Content: msg.content,
		})
		m.updateViewport()
		return m, listenForMessages(m.messageChan)

	case modelChangedMsg:
		m.state.CurrentModel = string(msg)
		return m, listenForModelChanges(m.setModelChan)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle choice popup navigation
	if m.state.PendingChoice != nil {
		options := m.state.PendingChoice.Options
		switch msg.String() {
		case "up", "k":
			if m.state.ChoiceIndex > 0 {
				m.state.ChoiceIndex--
			}
		case "down", "j":
			if m.state.ChoiceIndex < len(options)-1 {
				m.state.ChoiceIndex++
			}
		case "enter":
			m.choiceResp <- m.state.ChoiceIndex
			m.state.PendingChoice = nil
		case "esc":
			// Cancelling selects the last (dismissive) option.
			m.choiceResp <- len(options) - 1
			m.state.PendingChoice = nil
		}
		return m, nil
	}

	// Handle normal input
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.state.CanSubmit && m.state.Input.Value() != "" {
			input := m.state.Input.Value()

			// Echo the submission into the transcript
			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    "user",
				Content: input,
			})
			m.updateViewport()

			// Hand it to the session loop
			m.inputResp <- input
			m.state.Input.SetValue("")
			m.state.CanSubmit = false
		}
		return m, nil
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	content := views.FormatChatContent(m.state.Messages, m.state.Width-4, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForInputRequests(ch <-chan inputRequest) tea.Cmd {
	return func() tea.Msg {
		return inputRequestMsg(<-ch)
	}
}

func listenForChoiceRequests(ch <-chan choiceRequest) tea.Cmd {
	return func() tea.Msg {
		return choiceRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan chatMsg) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForModelChanges(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return modelChangedMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
