package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultModels maps each provider to a sensible starting model.
var defaultModels = map[string]string{
	"gemini":     "gemini-2.0-flash-lite",
	"openai":     "gpt-4o-mini",
	"openrouter": "openai/gpt-4o-mini",
	"ollama":     "llama3.2",
}

// ModelStep collects the model name, pre-filled with the provider default.
type ModelStep struct {
	input    textinput.Model
	provider string
	fallback string
}

func NewModelStep() Step {
	return &ModelStep{}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) initProvider(state *InstallState) bool {
	s.provider = state.EnvVars["JOT_MODEL_PROVIDER"]
	if s.provider == "" {
		return false
	}
	s.fallback = defaultModels[s.provider]

	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 255
	s.input.Width = 40
	s.input.Placeholder = s.fallback
	return true
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.provider == "" {
		if !s.initProvider(state) {
			return nil, nil
		}
		return s, textinput.Blink
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			model := s.input.Value()
			if model == "" {
				model = s.fallback
			}
			state.EnvVars["JOT_MODEL"] = model
			return nil, nil
		}
	}
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.provider == "" {
		if !s.initProvider(state) {
			return "Loading...\n"
		}
	}

	return fmt.Sprintf("Enter the model to use (Enter for %s):\n\n%s\n\n(press enter to confirm)\n",
		s.fallback, s.input.View())
}
