package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/auth"
	"github.com/avasyliev/booktrack/pkg/data"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
	modeReset
)

type authDoneMsg struct {
	profile data.UserProfile
	token   string
	err     error
}

type resetSentMsg struct {
	err error
}

// AuthScreen is the unauthenticated entry: login, registration and
// reset-request forms behind three tabs.
type AuthScreen struct {
	loginFlow    *auth.LoginFlow
	registerFlow *auth.RegisterFlow
	resetFlow    *auth.ResetRequestFlow

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	infoMsg    string

	width  int
	height int
}

func NewAuthScreen(login *auth.LoginFlow, register *auth.RegisterFlow, reset *auth.ResetRequestFlow) *AuthScreen {
	s := &AuthScreen{
		loginFlow:    login,
		registerFlow: register,
		resetFlow:    reset,
	}
	s.setMode(modeLogin)
	return s
}

func (s *AuthScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Reset returns the screen to a clean login form, used after logout.
func (s *AuthScreen) Reset() {
	s.errMsg = ""
	s.infoMsg = ""
	s.submitting = false
	s.setMode(modeLogin)
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (s *AuthScreen) setMode(mode authMode) {
	s.mode = mode
	s.focus = 0
	switch mode {
	case modeRegister:
		s.inputs = []textinput.Model{
			newInput("Name", false),
			newInput("Email", false),
			newInput("Password", true),
			newInput("Confirm password", true),
		}
	case modeReset:
		s.inputs = []textinput.Model{
			newInput("Email", false),
		}
	default:
		s.inputs = []textinput.Model{
			newInput("Email", false),
			newInput("Password", true),
		}
	}
	s.inputs[0].Focus()
}

func (s *AuthScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.submitting {
			// Re-entry is blocked while a submission is in flight.
			return s, nil
		}
		switch msg.String() {
		case "esc":
			s.errMsg = ""
			s.infoMsg = ""
			s.setMode((s.mode + 1) % 3)
			return s, textinput.Blink
		case "tab", "down":
			s.moveFocus(1)
			return s, textinput.Blink
		case "shift+tab", "up":
			s.moveFocus(-1)
			return s, textinput.Blink
		case "enter":
			if s.focus < len(s.inputs)-1 {
				s.moveFocus(1)
				return s, textinput.Blink
			}
			return s, s.submit()
		}

	case authDoneMsg:
		s.submitting = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		// Root handles the switch to the library.
		return s, nil

	case resetSentMsg:
		s.submitting = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.errMsg = ""
			s.infoMsg = "If the address exists, reset instructions were sent. Check your inbox."
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AuthScreen) moveFocus(delta int) {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *AuthScreen) submit() tea.Cmd {
	s.errMsg = ""
	s.infoMsg = ""
	s.submitting = true

	switch s.mode {
	case modeRegister:
		form := auth.RegisterForm{
			Name:            s.inputs[0].Value(),
			Email:           s.inputs[1].Value(),
			Password:        s.inputs[2].Value(),
			ConfirmPassword: s.inputs[3].Value(),
		}
		return func() tea.Msg {
			profile, token, err := s.registerFlow.Submit(context.Background(), form)
			return authDoneMsg{profile: profile, token: token, err: err}
		}
	case modeReset:
		email := s.inputs[0].Value()
		return func() tea.Msg {
			return resetSentMsg{err: s.resetFlow.Submit(context.Background(), email)}
		}
	default:
		email := s.inputs[0].Value()
		password := s.inputs[1].Value()
		return func() tea.Msg {
			profile, token, err := s.loginFlow.Submit(context.Background(), email, password)
			return authDoneMsg{profile: profile, token: token, err: err}
		}
	}
}

var authTitles = map[authMode]string{
	modeLogin:    "Sign in",
	modeRegister: "Create account",
	modeReset:    "Reset password",
}

func (s *AuthScreen) View() string {
	header := styles.TitleStyle.Render("📚 booktrack")

	var tabs []string
	for mode := modeLogin; mode <= modeReset; mode++ {
		label := authTitles[mode]
		if mode == s.mode {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var fields []string
	for i := range s.inputs {
		style := styles.InputStyle
		if i == s.focus {
			style = styles.FocusedInputStyle
		}
		fields = append(fields, style.Render(s.inputs[i].View()))
	}
	form := lipgloss.JoinVertical(lipgloss.Left, fields...)

	var statusLine string
	switch {
	case s.submitting:
		statusLine = styles.MutedStyle.Render("Submitting...")
	case s.errMsg != "":
		statusLine = styles.StatusError.Render(s.errMsg)
	case s.infoMsg != "":
		statusLine = styles.StatusRead.Render(s.infoMsg)
	}

	help := styles.HelpStyle.Render(
		"enter: next/submit • tab: next field • esc: switch form • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, tabBar, form, statusLine, help)
}
