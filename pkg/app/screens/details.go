package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/app/components"
	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/services"
)

type detailsEditorMode int

const (
	editorNone detailsEditorMode = iota
	editorNote
	editorQuote
	editorSession
)

// DetailsScreen shows one book with its notes and quotes, and lets the user
// add notes, quotes and reading sessions.
type DetailsScreen struct {
	controller *services.Controller
	client     *api.Client
	book       data.Book

	notes  []data.Note
	quotes []data.Quote

	editorMode detailsEditorMode
	editor     textarea.Model
	minutes    textinput.Model

	width  int
	height int
	err    error
	info   string
}

func NewDetailsScreen(controller *services.Controller, client *api.Client, book data.Book) *DetailsScreen {
	ta := textarea.New()
	ta.SetWidth(60)
	ta.SetHeight(4)

	ti := textinput.New()
	ti.Placeholder = "Minutes"
	ti.CharLimit = 4
	ti.Width = 10

	return &DetailsScreen{
		controller: controller,
		client:     client,
		book:       book,
		editor:     ta,
		minutes:    ti,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadEntries
}

type entriesLoadedMsg struct {
	notes  []data.Note
	quotes []data.Quote
	err    error
}

type entryAddedMsg struct {
	kind string
	err  error
}

// loadEntries pulls all notes and quotes and keeps the ones for this book.
func (s *DetailsScreen) loadEntries() tea.Msg {
	ctx := context.Background()
	notes, err := s.client.Notes(ctx)
	if err != nil {
		return entriesLoadedMsg{err: err}
	}
	quotes, err := s.client.Quotes(ctx)
	if err != nil {
		return entriesLoadedMsg{err: err}
	}

	var mine []data.Note
	for _, n := range notes {
		if n.Book == s.book.ID {
			mine = append(mine, n)
		}
	}
	var myQuotes []data.Quote
	for _, q := range quotes {
		if q.Book == s.book.ID {
			myQuotes = append(myQuotes, q)
		}
	}
	return entriesLoadedMsg{notes: mine, quotes: myQuotes}
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.editorMode != editorNone {
			return s.updateEditor(msg)
		}
		switch msg.String() {
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library", Data: nil}
			}
		case "n":
			return s.openEditor(editorNote, "New note...")
		case "c":
			return s.openEditor(editorQuote, "New quote...")
		case "s":
			s.editorMode = editorSession
			s.minutes.SetValue("")
			s.minutes.Focus()
			return s, textinput.Blink
		case "r":
			return s, s.loadEntries
		}

	case entriesLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notes = msg.notes
			s.quotes = msg.quotes
		}

	case entryAddedMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.err = nil
		s.info = fmt.Sprintf("%s saved", msg.kind)
		return s, s.loadEntries
	}

	return s, nil
}

func (s *DetailsScreen) openEditor(mode detailsEditorMode, placeholder string) (tea.Model, tea.Cmd) {
	s.editorMode = mode
	s.editor.Placeholder = placeholder
	s.editor.SetValue("")
	s.editor.Focus()
	return s, textarea.Blink
}

func (s *DetailsScreen) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editorMode = editorNone
		s.editor.Blur()
		s.minutes.Blur()
		return s, nil
	case "ctrl+s", "enter":
		if s.editorMode == editorSession {
			value := s.minutes.Value()
			s.editorMode = editorNone
			s.minutes.Blur()
			return s, s.recordSession(value)
		}
		if msg.String() == "enter" {
			break // multi-line content, enter inserts a newline
		}
		content := s.editor.Value()
		mode := s.editorMode
		s.editorMode = editorNone
		s.editor.Blur()
		return s, s.addEntry(mode, content)
	}

	var cmd tea.Cmd
	if s.editorMode == editorSession {
		s.minutes, cmd = s.minutes.Update(msg)
	} else {
		s.editor, cmd = s.editor.Update(msg)
	}
	return s, cmd
}

func (s *DetailsScreen) addEntry(mode detailsEditorMode, content string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		kind := "Note"
		if mode == editorQuote {
			kind = "Quote"
			_, err = s.client.AddQuote(ctx, data.Quote{Book: s.book.ID, Content: content})
		} else {
			_, err = s.client.AddNote(ctx, data.Note{Book: s.book.ID, Content: content})
		}
		return entryAddedMsg{kind: kind, err: err}
	}
}

func (s *DetailsScreen) recordSession(value string) tea.Cmd {
	return func() tea.Msg {
		minutes, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || minutes <= 0 {
			return entryAddedMsg{kind: "Session", err: fmt.Errorf("duration must be a positive number of minutes")}
		}
		_, err = s.controller.RecordSession(context.Background(), s.book.ID, minutes, "")
		return entryAddedMsg{kind: "Session", err: err}
	}
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	title := styles.TitleStyle.Render(s.book.Title)
	author := styles.SubtitleStyle.Render(s.book.Author)

	var meta []string
	if s.book.Genre != "" {
		meta = append(meta, s.book.Genre)
	}
	if s.book.Year != 0 {
		meta = append(meta, fmt.Sprintf("%d", s.book.Year))
	}
	metaLine := styles.MutedStyle.Render(strings.Join(meta, " · "))

	status := styles.StatusStyle(s.book.Status).Render(s.book.Status)
	if s.book.Status == data.StatusReading && s.book.TotalPages > 0 {
		bar := components.ProgressBar(s.book.CurrentPage, s.book.TotalPages, 30)
		status += fmt.Sprintf("  %s %d/%d pages", bar, s.book.CurrentPage, s.book.TotalPages)
	}

	var parts []string
	parts = append(parts, title, author, metaLine, status)
	if stars := components.Stars(s.book.Rating); stars != "" {
		parts = append(parts, styles.RatingStyle.Render(stars))
	}
	if s.book.Description != "" {
		parts = append(parts, "", styles.TextStyle.Render(s.book.Description))
	}
	if s.book.Note != "" {
		parts = append(parts, "", styles.SubtitleStyle.Render("Note"), styles.TextStyle.Render(s.book.Note))
	}

	if len(s.notes) > 0 {
		parts = append(parts, "", styles.SubtitleStyle.Render(fmt.Sprintf("Notes (%d)", len(s.notes))))
		for _, n := range s.notes {
			parts = append(parts, styles.TextStyle.Render("• "+n.Content))
		}
	}
	if len(s.quotes) > 0 {
		parts = append(parts, "", styles.SubtitleStyle.Render(fmt.Sprintf("Quotes (%d)", len(s.quotes))))
		for _, q := range s.quotes {
			parts = append(parts, styles.TextStyle.Render("❝ "+q.Content+" ❞"))
		}
	}

	var statusLine string
	if s.err != nil {
		statusLine = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.info != "" {
		statusLine = styles.StatusRead.Render(s.info)
	}

	body := strings.Join(parts, "\n")

	if s.editorMode == editorSession {
		prompt := styles.TextStyle.Render("Reading session duration: ") + styles.FocusedInputStyle.Render(s.minutes.View())
		editHelp := styles.HelpStyle.Render("enter: save • esc: cancel")
		return fmt.Sprintf("%s\n\n%s\n%s", body, prompt, editHelp)
	}
	if s.editorMode != editorNone {
		editHelp := styles.HelpStyle.Render("ctrl+s: save • esc: cancel")
		return fmt.Sprintf("%s\n\n%s\n%s", body, s.editor.View(), editHelp)
	}

	help := styles.HelpStyle.Render(
		"n: add note • c: add quote • s: record session • r: refresh • esc: back • ctrl+c: quit",
	)
	return fmt.Sprintf("%s\n\n%s\n%s", body, statusLine, help)
}
