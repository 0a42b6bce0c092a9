package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/services"
)

// SearchScreen looks books up in the external catalog and adds picks to the
// library on the want-to-read shelf.
type SearchScreen struct {
	controller *services.Controller

	input     textinput.Model
	fieldIdx  int
	results   []data.SearchResult
	selected  int
	searching bool
	adding    bool
	info      string

	width  int
	height int
	err    error
}

func NewSearchScreen(controller *services.Controller) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search books..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		controller: controller,
		input:      ti,
		results:    []data.SearchResult{},
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

type searchResultMsg struct {
	results []data.SearchResult
	err     error
}

type bookAddedMsg struct {
	book data.Book
	err  error
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.searching || s.adding {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					s.info = ""
					return s, s.performSearch(query)
				}
			} else if len(s.results) > 0 {
				result := s.results[s.selected]
				s.adding = true
				return s, s.addBook(result)
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "ctrl+f":
			s.fieldIdx = (s.fieldIdx + 1) % len(api.SearchFields)

		case "up", "k":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected--
				if s.selected < 0 {
					s.selected = len(s.results) - 1
				}
			}

		case "down", "j":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected++
				if s.selected >= len(s.results) {
					s.selected = 0
				}
			}
		}

	case searchResultMsg:
		s.searching = false
		s.results = msg.results
		s.selected = 0
		s.err = msg.err
		if len(s.results) > 0 {
			s.input.Blur()
		}

	case bookAddedMsg:
		s.adding = false
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.err = nil
			s.info = fmt.Sprintf("Added %q to your library", msg.book.Title)
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) performSearch(query string) tea.Cmd {
	field := api.SearchFields[s.fieldIdx]
	return func() tea.Msg {
		results, err := s.controller.Search(context.Background(), query, field)
		return searchResultMsg{results: results, err: err}
	}
}

func (s *SearchScreen) addBook(result data.SearchResult) tea.Cmd {
	return func() tea.Msg {
		book, err := s.controller.AddFromSearch(context.Background(), result)
		return bookAddedMsg{book: book, err: err}
	}
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Find books")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	fieldBadge := styles.SubtitleStyle.Render(fmt.Sprintf("field: %s", api.SearchFields[s.fieldIdx]))
	inputView := lipgloss.JoinHorizontal(lipgloss.Center, inputStyle.Render(s.input.View()), " ", fieldBadge)

	var statusMsg string
	if s.err != nil {
		statusMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.info != "" {
		statusMsg = styles.StatusRead.Render(s.info) + "\n\n"
	}

	var resultsView string
	switch {
	case s.searching:
		resultsView = styles.MutedStyle.Render("Searching...")
	case s.adding:
		resultsView = styles.MutedStyle.Render("Adding to library...")
	case len(s.results) > 0:
		resultsView = s.renderResults()
	case s.input.Value() != "":
		resultsView = styles.MutedStyle.Render("No results found")
	}

	help := styles.HelpStyle.Render(
		"enter: search/add • ctrl+f: search field • esc: switch focus • ↑/↓: navigate • tab: library • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s", header, inputView, statusMsg, resultsView, help)
}

func (s *SearchScreen) renderResults() string {
	var result string
	result += styles.SubtitleStyle.Render(fmt.Sprintf("Found %d results:", len(s.results)))
	result += "\n\n"

	for i, item := range s.results {
		cardStyle := styles.CardStyle
		if i == s.selected && !s.input.Focused() {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(item.Title)
		author := styles.SubtitleStyle.Render(item.Author)

		desc := item.Description
		if len(desc) > 120 {
			desc = desc[:117] + "..."
		}
		description := styles.TextStyle.Render(desc)

		var meta []string
		if item.Genre != "" {
			meta = append(meta, item.Genre)
		}
		if item.Year != 0 {
			meta = append(meta, fmt.Sprintf("%d", item.Year))
		}
		if item.Pages != 0 {
			meta = append(meta, fmt.Sprintf("%d pages", item.Pages))
		}
		metaLine := styles.MutedStyle.Render(strings.Join(meta, " · "))

		cardContent := lipgloss.JoinVertical(lipgloss.Left, title, author, description, metaLine)
		card := cardStyle.Width(s.width - 6).Render(cardContent)
		result += card + "\n"
	}

	return result
}
