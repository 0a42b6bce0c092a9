package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasyliev/booktrack/pkg/app/components"
	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/library"
	"github.com/avasyliev/booktrack/pkg/services"
)

// LibraryScreen shows the collection behind the seven category tabs and
// hosts the inline note editor.
type LibraryScreen struct {
	controller *services.Controller

	books    []data.Book
	tabs     *components.CategoryTabs
	bookList *components.BookList

	editing    bool
	editorFor  int // book id under edit
	editor     textarea.Model
	savingNote bool

	width  int
	height int
	err    error
}

func NewLibraryScreen(controller *services.Controller) *LibraryScreen {
	ta := textarea.New()
	ta.Placeholder = "Your note..."
	ta.SetWidth(60)
	ta.SetHeight(4)

	return &LibraryScreen{
		controller: controller,
		tabs:       components.NewCategoryTabs(),
		bookList:   components.NewBookList(),
		editor:     ta,
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

type libraryLoadedMsg struct {
	books []data.Book
	err   error
}

type noteSavedMsg struct {
	bookID   int
	note     string
	previous []data.Book
	err      error
}

func (s *LibraryScreen) loadLibrary() tea.Msg {
	books, err := s.controller.RefreshLibrary(context.Background())
	return libraryLoadedMsg{books: books, err: err}
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.bookList.Width = msg.Width - 4
		s.bookList.Height = msg.Height - 12

	case tea.KeyMsg:
		if s.editing {
			return s.updateEditor(msg)
		}
		switch msg.String() {
		case "up", "k":
			s.bookList.Prev()
		case "down", "j":
			s.bookList.Next()
		case "left", "h":
			s.tabs.Prev()
			s.applyCategory()
		case "right", "l":
			s.tabs.Next()
			s.applyCategory()
		case "r":
			return s, s.loadLibrary
		case "e":
			if selected := s.bookList.Selected(); selected != nil {
				s.editing = true
				s.editorFor = selected.ID
				s.editor.SetValue(selected.Note)
				s.editor.Focus()
				return s, textarea.Blink
			}
		case "enter":
			if selected := s.bookList.Selected(); selected != nil {
				book := *selected
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: book}
				}
			}
		}

	case libraryLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.books = msg.books
			s.tabs.SetCounts(library.CountsByCategory(s.books))
			s.applyCategory()
		}

	case noteSavedMsg:
		s.savingNote = false
		if msg.err != nil {
			// The remote commit failed: put the previous collection back.
			s.books = msg.previous
			s.err = msg.err
		} else {
			s.err = nil
		}
		s.tabs.SetCounts(library.CountsByCategory(s.books))
		s.applyCategory()
	}

	return s, nil
}

func (s *LibraryScreen) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		s.editor.Blur()
		return s, nil
	case "ctrl+s":
		s.editing = false
		s.editor.Blur()
		return s, s.saveNote(s.editorFor, s.editor.Value())
	}
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	return s, cmd
}

// saveNote applies the change locally first, then commits it remotely. The
// pre-change collection rides along in the message so a failed commit can
// revert the optimistic copy.
func (s *LibraryScreen) saveNote(bookID int, note string) tea.Cmd {
	previous := s.books
	s.books = library.ApplyNoteUpdate(s.books, bookID, note)
	s.applyCategory()
	s.savingNote = true

	return func() tea.Msg {
		err := s.controller.SaveNote(context.Background(), bookID, note)
		return noteSavedMsg{bookID: bookID, note: note, previous: previous, err: err}
	}
}

func (s *LibraryScreen) applyCategory() {
	s.bookList.SetItems(library.FilterByCategory(s.books, s.tabs.Active()))
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 My books")
	tabBar := s.tabs.View()

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	if s.editing {
		editHelp := styles.HelpStyle.Render("ctrl+s: save • esc: cancel")
		return fmt.Sprintf("%s\n%s\n\n%s%s\n%s", header, tabBar, errorMsg, s.editor.View(), editHelp)
	}

	var body string
	if s.tabs.Active() == library.CategoryByGenre {
		body = s.renderGenreShelves()
	} else {
		body = s.bookList.View()
	}

	status := ""
	if s.savingNote {
		status = styles.MutedStyle.Render("Saving note...")
	}

	help := styles.HelpStyle.Render(
		"↑/↓: select • ←/→: category • enter: details • e: edit note • r: refresh • tab: search • ctrl+l: logout • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s\n%s", header, tabBar, errorMsg, body, status, help)
}

func (s *LibraryScreen) renderGenreShelves() string {
	groups := library.GroupByGenre(s.books)
	if len(groups) == 0 {
		return styles.MutedStyle.Render("No genres yet")
	}

	var out string
	for _, group := range groups {
		out += styles.SubtitleStyle.Render(fmt.Sprintf("%s (%d)", group.Genre, len(group.Books))) + "\n"
		for _, book := range group.Books {
			line := fmt.Sprintf("  %s — %s", book.Title, book.Author)
			if stars := components.Stars(book.Rating); stars != "" {
				line += " " + styles.RatingStyle.Render(stars)
			}
			out += styles.TextStyle.Render(line) + "\n"
		}
		out += "\n"
	}
	return out
}
