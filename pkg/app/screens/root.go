package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/auth"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/services"
	"github.com/avasyliev/booktrack/pkg/session"
)

type screenType int

const (
	authView screenType = iota
	libraryView
	searchView
	detailsView
)

// SwitchScreenMsg asks the root to route to another screen. Data carries
// screen-specific payload, e.g. the book for the details view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type sessionRestoredMsg struct {
	profile *data.UserProfile
}

// RootScreen bootstraps the session and routes between the unauthenticated
// entry and the main views.
type RootScreen struct {
	controller *services.Controller
	client     *api.Client

	currentView screenType
	restoring   bool
	authScreen  *AuthScreen
	library     *LibraryScreen
	search      *SearchScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(controller *services.Controller, client *api.Client, sess session.Store) *RootScreen {
	loginFlow := auth.NewLoginFlow(client, sess)
	registerFlow := auth.NewRegisterFlow(client, loginFlow)
	resetFlow := auth.NewResetRequestFlow(client)

	return &RootScreen{
		controller:  controller,
		client:      client,
		currentView: authView,
		restoring:   true,
		authScreen:  NewAuthScreen(loginFlow, registerFlow, resetFlow),
		library:     NewLibraryScreen(controller),
		search:      NewSearchScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.restoreSession
}

// restoreSession implements the bootstrap contract: stored token -> profile
// fetch; any failure lands on the unauthenticated entry with the credential
// already cleared.
func (r *RootScreen) restoreSession() tea.Msg {
	profile, err := r.controller.RestoreSession(context.Background())
	if err != nil {
		return sessionRestoredMsg{}
	}
	return sessionRestoredMsg{profile: profile}
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "tab":
			// Cycle library <-> search; details and auth keep the key.
			switch r.currentView {
			case libraryView:
				r.currentView = searchView
				return r, r.search.Init()
			case searchView:
				r.currentView = libraryView
				return r, r.library.Init()
			}
		case "ctrl+l":
			if r.currentView != authView {
				return r, r.logout
			}
		}

	case sessionRestoredMsg:
		r.restoring = false
		if msg.profile != nil {
			r.currentView = libraryView
			return r, r.library.Init()
		}
		r.currentView = authView
		return r, r.authScreen.Init()

	case authDoneMsg:
		if msg.err == nil {
			r.controller.SetProfile(msg.profile)
			r.currentView = libraryView
			return r, r.library.Init()
		}

	case loggedOutMsg:
		r.currentView = authView
		r.authScreen.Reset()
		return r, r.authScreen.Init()

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			r.currentView = libraryView
			cmd = r.library.Init()
		case "search":
			r.currentView = searchView
			cmd = r.search.Init()
		case "details":
			if book, ok := msg.Data.(data.Book); ok {
				r.details = NewDetailsScreen(r.controller, r.client, book)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case authView:
		newModel, newCmd := r.authScreen.Update(msg)
		r.authScreen = newModel.(*AuthScreen)
		return r, newCmd
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

type loggedOutMsg struct{}

func (r *RootScreen) logout() tea.Msg {
	_ = r.controller.Logout()
	return loggedOutMsg{}
}

func (r *RootScreen) View() string {
	if r.restoring {
		return styles.MutedStyle.Render("Restoring session...")
	}

	var content string
	switch r.currentView {
	case authView:
		return r.authScreen.View()
	case libraryView:
		content = r.library.View()
	case searchView:
		content = r.search.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", r.renderHeader(), content)
}

func (r *RootScreen) renderHeader() string {
	if r.currentView == detailsView {
		return styles.TitleStyle.Render("📖 Book")
	}

	libraryTab := "Library"
	searchTab := "Search"
	if r.currentView == libraryView {
		libraryTab = styles.ActiveTabStyle.Render(libraryTab)
		searchTab = styles.InactiveTabStyle.Render(searchTab)
	} else {
		libraryTab = styles.InactiveTabStyle.Render(libraryTab)
		searchTab = styles.ActiveTabStyle.Render(searchTab)
	}

	user := ""
	if profile := r.controller.Profile(); profile != nil {
		user = styles.MutedStyle.Render(profile.DisplayName())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, libraryTab, searchTab, "  ", user)
}
