package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/app/screens"
	"github.com/avasyliev/booktrack/pkg/services"
	"github.com/avasyliev/booktrack/pkg/session"
)

type App struct {
	controller *services.Controller
	client     *api.Client
	session    session.Store
}

func NewApp(controller *services.Controller, client *api.Client, sess session.Store) *App {
	return &App{controller: controller, client: client, session: sess}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller, a.client, a.session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
