package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
	Styles Styles
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
