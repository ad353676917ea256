package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const listHeight = 16
const defaultWidth = 32

var (
	appStyle          = lipgloss.NewStyle()
	titleStyle        = lipgloss.NewStyle().MarginTop(1)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingBottom(1)

	summaryTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginTop(1)
	summaryHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	summaryItemStyle    = lipgloss.NewStyle().PaddingLeft(2)
	summaryOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	summaryWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
