package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/passvault/internal/client/session"
)

var (
	primary  = lipgloss.Color("#5FAFFF")
	accent   = lipgloss.Color("#FFD75F")
	success  = lipgloss.Color("#5FD75F")
	errorCol = lipgloss.Color("#FF5F5F")
	muted    = lipgloss.Color("#808080")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1)

	textStyle     = lipgloss.NewStyle()
	labelStyle    = lipgloss.NewStyle().Foreground(muted).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(primary).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
	secretStyle   = lipgloss.NewStyle().Foreground(accent)
	errorStyle    = lipgloss.NewStyle().Foreground(errorCol)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	infoNoticeStyle  = lipgloss.NewStyle().Foreground(success).MarginTop(1)
	errorNoticeStyle = lipgloss.NewStyle().Foreground(errorCol).Bold(true).MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1).
			Faint(true)

	containerStyle = lipgloss.NewStyle().Padding(1, 2)
)

func lineStyle(k session.LineKind) lipgloss.Style {
	switch k {
	case session.LineLabel:
		return labelStyle
	case session.LineSelected:
		return selectedStyle
	case session.LineHeader:
		return headerStyle
	case session.LineMuted:
		return mutedStyle
	case session.LineSecret:
		return secretStyle
	case session.LineError:
		return errorStyle
	}
	return textStyle
}

func noticeStyle(k session.NoticeKind) lipgloss.Style {
	if k == session.NoticeError {
		return errorNoticeStyle
	}
	return infoNoticeStyle
}
