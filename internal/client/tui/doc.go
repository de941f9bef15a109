// Package tui is the terminal front end of passvault. It translates key
// presses into session events, feeds them to session.Machine and renders the
// resulting view with lipgloss.
package tui
