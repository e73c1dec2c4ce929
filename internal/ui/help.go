package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"autosearch/internal/config"
	"autosearch/internal/ui/input/types"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys   types.KeyMap
	filter string
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap, filter string) *HelpRenderer {
	return &HelpRenderer{keys: keys, filter: filter}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("People Search Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	r.writeBinding(&help, "type", "Filter the people list")
	r.writeKey(&help, r.keys.Down, "Move into the results")
	r.writeKey(&help, r.keys.Commit, "Reopen the results for the current text")
	r.writeKey(&help, r.keys.Escape, "Close the results")
	r.writeKey(&help, r.keys.Blur, "Leave the search box")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	r.writeBinding(&help, "↑/↓", "Move the highlight")
	r.writeKey(&help, r.keys.Commit, "Choose the highlighted person")
	r.writeKey(&help, r.keys.Escape, "Close and go back to the search box")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	r.writeBinding(&help, "tab, /", "Focus the search box again")
	r.writeKey(&help, r.keys.Help, "Show this help")
	r.writeBinding(&help, r.keys.Quit.Help().Key+", q", "Quit (q only outside the search box)")
	help.WriteString("\n")

	switch r.filter {
	case config.FilterFuzzy:
		help.WriteString(noteStyle.Render("  Fuzzy matching: letters must appear in order, e.g. \"gg\" finds George"))
	default:
		help.WriteString(noteStyle.Render("  Matches name or occupation ignoring case, or birth date as M/D/YYYY"))
	}
	help.WriteString("\n")

	return help.String()
}

func (r *HelpRenderer) writeKey(b *strings.Builder, binding key.Binding, desc string) {
	r.writeBinding(b, binding.Help().Key, desc)
}

func (r *HelpRenderer) writeBinding(b *strings.Builder, keys, desc string) {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fmt.Fprintf(b, "  %s  %s\n", keyStyle.Width(12).Render(keys), descStyle.Render(desc))
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
