package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles the results popup
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// ResultsView is what the popup needs to draw one frame
type ResultsView struct {
	Rows     []string // display text, one per result
	Selected int      // -1 for none
	Offset   int      // first visible row
	MaxRows  int
	Width    int // inner width, rows are truncated to fit
}

// RenderResults draws the bordered results box. It returns nil when there
// is nothing to show.
func (pr *PopupRenderer) RenderResults(v ResultsView) []string {
	if len(v.Rows) == 0 || v.MaxRows < 1 {
		return nil
	}
	width := max(v.Width, 4)

	end := min(v.Offset+v.MaxRows, len(v.Rows))
	var body strings.Builder
	for i := v.Offset; i < end; i++ {
		marker := "  "
		style := pr.styles.Row
		if i == v.Selected {
			marker = "> "
			style = pr.styles.SelectedRow
		}
		text := ansi.Truncate(marker+v.Rows[i], width, "…")
		if pad := width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		body.WriteString(style.Render(text))
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	// Scroll indicator when not everything fits
	if len(v.Rows) > v.MaxRows {
		body.WriteString("\n")
		body.WriteString(pr.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", v.Offset+1, end, len(v.Rows))))
	}

	return strings.Split(pr.styles.Popup.Render(body.String()), "\n")
}

// RenderPopupOverlay splices popup lines over mainContent with the popup's
// top-left corner at (x, y). Lines of the popup that fall below the
// content are appended.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent string, popupLines []string, x, y int) string {
	if len(popupLines) == 0 {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	for len(lines) < y+len(popupLines) {
		lines = append(lines, "")
	}

	for i, popupLine := range popupLines {
		row := y + i
		if row < 0 {
			continue
		}
		line := lines[row]
		lineWidth := ansi.StringWidth(line)

		var out strings.Builder
		// Prefix: everything before the popup, padded if the line is short
		if x > 0 {
			prefix := ansi.Truncate(line, x, "")
			out.WriteString(prefix)
			if w := ansi.StringWidth(prefix); w < x {
				out.WriteString(strings.Repeat(" ", x-w))
			}
		}
		out.WriteString("\x1b[0m")
		out.WriteString(popupLine)
		out.WriteString("\x1b[0m")

		// Suffix: whatever was to the right of the popup
		suffixStart := x + ansi.StringWidth(popupLine)
		if suffixStart < lineWidth {
			out.WriteString(ansi.TruncateLeft(line, suffixStart, ""))
		}
		lines[row] = out.String()
	}

	return strings.Join(lines, "\n")
}
