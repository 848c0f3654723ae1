package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/listctx/internal/input"
	"github.com/atomicstack/listctx/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// list column share of the total width, in percent
	listColumnPercent  = 30
	listColumnMinWidth = 16
	notifyMinWidth     = 12

	selectedIndicator = ">> "
	itemIndent        = "   "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View renders the header, the list and notification columns, and the
// optional help footer.
func (m *Model) View() string {
	width, height := m.viewSize()

	sections := []string{m.header(width)}
	footer := m.footer(width)
	bodyH := bodyHeight(height, m.showFooter)

	listW, notifyW := columnWidths(width)
	body := m.renderListPanel(listW, bodyH)
	if notifyW > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderNotificationPanel(notifyW, bodyH))
	}
	sections = append(sections, body)
	if footer != "" {
		sections = append(sections, footer)
	}
	return fitWidth(strings.Join(sections, "\n"), width)
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// bodyHeight is the height of the two columns below the header.
func bodyHeight(height int, footer bool) int {
	bodyH := height - 1
	if footer {
		bodyH--
	}
	if bodyH < 3 {
		bodyH = 3
	}
	return bodyH
}

// listRows is the number of rows entries may use inside the list box, below
// its border and title.
func (m *Model) listRows() int {
	_, height := m.viewSize()
	innerH := bodyHeight(height, m.showFooter) - 2
	if innerH < 1 {
		innerH = 1
	}
	return innerH - 1
}

// syncViewport scrolls the list so the cursor fits in the list box.
func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.listRows(), entryHeight)
}

func columnWidths(width int) (int, int) {
	listW := width * listColumnPercent / 100
	if listW < listColumnMinWidth {
		listW = listColumnMinWidth
	}
	if width-listW < notifyMinWidth {
		return width, 0
	}
	return listW, width - listW
}

func (m *Model) header(width int) string {
	const label = "context:"
	name := m.context.String()
	if len([]rune(label))+1+len([]rune(name)) > width {
		return styles.Header.Render(truncateText(label+" "+name, width))
	}
	return styles.Header.Render(label) + " " + styles.HeaderContext.Render(name)
}

func (m *Model) footer(width int) string {
	if !m.showFooter {
		return ""
	}
	keys := input.KeyMapFor(m.context)
	if keys == nil {
		return ""
	}
	m.help.Width = width
	return m.help.View(keys)
}

func entryHeight(e state.Entry) int {
	return 1 + len(e.DetailLines())
}

func (m *Model) renderListPanel(width, height int) string {
	innerW, innerH := width-2, height-2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	lines := []styledLine{{text: "List", style: styles.PanelTitle}}
	rows := innerH - 1
	entries := m.list.Entries()
	if len(entries) == 0 {
		lines = append(lines, styledLine{text: "(empty)", style: styles.Info})
	}
	start, end := m.list.VisibleRange(rows, entryHeight)
	cursor, selected := m.list.Selected()
	for i := start; i < end; i++ {
		lines = append(lines, entryLines(entries[i], selected && i == cursor)...)
	}
	lines = applyWidth(limitHeight(lines, innerH, innerW), innerW)

	border := styles.ListBorder
	if selected {
		border = styles.ListBorderActive
	}
	return border.Width(innerW).Height(innerH).Render(renderLines(lines))
}

func entryLines(e state.Entry, selected bool) []styledLine {
	lines := make([]styledLine, 0, entryHeight(e))
	if selected {
		lines = append(lines, styledLine{
			text:          selectedIndicator + e.Title,
			style:         styles.SelectedItem,
			prefixStyle:   styles.SelectedIndicator,
			highlightFrom: len([]rune(selectedIndicator)),
		})
	} else {
		lines = append(lines, styledLine{text: itemIndent + e.Title, style: styles.Item})
	}
	for _, detail := range e.DetailLines() {
		lines = append(lines, styledLine{text: itemIndent + detail, style: styles.ItemDetail})
	}
	return lines
}

func (m *Model) renderNotificationPanel(width, height int) string {
	innerW, innerH := width-2, height-2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	lines := []styledLine{{text: "Notifications", style: styles.PanelTitle}}
	for _, n := range m.notifications.Entries() {
		tag := "[" + n.Severity + "]"
		lines = append(lines, styledLine{
			text:          tag + " " + n.Message,
			style:         styles.Info,
			prefixStyle:   severityStyle(n.Severity),
			highlightFrom: len([]rune(tag)),
		})
	}
	lines = append(lines, styledLine{}, m.selectionLine())
	lines = applyWidth(limitHeight(lines, innerH, innerW), innerW)
	return styles.NotificationBorder.Width(innerW).Height(innerH).Render(renderLines(lines))
}

func (m *Model) selectionLine() styledLine {
	entries := m.list.Entries()
	if cursor, ok := m.list.Selected(); ok {
		e := entries[cursor]
		return styledLine{text: fmt.Sprintf("selected: %s (used %d times)", e.Title, e.UsageCount), style: styles.Info}
	}
	if ep, ok := m.list.ExitPoint(); ok && ep < len(entries) {
		return styledLine{text: "exit point: " + entries[ep].Title, style: styles.Info}
	}
	return styledLine{text: "nothing selected", style: styles.Info}
}

func severityStyle(severity string) *lipgloss.Style {
	switch severity {
	case state.SeverityCritical:
		return styles.SeverityCritical
	case state.SeverityError:
		return styles.SeverityError
	default:
		return styles.SeverityInfo
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// fitWidth truncates every rendered row to width visible columns.
func fitWidth(view string, width int) string {
	if width <= 0 {
		return view
	}
	rows := strings.Split(view, "\n")
	for i, row := range rows {
		if lipgloss.Width(row) > width {
			rows[i] = truncate.StringWithTail(row, uint(width-1), "…")
		}
	}
	return strings.Join(rows, "\n")
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
