package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/logsweep/logsweep/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model drives the interactive review of pending removals. Every file
// starts approved; space toggles a file out of the apply set.
type Model struct {
	table      table.Model
	viewport   viewport.Model
	files      []types.FileResult
	deselected map[int]bool
	width      int
	height     int
	ready      bool
	confirmed  bool
	quitting   bool
	status     string
}

// NewModel initializes the review model over files with pending removals.
func NewModel(files []types.FileResult) Model {
	columns := []table.Column{
		{Title: "Apply", Width: 6},
		{Title: "Lang", Width: 6},
		{Title: "Path", Width: 48},
		{Title: "Lines", Width: 6},
	}

	m := Model{
		files:      files,
		deselected: map[int]bool{},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1)
	s.Selected = lipgloss.NewStyle().
		Background(lipgloss.Color("24")).
		Foreground(lipgloss.Color("15"))
	t.SetStyles(s)
	m.table = t
	return m
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, len(m.files))
	for i, f := range m.files {
		mark := "[x]"
		if m.deselected[i] {
			mark = "[ ]"
		}
		rows[i] = table.Row{mark, string(f.Language), f.Path, fmt.Sprintf("%d", f.Removed)}
	}
	return rows
}

// Approved returns the paths still selected, or nil when the review was
// cancelled.
func (m Model) Approved() []string {
	if !m.confirmed {
		return nil
	}
	var out []string
	for i, f := range m.files {
		if !m.deselected[i] {
			out = append(out, f.Path)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tableHeight := m.height/2 - 4
		if tableHeight < 4 {
			tableHeight = 4
		}
		m.table.SetHeight(tableHeight)
		m.viewport = viewport.New(m.width-4, m.height-tableHeight-7)
		m.ready = true
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.files) {
				if m.deselected[idx] {
					delete(m.deselected, idx)
				} else {
					m.deselected[idx] = true
				}
				m.table.SetRows(m.rows())
			}
			return m, nil
		case "a", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "c":
			if err := copySummary(m.files, m.deselected); err != nil {
				m.status = "clipboard error: " + err.Error()
			} else {
				m.status = "summary copied to clipboard"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != prev {
		m.refreshDetail()
	}
	return m, cmd
}

func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.files) {
		m.viewport.SetContent("")
		return
	}
	f := m.files[idx]
	var b strings.Builder
	for _, r := range f.Removals {
		fmt.Fprintf(&b, "%4d  %s\n", r.Line, highlightLine(r.Text, f.Path))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("logsweep review: %d file(s) with debug lines", len(m.files)))

	detailTitle := ""
	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.files) {
		detailTitle = m.files[idx].Path
		if m.deselected[idx] {
			detailTitle += skippedStyle.Render("  (skipped)")
		}
	}

	help := strings.Join([]string{
		keyStyle.Render("space") + " toggle",
		keyStyle.Render("a/enter") + " apply selected",
		keyStyle.Render("c") + " copy summary",
		keyStyle.Render("q") + " cancel",
	}, "  ")
	status := help
	if m.status != "" {
		status = m.status
	}

	return strings.Join([]string{
		title,
		tableBorderStyle.Render(m.table.View()),
		detailTitle,
		detailBorderStyle.Render(m.viewport.View()),
		statusStyle.Render(" " + status + " "),
	}, "\n")
}

func highlightLine(line string, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line // No highlighting for unknown file types
	}

	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}

	result := buf.String()
	result = strings.TrimSuffix(result, "\n")
	return result
}
