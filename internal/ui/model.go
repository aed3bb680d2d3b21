package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jam/internal/chart"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/logging"
)

// Model owns Bubble Tea state for the tracker window.
type Model struct {
	ctx    context.Context
	ledger *ledger.Ledger
	files  *files.Manager
	chart  chart.Options
	now    func() time.Time

	input textinput.Model
	bar   progress.Model
	focus focus

	dialog    dialog
	report    ledger.Report
	exporting bool

	statusLine string
	errorLine  string
}

type focus uint8

const (
	focusInput focus = iota
	focusStart
	focusStop
	focusReport
	focusExit
	focusCount
)

var buttonLabels = map[focus]string{
	focusStart:  "Start task",
	focusStop:   "Stop task",
	focusReport: "Show report",
	focusExit:   "Exit",
}

type dialogKind uint8

const (
	dialogNone dialogKind = iota
	dialogInfo
	dialogError
	dialogReport
)

type dialog struct {
	kind dialogKind
	body string
}

type tickMsg time.Time

type exportResultMsg struct {
	path string
	err  error
}

// NewModel seeds a Bubble Tea model around a caller-owned ledger.
func NewModel(ctx context.Context, l *ledger.Ledger, manager *files.Manager, opts chart.Options) Model {
	input := textinput.New()
	input.Prompt = "Task: "
	input.Placeholder = "what are you working on?"
	input.CharLimit = 120
	input.Width = 40
	input.Focus()

	return Model{
		ctx:    ctx,
		ledger: l,
		files:  manager,
		chart:  opts,
		now:    time.Now,
		input:  input,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(24),
			progress.WithoutPercentage(),
		),
		focus:      focusInput,
		statusLine: "Type a task name and press Enter to start it.",
	}
}

// Init starts the cursor blink and the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update wires state transitions from key presses and async results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, tickCmd()
	case exportResultMsg:
		return m.handleExportResult(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.dialog.kind != dialogNone {
		return m.handleDialogKey(msg)
	}

	switch msg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return m.startTask()
	case "ctrl+e":
		return m.stopTask()
	case "ctrl+r":
		return m.showReport()
	case "enter":
		return m.activate()
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ", "q":
		m.dialog = dialog{}
		return m, nil
	case "p":
		if m.dialog.kind != dialogReport || m.exporting {
			return m, nil
		}
		m.exporting = true
		m.statusLine = "Exporting chart..."
		m.errorLine = ""
		return m, m.exportCmd(m.report)
	}
	return m, nil
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == focusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusInput, focusStart:
		return m.startTask()
	case focusStop:
		return m.stopTask()
	case focusReport:
		return m.showReport()
	case focusExit:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m Model) startTask() (tea.Model, tea.Cmd) {
	name, err := ledger.NormalizeName(m.input.Value())
	if err != nil {
		return m.showError(Describe(err, name))
	}
	if _, err := m.ledger.Start(name); err != nil {
		return m.showError(Describe(err, name))
	}

	log.Printf("started %q", name)
	return m.showInfo(startedMessage(name))
}

func (m Model) stopTask() (tea.Model, tea.Cmd) {
	name, err := ledger.NormalizeName(m.input.Value())
	if err != nil {
		return m.showError(Describe(err, name))
	}
	elapsed, err := m.ledger.Stop(name)
	if err != nil {
		return m.showError(Describe(err, name))
	}

	log.Printf("stopped %q after %s", name, elapsed)
	return m.showInfo(stoppedMessage(name, elapsed.Seconds()))
}

func (m Model) showReport() (tea.Model, tea.Cmd) {
	report, err := m.ledger.Report()
	if err != nil {
		if errors.Is(err, ledger.ErrNoData) {
			return m.showInfo(msgNoData)
		}
		return m.showError(err.Error())
	}

	m.report = report
	m.dialog = dialog{kind: dialogReport, body: chart.Render(report, m.chart)}
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) showInfo(body string) (tea.Model, tea.Cmd) {
	m.dialog = dialog{kind: dialogInfo, body: body}
	m.statusLine = body
	m.errorLine = ""
	return m, nil
}

func (m Model) showError(body string) (tea.Model, tea.Cmd) {
	m.dialog = dialog{kind: dialogError, body: body}
	m.errorLine = body
	return m, nil
}

func (m Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	if msg.err != nil {
		logging.LogError("export chart", msg.err)
		m.errorLine = fmt.Sprintf("Export failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	log.Printf("exported chart to %s", msg.path)
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Chart saved to %s", msg.path)
	return m, nil
}

func (m Model) exportCmd(report ledger.Report) tea.Cmd {
	ctx := m.ctx
	manager := m.files
	opts := m.chart
	at := m.now()
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return exportResultMsg{err: err}
		}
		path, err := manager.EnsureReportPath(at)
		if err != nil {
			return exportResultMsg{err: err}
		}
		if err := chart.ExportPDF(path, report, opts); err != nil {
			return exportResultMsg{path: path, err: err}
		}
		return exportResultMsg{path: path}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the frame.
func (m Model) View() string {
	if m.dialog.kind != dialogNone {
		return m.viewDialog()
	}

	var b strings.Builder

	header := "Time tracker"
	b.WriteString(titleStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.viewButtons())
	b.WriteByte('\n')

	b.WriteString(sectionStyle.Render("Running"))
	b.WriteByte('\n')
	running := m.ledger.Running()
	if len(running) == 0 {
		b.WriteString(mutedStyle.Render("(none)"))
		b.WriteByte('\n')
	}
	for _, task := range running {
		fmt.Fprintf(&b, "> %s  %s\n", task.Name, formatClock(task.Elapsed))
	}

	b.WriteString(sectionStyle.Render("Totals"))
	b.WriteByte('\n')
	totals := m.ledger.Totals()
	if len(totals) == 0 {
		b.WriteString(mutedStyle.Render("(no completed tasks)"))
		b.WriteByte('\n')
	}
	window := m.ledger.Window()
	for _, slice := range totals {
		share := slice.Duration.Seconds() / window.Seconds()
		fmt.Fprintf(&b, "  %s  %s  %s\n", m.bar.ViewAs(clampShare(share)), formatClock(slice.Duration), slice.Label)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab move  enter activate  ctrl+s start  ctrl+e stop  ctrl+r report  ctrl+c quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) viewButtons() string {
	buttons := make([]string, 0, len(buttonLabels))
	for f := focusStart; f < focusCount; f++ {
		style := buttonStyle
		if m.focus == f {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(buttonLabels[f]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) viewDialog() string {
	var (
		title string
		style lipgloss.Style
		hint  = "enter/esc to close"
	)
	switch m.dialog.kind {
	case dialogError:
		title, style = "Error", errorDialogStyle
	case dialogReport:
		title, style = "Report", infoDialogStyle
		hint = "p export PDF  enter/esc to close"
	default:
		title, style = "Information", infoDialogStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", m.dialog.body)

	var b strings.Builder
	b.WriteString(style.Render(body))
	b.WriteByte('\n')
	if m.dialog.kind == dialogReport {
		if m.errorLine != "" {
			b.WriteString(errorStyle.Render("! " + m.errorLine))
			b.WriteByte('\n')
		} else if m.statusLine != "" {
			b.WriteString(m.statusLine)
			b.WriteByte('\n')
		}
	}
	b.WriteString(helpStyle.Render(hint))
	b.WriteByte('\n')
	return b.String()
}

func formatClock(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	mnt := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, mnt, s)
}

func clampShare(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
