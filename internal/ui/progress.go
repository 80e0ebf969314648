// Package ui renders the progress of an `istudio build` run: one line per
// source file moving through parse -> diagnose -> lower -> emit -> write,
// plus an aggregate bar, as a Bubble Tea program fed by buildpipeline.Event.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"istudio/internal/buildpipeline"
)

const (
	defaultModelWidth    = 80
	defaultBarWidth      = 76
	statusColumnWidth    = 12
	minFileNameWidth     = 20
	windowSizePadding    = 4
	fileNameColumnMargin = statusColumnWidth + windowSizePadding
)

// progressModel tracks every file in a build and the single aggregate bar
// that summarizes them.
type progressModel struct {
	title       string
	events      <-chan buildpipeline.Event
	spinner     spinner.Model
	bar         progress.Model
	files       []fileState
	indexByPath map[string]int
	width       int
	done        bool
}

// fileState is one source file's position in the pipeline.
type fileState struct {
	path    string
	label   string
	stage   buildpipeline.Stage
	errored bool
}

type eventMsg buildpipeline.Event
type streamClosedMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders the progress of
// compiling files under the header title, reading pipeline events off
// events until the channel closes.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultBarWidth

	states := make([]fileState, 0, len(files))
	indexByPath := make(map[string]int, len(files))
	for i, path := range files {
		states = append(states, fileState{path: path, label: "queued"})
		indexByPath[path] = i
	}
	return &progressModel{
		title:       title,
		events:      events,
		spinner:     sp,
		bar:         bar,
		files:       states,
		indexByPath: indexByPath,
		width:       defaultModelWidth,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(buildpipeline.Event(msg))
		return m, tea.Batch(cmd, m.waitForEvent())
	case streamClosedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - windowSizePadding
		}
		return m, nil
	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		m.bar = updated.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := m.width - fileNameColumnMargin
	if nameWidth < minFileNameWidth {
		nameWidth = minFileNameWidth
	}

	for _, file := range m.files {
		name := truncate(file.path, nameWidth)
		status := styleStatus(file.label, file.errored).Render(fmt.Sprintf("%*s", statusColumnWidth, file.label))
		fmt.Fprintf(&b, "  %s %s\n", status, name)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	done, errored := m.counts()
	summary := fmt.Sprintf("%s (%d/%d done", m.title, done, len(m.files))
	if errored > 0 {
		summary += fmt.Sprintf(", %d failed", errored)
	}
	summary += ")"
	if m.done {
		return "build finished: " + summary
	}
	return m.spinner.View() + " " + summary
}

func (m *progressModel) counts() (done, errored int) {
	for _, f := range m.files {
		switch {
		case f.errored:
			errored++
		case f.label == "done":
			done++
		}
	}
	return done, errored
}

func (m *progressModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev buildpipeline.Event) tea.Cmd {
	if ev.File == "" {
		return nil
	}
	idx, ok := m.indexByPath[ev.File]
	if !ok {
		return nil
	}

	file := &m.files[idx]
	file.stage = ev.Stage
	switch ev.Status {
	case buildpipeline.StatusQueued:
		file.label = "queued"
	case buildpipeline.StatusWorking:
		file.label = stageLabel(ev.Stage)
	case buildpipeline.StatusDone:
		file.label = "done"
	case buildpipeline.StatusError:
		file.label = "error"
		file.errored = true
	}

	return m.bar.SetPercent(m.overallProgress())
}

// overallProgress averages each file's fractional position in the pipeline;
// a failed or finished file counts as fully complete so one bad file never
// holds the bar back from reaching the rest of the batch's real progress.
func (m *progressModel) overallProgress() float64 {
	if len(m.files) == 0 {
		return 0
	}
	var total float64
	for _, f := range m.files {
		if f.errored || f.label == "done" {
			total += 1.0
			continue
		}
		total += stageProgress(f.stage)
	}
	return total / float64(len(m.files))
}

func stageProgress(stage buildpipeline.Stage) float64 {
	switch stage {
	case buildpipeline.StageParse:
		return 0.15
	case buildpipeline.StageDiagnose:
		return 0.35
	case buildpipeline.StageLower:
		return 0.55
	case buildpipeline.StageEmit:
		return 0.75
	case buildpipeline.StageWrite:
		return 0.9
	default:
		return 0
	}
}

func stageLabel(stage buildpipeline.Stage) string {
	switch stage {
	case buildpipeline.StageParse:
		return "parsing"
	case buildpipeline.StageDiagnose:
		return "checking"
	case buildpipeline.StageLower:
		return "lowering"
	case buildpipeline.StageEmit:
		return "emitting"
	case buildpipeline.StageWrite:
		return "writing"
	default:
		return ""
	}
}

func styleStatus(label string, errored bool) lipgloss.Style {
	switch {
	case errored:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case label == "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case label == "queued":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
