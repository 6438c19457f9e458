package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// progressMsg reports one classified record from the batch goroutine.
type progressMsg struct {
	done  int
	total int
	rec   filetriage.Record
}

// batchDoneMsg signals that the batch goroutine has finished.
type batchDoneMsg struct{}

// progressModel drives a progress bar over a running batch. The batch
// itself runs in a tea command goroutine; the engine's progress
// callback feeds this model through a channel, keeping rendering out
// of the core entirely. The quit channel unblocks the goroutine when
// the user aborts, and the result always arrives on the buffered
// results channel, so the batch is classified exactly once.
type progressModel struct {
	bar     progress.Model
	msgs    chan tea.Msg
	quit    chan struct{}
	results chan []filetriage.Record
	run     func(filetriage.ProgressFunc) []filetriage.Record
	done    int
	total   int
	current string
	aborted bool
}

func newProgressModel(total int, run func(filetriage.ProgressFunc) []filetriage.Record) progressModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(filetriage.DefaultProgressWidth),
	)
	return progressModel{
		bar:     bar,
		msgs:    make(chan tea.Msg, 1),
		quit:    make(chan struct{}),
		results: make(chan []filetriage.Record, 1),
		run:     run,
		total:   total,
	}
}

// Init implements tea.Model.
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.startBatch(), m.nextMsg())
}

func (m progressModel) startBatch() tea.Cmd {
	return func() tea.Msg {
		records := m.run(func(done, total int, rec filetriage.Record) {
			select {
			case m.msgs <- progressMsg{done: done, total: total, rec: rec}:
			case <-m.quit:
				// Display gone; keep classifying without reporting.
			}
		})
		m.results <- records
		select {
		case m.msgs <- batchDoneMsg{}:
		case <-m.quit:
		}
		return nil
	}
}

func (m progressModel) nextMsg() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

// Update implements tea.Model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = msg.done
		m.current = msg.rec.Filename
		return m, m.nextMsg()
	case batchDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if !m.aborted {
				m.aborted = true
				close(m.quit)
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m progressModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	counter := ProgressLabelStyle.Render(fmt.Sprintf("%d/%d %s", m.done, m.total, m.current))
	return fmt.Sprintf("%s %s\n", m.bar.ViewAs(frac), counter)
}

// RunBatch classifies filenames behind an animated progress bar and
// returns the records in input order. The batch goroutine delivers
// its result even when the display is aborted, so the classification
// runs exactly once; only a program that failed to start at all falls
// back to a plain batch run.
func RunBatch(c filetriage.Classifier, filenames []string) []filetriage.Record {
	m := newProgressModel(len(filenames), func(fn filetriage.ProgressFunc) []filetriage.Record {
		return c.ClassifyBatch(filenames, filetriage.WithProgress(fn))
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return c.ClassifyBatch(filenames)
	}
	return <-m.results
}
