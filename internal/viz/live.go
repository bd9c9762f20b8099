// Package viz provides a live terminal replay of a simulation run.
//
// The full grid is integrated up front (the core loop has no suspension
// points), then the series is played back at a fixed frame rate as two
// stacked rolling charts.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first sample
//	[ ]   - Step backward/forward while paused
//	Q     - Quit
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/lcsim/lcsim/internal/simulation"
)

const (
	graphHeight = 8
	graphWidth  = 90
	windowSize  = 240
	frameRate   = 30
	// samples advanced per frame, so long runs replay in reasonable time
	playbackStride = 4
)

type TickMsg time.Time

// Model is the bubbletea model replaying one completed run.
type Model struct {
	cfg      simulation.Config
	times    []float64
	current  []float64
	voltage  []float64
	playHead int
	running  bool
}

// NewModel runs the simulation described by cfg and prepares its replay.
func NewModel(cfg simulation.Config) (Model, error) {
	sim, err := simulation.New(cfg)
	if err != nil {
		return Model{}, err
	}
	result, err := sim.Run()
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:      cfg,
		times:    result.Times,
		current:  result.CurrentSeries(),
		voltage:  result.VoltageSeries(),
		playHead: 1,
		running:  true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.playHead = 1
			m.running = true
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		}
	case TickMsg:
		if m.running {
			m.playHead += playbackStride
			if m.playHead >= len(m.times) {
				m.playHead = len(m.times)
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) scrub(delta int) {
	m.running = false
	m.playHead += delta
	if m.playHead < 1 {
		m.playHead = 1
	}
	if m.playHead > len(m.times) {
		m.playHead = len(m.times)
	}
}

func (m Model) View() string {
	if len(m.times) == 0 {
		return "no samples\n"
	}

	head := m.playHead
	lo := head - windowSize
	if lo < 0 {
		lo = 0
	}

	iChart := asciigraph.Plot(m.current[lo:head],
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("I(t), A"),
	)
	uChart := asciigraph.Plot(m.voltage[lo:head],
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("U(t), V"),
	)

	status := "playing"
	if !m.running {
		status = pausedStyle.Render("paused")
	}

	out := headerStyle.Render("lcsim live — LC circuit") + "\n"
	out += graphStyle.Render(iChart) + "\n"
	out += graphStyle.Render(uChart) + "\n"
	out += labelStyle.Render("solver") + valueStyle.Render(m.cfg.Solver) + "\n"
	out += labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.6g s", m.times[head-1])) + "\n"
	out += labelStyle.Render("I") + valueStyle.Render(fmt.Sprintf("%.6g A", m.current[head-1])) + "\n"
	out += labelStyle.Render("U") + valueStyle.Render(fmt.Sprintf("%.6g V", m.voltage[head-1])) + "\n"
	out += labelStyle.Render("status") + status + "\n"
	out += helpStyle.Render("space pause · r restart · [ ] scrub · q quit")

	return out
}

// Run integrates cfg and plays the result back in the terminal.
func Run(cfg simulation.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
