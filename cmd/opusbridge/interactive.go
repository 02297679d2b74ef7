package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/opus-bridge/bridge"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateConfig modelState = iota
	stateReport
)

type interactiveModel struct {
	err      error
	input    *pcmFile
	stats    *roundTripStats
	version  string
	filename string
	inputs   []textinput.Model
	focusIdx int
	bitrate  int
	frameMs  int
	state    modelState
}

type loadedMsg struct {
	err   error
	input *pcmFile
}

type reportMsg struct {
	err     error
	stats   *roundTripStats
	version string
	bitrate int
	frameMs int
}

func newInteractiveModel(filename string) *interactiveModel {
	m := &interactiveModel{
		filename: filename,
		state:    stateConfig,
	}

	fields := []struct {
		prompt      string
		placeholder string
	}{
		{"bitrate: ", "16000"},
		{"complexity: ", "5"},
		{"frame ms: ", "20"},
	}
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.Placeholder = f.placeholder
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *interactiveModel) loadFile() tea.Msg {
	input, err := readWAV(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{input: input}
}

func (m *interactiveModel) fieldValue(i int, fallback int) int {
	v := strings.TrimSpace(m.inputs[i].Value())
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (m *interactiveModel) runRoundTrip() tea.Msg {
	bitrate := m.fieldValue(0, 16000)
	complexity := m.fieldValue(1, 5)
	frameMs := m.fieldValue(2, 20)

	b := bridge.New(bridge.DefaultCodec())
	defer b.Close()

	stats, err := roundTrip(b, m.input, bitrate, complexity, frameMs)
	return reportMsg{
		err:     err,
		stats:   stats,
		version: b.Version(),
		bitrate: bitrate,
		frameMs: frameMs,
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateConfig && msg.String() == "q" {
				break // let the focused field receive the character
			}
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateConfig:
				if m.input != nil {
					return m, m.runRoundTrip
				}
			case stateReport:
				m.state = stateConfig
				m.stats = nil
				m.err = nil
			}

		case "tab":
			if m.state == stateConfig {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateReport {
				m.state = stateConfig
				m.stats = nil
				m.err = nil
			} else {
				return m, tea.Quit
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.input = msg.input

	case reportMsg:
		m.stats = msg.stats
		m.err = msg.err
		m.version = msg.version
		m.bitrate = msg.bitrate
		m.frameMs = msg.frameMs
		m.state = stateReport
	}

	if m.state == stateConfig {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Opus Bridge"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.err != nil && m.state != stateReport {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+c quit"))
		return b.String()
	}

	if m.input == nil {
		b.WriteString("Loading input...")
		return b.String()
	}

	switch m.state {
	case stateConfig:
		seconds := float64(len(m.input.samples)) / float64(m.input.sampleRate*m.input.channels)
		b.WriteString(fmt.Sprintf("%s %d Hz, %d channel(s), %.2fs\n\n",
			fieldStyle.Render("input:"), m.input.sampleRate, m.input.channels, seconds))
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter encode • ctrl+c quit"))

	case stateReport:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("enter back • ctrl+c quit"))
			return b.String()
		}

		line := func(label, format string, args ...any) {
			b.WriteString(fieldStyle.Render(label))
			b.WriteString(" ")
			b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
			b.WriteString("\n")
		}
		b.WriteString(resultStyle.Render("Round trip complete"))
		b.WriteString("\n\n")
		line("codec:      ", "%s", m.version)
		line("encoder:    ", "%d bit/s, %dms frames", m.bitrate, m.frameMs)
		line("frames:     ", "%d", m.stats.frames)
		line("compressed: ", "%d -> %d bytes (%.1fx)", m.stats.pcmBytes, m.stats.packetBytes, m.stats.ratio())
		line("packets:    ", "min %d / avg %d / max %d bytes",
			m.stats.minPacket, m.stats.packetBytes/m.stats.frames, m.stats.maxPacket)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
