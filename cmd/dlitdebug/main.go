// Command dlitdebug is an interactive inspector for dlit templates: pick a
// sample literal from the config file, step through its rendered values,
// and see the compiled TemplatePart list and the live DOM snapshot after
// each commit.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/dlit/dlit"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	cfg      *debugConfig
	sampleAt int
	err      error
	snapshot string
	tmpl     *dlit.Template
	body     viewport.Model
}

func initialModel(cfg *debugConfig) model {
	m := model{cfg: cfg, body: viewport.New(80, 20)}
	m.recompile()
	m.body.SetContent(m.bodyContent())
	return m
}

func (m *model) currentSample() sample {
	return m.cfg.Samples[m.sampleAt]
}

func (m *model) recompile() {
	s := m.currentSample()
	var result dlit.TemplateResult
	if s.SVG {
		result = dlit.SVG(s.Strings, stringValues(s)...)
	} else {
		result = dlit.Html(s.Strings, stringValues(s)...)
	}
	tmpl, err := dlit.Compile(result)
	m.tmpl = tmpl
	m.err = err
	if err == nil {
		m.render(result)
	}
}

func stringValues(s sample) []any {
	vals := make([]any, len(s.ValueLog))
	for i, v := range s.ValueLog {
		vals[i] = v
	}
	return vals
}

func (m *model) render(result dlit.TemplateResult) {
	container := &html.Node{Type: html.ElementNode, Data: "div"}
	if err := dlit.Render(result, container); err != nil {
		m.err = err
		return
	}
	snap, err := dlit.Snapshot(container)
	if err != nil {
		m.err = err
		return
	}
	m.snapshot = snap
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.body.Width = msg.Width
		m.body.Height = msg.Height - 4
		m.body.SetContent(m.bodyContent())
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.sampleAt = (m.sampleAt + 1) % len(m.cfg.Samples)
			m.recompile()
			m.body.SetContent(m.bodyContent())
			return m, nil
		case "p":
			m.sampleAt = (m.sampleAt - 1 + len(m.cfg.Samples)) % len(m.cfg.Samples)
			m.recompile()
			m.body.SetContent(m.bodyContent())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// bodyContent renders the scrollable part of the screen: the compiled
// TemplatePart list and the post-commit DOM snapshot.
func (m model) bodyContent() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		return b.String()
	}

	b.WriteString(dimStyle.Render("parts:"))
	b.WriteString("\n")
	for _, p := range m.tmpl.Parts {
		b.WriteString(fmt.Sprintf("  [%d] %s", p.Index, p.Kind))
		if p.Kind.String() == "ATTRIBUTE" {
			b.WriteString(fmt.Sprintf(" name=%q kind=%s", p.Name, p.AttrK))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("snapshot:"))
	b.WriteString("\n  ")
	b.WriteString(m.snapshot)
	return b.String()
}

func (m model) View() string {
	s := m.currentSample()
	header := titleStyle.Render(fmt.Sprintf("dlit debug: %s", s.Name))
	footer := dimStyle.Render("n/p: switch sample   arrows: scroll   q: quit")
	return header + "\n\n" + m.body.View() + "\n\n" + footer
}

func main() {
	path := flag.String("config", "", "path to a YAML sample config (uses built-in samples if empty)")
	flag.Parse()

	cfg := defaultConfig()
	if *path != "" {
		loaded, err := loadConfig(*path)
		if err != nil {
			log.Fatalf("dlitdebug: %v", err)
		}
		cfg = loaded
	}
	if len(cfg.Samples) == 0 {
		log.Fatal("dlitdebug: config has no samples")
	}

	if _, err := tea.NewProgram(initialModel(cfg)).Run(); err != nil {
		log.Fatalf("dlitdebug: %v", err)
	}
}
