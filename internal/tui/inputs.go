package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// inputGroup is a column of text inputs with a single focused entry.
// Only the first active inputs take part in focus cycling.
type inputGroup struct {
	inputs []textinput.Model
	focus  int
	active int
}

func newInputGroup(inputs ...textinput.Model) inputGroup {
	g := inputGroup{inputs: inputs, active: len(inputs)}
	if len(inputs) > 0 {
		g.inputs[0].Focus()
	}
	return g
}

func (g inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) setValue(i int, v string) {
	g.inputs[i].SetValue(v)
}

func (g *inputGroup) setActive(n int) {
	g.active = min(max(n, 1), len(g.inputs))
	if g.focus >= g.active {
		g.focusOn(0)
	}
}

func (g *inputGroup) focusOn(i int) {
	g.inputs[g.focus].Blur()
	g.focus = i
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) next() {
	g.focusOn((g.focus + 1) % g.active)
}

func (g *inputGroup) prev() {
	g.focusOn((g.focus - 1 + g.active) % g.active)
}

func (g inputGroup) update(msg tea.Msg) (inputGroup, tea.Cmd) {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return g, cmd
}

// choice is a left/right selector over a fixed list of options.
type choice[T ~string] struct {
	options []T
	known   int
	idx     int
}

// newChoice selects selected among options. A non-empty value the form does
// not know, e.g. a newer server enum, is kept as an extra option marked
// "unknown" so saving does not silently change it.
func newChoice[T ~string](options []T, selected T) choice[T] {
	c := choice[T]{options: options, known: len(options), idx: -1}
	for i, o := range options {
		if o == selected {
			c.idx = i
		}
	}

	switch {
	case c.idx >= 0:
	case selected != "":
		c.options = append(slices.Clone(options), selected)
		c.idx = len(c.options) - 1
	default:
		c.idx = 0
	}
	return c
}

func (c choice[T]) value() T {
	return c.options[c.idx]
}

func (c choice[T]) unknown() bool {
	return c.idx >= c.known
}

func (c *choice[T]) next() {
	c.idx = (c.idx + 1) % len(c.options)
}

func (c *choice[T]) prev() {
	c.idx = (c.idx - 1 + len(c.options)) % len(c.options)
}

func (c choice[T]) View(focused bool) string {
	label := "< " + string(c.value()) + " >"
	if c.unknown() {
		label += " (unknown)"
	}
	if focused {
		return selectedStyle.Render(label)
	}
	return label
}
