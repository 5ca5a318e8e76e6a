package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/nikolayk812/storefront/internal/port"
)

// Terminal is the CLI's navigator and notifier: view changes and toasts are
// printed as lines.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	current string
}

func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = io.Discard
	}
	return &Terminal{out: out, current: port.ViewHome}
}

func (t *Terminal) Navigate(view string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = view
	fmt.Fprintf(t.out, "→ %s\n", view)
}

func (t *Terminal) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}

func (t *Terminal) Success(title, description string) {
	t.print("✔", title, description)
}

func (t *Terminal) Error(title, description string) {
	t.print("✖", title, description)
}

func (t *Terminal) Info(title, description string) {
	t.print("•", title, description)
}

func (t *Terminal) print(mark, title, description string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if description == "" {
		fmt.Fprintf(t.out, "%s %s\n", mark, title)
		return
	}
	fmt.Fprintf(t.out, "%s %s: %s\n", mark, title, description)
}

var (
	_ port.Navigator = (*Terminal)(nil)
	_ port.Notifier  = (*Terminal)(nil)
)
