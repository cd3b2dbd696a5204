package arbor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTabs is returned when a Notebook is built without pages.
	ErrNoTabs = errors.New("notebook needs at least one tab")
	// ErrTabPageMismatch is returned when the tab and page counts differ.
	ErrTabPageMismatch = errors.New("tab and page counts differ")
)

// Notebook shows one page at a time under a row of tab buttons.
type Notebook struct {
	Proxy
	tabs []*Button
	deck *Deck

	// OnSelect is called with the page index when the user picks a tab.
	OnSelect func(i int)
}

// NewNotebook creates a notebook with one tab per page.
func NewNotebook(labels []string, pages []Element) (*Notebook, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("arbor: new notebook: %w", ErrNoTabs)
	}
	if len(labels) != len(pages) {
		return nil, fmt.Errorf("arbor: new notebook: %d tabs, %d pages: %w",
			len(labels), len(pages), ErrTabPageMismatch)
	}
	n := &Notebook{deck: NewDeck(pages...)}
	bar := make([]Element, len(labels))
	for i, label := range labels {
		tab := NewToggleButton(label, i == 0)
		tab.clicked = func(ctx *Context, _ bool) { n.pick(ctx, i) }
		n.tabs = append(n.tabs, tab)
		bar[i] = tab
	}
	n.subject = NewVTile(NewHTile(bar...), n.deck)
	return n, nil
}

// Selected returns the index of the visible page.
func (n *Notebook) Selected() int { return n.deck.Selected() }

// Select shows page i without notifying OnSelect.
func (n *Notebook) Select(i int) {
	n.deck.Select(i)
	for j, tab := range n.tabs {
		tab.SetValue(j == n.deck.Selected())
	}
}

// Deck returns the page container.
func (n *Notebook) Deck() *Deck { return n.deck }

func (n *Notebook) pick(ctx *Context, i int) {
	n.Select(i)
	nctx := ctx.Ancestor(n)
	if nctx == nil {
		nctx = ctx
	}
	nctx.Refresh()
	if n.OnSelect != nil {
		n.OnSelect(i)
	}
	nctx.emit(ChangeEvent{Type: ChangeSelect, Index: i})
}
