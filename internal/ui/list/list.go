// Package list provides a scrollable cursor over a slice of items.
package list

import "github.com/llehouerou/tunes/internal/ui"

// Model is a scrollable list. It keeps the cursor and scroll offset; the
// parent renders the rows returned by Visible.
type Model[T any] struct {
	ui.Base
	items  []T
	pos    int
	offset int
	margin int
}

// New creates an empty list that keeps margin rows around the cursor.
func New[T any](margin int) Model[T] {
	return Model[T]{margin: margin}
}

// SetItems replaces the items. The cursor stays where it was when still in
// range, and moves to the last item otherwise.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clamp()
}

// Reset moves the cursor back to the top.
func (m *Model[T]) Reset() {
	m.pos = 0
	m.offset = 0
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the index under the cursor.
func (m Model[T]) Cursor() int {
	return m.pos
}

// Selected returns the item under the cursor, or false when the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.pos >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// Move moves the cursor by delta, stopping at both ends.
func (m *Model[T]) Move(delta int) {
	m.Jump(m.pos + delta)
}

// Jump puts the cursor on index i, clamped to the list.
func (m *Model[T]) Jump(i int) {
	if len(m.items) == 0 {
		return
	}
	m.pos = min(max(i, 0), len(m.items)-1)
	m.scroll()
}

// JumpStart moves the cursor to the first item.
func (m *Model[T]) JumpStart() {
	m.Jump(0)
}

// JumpEnd moves the cursor to the last item.
func (m *Model[T]) JumpEnd() {
	m.Jump(len(m.items) - 1)
}

// Visible returns the [start, end) range of items that fit the panel.
func (m Model[T]) Visible() (start, end int) {
	h := m.ListHeight()
	if h <= 0 || len(m.items) == 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+h, len(m.items))
}

// SetSize resizes the panel and keeps the cursor on screen.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.scroll()
}

func (m *Model[T]) clamp() {
	if len(m.items) == 0 {
		m.Reset()
		return
	}
	m.pos = min(m.pos, len(m.items)-1)
	m.scroll()
}

func (m *Model[T]) scroll() {
	h := m.ListHeight()
	if h <= 0 || len(m.items) == 0 {
		return
	}
	margin := min(m.margin, (h-1)/2)
	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+h-margin {
		m.offset = m.pos - h + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.items)-h, 0))
}
