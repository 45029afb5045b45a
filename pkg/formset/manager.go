package formset

import "strings"

// Row is a formset row together with its position.
type Row struct {
	Index   int
	Element *Element
}

// Option configures a Manager.
type Option func(*Manager)

// WithRowMatcher decides which container children are rows. By default every
// element child that is not the end marker is a row.
func WithRowMatcher(match func(*Element) bool) Option {
	return func(m *Manager) {
		if match != nil {
			m.isRow = match
		}
	}
}

// WithEndMarker designates the container child new rows are inserted before,
// typically the "add" button. Without a marker new rows follow the last row.
func WithEndMarker(match func(*Element) bool) Option {
	return func(m *Manager) {
		m.isMarker = match
	}
}

// WithMinRows raises the number of rows that must always remain. Values below
// one are ignored.
func WithMinRows(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.minRows = n
		}
	}
}

// WithMaxRows caps the number of rows AddRow may produce. Zero means
// unlimited.
func WithMaxRows(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.maxRows = n
		}
	}
}

// WithInitialForms records how many rows were bound to existing records when
// the form was rendered.
func WithInitialForms(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.initialForms = n
		}
	}
}

// Manager maintains an ordered sequence of structurally identical rows inside
// a container, keeping every row's field identifiers numbered 0..n-1.
type Manager struct {
	prefix    string
	container *Element
	indexer   *indexer

	isRow        func(*Element) bool
	isMarker     func(*Element) bool
	minRows      int
	maxRows      int
	initialForms int
}

// New builds a Manager over container. The container must already hold at
// least the minimum number of rows; the last one serves as clone template.
// Existing rows are renumbered so the index invariant holds from the start.
func New(prefix string, container *Element, opts ...Option) (*Manager, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if container == nil {
		return nil, ErrNilContainer
	}

	m := &Manager{
		prefix:    prefix,
		container: container,
		indexer:   newIndexer(prefix),
		minRows:   1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.Len() < m.minRows {
		return nil, ErrNoRows
	}
	m.Renumber()
	return m, nil
}

// Prefix returns the field-name prefix.
func (m *Manager) Prefix() string {
	return m.prefix
}

// Container returns the owned container element.
func (m *Manager) Container() *Element {
	return m.container
}

// Rows returns the rows in container order.
func (m *Manager) Rows() []Row {
	var rows []Row
	for _, child := range m.container.Children {
		if m.rowAccepted(child) {
			rows = append(rows, Row{Index: len(rows), Element: child})
		}
	}
	return rows
}

// Len returns the number of rows.
func (m *Manager) Len() int {
	count := 0
	for _, child := range m.container.Children {
		if m.rowAccepted(child) {
			count++
		}
	}
	return count
}

// AddRow clones the last row, inserts the clone before the end marker,
// renumbers all rows and resets the clone's values. It reports false, without
// changing anything, when the row cap is reached.
func (m *Manager) AddRow() (Row, bool) {
	rows := m.Rows()
	if len(rows) == 0 {
		return Row{}, false
	}
	if m.maxRows > 0 && len(rows) >= m.maxRows {
		return Row{}, false
	}

	clone := rows[len(rows)-1].Element.Clone()
	m.insert(clone, m.insertPosition(rows[len(rows)-1].Element))
	m.Renumber()
	Reset(clone)

	for _, row := range m.Rows() {
		if row.Element == clone {
			return row, true
		}
	}
	return Row{Index: len(rows), Element: clone}, true
}

// Renumber rewrites the index embedded in every row's id, name and for
// attributes to the row's position. Renumbering an already numbered sequence
// changes nothing.
func (m *Manager) Renumber() {
	for _, row := range m.Rows() {
		m.indexer.apply(row.Element, row.Index)
	}
}

// RemoveRow removes the row at index and renumbers the remainder. Removal is
// refused, returning false, when it would leave fewer than the minimum number
// of rows or when index is out of range.
func (m *Manager) RemoveRow(index int) bool {
	rows := m.Rows()
	if index < 0 || index >= len(rows) || len(rows) <= m.minRows {
		return false
	}
	target := rows[index].Element
	for i, child := range m.container.Children {
		if child == target {
			m.container.Children = append(m.container.Children[:i], m.container.Children[i+1:]...)
			break
		}
	}
	m.Renumber()
	return true
}

func (m *Manager) rowAccepted(el *Element) bool {
	if el == nil || el.IsText() {
		return false
	}
	if m.isMarker != nil && m.isMarker(el) {
		return false
	}
	if m.isRow != nil {
		return m.isRow(el)
	}
	return true
}

// insertPosition returns the child index a new row goes to: the end marker
// when present, otherwise right after the last row.
func (m *Manager) insertPosition(last *Element) int {
	if m.isMarker != nil {
		for i, child := range m.container.Children {
			if child != nil && !child.IsText() && m.isMarker(child) {
				return i
			}
		}
	}
	for i, child := range m.container.Children {
		if child == last {
			return i + 1
		}
	}
	return len(m.container.Children)
}

func (m *Manager) insert(el *Element, at int) {
	children := m.container.Children
	children = append(children, nil)
	copy(children[at+1:], children[at:])
	children[at] = el
	m.container.Children = children
}
