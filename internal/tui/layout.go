package tui

import (
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/session"
	"github.com/mmcdole/streamvault/internal/tui/components"
)

// browseRow is one navigable row of the catalog screen: the hero banner
// or a shelf
type browseRow struct {
	hero     bool
	heroView domain.TitleView
	featured domain.Featured
	shelf    domain.ShelfView
}

func (r browseRow) len() int {
	if r.hero {
		return 1
	}
	return len(r.shelf.Titles)
}

func (r browseRow) at(i int) domain.TitleView {
	if r.hero {
		return r.heroView
	}
	return r.shelf.Titles[i]
}

// browseRows lists the rows shown while the query is empty
func browseRows(s *session.Session) []browseRow {
	var rows []browseRow
	if v, f, ok := s.Hero(); ok {
		rows = append(rows, browseRow{hero: true, heroView: v, featured: f})
	}
	for _, shelf := range s.Views().Shelves {
		rows = append(rows, browseRow{shelf: shelf})
	}
	return rows
}

// searching reports whether the flat results grid replaces the shelves
func searching(s *session.Session) bool {
	return s.Searching()
}

// selected returns the title under the cursor
func (m Model) selected(s *session.Session) (domain.TitleView, bool) {
	if searching(s) {
		results := s.Views().Results
		if m.ResultCursor < 0 || m.ResultCursor >= len(results) {
			return domain.TitleView{}, false
		}
		return results[m.ResultCursor], true
	}

	rows := browseRows(s)
	if m.Row < 0 || m.Row >= len(rows) {
		return domain.TitleView{}, false
	}
	row := rows[m.Row]
	if m.Col < 0 || m.Col >= row.len() {
		return domain.TitleView{}, false
	}
	return row.at(m.Col), true
}

// moveCursor shifts the cursor by rows/cols within the current layout
func (m *Model) moveCursor(s *session.Session, dRow, dCol int) {
	if searching(s) {
		perRow := components.CardsPerRow(m.Width)
		n := len(s.Views().Results)
		next := m.ResultCursor + dRow*perRow + dCol
		if next >= 0 && next < n {
			m.ResultCursor = next
		}
		return
	}

	rows := browseRows(s)
	if len(rows) == 0 {
		return
	}
	m.Row = min(max(m.Row+dRow, 0), len(rows)-1)
	m.Col = min(max(m.Col+dCol, 0), rows[m.Row].len()-1)
}

// clampCursors keeps cursors on a valid title after the view changed
// underneath them (a block, a query edit, a sign-out)
func (m *Model) clampCursors() {
	s := m.session()
	if s == nil {
		m.Row, m.Col, m.ResultCursor = 0, 0, 0
		return
	}
	n := len(s.Views().Results)
	m.ResultCursor = min(max(m.ResultCursor, 0), max(n-1, 0))

	rows := browseRows(s)
	if len(rows) == 0 {
		m.Row, m.Col = 0, 0
		return
	}
	m.Row = min(max(m.Row, 0), len(rows)-1)
	m.Col = min(max(m.Col, 0), max(rows[m.Row].len()-1, 0))
}
