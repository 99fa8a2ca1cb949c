// Package posters turns the accepted-posters CSV export into the posters
// page served alongside the main document.
package posters

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Poster is one accepted poster, assigned to a presentation session.
type Poster struct {
	Title   string
	Authors string
	Session int
}

// SessionTimes maps session ids to their slot in the program.
var SessionTimes = map[int]string{
	1: "10:15 - 11:15",
	2: "13:45 - 14:45",
	3: "16:40 - 17:40",
}

// LoadCSV reads the posters CSV. Expected columns: "Poster Session ID",
// "title", "Authors". Rows naming a session outside the program are an error.
func LoadCSV(r io.Reader) ([]Poster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading posters CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Poster Session ID", "title", "Authors"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("posters CSV missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var posters []Poster
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading posters CSV line %d: %w", line, err)
		}

		rawSession := field(record, "Poster Session ID")
		session, err := strconv.Atoi(rawSession)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid session id %q", line, rawSession)
		}
		if _, ok := SessionTimes[session]; !ok {
			return nil, fmt.Errorf("line %d: unknown session %d", line, session)
		}

		title := field(record, "title")
		if title == "" {
			return nil, fmt.Errorf("line %d: empty title", line)
		}

		posters = append(posters, Poster{
			Title:   title,
			Authors: field(record, "Authors"),
			Session: session,
		})
	}

	return posters, nil
}

// Session groups the posters presented in one slot.
type Session struct {
	ID      int
	Time    string
	Posters []Poster
}

// BySession groups posters by session id, in session order. Every session in
// the program appears even when it has no posters yet.
func BySession(posters []Poster) []Session {
	grouped := make(map[int][]Poster)
	for _, p := range posters {
		grouped[p.Session] = append(grouped[p.Session], p)
	}

	ids := make([]int, 0, len(SessionTimes))
	for id := range SessionTimes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, Session{
			ID:      id,
			Time:    SessionTimes[id],
			Posters: grouped[id],
		})
	}
	return sessions
}
