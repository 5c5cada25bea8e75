package routes

import (
	"fmt"
	"strings"

	"github.com/louisbranch/showcase/internal/services/web/routepath"
)

// Name is the logical page name of a route.
type Name string

const (
	NameHome           Name = "home"
	NameProjectGallery Name = "projectGallery"
	NamePageNotFound   Name = "pageNotFound"
)

// Entry maps one logical page name to its URL path.
type Entry struct {
	Name Name
	Path string
}

// Table is an immutable set of route entries.
type Table struct {
	entries  []Entry
	byPath   map[string]Entry
	byName   map[Name]Entry
	notFound Entry
}

// NewTable validates entries and builds a table. notFound names the entry
// unmatched paths redirect to; it must be one of entries.
func NewTable(notFound Name, entries ...Entry) (Table, error) {
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("route table requires at least one entry")
	}
	table := Table{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[string]Entry, len(entries)),
		byName:  make(map[Name]Entry, len(entries)),
	}
	for _, entry := range entries {
		entry.Name = Name(strings.TrimSpace(string(entry.Name)))
		entry.Path = strings.TrimSpace(entry.Path)
		if entry.Name == "" {
			return Table{}, fmt.Errorf("route %q: name is required", entry.Path)
		}
		if !strings.HasPrefix(entry.Path, "/") {
			return Table{}, fmt.Errorf("route %q: path %q must start with /", entry.Name, entry.Path)
		}
		if previous, ok := table.byPath[entry.Path]; ok {
			return Table{}, fmt.Errorf("route %q duplicates path %q owned by %q", entry.Name, entry.Path, previous.Name)
		}
		if _, ok := table.byName[entry.Name]; ok {
			return Table{}, fmt.Errorf("route name %q is declared twice", entry.Name)
		}
		table.entries = append(table.entries, entry)
		table.byPath[entry.Path] = entry
		table.byName[entry.Name] = entry
	}
	fallback, ok := table.byName[notFound]
	if !ok {
		return Table{}, fmt.Errorf("not-found route %q is not in the table", notFound)
	}
	table.notFound = fallback
	return table, nil
}

// DefaultTable returns the site's route table.
func DefaultTable() Table {
	table, err := NewTable(NamePageNotFound,
		Entry{Name: NameHome, Path: routepath.Root},
		Entry{Name: NameProjectGallery, Path: routepath.ProjectGallery},
		Entry{Name: NamePageNotFound, Path: routepath.PageNotFound},
	)
	if err != nil {
		panic(fmt.Sprintf("default route table: %v", err))
	}
	return table
}

// Match returns the entry whose path equals path exactly.
func (t Table) Match(path string) (Entry, bool) {
	entry, ok := t.byPath[path]
	return entry, ok
}

// Lookup returns the entry registered under name.
func (t Table) Lookup(name Name) (Entry, bool) {
	entry, ok := t.byName[name]
	return entry, ok
}

// Path returns the path registered under name, or the not-found path when
// name is unknown.
func (t Table) Path(name Name) string {
	if entry, ok := t.byName[name]; ok {
		return entry.Path
	}
	return t.notFound.Path
}

// NotFound returns the redirect target for unmatched paths.
func (t Table) NotFound() Entry {
	return t.notFound
}

// Entries returns a copy of the table in declaration order.
func (t Table) Entries() []Entry {
	result := make([]Entry, len(t.entries))
	copy(result, t.entries)
	return result
}
