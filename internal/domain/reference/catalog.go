package reference

import "sync"

type table struct {
	entries []Entry
	byName  map[string]string
	ids     map[string]struct{}
}

// Catalog is the in-memory Store. The zero value and a nil *Catalog are both
// usable and resolve nothing.
type Catalog struct {
	mu     sync.RWMutex
	tables map[Table]*table
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[Table]*table)}
}

// Add appends entries to t. Entries with an empty ID are skipped; the first
// entry registered for a display name wins.
func (c *Catalog) Add(t Table, entries ...Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tables == nil {
		c.tables = make(map[Table]*table)
	}
	tbl, ok := c.tables[t]
	if !ok {
		tbl = &table{
			byName: make(map[string]string),
			ids:    make(map[string]struct{}),
		}
		c.tables[t] = tbl
	}

	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		tbl.entries = append(tbl.entries, e)
		tbl.ids[e.ID] = struct{}{}
		if e.DisplayName == "" {
			continue
		}
		key := NormalizeName(e.DisplayName)
		if _, exists := tbl.byName[key]; !exists {
			tbl.byName[key] = e.ID
		}
	}
}

// Resolve implements Store
func (c *Catalog) Resolve(t Table, name string) (string, bool) {
	if c == nil || name == "" {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	tbl, ok := c.tables[t]
	if !ok {
		return "", false
	}
	if id, ok := tbl.byName[NormalizeName(name)]; ok {
		return id, true
	}
	if _, ok := tbl.ids[name]; ok {
		return name, true
	}
	return "", false
}

// Default implements Store
func (c *Catalog) Default(t Table) string {
	if c == nil {
		return ""
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	tbl, ok := c.tables[t]
	if !ok || len(tbl.entries) == 0 {
		return ""
	}
	return tbl.entries[0].ID
}

// Entries returns a copy of the entries of t in insertion order
func (c *Catalog) Entries(t Table) []Entry {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	tbl, ok := c.tables[t]
	if !ok {
		return nil
	}
	out := make([]Entry, len(tbl.entries))
	copy(out, tbl.entries)
	return out
}

// Len returns the number of entries across all tables
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, tbl := range c.tables {
		n += len(tbl.entries)
	}
	return n
}

// Empty is a Store with no mappings, used when reference data failed to load
var Empty Store = (*Catalog)(nil)
