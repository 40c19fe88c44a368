package messages

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

// maxSuggestionDistance bounds how far a suggested key may be from the requested one.
const maxSuggestionDistance = 3

// Catalog is an immutable key → message mapping.
type Catalog struct {
	entries map[string]string
}

var (
	_ constraint.Messages  = (*Catalog)(nil)
	_ constraint.Suggester = (*Catalog)(nil)
)

// New copies entries into a catalog. Empty messages are dropped.
func New(entries map[string]string) *Catalog {
	c := &Catalog{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		if v != "" {
			c.entries[k] = v
		}
	}
	return c
}

func (c *Catalog) Message(key string) (string, bool) {
	msg, ok := c.entries[key]
	return msg, ok
}

// Keys returns the known keys in lexical order.
func (c *Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Suggest returns the known key closest to key, if one is close enough to be
// a plausible typo.
func (c *Catalog) Suggest(key string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range c.Keys() {
		if candidate == key {
			continue
		}
		d := levenshtein.ComputeDistance(strings.ToUpper(key), strings.ToUpper(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}

// Require reports every key the catalog cannot resolve.
func (c *Catalog) Require(keys ...string) error {
	var missing []string
	suggestions := make(map[string]string)
	for _, key := range keys {
		if _, ok := c.entries[key]; ok {
			continue
		}
		missing = append(missing, key)
		if s, ok := c.Suggest(key); ok {
			suggestions[key] = s
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &constraint.MissingMessageError{
		Constraint:  "catalog",
		Keys:        missing,
		Suggestions: suggestions,
	}
}

// Merge returns a new catalog holding c overlaid with other.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := maps.Clone(c.entries)
	if other != nil {
		maps.Copy(merged, other.entries)
	}
	return &Catalog{entries: merged}
}

// Scope returns the messages stored under prefix, with the prefix removed.
func (c *Catalog) Scope(prefix string) *Catalog {
	prefix = strings.TrimSuffix(prefix, ".") + "."
	scoped := make(map[string]string)
	for k, v := range c.entries {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			scoped[rest] = v
		}
	}
	return &Catalog{entries: scoped}
}

func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog{%d messages}", len(c.entries))
}

// Builder assembles a catalog entry by entry.
type Builder struct {
	entries map[string]string
}

func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]string)}
}

// Add sets the message for key, replacing any previous one.
func (b *Builder) Add(key, message string) *Builder {
	b.entries[key] = message
	return b
}

func (b *Builder) Build() *Catalog {
	return New(b.entries)
}
