package journal

import (
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
)

// Resolver answers query intents against a store. A query that matches
// nothing yields an empty slice, never an error, and repeated queries
// against an unchanged store return identical results.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(store *Store, q core.Query) []core.Entry {
	category := strings.ToLower(strings.TrimSpace(q.Category))
	keyword := strings.ToLower(strings.TrimSpace(q.Keyword))

	return store.Filter(func(e core.Entry) bool {
		if q.Type != "" && e.Type != q.Type {
			return false
		}
		if category != "" && !strings.Contains(strings.ToLower(e.Category), category) {
			return false
		}
		if keyword != "" && !strings.Contains(strings.ToLower(e.Text), keyword) {
			return false
		}
		return true
	})
}
