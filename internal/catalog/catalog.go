// Package catalog holds the static room-service menu and the housekeeping
// and maintenance rule tables the intent router matches against.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aadhira_hotel/internal/domain"
)

var (
	ErrDuplicateItem   = errors.New("catalog: duplicate item id")
	ErrNegativePrice   = errors.New("catalog: negative price")
	ErrUnknownCategory = errors.New("catalog: unknown category")
	ErrEmptyRule       = errors.New("catalog: rule without keywords")
)

// Rule maps keywords to an actionable service request. Rules are evaluated
// in slice order and the first rule with a contained keyword wins.
type Rule struct {
	Keywords    []string
	Label       string // short name used in replies, e.g. "fresh towels"
	Description string // ledger description
	Priority    domain.Priority
	ETAMinutes  int
	FollowUp    string
}

// Matches reports whether any keyword is a substring of the lower-cased input.
func (r Rule) Matches(lower string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

type Catalog struct {
	items        []domain.ServiceItem
	housekeeping []Rule
	maintenance  []Rule
}

// New validates and freezes the given definitions.
func New(items []domain.ServiceItem, housekeeping, maintenance []Rule) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, it.ID)
		}
		if !it.Category.Valid() {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownCategory, it.Category, it.ID)
		}
	}
	for _, rules := range [][]Rule{housekeeping, maintenance} {
		for _, r := range rules {
			if len(r.Keywords) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrEmptyRule, r.Label)
			}
		}
	}
	return &Catalog{
		items:        append([]domain.ServiceItem(nil), items...),
		housekeeping: lowerRules(housekeeping),
		maintenance:  lowerRules(maintenance),
	}, nil
}

// Default returns the hotel's built-in catalog. It panics if the built-in
// data violates catalog invariants.
func Default() *Catalog {
	c, err := New(defaultMenu, defaultHousekeeping, defaultMaintenance)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Items() []domain.ServiceItem {
	return append([]domain.ServiceItem(nil), c.items...)
}

// Available returns the available items of one category in menu order.
func (c *Catalog) Available(cat domain.Category) []domain.ServiceItem {
	var out []domain.ServiceItem
	for _, it := range c.items {
		if it.Category == cat && it.Available {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the first item whose lower-cased name or id is contained in lower.
func (c *Catalog) Find(lower string) (domain.ServiceItem, bool) {
	for _, it := range c.items {
		if strings.Contains(lower, strings.ToLower(it.Name)) || strings.Contains(lower, strings.ToLower(it.ID)) {
			return it, true
		}
	}
	return domain.ServiceItem{}, false
}

func (c *Catalog) Housekeeping() []Rule { return c.housekeeping }
func (c *Catalog) Maintenance() []Rule  { return c.maintenance }

// FormatPrice renders a price as "$18" or "$18.50".
func FormatPrice(p float64) string {
	if p == float64(int64(p)) {
		return "$" + strconv.FormatInt(int64(p), 10)
	}
	return "$" + strconv.FormatFloat(p, 'f', 2, 64)
}

func lowerRules(in []Rule) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		kw := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			kw[j] = strings.ToLower(k)
		}
		r.Keywords = kw
		out[i] = r
	}
	return out
}
