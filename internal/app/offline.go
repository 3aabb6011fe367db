package app

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed offline_responses.yaml
var defaultOfflineYAML []byte

const offlineDefaultKey = "default"

var (
	ErrOfflineNoDefault = errors.New("offline table: missing default entry")
	ErrOfflineMalformed = errors.New("offline table: malformed")
)

type OfflineEntry struct {
	Key   string
	Reply string
}

// OfflineTable is the static keyword → reply fallback used when the remote
// responder fails. Keys are matched as substrings in file order.
type OfflineTable struct {
	entries  []OfflineEntry
	fallback string
}

// ParseOfflineTable reads a flat YAML mapping. Order is preserved by walking
// the node tree instead of decoding into a Go map.
func ParseOfflineTable(b []byte) (*OfflineTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOfflineMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrOfflineMalformed)
	}

	m := doc.Content[0]
	t := &OfflineTable{}
	seen := make(map[string]struct{}, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: entries must be key: reply", ErrOfflineMalformed, k.Line)
		}
		key := strings.ToLower(strings.TrimSpace(k.Value))
		reply := strings.TrimSpace(v.Value)
		if key == "" || reply == "" {
			return nil, fmt.Errorf("%w: line %d: empty key or reply", ErrOfflineMalformed, k.Line)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate key %q", ErrOfflineMalformed, k.Line, key)
		}
		seen[key] = struct{}{}

		if key == offlineDefaultKey {
			t.fallback = reply
			continue
		}
		t.entries = append(t.entries, OfflineEntry{Key: key, Reply: reply})
	}
	if t.fallback == "" {
		return nil, ErrOfflineNoDefault
	}
	return t, nil
}

// LoadOfflineTable reads path, or the embedded table when path is empty.
func LoadOfflineTable(path string) (*OfflineTable, error) {
	if path == "" {
		return ParseOfflineTable(defaultOfflineYAML)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading offline table %s: %w", path, err)
	}
	return ParseOfflineTable(b)
}

// DefaultOfflineTable panics if the embedded table is invalid.
func DefaultOfflineTable() *OfflineTable {
	t, err := ParseOfflineTable(defaultOfflineYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the first entry whose key occurs in the utterance, or the
// default entry with matched=false.
func (t *OfflineTable) Lookup(utterance string) (reply string, matched bool) {
	lower := strings.ToLower(utterance)
	for _, e := range t.entries {
		if strings.Contains(lower, e.Key) {
			return e.Reply, true
		}
	}
	return t.fallback, false
}

func (t *OfflineTable) Entries() []OfflineEntry { return append([]OfflineEntry(nil), t.entries...) }
