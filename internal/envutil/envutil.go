// Where: internal/envutil/envutil.go
// What: Child-process environment assembly.
// Why: Keep the derived-then-ambient merge order in one place.
package envutil

import (
	"sort"
	"strings"
)

// Merge builds a child environment from three layers, later layers winning
// on key conflicts: the mode-derived pair, extra entries from project
// config, and finally the ambient process environment. Ambient values
// therefore always survive, matching the caller-override contract.
//
// Ambient entries are expected in "KEY=VALUE" form as returned by
// os.Environ; entries without a key are dropped.
func Merge(derived, extra map[string]string, ambient []string) []string {
	var keys []string
	values := map[string]string{}

	set := func(key, value string) {
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}

	for _, key := range sortedKeys(derived) {
		set(key, derived[key])
	}
	for _, key := range sortedKeys(extra) {
		set(key, extra[key])
	}
	for _, entry := range ambient {
		idx := strings.IndexByte(entry, '=')
		if idx <= 0 {
			continue
		}
		set(entry[:idx], entry[idx+1:])
	}

	merged := make([]string, 0, len(keys))
	for _, key := range keys {
		merged = append(merged, key+"="+values[key])
	}
	return merged
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
