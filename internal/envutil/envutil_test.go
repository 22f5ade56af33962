// Where: internal/envutil/envutil_test.go
// What: Tests for environment merge ordering.
// Why: Ensure ambient entries always win over derived ones.
package envutil

import (
	"testing"
)

func asMap(t *testing.T, env []string) map[string]string {
	t.Helper()
	m := map[string]string{}
	for _, entry := range env {
		for i := 0; i < len(entry); i++ {
			if entry[i] == '=' {
				m[entry[:i]] = entry[i+1:]
				break
			}
		}
	}
	return m
}

func TestMergeDerivedOnly(t *testing.T) {
	env := Merge(map[string]string{"NODE_ENV": "production", "BABEL_ENV": "production"}, nil, nil)

	got := asMap(t, env)
	if got["NODE_ENV"] != "production" {
		t.Fatalf("unexpected NODE_ENV: %q", got["NODE_ENV"])
	}
	if got["BABEL_ENV"] != "production" {
		t.Fatalf("unexpected BABEL_ENV: %q", got["BABEL_ENV"])
	}
	if len(env) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(env), env)
	}
}

func TestMergeAmbientWins(t *testing.T) {
	env := Merge(
		map[string]string{"NODE_ENV": "development"},
		nil,
		[]string{"NODE_ENV=production", "HOME=/home/u"},
	)

	got := asMap(t, env)
	if got["NODE_ENV"] != "production" {
		t.Fatalf("ambient value should win, got %q", got["NODE_ENV"])
	}
	if got["HOME"] != "/home/u" {
		t.Fatalf("ambient entry lost: %v", env)
	}
}

func TestMergeExtraAboveDerivedBelowAmbient(t *testing.T) {
	env := Merge(
		map[string]string{"SOURCE_MAPS": "derived", "NODE_ENV": "production"},
		map[string]string{"SOURCE_MAPS": "extra"},
		[]string{"NODE_ENV=ci"},
	)

	got := asMap(t, env)
	if got["SOURCE_MAPS"] != "extra" {
		t.Fatalf("extra should override derived, got %q", got["SOURCE_MAPS"])
	}
	if got["NODE_ENV"] != "ci" {
		t.Fatalf("ambient should override derived, got %q", got["NODE_ENV"])
	}
}

func TestMergeEmptyAmbientValueStillWins(t *testing.T) {
	env := Merge(map[string]string{"NODE_ENV": "production"}, nil, []string{"NODE_ENV="})

	got := asMap(t, env)
	if got["NODE_ENV"] != "" {
		t.Fatalf("empty ambient value should win, got %q", got["NODE_ENV"])
	}
}

func TestMergeDropsKeylessEntries(t *testing.T) {
	env := Merge(nil, nil, []string{"=weird", "bare", "OK=1"})

	got := asMap(t, env)
	if len(got) != 1 || got["OK"] != "1" {
		t.Fatalf("unexpected merge result: %v", env)
	}
}

func TestMergeValueContainingEquals(t *testing.T) {
	env := Merge(nil, nil, []string{"FLAGS=a=b=c"})

	got := asMap(t, env)
	if got["FLAGS"] != "a=b=c" {
		t.Fatalf("value split on wrong separator: %v", env)
	}
}
