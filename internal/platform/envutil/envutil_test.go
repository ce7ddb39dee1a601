package envutil

import (
	"testing"
	"time"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := Lookup
	Lookup = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	t.Cleanup(func() { Lookup = prev })
}

func TestEnvHelpers(t *testing.T) {
	withEnv(t, map[string]string{
		"PORT":    " 9090 ",
		"BAD_INT": "nine",
		"FLAG":    "yes",
		"TTL":     "120",
		"TTL2":    "2m",
		"ORIGINS": "http://a, ,http://b",
		"RATIO":   "0.25",
	})

	if got := String("PORT", "8080"); got != "9090" {
		t.Fatalf("String: got %q", got)
	}
	if got := String("MISSING", "x"); got != "x" {
		t.Fatalf("String default: got %q", got)
	}
	if got := Int("PORT", 0); got != 9090 {
		t.Fatalf("Int: got %d", got)
	}
	if got := Int("BAD_INT", 7); got != 7 {
		t.Fatalf("Int fallback: got %d", got)
	}
	if !Bool("FLAG", false) {
		t.Fatalf("Bool: expected true")
	}
	if got := Duration("TTL", 0); got != 2*time.Minute {
		t.Fatalf("Duration seconds: got %s", got)
	}
	if got := Duration("TTL2", 0); got != 2*time.Minute {
		t.Fatalf("Duration string: got %s", got)
	}
	if got := Float("RATIO", 1); got != 0.25 {
		t.Fatalf("Float: got %v", got)
	}
	if got := Float("BAD_INT", 1); got != 1 {
		t.Fatalf("Float fallback: got %v", got)
	}
	got := List("ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("List: got %v", got)
	}
}
