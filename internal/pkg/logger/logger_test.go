package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"password", "hunter2",
		"access_token", "abc",
		"employee_email", "a@b.c",
		"status", 200,
	})
	if len(out) != 8 {
		t.Fatalf("unexpected length: %d", len(out))
	}
	for i := 0; i < 6; i += 2 {
		if out[i+1] != "[REDACTED]" {
			t.Fatalf("%v should be redacted, got %v", out[i], out[i+1])
		}
	}
	if out[7] != 200 {
		t.Fatalf("status should pass through, got %v", out[7])
	}
}

func TestSanitizeKVsHashesIdentifiers(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", "4a1c", "username", "jdoe"})
	for _, idx := range []int{1, 3} {
		s, ok := out[idx].(string)
		if !ok || !strings.HasPrefix(s, "hash:") {
			t.Fatalf("expected hashed value at %d, got %v", idx, out[idx])
		}
	}
	if out[1] == out[3] {
		t.Fatalf("distinct inputs should hash differently")
	}
}

func TestSanitizeKVsRedactsJWTLookingValues(t *testing.T) {
	jwtish := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.sig"
	out := sanitizeKVs([]interface{}{"detail", jwtish})
	if out[1] != "[REDACTED]" {
		t.Fatalf("jwt-looking value should be redacted, got %v", out[1])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"k", "v", "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("unexpected output: %v", out)
	}
}
