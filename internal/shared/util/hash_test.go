package util

import "testing"

func TestTextFingerprint(t *testing.T) {
	text := "Senior software engineer with ten years of experience."
	got := TextFingerprint(text)
	if got != TextFingerprint(text) {
		t.Fatalf("expected stable fingerprint, got %s", got)
	}
	if got == TextFingerprint(text+" ") {
		t.Fatalf("expected different input to produce a different fingerprint")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("fingerprint contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
