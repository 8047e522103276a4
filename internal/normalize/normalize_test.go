package normalize

import "testing"

func TestEmail(t *testing.T) {
	in := "  Dr.Selly@Example.COM  "
	want := "dr.selly@example.com"
	if got := Email(in); got != want {
		t.Fatalf("Email(%q) = %q, want %q", in, got, want)
	}
}

func TestText(t *testing.T) {
	if got := Text("  hello \n"); got != "hello" {
		t.Fatalf("Text trimmed wrong: %q", got)
	}
	if got := Text(" \t\n "); got != "" {
		t.Fatalf("whitespace-only text should normalize to empty, got %q", got)
	}
}
