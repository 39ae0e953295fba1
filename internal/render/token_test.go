package render

import "testing"

func TestSubstituteReplacesAllTokens(t *testing.T) {
	vars := map[string]string{
		"clientName":    "Acme Ltd",
		"invoiceNumber": "INV-0042",
	}
	got := Substitute("Invoice {invoiceNumber} for {clientName}", vars)
	if got != "Invoice INV-0042 for Acme Ltd" {
		t.Fatalf("unexpected substitution: %q", got)
	}
}

func TestSubstituteMissingKeyBecomesEmpty(t *testing.T) {
	got := Substitute("Hello {nobody}!", map[string]string{})
	if got != "Hello !" {
		t.Fatalf("expected missing token to resolve empty, got %q", got)
	}
	if HasToken(got) {
		t.Fatalf("result still contains a token: %q", got)
	}
}

func TestSubstituteIsSinglePass(t *testing.T) {
	vars := map[string]string{
		"a": "{b}",
		"b": "never",
	}
	got := Substitute("{a}", vars)
	if got != "{b}" {
		t.Fatalf("expected single-pass substitution, got %q", got)
	}
}

func TestSubstituteLeavesPlainTextAlone(t *testing.T) {
	text := "no tokens here, just braces }{"
	if got := Substitute(text, map[string]string{"x": "y"}); got != text {
		t.Fatalf("plain text changed: %q", got)
	}
}

func TestHasToken(t *testing.T) {
	if !HasToken("{companyName}") {
		t.Fatalf("expected token detection")
	}
	if HasToken("plain") {
		t.Fatalf("false positive on plain text")
	}
	if HasToken("{}") {
		t.Fatalf("empty braces are not a token")
	}
}
