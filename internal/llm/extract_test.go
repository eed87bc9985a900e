package llm

import "testing"

func TestExtractJSON_BareObject(t *testing.T) {
	got, err := ExtractJSON(`{"score":25}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"score":25}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	text := "Here is the analysis you asked for:\n\n{\"topic\":\"sepsis\"}\n\nLet me know if you need more."
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"topic":"sepsis"}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	text := "```json\n{\"quality\":\"optimal\"}\n```"
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"quality":"optimal"}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	text := `prefix {"outer":{"inner":[1,2,3]}} suffix`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"outer":{"inner":[1,2,3]}}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	text := `{"note":"beware of } inside strings","ok":true}`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != text {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	text := `{"quote":"she said \"wait\" and left"}`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != text {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	if _, err := ExtractJSON("no structured data here"); err == nil {
		t.Fatal("expected error for text without JSON")
	}
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	if _, err := ExtractJSON(`{"truncated": "respon`); err == nil {
		t.Fatal("expected error for unterminated object")
	}
}
