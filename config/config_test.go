package config

import "testing"

func TestParseAndMatch(t *testing.T) {
	data := []byte(`
sources:
  - pattern: "Src.get"
sinks:
  - pattern: "Snk.use"
    arg: 0
transfers:
  - pattern: "Wrap.of"
    kind: arg-to-result
    arg: 0
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !m.IsSource("Src.get") {
		t.Error("expected Src.get to be a source")
	}
	if m.IsSource("Snk.use") {
		t.Error("did not expect Snk.use to be a source")
	}
	argPos, ok := m.Sink("Snk.use")
	if !ok || argPos != 0 {
		t.Errorf("Sink(Snk.use) = %v, %v, want 0, true", argPos, ok)
	}
	if _, ok := m.Sink("Other.method"); ok {
		t.Error("did not expect a sink match for Other.method")
	}
	kind, arg, ok := m.Transfer("Wrap.of")
	if !ok || kind != TransferArgToResult || arg != 0 {
		t.Errorf("Transfer(Wrap.of) = %v, %v, %v", kind, arg, ok)
	}
	if _, _, ok := m.Transfer("Other.method"); ok {
		t.Error("did not expect a transfer match for Other.method")
	}
}

func TestLoadEmptyPathIsNoop(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if _, ok := m.Sink("anything"); m.IsSource("anything") || ok {
		t.Error("expected a no-op Matchers for an empty path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/config.yaml"); err == nil {
		t.Fatal("expected an error reading a missing config file")
	}
}
