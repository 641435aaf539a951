package config

import "testing"

func TestFunctionMatcher(t *testing.T) {
	tests := []struct {
		input string
		name  string
		want  bool
	}{
		{"Src.get", "Src.get", true},
		{"Src.get", "Src.getAll", false},
		{"fuzzy:Src", "com.example.Src.get", true},
		{"fuzzy:Snk", "com.example.Src.get", false},
		{"glob:Src.*", "Src.get", true},
		{"glob:Src.*", "Snk.use", false},
		{"regex:^Src\\.\\w+$", "Src.get", true},
		{"regex:^Src\\.\\w+$", "Src.get()", false},
	}
	for _, tc := range tests {
		m, err := NewFunctionMatcherFromString(tc.input)
		if err != nil {
			t.Fatalf("NewFunctionMatcherFromString(%q): %v", tc.input, err)
		}
		if got := m.Match(tc.name); got != tc.want {
			t.Errorf("%q matching %q = %v, want %v", tc.input, tc.name, got, tc.want)
		}
	}
}

func TestFunctionMatcherInvalidRegex(t *testing.T) {
	if _, err := NewFunctionMatcherFromString("regex:("); err == nil {
		t.Fatal("expected an error for an invalid regex pattern")
	}
}
