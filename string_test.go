package mathml

import "testing"

func TestNormalize(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{name: "empty", input: "", output: ""},
		{name: "only spaces", input: " \n\t ", output: ""},
		{name: "trim", input: "  x + 1 ", output: "x + 1"},
		{name: "collapse", input: "x  +\n\t1", output: "x + 1"},
		{name: "escaped space is kept", input: `a\ b`, output: `a\ b`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalize(tc.input); got != tc.output {
				t.Errorf("Normalized string does not match: want %q, got %q", tc.output, got)
			}
		})
	}
}
