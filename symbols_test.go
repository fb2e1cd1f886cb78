package mathml

import "testing"

func TestSubstitutions(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{name: "greek", input: "αβΓ", output: "alphabetaGamma"},
		{name: "slash is doubled", input: "m/s", output: "m//s"},
		{name: "backslash is escaped", input: `a\b`, output: `a\\b`},
		{name: "produced slashes are not doubled", input: "∅ ∠", output: "O/ /_"},
		{name: "produced backslash is not escaped", input: "△", output: `/_\`},
		{name: "tilde", input: "~", output: "tilde"},
		{name: "produced tildes are kept", input: "≅ ≈ ⌈x⌉", output: "~= ~~ |~x~|"},
		{name: "four nbsp", input: "\u00a0\u00a0\u00a0\u00a0", output: "qquad"},
		{name: "two nbsp", input: "\u00a0\u00a0", output: "quad"},
		{name: "one nbsp", input: "\u00a0", output: `\ `},
		{name: "three nbsp", input: "\u00a0\u00a0\u00a0", output: `quad\ `},
		{name: "six nbsp", input: "\u00a0\u00a0\u00a0\u00a0\u00a0\u00a0", output: "qquadquad"},
		{name: "angle brackets", input: "〈x〉⟨y⟩", output: "<<x>><<y>>"},
		{name: "arrows", input: "→↦⇒⇔", output: "->|->=><=>"},
		{name: "relations", input: "≤≥≠∈∉", output: "<=>=!=in!in"},
		{name: "blackboard", input: "ℝℕ", output: "RRNN"},
		{name: "invisible function application", input: "f\u2061x", output: "fx"},
		{name: "line separators", input: "a\u2028b\u2029c", output: "a b c"},
		{name: "minus", input: "−1", output: "-1"},
		{name: "plain text", input: "abc 123", output: "abc 123"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := defaultReplacer.Replace(tc.input); got != tc.output {
				t.Errorf("Substitution does not match: want %q, got %q", tc.output, got)
			}
		})
	}
}

func TestSubstitutionsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range substitutions {
		if seen[rule.From] {
			t.Errorf("Duplicate substitution for %q", rule.From)
		}

		seen[rule.From] = true
	}
}
