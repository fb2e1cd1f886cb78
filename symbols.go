package mathml

import "strings"

// Substitution replaces a character (or a short character sequence) in text content with AsciiMath token.
type Substitution struct {
	From string
	To   string
}

// substitutions are applied in a single pass, when several rules match at the same position the one declared
// first wins, so longer sequences must go before their prefixes.
var substitutions = []Substitution{
	// greek
	{"α", "alpha"},
	{"β", "beta"},
	{"γ", "gamma"},
	{"Γ", "Gamma"},
	{"δ", "delta"},
	{"Δ", "Delta"},
	{"∆", "Delta"},
	{"ε", "epsilon"},
	{"ɛ", "varepsilon"},
	{"ζ", "zeta"},
	{"η", "eta"},
	{"θ", "theta"},
	{"Θ", "Theta"},
	{"ϑ", "vartheta"},
	{"ι", "iota"},
	{"κ", "kappa"},
	{"λ", "lambda"},
	{"Λ", "Lambda"},
	{"μ", "mu"},
	{"ν", "nu"},
	{"ξ", "xi"},
	{"Ξ", "Xi"},
	{"π", "pi"},
	{"Π", "Pi"},
	{"ρ", "rho"},
	{"ς", "beta"},
	{"σ", "sigma"},
	{"Σ", "Sigma"},
	{"τ", "tau"},
	{"υ", "upsilon"},
	{"φ", "phi"},
	{"Φ", "Phi"},
	{"ϕ", "varphi"},
	{"χ", "chi"},
	{"ψ", "psi"},
	{"Ψ", "Psi"},
	{"ω", "omega"},
	{"Ω", "omega"},

	// operators
	{"⋅", "*"},
	{"∙", "*"},
	{"·", "*"},
	{"∗", "**"},
	{"⋆", "***"},
	{"/", "//"},
	{"\\", "\\\\"},
	{"×", "xx"},
	{"⋉", "|><"},
	{"⋊", "><|"},
	{"⋈", "|><|"},
	{"÷", "-:"},
	{"∘", "@"},
	{"⊕", "o+"},
	{"⨁", "o+"},
	{"⊗", "ox"},
	{"⊙", "o."},
	{"∑", "sum"},
	{"∏", "prod"},
	{"∧", "^^"},
	{"⋀", "^^^"},
	{"∨", "vv"},
	{"⋁", "vvv"},
	{"∩", "nn"},
	{"⋂", "nnn"},
	{"∪", "uu"},
	{"⋃", "uuu"},

	// relations
	{"≠", "!="},
	{"≤", "<="},
	{"≥", ">="},
	{"≺", "-<"},
	{"≻", ">-"},
	{"⪯", "-<="},
	{"⪰", ">-="},
	{"∈", "in"},
	{"∉", "!in"},
	{"⊂", "sub"},
	{"⊃", "sup"},
	{"⊆", "sube"},
	{"⊇", "supe"},
	{"≡", "-="},
	{"≅", "~="},
	{"≈", "~~"},
	{"∝", "prop"},

	// logic
	{"¬", "not"},
	{"∀", "AA"},
	{"∃", "EE"},
	{"⊥", "_|_"},
	{"⊤", "TT"},
	{"⊢", "|--"},
	{"⊨", "|=="},

	// brackets
	{"〈", "<<"},
	{"〉", ">>"},
	{"⟨", "<<"},
	{"⟩", ">>"},
	{"⌊", "|__"},
	{"⌋", "__|"},
	{"⌈", "|~"},
	{"⌉", "~|"},

	// misc
	{"∫", "int"},
	{"∮", "oint"},
	{"∂", "del"},
	{"∇", "grad"},
	{"±", "+-"},
	{"∅", "O/"},
	{"∞", "oo"},
	{"ℵ", "aleph"},
	{"∴", ":."},
	{"∵", ":'"},
	{"∠", "/_"},
	{"△", "/_\\"},
	{"′", "'"},
	{"~", "tilde"},
	{"\u00a0\u00a0\u00a0\u00a0", "qquad"},
	{"\u00a0\u00a0", "quad"},
	{"\u00a0", "\\ "},
	{"⌢", "frown"},
	{"⋯", "cdots"},
	{"⋮", "vdots"},
	{"⋱", "ddots"},
	{"⋄", "diamond"},
	{"□", "square"},
	{"❑", "square"},
	{"…", "..."},
	{"−", "-"},
	{"\u2061", ""},
	{"\u2028", " "},
	{"\u2029", " "},

	// blackboard
	{"ℂ", "CC"},
	{"ℕ", "NN"},
	{"ℚ", "QQ"},
	{"ℝ", "RR"},
	{"ℤ", "ZZ"},

	// arrows
	{"↑", "uarr"},
	{"↓", "darr"},
	{"←", "larr"},
	{"↔", "harr"},
	{"⇒", "=>"},
	{"⇐", "lArr"},
	{"⇔", "<=>"},
	{"→", "->"},
	{"↣", ">->"},
	{"↠", "->>"},
	{"⤖", ">->>"},
	{"↦", "|->"},
}

var underAccents = map[string]string{
	"\u0332": "ul",
	"\u23df": "ubrace",
}

var overAccents = map[string]string{
	"^":      "hat",
	"\u00af": "bar",
	"->":     "vec",
	".":      "dot",
	"..":     "ddot",
	"\u23de": "obrace",
}

var defaultReplacer = newReplacer(substitutions)

// newReplacer builds replacer from rules, rules are passed to strings.NewReplacer in the same order
func newReplacer(rules []Substitution) *strings.Replacer {
	pairs := make([]string, 0, len(rules)*2)
	for _, rule := range rules {
		pairs = append(pairs, rule.From, rule.To)
	}

	return strings.NewReplacer(pairs...)
}
