package mathml

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/eolymp/go-mathml/internal/logging"
)

var (
	ErrArity       = errors.New("unexpected number of children")
	ErrUnsupported = errors.New("unsupported element")
)

// Converter transforms MathML trees into AsciiMath. Converter is immutable and safe for concurrent use.
type Converter struct {
	logger   *slog.Logger
	strict   bool
	replacer *strings.Replacer
}

type Option func(*Converter)

// WithLogger sets logger used to report unsupported elements
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithStrict makes converter fail on unsupported elements instead of rendering Fail(name) marker
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.strict = strict
	}
}

// WithSubstitutions adds text substitutions, they take precedence over built-in ones
func WithSubstitutions(rules ...Substitution) Option {
	return func(c *Converter) {
		c.replacer = newReplacer(append(slices.Clone(rules), substitutions...))
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{logger: logging.NewNop(), replacer: defaultReplacer}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

var std = New()

// Convert converts MathML markup to AsciiMath using default converter
func Convert(input string) (string, error) {
	return std.Convert(input)
}

// Render writes AsciiMath representation of the node using default converter
func Render(w io.Writer, node *Node) error {
	return std.Render(w, node)
}

func (c *Converter) Convert(input string) (string, error) {
	node, err := Parse(strings.NewReader(Clean(input)))
	if err != nil {
		return "", fmt.Errorf("unable to parse mathml: %w", err)
	}

	return c.String(node)
}

func (c *Converter) Render(w io.Writer, node *Node) error {
	out, err := c.String(node)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, out)
	return err
}

func (c *Converter) String(node *Node) (string, error) {
	out, err := c.convert(node)
	if err != nil {
		return "", err
	}

	return normalize(out), nil
}

func (c *Converter) convert(node *Node) (string, error) {
	switch node.Kind {
	case DocumentKind:
		return c.join(node.content(), " ")
	case TextKind:
		return c.replacer.Replace(node.Data), nil
	case ElementKind:
		return c.element(node)
	default:
		return "", nil
	}
}

// join converts nodes, trims each fragment and joins them with separator
func (c *Converter) join(nodes []*Node, sep string) (string, error) {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out, err := c.convert(node)
		if err != nil {
			return "", err
		}

		parts = append(parts, strings.TrimSpace(out))
	}

	return strings.Join(parts, sep), nil
}

func (c *Converter) element(node *Node) (string, error) {
	children := node.content()

	switch ElementOf(node.Data) {
	case MathElement, RowElement, StyleElement, SemanticsElement, IdentifierElement:
		return c.join(children, " ")
	case AnnotationElement, AnnotationXMLElement, PrescriptsElement:
		return "", nil
	case FencedElement:
		out, err := c.join(children, ",")
		if err != nil {
			return "", err
		}

		return attribute(node, "open", "(") + out + attribute(node, "close", ")"), nil
	case SqrtElement:
		out, err := c.join(children, " ")
		if err != nil {
			return "", err
		}

		return "sqrt(" + out + ")", nil
	case RootElement:
		return c.root(node, children)
	case FracElement:
		return c.frac(node, children)
	case SupElement:
		return c.sup(node, children)
	case SubElement:
		return c.sub(node, children)
	case SubSupElement, UnderOverElement:
		return c.subsup(node, children)
	case UnderElement:
		return c.accent(node, children, underAccents, "underset")
	case OverElement:
		return c.accent(node, children, overAccents, "overset")
	case MultiscriptsElement:
		return c.multiscripts(node, children)
	case TableElement, TableRowElement:
		out, err := c.join(children, ",")
		if err != nil {
			return "", err
		}

		return "[" + out + "]", nil
	case TableCellElement:
		return c.join(children, ",")
	case OperatorElement:
		out, err := c.join(children, " ")
		if err != nil {
			return "", err
		}

		if flag(node, "fence") {
			return " " + out + " ", nil
		}

		return out, nil
	case NumberElement, TextElement, AlignMarkElement, AlignGroupElement, PhantomElement, EncloseElement, NoneElement:
		return c.join(children, "")
	default:
		return c.unsupported(node)
	}
}

// unsupported renders visible marker in place of unknown element, so the rest of the expression is still converted
func (c *Converter) unsupported(node *Node) (string, error) {
	if c.strict {
		return "", fmt.Errorf("%w: %v", ErrUnsupported, node.Data)
	}

	c.logger.Debug("unsupported mathml element", "element", node.Data)

	return "Fail(" + node.Data + ")", nil
}

// root renders mroot, index goes first in AsciiMath while it's the second child in MathML
func (c *Converter) root(node *Node, children []*Node) (string, error) {
	if err := arity(node, children, 2); err != nil {
		return "", err
	}

	radicand, err := c.convert(children[0])
	if err != nil {
		return "", err
	}

	index, err := c.convert(children[1])
	if err != nil {
		return "", err
	}

	return "root(" + index + ")(" + radicand + ")", nil
}

func (c *Converter) frac(node *Node, children []*Node) (string, error) {
	if err := arity(node, children, 2); err != nil {
		return "", err
	}

	numerator, err := c.join(children[:1], "")
	if err != nil {
		return "", err
	}

	denominator, err := c.join(children[1:], "")
	if err != nil {
		return "", err
	}

	return "(" + numerator + ")/(" + denominator + ")", nil
}

// base renders base of a script element, a single trailing space is dropped
func (c *Converter) base(node *Node) (string, error) {
	out, err := c.convert(node)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(out, " "), nil
}

func (c *Converter) sup(node *Node, children []*Node) (string, error) {
	if err := arity(node, children, 2); err != nil {
		return "", err
	}

	sup, err := c.convert(children[1])
	if err != nil {
		return "", err
	}

	base, err := c.base(children[0])
	if err != nil {
		return "", err
	}

	return base + "^" + group(sup), nil
}

func (c *Converter) sub(node *Node, children []*Node) (string, error) {
	if err := arity(node, children, 2); err != nil {
		return "", err
	}

	sub, err := c.convert(children[1])
	if err != nil {
		return "", err
	}

	base, err := c.base(children[0])
	if err != nil {
		return "", err
	}

	return base + "_" + sub, nil
}

func (c *Converter) subsup(node *Node, children []*Node) (string, error) {
	if err := arity(node, children, 3); err != nil {
		return "", err
	}

	sub, err := c.convert(children[1])
	if err != nil {
		return "", err
	}

	sup, err := c.convert(children[2])
	if err != nil {
		return "", err
	}

	base, err := c.base(children[0])
	if err != nil {
		return "", err
	}

	return base + "_" + group(sub) + "^" + group(sup), nil
}

// accent renders munder and mover, known accents become AsciiMath accent commands (e.g. "hat x"),
// anything else falls back to generic underset/overset notation
func (c *Converter) accent(node *Node, children []*Node, accents map[string]string, fallback string) (string, error) {
	if err := arity(node, children, 2); err != nil {
		return "", err
	}

	mark, err := c.convert(children[1])
	if err != nil {
		return "", err
	}

	mark = strings.TrimSpace(mark)

	base, err := c.convert(children[0])
	if err != nil {
		return "", err
	}

	if name, ok := accents[mark]; ok {
		return name + " " + base, nil
	}

	return fallback + "(" + mark + ")(" + base + ")", nil
}

// multiscripts renders mmultiscripts approximately: scripts before mprescripts are put in front of the base,
// scripts after it are put behind. Without mprescripts all scripts but the last go in front and all of them go behind.
func (c *Converter) multiscripts(node *Node, children []*Node) (string, error) {
	if len(children) == 0 {
		return "", fmt.Errorf("%v expects at least 1 child, got 0: %w", node.Data, ErrArity)
	}

	scripts := children[1:]

	var before, after []*Node
	if split := slices.IndexFunc(scripts, isPrescripts); split < 0 {
		before, after = scripts[:max(len(scripts)-1, 0)], scripts
	} else {
		before, after = scripts[:split], scripts[split+1:]
	}

	pre, err := c.join(before, "")
	if err != nil {
		return "", err
	}

	base, err := c.convert(children[0])
	if err != nil {
		return "", err
	}

	post, err := c.join(after, "")
	if err != nil {
		return "", err
	}

	return pre + " " + base + " " + post, nil
}

func isPrescripts(node *Node) bool {
	return node.Kind == ElementKind && ElementOf(node.Data) == PrescriptsElement
}
