package mathml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var ErrEmpty = errors.New("document has no root element")

type Parser struct {
	tokens *Tokenizer
}

func Parse(r io.Reader) (*Node, error) {
	return NewParser(r).Parse()
}

func NewParser(r io.Reader) *Parser {
	return &Parser{tokens: NewTokenizer(r)}
}

// Clean prepares raw markup for parsing, &nbsp; is replaced with a regular space
func Clean(raw string) string {
	return strings.ReplaceAll(raw, "&nbsp;", " ")
}

func (p *Parser) Parse() (*Node, error) {
	children, err := p.children(func(a any, err error) bool {
		return err == io.EOF
	})

	if err != nil {
		return nil, err
	}

	doc := &Node{Kind: DocumentKind, Children: children}

	for _, child := range children {
		if child.Kind == ElementKind {
			return doc, nil
		}
	}

	return nil, ErrEmpty
}

// children collects nodes until stop condition is met
func (p *Parser) children(stop func(any, error) bool) (children []*Node, err error) {
	for {
		t, err := p.tokens.Token()
		if stop(t, err) {
			return children, nil
		}

		if err != nil {
			return nil, err
		}

		node, err := p.parse(t)
		if err != nil {
			return nil, err
		}

		// merge consequent text nodes together
		if node.Kind == TextKind && len(children) > 0 && children[len(children)-1].Kind == TextKind {
			children[len(children)-1].Data += node.Data
			continue
		}

		children = append(children, node)
	}
}

func (p *Parser) parse(t any) (*Node, error) {
	switch token := t.(type) {
	case Text:
		return &Node{Kind: TextKind, Data: html.UnescapeString(string(token))}, nil
	case ElementStart:
		return p.element(token)
	case ElementEnd:
		return nil, fmt.Errorf("unexpected closing element %v", token.Name)
	default:
		return nil, fmt.Errorf("unexpected token %T", t)
	}
}

// element reads element children up to the matching closing element
func (p *Parser) element(e ElementStart) (*Node, error) {
	children, err := p.children(func(a any, err error) bool {
		n, ok := a.(ElementEnd)
		return err == nil && ok && n.Name == e.Name
	})

	if err == io.EOF {
		return nil, fmt.Errorf("element %v is not closed", e.Name)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to read element %v: %w", e.Name, err)
	}

	return &Node{Kind: ElementKind, Data: e.Name, Parameters: e.Attributes, Children: children}, nil
}
