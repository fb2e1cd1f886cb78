package mathml

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// Tokenizer reads MathML markup and splits it into element and text tokens.
type Tokenizer struct {
	d *xml.Decoder
}

func NewTokenizer(r io.Reader) *Tokenizer {
	d := xml.NewDecoder(r)
	d.Entity = xml.HTMLEntity
	d.CharsetReader = charset.NewReaderLabel

	return &Tokenizer{d: d}
}

// Token returns next ElementStart, ElementEnd or Text token, comments, directives and processing instructions are skipped.
func (l *Tokenizer) Token() (any, error) {
	for {
		t, err := l.d.Token()
		if err != nil {
			return nil, err
		}

		switch token := t.(type) {
		case xml.StartElement:
			return l.readStart(token), nil
		case xml.EndElement:
			return ElementEnd{Name: token.Name.Local}, nil
		case xml.CharData:
			return Text(token), nil
		}
	}
}

// readStart converts start element, namespace prefixes are dropped and namespace declarations are ignored
func (l *Tokenizer) readStart(t xml.StartElement) ElementStart {
	start := ElementStart{Name: t.Name.Local}

	for _, attr := range t.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}

		if start.Attributes == nil {
			start.Attributes = map[string]string{}
		}

		start.Attributes[attr.Name.Local] = attr.Value
	}

	return start
}
