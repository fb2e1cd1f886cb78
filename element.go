package mathml

// Element is a MathML element recognized by the converter.
type Element int

const (
	UnknownElement Element = iota
	MathElement
	RowElement
	StyleElement
	SemanticsElement
	AnnotationElement
	AnnotationXMLElement
	FencedElement
	SqrtElement
	RootElement
	FracElement
	SupElement
	SubElement
	SubSupElement
	UnderElement
	OverElement
	UnderOverElement
	MultiscriptsElement
	PrescriptsElement
	TableElement
	TableRowElement
	TableCellElement
	NumberElement
	TextElement
	IdentifierElement
	OperatorElement
	AlignMarkElement
	AlignGroupElement
	PhantomElement
	EncloseElement
	NoneElement
)

var elements = map[string]Element{
	"math":           MathElement,
	"mrow":           RowElement,
	"mstyle":         StyleElement,
	"semantics":      SemanticsElement,
	"annotation":     AnnotationElement,
	"annotation-xml": AnnotationXMLElement,
	"mfenced":        FencedElement,
	"msqrt":          SqrtElement,
	"mroot":          RootElement,
	"mfrac":          FracElement,
	"msup":           SupElement,
	"msub":           SubElement,
	"msubsup":        SubSupElement,
	"munder":         UnderElement,
	"mover":          OverElement,
	"munderover":     UnderOverElement,
	"mmultiscripts":  MultiscriptsElement,
	"mprescripts":    PrescriptsElement,
	"mtable":         TableElement,
	"mtr":            TableRowElement,
	"mtd":            TableCellElement,
	"mn":             NumberElement,
	"mtext":          TextElement,
	"mi":             IdentifierElement,
	"mo":             OperatorElement,
	"malignmark":     AlignMarkElement,
	"maligngroup":    AlignGroupElement,
	"mphantom":       PhantomElement,
	"menclose":       EncloseElement,
	"none":           NoneElement,
}

// ElementOf returns element by its tag name or UnknownElement
func ElementOf(name string) Element {
	return elements[name]
}

func (e Element) String() string {
	for name, el := range elements {
		if el == e {
			return name
		}
	}

	return "unknown"
}
