package mathml

import "testing"

func TestElementOf(t *testing.T) {
	tt := []struct {
		name    string
		element Element
	}{
		{name: "math", element: MathElement},
		{name: "mfrac", element: FracElement},
		{name: "mprescripts", element: PrescriptsElement},
		{name: "annotation-xml", element: AnnotationXMLElement},
		{name: "mspace", element: UnknownElement},
		{name: "MFRAC", element: UnknownElement},
		{name: "", element: UnknownElement},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElementOf(tc.name); got != tc.element {
				t.Errorf("Element does not match: want %v, got %v", tc.element, got)
			}
		})
	}
}

func TestElementString(t *testing.T) {
	for name, el := range elements {
		if el.String() != name {
			t.Errorf("Element name does not match: want %v, got %v", name, el.String())
		}
	}

	if UnknownElement.String() != "unknown" {
		t.Errorf("Unknown element name does not match: got %v", UnknownElement.String())
	}
}
