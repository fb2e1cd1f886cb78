package mathml

type Text string

type ElementStart struct {
	Name       string
	Attributes map[string]string
}

type ElementEnd struct {
	Name string
}
