package docstore

// Condition is an exact, case-sensitive equality on a text field.
type Condition struct {
	Field string
	Value string
}

// TextMatch matches documents where Term occurs as a literal substring,
// ignoring case, in at least one of Fields.
type TextMatch struct {
	Fields []string
	Term   string
}

// Filter is the conjunction of all Equals conditions and, when set, Match.
// The zero Filter matches every document.
type Filter struct {
	Equals []Condition
	Match  *TextMatch
}

func (f Filter) Where(field, value string) Filter {
	f.Equals = append(append([]Condition(nil), f.Equals...), Condition{Field: field, Value: value})
	return f
}

func (f Filter) Contains(term string, fields ...string) Filter {
	f.Match = &TextMatch{Fields: fields, Term: term}
	return f
}

func (f Filter) IsEmpty() bool {
	return len(f.Equals) == 0 && f.Match == nil
}
