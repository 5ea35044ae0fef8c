package highlight

// Class is the token class a rule assigns. The set is closed.
type Class string

const (
	ClassComment   Class = "comment"
	ClassString    Class = "string"
	ClassKeyword   Class = "keyword"
	ClassConstant  Class = "constant"
	ClassNumber    Class = "number"
	ClassType      Class = "type"
	ClassTag       Class = "tag"
	ClassAttribute Class = "attribute"
	ClassSelector  Class = "selector"
	ClassProperty  Class = "property"
)

var allClasses = []Class{
	ClassComment,
	ClassString,
	ClassKeyword,
	ClassConstant,
	ClassNumber,
	ClassType,
	ClassTag,
	ClassAttribute,
	ClassSelector,
	ClassProperty,
}

// Classes returns every token class in a stable order.
func Classes() []Class {
	out := make([]Class, len(allClasses))
	copy(out, allClasses)
	return out
}

// Valid reports whether c belongs to the class set.
func (c Class) Valid() bool {
	for _, k := range allClasses {
		if k == c {
			return true
		}
	}
	return false
}

// Span is a half-open rune range [Start, End) carrying a token class.
type Span struct {
	Start int
	End   int
	Class Class
}

func (s Span) Len() int { return s.End - s.Start }
