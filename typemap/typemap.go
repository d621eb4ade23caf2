// Package typemap normalizes logical type names to C# type spellings and
// provides explicit type tags for members whose return type is picked by kind
// rather than by name.
package typemap

import (
	"strings"

	"github.com/teranos/classbuilder/errors"
)

// TypeMapping defines how logical type names map to C# types.
// Lookups are exact-match; names outside the table pass through unchanged.
var TypeMapping = map[string]string{
	"Boolean":  "bool",
	"String":   "string",
	"Promise":  "async Task",
	"Object":   "object",
	"Integer":  "int",
	"Function": "Action",
}

// Normalize returns the C# spelling for a logical type name, or name itself
// when it is not in TypeMapping.
func Normalize(name string) string {
	if mapped, ok := TypeMapping[name]; ok {
		return mapped
	}
	return name
}

// Tag selects a return type by kind. Its name is the runtime type name the
// value of that kind reports (Boolean for true, Int32 for 42, ...).
type Tag int

const (
	Boolean Tag = iota
	String
	Char
	Byte
	Int16
	Int32
	Int64
	Single
	Double
	Decimal
	Object
	DateTime
	Guid
)

var tagNames = [...]string{
	Boolean:  "Boolean",
	String:   "String",
	Char:     "Char",
	Byte:     "Byte",
	Int16:    "Int16",
	Int32:    "Int32",
	Int64:    "Int64",
	Single:   "Single",
	Double:   "Double",
	Decimal:  "Decimal",
	Object:   "Object",
	DateTime: "DateTime",
	Guid:     "Guid",
}

// Name returns the runtime type name for the tag ("" for unknown tags)
func (t Tag) Name() string {
	if t < 0 || int(t) >= len(tagNames) {
		return ""
	}
	return tagNames[t]
}

// String implements fmt.Stringer
func (t Tag) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return "Tag(invalid)"
}

// Tags returns every tag in declaration order
func Tags() []Tag {
	tags := make([]Tag, len(tagNames))
	for i := range tagNames {
		tags[i] = Tag(i)
	}
	return tags
}

// ParseTag resolves a tag from its name, case-insensitively.
// The short aliases bool, int, long, float and double are accepted too.
func ParseTag(name string) (Tag, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range tagNames {
		if strings.ToLower(n) == key {
			return Tag(i), nil
		}
	}
	switch key {
	case "bool":
		return Boolean, nil
	case "int":
		return Int32, nil
	case "long":
		return Int64, nil
	case "float":
		return Single, nil
	}
	return 0, errors.Newf("unknown type tag %q", name)
}
