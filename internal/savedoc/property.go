// Package savedoc models the positional-property save document and renders it.
//
// Every struct in the document is written as a flat Stats list, one Property
// per field in index order, followed by a SubStructures list holding the body
// of each struct- or array-typed property. A nested property and its body are
// paired by index and name; the loader rejects a document where that pairing
// is broken, so Struct only lets callers build documents where it holds.
package savedoc

import (
	"strconv"
	"strings"
)

// TypeTag is the declared type of a property
type TypeTag string

const (
	TypeInt    TypeTag = "IntProperty"
	TypeStr    TypeTag = "StrProperty"
	TypeName   TypeTag = "NameProperty"
	TypeBool   TypeTag = "BoolProperty"
	TypeFloat  TypeTag = "FloatProperty"
	TypeDouble TypeTag = "DoubleProperty"
	TypeByte   TypeTag = "ByteProperty"
	TypeArray  TypeTag = "ArrayProperty"
	TypeStruct TypeTag = "StructProperty"
)

// Nested reports whether properties of this type need a sub-structure entry
func (t TypeTag) Nested() bool {
	return t == TypeStruct || t == TypeArray
}

// StructTypeText marks the localized display string wrapper
const StructTypeText = "Text"

// TextKind is the type tag written inside a localized text body
const TextKind = "Name"

// EnumNone is the member written for an enum with no value
const EnumNone = "None"

// Property is one indexed entry of a struct's Stats list
type Property struct {
	Index int
	Name  string
	Type  TypeTag

	// Value is the encoded scalar. Empty for nested properties.
	Value string

	// EnumType is set for enum-valued byte properties
	EnumType string

	// StructType is set for struct properties
	StructType string

	// InnerType is set for array properties
	InnerType TypeTag

	// Exactly one of the following is set for nested properties
	Child    *Struct
	Text     *Text
	Elements []*Struct
}

// IsEnum reports whether p carries a qualified enum value
func (p Property) IsEnum() bool {
	return p.EnumType != ""
}

// Text is the body of a localized display string
type Text struct {
	Key   string
	Value string
}

// FormatInt encodes an integer or byte value
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatFloat encodes a float or double as a plain decimal with at least one
// fractional digit, never in exponent form.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatBool encodes a boolean as 1 or 0
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// QualifyEnum returns EnumType::Member. A member that is already qualified
// keeps only its last segment; an empty member becomes None.
func QualifyEnum(enumType, member string) string {
	if i := strings.LastIndex(member, "::"); i >= 0 {
		member = member[i+2:]
	}
	member = strings.TrimSpace(member)
	if member == "" {
		member = EnumNone
	}
	return enumType + "::" + member
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five markup metacharacters with their entities.
// Invalid UTF-8 becomes U+FFFD and runes XML 1.0 does not allow are dropped.
func Escape(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.Map(xmlChar, s)
	return escaper.Replace(s)
}

// xmlChar keeps r when it is in the XML 1.0 Char production
func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF,
		r >= 0xE000 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0x10FFFF:
		return r
	}
	return -1
}
