package savedoc

import (
	"bytes"
	"strings"
)

// Element and attribute names of the document
const (
	ElemDocument      = "SaveDocument"
	ElemCharacterData = "CharacterData"
	ElemStats         = "Stats"
	ElemSubStructures = "SubStructures"
	ElemProperty      = "Property"
	ElemSubStructure  = "SubStructure"
	ElemElement       = "Element"
	ElemText          = "Text"
	ElemEquipment     = "Equipment"
	ElemInventory     = "InventorySlots"
	ElemSlot          = "Slot"

	AttrIndex         = "Index"
	AttrName          = "Name"
	AttrType          = "Type"
	AttrValue         = "Value"
	AttrEnumType      = "EnumType"
	AttrStructType    = "StructType"
	AttrInnerType     = "InnerType"
	AttrCount         = "Count"
	AttrKey           = "Key"
	AttrCapacity      = "Capacity"
	AttrSchemaVersion = "SchemaVersion"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>`

type attr struct {
	name  string
	value string
}

type writer struct {
	buf   bytes.Buffer
	depth int
}

func (w *writer) line(s string) {
	w.buf.WriteString(strings.Repeat("  ", w.depth))
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func tag(name string, attrs []attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(Escape(a.value))
		b.WriteByte('"')
	}
	return b.String()
}

func (w *writer) open(name string, attrs ...attr) {
	w.line(tag(name, attrs) + ">")
	w.depth++
}

func (w *writer) close(name string) {
	w.depth--
	w.line("</" + name + ">")
}

func (w *writer) leaf(name string, attrs ...attr) {
	w.line(tag(name, attrs) + " />")
}

func propertyAttrs(p Property) []attr {
	attrs := []attr{
		{AttrIndex, FormatInt(p.Index)},
		{AttrName, p.Name},
		{AttrType, string(p.Type)},
	}
	switch p.Type {
	case TypeArray:
		attrs = append(attrs, attr{AttrInnerType, string(p.InnerType)}, attr{AttrCount, FormatInt(len(p.Elements))})
	case TypeStruct:
		attrs = append(attrs, attr{AttrStructType, p.StructType})
	default:
		attrs = append(attrs, attr{AttrValue, p.Value})
		if p.IsEnum() {
			attrs = append(attrs, attr{AttrEnumType, p.EnumType})
		}
	}
	return attrs
}

// body writes the Stats list of s followed by its SubStructures list
func (w *writer) body(s *Struct) {
	if s == nil || len(s.props) == 0 {
		w.leaf(ElemStats)
		w.leaf(ElemSubStructures)
		return
	}

	w.open(ElemStats)
	for _, p := range s.props {
		w.leaf(ElemProperty, propertyAttrs(p)...)
	}
	w.close(ElemStats)

	nested := s.NestedProperties()
	if len(nested) == 0 {
		w.leaf(ElemSubStructures)
		return
	}

	w.open(ElemSubStructures)
	for _, p := range nested {
		w.subStructure(p)
	}
	w.close(ElemSubStructures)
}

func (w *writer) subStructure(p Property) {
	attrs := []attr{
		{AttrIndex, FormatInt(p.Index)},
		{AttrName, p.Name},
	}

	switch {
	case p.Text != nil:
		w.open(ElemSubStructure, append(attrs, attr{AttrStructType, StructTypeText})...)
		w.leaf(ElemText,
			attr{AttrKey, p.Text.Key},
			attr{AttrType, TextKind},
			attr{AttrValue, p.Text.Value},
		)
		w.close(ElemSubStructure)

	case p.Type == TypeStruct:
		w.open(ElemSubStructure, append(attrs, attr{AttrStructType, p.StructType})...)
		w.body(p.Child)
		w.close(ElemSubStructure)

	case p.Type == TypeArray:
		attrs = append(attrs, attr{AttrInnerType, string(p.InnerType)}, attr{AttrCount, FormatInt(len(p.Elements))})
		if len(p.Elements) == 0 {
			w.leaf(ElemSubStructure, attrs...)
			return
		}
		w.open(ElemSubStructure, attrs...)
		for i, e := range p.Elements {
			w.open(ElemElement, attr{AttrIndex, FormatInt(i)}, attr{AttrStructType, e.Type})
			w.body(e)
			w.close(ElemElement)
		}
		w.close(ElemSubStructure)
	}
}
