package savedoc

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// Node is a generic element of a parsed document
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []*Node    `xml:",any"`
}

// Parse reads a rendered document back into a Node tree
func Parse(doc []byte) (*Node, error) {
	var root Node
	if err := xml.Unmarshal(doc, &root); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse save document")
	}
	return &root, nil
}

// Name returns the element name
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute, or ""
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the first child element called name
func (n *Node) Child(name string) *Node {
	for _, c := range n.Nodes {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Children returns every child element called name
func (n *Node) Children(name string) []*Node {
	var out []*Node
	for _, c := range n.Nodes {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

var knownTypes = map[string]bool{
	string(TypeInt): true, string(TypeStr): true, string(TypeName): true,
	string(TypeBool): true, string(TypeFloat): true, string(TypeDouble): true,
	string(TypeByte): true, string(TypeArray): true, string(TypeStruct): true,
}

type checker struct {
	problems []string
}

func (c *checker) fail(path, format string, args ...any) {
	c.problems = append(c.problems, path+": "+fmt.Sprintf(format, args...))
}

// Validate checks the structural contract of a rendered document: contiguous
// indices in every Stats list, exactly one SubStructure per struct- or
// array-typed property (same index and name, no orphans), qualified enum
// values, matching array counts and contiguous inventory slots.
func Validate(doc []byte) error {
	root, err := Parse(doc)
	if err != nil {
		return err
	}

	c := &checker{}
	if root.Name() != ElemDocument {
		c.fail("/", "root element is %q, want %q", root.Name(), ElemDocument)
	}

	if data := root.Child(ElemCharacterData); data == nil {
		c.fail(ElemDocument, "missing %s", ElemCharacterData)
	} else {
		c.body(ElemCharacterData, data)
	}

	if equipment := root.Child(ElemEquipment); equipment == nil {
		c.fail(ElemDocument, "missing %s", ElemEquipment)
	} else {
		seen := make(map[string]bool)
		for _, slot := range equipment.Children(ElemSlot) {
			name := slot.Attr(AttrName)
			path := ElemEquipment + "/" + name
			if name == "" {
				c.fail(ElemEquipment, "slot without a name")
			}
			if seen[name] {
				c.fail(path, "duplicate slot")
			}
			seen[name] = true
			c.body(path, slot)
		}
	}

	if inventory := root.Child(ElemInventory); inventory == nil {
		c.fail(ElemDocument, "missing %s", ElemInventory)
	} else {
		slots := inventory.Children(ElemSlot)
		if capacity := inventory.Attr(AttrCapacity); capacity != strconv.Itoa(len(slots)) {
			c.fail(ElemInventory, "capacity %s but %d slots", capacity, len(slots))
		}
		for i, slot := range slots {
			path := fmt.Sprintf("%s/%d", ElemInventory, i)
			if slot.Attr(AttrIndex) != strconv.Itoa(i) {
				c.fail(path, "slot index %q out of sequence", slot.Attr(AttrIndex))
			}
			c.body(path, slot)
		}
	}

	if len(c.problems) > 0 {
		return dnderr.Validationf("malformed save document: %s", strings.Join(c.problems, "; ")).
			WithMeta("problems", c.problems)
	}
	return nil
}

// body checks a Stats/SubStructures pair and recurses into nested bodies
func (c *checker) body(path string, n *Node) {
	stats := n.Child(ElemStats)
	subs := n.Child(ElemSubStructures)
	if stats == nil || subs == nil {
		c.fail(path, "missing %s or %s", ElemStats, ElemSubStructures)
		return
	}

	nested := make(map[string]*Node)
	for i, p := range stats.Children(ElemProperty) {
		index := p.Attr(AttrIndex)
		name := p.Attr(AttrName)
		typ := p.Attr(AttrType)
		propPath := path + "/" + name

		if index != strconv.Itoa(i) {
			c.fail(propPath, "index %q, want %d", index, i)
		}
		if !knownTypes[typ] {
			c.fail(propPath, "unknown type tag %q", typ)
		}
		if enumType := p.Attr(AttrEnumType); enumType != "" && !strings.HasPrefix(p.Attr(AttrValue), enumType+"::") {
			c.fail(propPath, "enum value %q is not qualified by %s", p.Attr(AttrValue), enumType)
		}
		if TypeTag(typ).Nested() {
			nested[index] = p
		}
	}

	matched := make(map[string]bool)
	for _, sub := range subs.Children(ElemSubStructure) {
		index := sub.Attr(AttrIndex)
		name := sub.Attr(AttrName)
		subPath := path + "/" + name

		prop, ok := nested[index]
		if !ok || prop.Attr(AttrName) != name {
			c.fail(subPath, "sub-structure at index %s has no matching property", index)
			continue
		}
		if matched[index] {
			c.fail(subPath, "duplicate sub-structure at index %s", index)
			continue
		}
		matched[index] = true
		c.subStructure(subPath, prop, sub)
	}

	for index, prop := range nested {
		if !matched[index] {
			c.fail(path+"/"+prop.Attr(AttrName), "property at index %s has no sub-structure", index)
		}
	}
}

func (c *checker) subStructure(path string, prop, sub *Node) {
	switch TypeTag(prop.Attr(AttrType)) {
	case TypeStruct:
		if prop.Attr(AttrStructType) != sub.Attr(AttrStructType) {
			c.fail(path, "struct type %q does not match property %q", sub.Attr(AttrStructType), prop.Attr(AttrStructType))
		}
		if sub.Attr(AttrStructType) == StructTypeText {
			text := sub.Child(ElemText)
			if text == nil || text.Attr(AttrType) != TextKind {
				c.fail(path, "text body must hold one %s of type %s", ElemText, TextKind)
			}
			return
		}
		c.body(path, sub)

	case TypeArray:
		elements := sub.Children(ElemElement)
		if prop.Attr(AttrCount) != strconv.Itoa(len(elements)) || sub.Attr(AttrCount) != prop.Attr(AttrCount) {
			c.fail(path, "array count %q/%q but %d elements", prop.Attr(AttrCount), sub.Attr(AttrCount), len(elements))
		}
		for i, e := range elements {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if e.Attr(AttrIndex) != strconv.Itoa(i) {
				c.fail(elemPath, "element index %q out of sequence", e.Attr(AttrIndex))
			}
			c.body(elemPath, e)
		}
	}
}
