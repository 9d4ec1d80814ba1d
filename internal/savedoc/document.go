package savedoc

import "io"

// SchemaVersion is written on the root element
const SchemaVersion = 3

// EquipmentSlot is one named entry of the top-level equipment list
type EquipmentSlot struct {
	Name string
	Body *Struct
}

// Document is a complete save document: the character record, the
// name-keyed equipment list and the position-keyed inventory slots.
type Document struct {
	Character *Struct
	Equipment []EquipmentSlot
	Inventory []*Struct
}

// Encode renders the document
func (d *Document) Encode() []byte {
	w := &writer{}
	w.line(xmlHeader)
	w.open(ElemDocument, attr{AttrSchemaVersion, FormatInt(SchemaVersion)})

	character := d.Character
	if character == nil {
		character = NewStruct("")
	}
	w.open(ElemCharacterData, attr{AttrStructType, character.Type})
	w.body(character)
	w.close(ElemCharacterData)

	if len(d.Equipment) == 0 {
		w.leaf(ElemEquipment)
	} else {
		w.open(ElemEquipment)
		for _, slot := range d.Equipment {
			w.open(ElemSlot, attr{AttrName, slot.Name}, attr{AttrStructType, structType(slot.Body)})
			w.body(slot.Body)
			w.close(ElemSlot)
		}
		w.close(ElemEquipment)
	}

	capacity := attr{AttrCapacity, FormatInt(len(d.Inventory))}
	if len(d.Inventory) == 0 {
		w.leaf(ElemInventory, capacity)
	} else {
		w.open(ElemInventory, capacity)
		for i, slot := range d.Inventory {
			w.open(ElemSlot, attr{AttrIndex, FormatInt(i)}, attr{AttrStructType, structType(slot)})
			w.body(slot)
			w.close(ElemSlot)
		}
		w.close(ElemInventory)
	}

	w.close(ElemDocument)
	return w.buf.Bytes()
}

// WriteTo implements io.WriterTo
func (d *Document) WriteTo(out io.Writer) (int64, error) {
	n, err := out.Write(d.Encode())
	return int64(n), err
}

func structType(s *Struct) string {
	if s == nil {
		return ""
	}
	return s.Type
}
