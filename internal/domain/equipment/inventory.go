package equipment

// InventoryItem is one entry of a survivor's ordered inventory
type InventoryItem struct {
	Category    Category `json:"category" yaml:"category"`
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	DisplayName string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Quantity    int      `json:"quantity" yaml:"quantity"`
}

// Selection returns the value to resolve: the ID when set, else the display name
func (i InventoryItem) Selection() string {
	if i.ID != "" {
		return i.ID
	}
	return i.DisplayName
}
