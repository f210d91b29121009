package domain

// Well-known inventory item keys
const (
	ItemGlassBottle   = "glass_bottle"
	ItemBottledNectar = "bottled_nectar"
)

// Inventory holds the player's coins, seeds, harvested crops, crafted items
// and bottled honey by type
type Inventory struct {
	Coins int               `json:"coins"`
	Seeds map[string]int    `json:"seeds"`
	Crops map[string]int    `json:"crops"`
	Items map[string]int    `json:"items"`
	Honey map[HoneyType]int `json:"honey"`
}

// NewInventory returns an empty inventory with initialized maps
func NewInventory() *Inventory {
	return &Inventory{
		Seeds: make(map[string]int),
		Crops: make(map[string]int),
		Items: make(map[string]int),
		Honey: make(map[HoneyType]int),
	}
}

// Normalize ensures every map is non-nil after decoding
func (inv *Inventory) Normalize() {
	if inv.Seeds == nil {
		inv.Seeds = make(map[string]int)
	}
	if inv.Crops == nil {
		inv.Crops = make(map[string]int)
	}
	if inv.Items == nil {
		inv.Items = make(map[string]int)
	}
	if inv.Honey == nil {
		inv.Honey = make(map[HoneyType]int)
	}
}

// Clone returns a deep copy so callers can mutate without touching the original
func (inv *Inventory) Clone() *Inventory {
	out := &Inventory{
		Coins: inv.Coins,
		Seeds: make(map[string]int, len(inv.Seeds)),
		Crops: make(map[string]int, len(inv.Crops)),
		Items: make(map[string]int, len(inv.Items)),
		Honey: make(map[HoneyType]int, len(inv.Honey)),
	}
	for k, v := range inv.Seeds {
		out.Seeds[k] = v
	}
	for k, v := range inv.Crops {
		out.Crops[k] = v
	}
	for k, v := range inv.Items {
		out.Items[k] = v
	}
	for k, v := range inv.Honey {
		out.Honey[k] = v
	}
	return out
}
