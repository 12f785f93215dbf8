package cart

import (
	"encoding/json"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

const keyPrefix = "cart:"

// Engine holds one guest's cart and writes it through to durable storage on
// every mutation, so the stored state never lags the in-memory state.
//
// The engine does not bound quantities beyond rejecting non-positive values
// in UpdateQuantity; the HTTP layer enforces the 1-10 range on input.
type Engine struct {
	guestID string
	store   *storage.KV
	items   []models.CartItem
}

// Load builds an engine from whatever is persisted for the guest. A missing
// or malformed stored cart yields an empty one; initialization never fails on
// bad data, only on storage errors.
func Load(store *storage.KV, guestID string) (*Engine, error) {
	e := &Engine{guestID: guestID, store: store}

	raw, ok, err := store.Get(keyPrefix + guestID)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []models.CartItem
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			e.items = items
		}
	}
	return e, nil
}

// Add puts the artwork in the cart. If an item with the same artwork id
// already exists its quantity is incremented by quantity; otherwise a new
// item is appended, preserving insertion order.
func (e *Engine) Add(artwork models.Artwork, quantity int) error {
	for i := range e.items {
		if e.items[i].Artwork.ID == artwork.ID {
			e.items[i].Quantity += quantity
			return e.persist()
		}
	}
	e.items = append(e.items, models.CartItem{Artwork: artwork, Quantity: quantity})
	return e.persist()
}

// Remove deletes the item for the artwork id. Removing an absent id is a
// no-op, not an error.
func (e *Engine) Remove(artworkID string) error {
	for i := range e.items {
		if e.items[i].Artwork.ID == artworkID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return e.persist()
		}
	}
	return nil
}

// UpdateQuantity sets the item's quantity to exactly the given value. A
// quantity of zero or less removes the item. Updating an absent id is a
// no-op.
func (e *Engine) UpdateQuantity(artworkID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(artworkID)
	}
	for i := range e.items {
		if e.items[i].Artwork.ID == artworkID {
			e.items[i].Quantity = quantity
			return e.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (e *Engine) Clear() error {
	e.items = nil
	return e.persist()
}

// Items returns the cart contents in insertion order.
func (e *Engine) Items() []models.CartItem {
	out := make([]models.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

// Total is the sum of price*quantity over all items, recomputed per call.
func (e *Engine) Total() float64 {
	var sum float64
	for _, it := range e.items {
		sum += it.Artwork.Price * float64(it.Quantity)
	}
	return sum
}

// ItemCount is the sum of quantities over all items.
func (e *Engine) ItemCount() int {
	var n int
	for _, it := range e.items {
		n += it.Quantity
	}
	return n
}

// View packages the items and derived totals for the HTTP layer.
func (e *Engine) View() models.CartView {
	return models.CartView{
		Items:     e.Items(),
		Total:     e.Total(),
		ItemCount: e.ItemCount(),
	}
}

func (e *Engine) persist() error {
	raw, err := json.Marshal(e.itemsOrEmpty())
	if err != nil {
		return err
	}
	return e.store.Put(keyPrefix+e.guestID, string(raw))
}

// itemsOrEmpty keeps the persisted form a JSON array even when nil.
func (e *Engine) itemsOrEmpty() []models.CartItem {
	if e.items == nil {
		return []models.CartItem{}
	}
	return e.items
}
