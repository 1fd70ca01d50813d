// Package cart is the client-local shopping cart state container. It lives
// entirely on the customer's side of the trust boundary: lines are never
// validated against live stock, and none of its prices are trusted by the
// server at settlement.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/pricing"
)

// Line is one cart entry. The (product id, size) pair is the uniqueness key:
// adding the same product and size again merges quantities.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Size     string         `json:"selectedSize,omitempty"`
}

// Storage persists the serialized cart between sessions. Implementations may
// return (nil, nil) when nothing has been stored yet.
type Storage interface {
	Load() ([]byte, error)
	Save([]byte) error
}

// Store holds ordered cart lines and notifies subscribers on every mutation.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
	subs    map[int]func([]Line)
	nextSub int
}

// NewStore builds a cart, restoring state from storage when possible.
// A missing or unparseable payload falls back to an empty cart.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage, subs: make(map[int]func([]Line))}
	if storage == nil {
		return s
	}

	raw, err := storage.Load()
	if err != nil || len(raw) == 0 {
		return s
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return s
	}
	s.lines = lines
	return s
}

// Subscribe registers a callback invoked after each mutation with a snapshot
// of the lines. The returned function removes the subscription.
func (s *Store) Subscribe(fn func([]Line)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Add appends a line or merges quantity into an existing (product, size) line.
func (s *Store) Add(product models.Product, quantity int, size string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if i := s.index(product.ID.String(), size); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, Line{Product: product, Quantity: quantity, Size: size})
	}
	s.commitLocked()
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int, size string) {
	if quantity <= 0 {
		s.Remove(productID, size)
		return
	}

	s.mu.Lock()
	if i := s.index(productID, size); i >= 0 {
		s.lines[i].Quantity = quantity
	}
	s.commitLocked()
}

// Remove drops the (product, size) line if present.
func (s *Store) Remove(productID string, size string) {
	s.mu.Lock()
	if i := s.index(productID, size); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	s.commitLocked()
}

// Clear empties the cart. The checkout flow calls this only after the server
// has confirmed the order.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.commitLocked()
}

// Lines returns a snapshot of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Contains reports whether a (product, size) line is in the cart.
func (s *Store) Contains(productID string, size string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(productID, size) >= 0
}

// ItemCount is the total quantity across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal prices every line through the resolver and accumulates the pair.
func (s *Store) Subtotal() pricing.Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]pricing.Line, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, pricing.Line{
			Unit:     pricing.Resolve(&line.Product, line.Size),
			Quantity: line.Quantity,
		})
	}
	return pricing.Subtotal(lines)
}

// index must be called with the mutex held.
func (s *Store) index(productID string, size string) int {
	for i, line := range s.lines {
		if line.Product.ID.String() == productID && line.Size == size {
			return i
		}
	}
	return -1
}

// commitLocked persists and notifies, then releases the mutex. Persistence
// failures are ignored: the in-memory cart stays authoritative for the session.
func (s *Store) commitLocked() {
	snapshot := s.snapshotLocked()
	subs := make([]func([]Line), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	storage := s.storage
	s.mu.Unlock()

	if storage != nil {
		if raw, err := json.Marshal(snapshot); err == nil {
			_ = storage.Save(raw)
		}
	}
	for _, fn := range subs {
		fn(snapshot)
	}
}

// snapshotLocked must be called with the mutex held.
func (s *Store) snapshotLocked() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}
