package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/nisuz/decorhavenstore/internal/kv"
	"golang.org/x/sync/singleflight"
)

// Store keeps one cart per user in the key-value store, persisted as a
// full JSON snapshot on every mutation. A missing or malformed payload
// is treated as an empty cart, never as an error.
type Store struct {
	kv  kv.Store
	mu  sync.Mutex
	sfg singleflight.Group // Prevents concurrent loads of the same cart
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func (s *Store) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		return s.load(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// Add inserts the item with quantity 1, or increments the existing line
// item's quantity when the product is already in the cart. Insertion
// order is preserved for display only.
func (s *Store) Add(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		cart.Items = append(cart.Items, item)
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes the matching line item. Removing an absent product is
// not an error.
func (s *Store) Remove(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces the line item's quantity. A quantity of zero or
// less removes the item.
func (s *Store) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	return s.persist(ctx, cart)
}

// Total recomputes the cart total from its line items.
func (s *Store) Total(ctx context.Context, userID string) (float64, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (s *Store) load(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := s.kv.Get(ctx, cartKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for user %s: %w", userID, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// Corrupt snapshot is treated as absent, it will be
		// overwritten by the next mutation.
		log.Printf("discarding malformed cart snapshot for user %s: %v", userID, err)
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	cart.UserID = userID
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

func (s *Store) persist(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.kv.Set(ctx, cartKey(cart.UserID), string(data)); err != nil {
		return fmt.Errorf("persist cart for user %s: %w", cart.UserID, err)
	}
	return nil
}
