package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/clubtenis/tienda-api/internal/application/cart"
)

var _ cart.Store = (*CartStore)(nil)

// cartTTL tiempo de vida del carrito abandonado.
const cartTTL = 7 * 24 * time.Hour

// CartStore persistencia del carrito por usuario en Redis (JSON bajo una
// clave por usuario, con TTL para carritos abandonados).
type CartStore struct {
	client *redis.Client
}

// NewCartStore construye el store del carrito sobre el cliente Redis.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get devuelve las líneas del carrito del usuario, vacío si no existe.
func (s *CartStore) Get(ctx context.Context, userID string) ([]cart.Item, error) {
	val, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	var items []cart.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// Save reemplaza las líneas del carrito del usuario.
func (s *CartStore) Save(ctx context.Context, userID string, items []cart.Item) error {
	if len(items) == 0 {
		return s.Clear(ctx, userID)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), payload, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear elimina el carrito del usuario.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
