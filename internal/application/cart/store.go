package cart

import "context"

// Item línea del carrito tal como se persiste en el store.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Store puerto de persistencia del carrito por usuario. El carrito del
// sistema original vivía en el navegador (local storage); aquí es estado
// explícito del lado servidor con store inyectable (Redis o memoria).
type Store interface {
	Get(ctx context.Context, userID string) ([]Item, error)
	Save(ctx context.Context, userID string, items []Item) error
	Clear(ctx context.Context, userID string) error
}
