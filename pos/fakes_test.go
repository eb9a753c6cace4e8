package pos

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"inventorypos/models"
)

var errBoom = errors.New("boom")

type fakeCatalog struct {
	mu       sync.Mutex
	order    []string
	products map[string]models.Produk
	updates  int
	failOn   int // update ke-n gagal (1-based), 0 berarti tidak pernah
	listErr  error
}

func newFakeCatalog(products ...models.Produk) *fakeCatalog {
	c := &fakeCatalog{products: map[string]models.Produk{}}
	for _, p := range products {
		c.order = append(c.order, p.ID)
		c.products[p.ID] = p
	}
	return c
}

func (c *fakeCatalog) ListProduk(ctx context.Context) ([]models.Produk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := make([]models.Produk, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out, nil
}

func (c *fakeCatalog) UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates++
	if c.failOn > 0 && c.updates == c.failOn {
		return nil, errBoom
	}
	p, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("produk %s tidak ada", id)
	}
	p.Apply(patch)
	c.products[id] = p
	return &p, nil
}

func (c *fakeCatalog) stock(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products[id].Stok
}

func (c *fakeCatalog) add(p models.Produk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = append(c.order, p.ID)
	c.products[p.ID] = p
}

func (c *fakeCatalog) setStock(id string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.products[id]
	p.Stok = n
	c.products[id] = p
}

type fakeStore struct {
	mu     sync.Mutex
	saved  []models.Transaksi
	err    error
	idFunc func(t *models.Transaksi) string
}

func (s *fakeStore) AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := *t
	if s.idFunc != nil {
		out.ID = s.idFunc(t)
	} else {
		out.ID = fmt.Sprintf("TRS%03d", len(s.saved)+1)
	}
	s.saved = append(s.saved, out)
	return &out, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeNotifier struct {
	mu        sync.Mutex
	texts     []string
	delivered bool
}

func (n *fakeNotifier) Send(ctx context.Context, text string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return n.delivered
}

func (n *fakeNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}

type fakeRecorder struct {
	mu            sync.Mutex
	results       []string
	stages        []string
	notifications []bool
}

func (r *fakeRecorder) ObserveCheckout(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *fakeRecorder) ObserveStageFailure(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

func (r *fakeRecorder) ObserveNotification(delivered bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, delivered)
}

func produk(id, nama string, harga int64, stok int) models.Produk {
	return models.Produk{ID: id, NamaProduk: nama, HargaJual: harga, Stok: stok}
}
