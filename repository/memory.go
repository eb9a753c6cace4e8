package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"inventorypos/models"

	"github.com/google/uuid"
)

// Memory menyimpan semua data di RAM. Dipakai untuk mode offline dan test.
type Memory struct {
	mu        sync.RWMutex
	produk    []models.Produk
	kategori  []models.Kategori
	pemasok   []models.Pemasok
	mutasi    []models.StokMutasi
	transaksi []models.Transaksi
	now       func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func newID() string {
	return uuid.NewString()
}

// ---- produk ----

func (m *Memory) ListProduk(ctx context.Context) ([]models.Produk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Produk, len(m.produk))
	copy(out, m.produk)
	return out, nil
}

func (m *Memory) GetProduk(ctx context.Context, id string) (*models.Produk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexProduk(id); i >= 0 {
		p := m.produk[i]
		return &p, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) indexProduk(id string) int {
	for i := range m.produk {
		if m.produk[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) CountProdukByKategori(ctx context.Context, kategoriID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, p := range m.produk {
		if p.KategoriID == kategoriID {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CreateProduk(ctx context.Context, p *models.Produk) error {
	if p.Stok < 0 {
		return ErrStokNegatif
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.KategoriID != "" && m.indexKategori(p.KategoriID) < 0 {
		return ErrKategoriNotFound
	}
	if p.ID == "" {
		p.ID = newID()
	}
	now := m.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.produk = append(m.produk, *p)
	return nil
}

func (m *Memory) UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error) {
	if patch.Stok != nil && *patch.Stok < 0 {
		return nil, ErrStokNegatif
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexProduk(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	m.produk[i].Apply(patch)
	m.produk[i].UpdatedAt = m.now()
	p := m.produk[i]
	return &p, nil
}

func (m *Memory) DeleteProduk(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexProduk(id)
	if i < 0 {
		return ErrNotFound
	}
	m.produk = append(m.produk[:i], m.produk[i+1:]...)
	return nil
}

// ---- kategori ----

func (m *Memory) ListKategori(ctx context.Context) ([]models.Kategori, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Kategori, len(m.kategori))
	copy(out, m.kategori)
	return out, nil
}

func (m *Memory) indexKategori(id string) int {
	for i := range m.kategori {
		if m.kategori[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) GetKategori(ctx context.Context, id string) (*models.Kategori, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexKategori(id); i >= 0 {
		k := m.kategori[i]
		return &k, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) FindKategoriByNama(ctx context.Context, nama string) (*models.Kategori, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range m.kategori {
		if strings.EqualFold(k.NamaKategori, nama) {
			return &k, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateKategori(ctx context.Context, k *models.Kategori) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k.ID == "" {
		k.ID = newID()
	}
	now := m.now()
	k.CreatedAt = now
	k.UpdatedAt = now
	m.kategori = append(m.kategori, *k)
	return nil
}

func (m *Memory) UpdateKategori(ctx context.Context, id string, patch models.KategoriPatch) (*models.Kategori, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexKategori(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	m.kategori[i].Apply(patch)
	m.kategori[i].UpdatedAt = m.now()
	k := m.kategori[i]
	return &k, nil
}

func (m *Memory) DeleteKategori(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexKategori(id)
	if i < 0 {
		return ErrNotFound
	}
	m.kategori = append(m.kategori[:i], m.kategori[i+1:]...)
	return nil
}

// ---- pemasok ----

func (m *Memory) ListPemasok(ctx context.Context) ([]models.Pemasok, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Pemasok, len(m.pemasok))
	copy(out, m.pemasok)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Nama < out[j].Nama })
	return out, nil
}

func (m *Memory) indexPemasok(id string) int {
	for i := range m.pemasok {
		if m.pemasok[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) GetPemasok(ctx context.Context, id string) (*models.Pemasok, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexPemasok(id); i >= 0 {
		s := m.pemasok[i]
		return &s, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) CreatePemasok(ctx context.Context, s *models.Pemasok) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = newID()
	}
	now := m.now()
	s.CreatedAt = now
	s.UpdatedAt = now
	m.pemasok = append(m.pemasok, *s)
	return nil
}

func (m *Memory) UpdatePemasok(ctx context.Context, id string, patch models.PemasokPatch) (*models.Pemasok, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexPemasok(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	m.pemasok[i].Apply(patch)
	m.pemasok[i].UpdatedAt = m.now()
	s := m.pemasok[i]
	return &s, nil
}

func (m *Memory) DeletePemasok(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexPemasok(id)
	if i < 0 {
		return ErrNotFound
	}
	m.pemasok = append(m.pemasok[:i], m.pemasok[i+1:]...)
	return nil
}

// ---- stok ----

func (m *Memory) CreateMutasi(ctx context.Context, mut *models.StokMutasi) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexProduk(mut.ProdukID) < 0 {
		return ErrProdukNotFound
	}
	if mut.ID == "" {
		mut.ID = newID()
	}
	if mut.CreatedAt.IsZero() {
		mut.CreatedAt = m.now()
	}
	m.mutasi = append(m.mutasi, *mut)
	return nil
}

// ListMutasiByProduk mengembalikan mutasi terbaru lebih dulu.
func (m *Memory) ListMutasiByProduk(ctx context.Context, produkID string, page, pageSize int) ([]models.StokMutasi, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := []models.StokMutasi{}
	for i := len(m.mutasi) - 1; i >= 0; i-- {
		if m.mutasi[i].ProdukID == produkID {
			list = append(list, m.mutasi[i])
		}
	}
	if page > 0 && pageSize > 0 {
		start := (page - 1) * pageSize
		if start >= len(list) {
			return []models.StokMutasi{}, nil
		}
		end := start + pageSize
		if end > len(list) {
			end = len(list)
		}
		list = list[start:end]
	}
	return list, nil
}

// ---- transaksi ----

func (m *Memory) AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *t
	saved.ID = newID()
	saved.Items = append([]models.TransaksiItem(nil), t.Items...)
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = m.now()
	}
	m.transaksi = append(m.transaksi, saved)
	return &saved, nil
}

func (m *Memory) ListTransaksi(ctx context.Context, filter models.TransaksiFilter) ([]models.Transaksi, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := []models.Transaksi{}
	for i := len(m.transaksi) - 1; i >= 0; i-- {
		if filter.Match(m.transaksi[i]) {
			list = append(list, m.transaksi[i])
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (m *Memory) GetTransaksi(ctx context.Context, id string) (*models.Transaksi, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.transaksi {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}
