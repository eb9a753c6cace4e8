package pos

import (
	"context"
	"sync"

	"inventorypos/models"

	"go.uber.org/zap"
)

// Session adalah satu sesi kasir: keranjang, nomor struk berjalan dan
// hasil checkout terakhir. Selama checkout berjalan semua mutasi ditolak
// dengan ErrCheckoutInProgress, setelah selesai dengan ErrSaleCompleted
// sampai NewSale dipanggil.
type Session struct {
	mu       sync.Mutex
	catalog  CatalogStore
	checkout *Checkout
	numbers  *ReceiptNumbers
	logger   *zap.Logger

	cart          *Cart
	nomorStruk    string
	busy          bool
	locked        bool
	lastAttempt   *Attempt
	lastCompleted *Attempt
}

// View adalah tampilan keranjang untuk response API.
type View struct {
	NomorStruk string     `json:"nomor_struk"`
	Items      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   int64      `json:"subtotal"`
	GrandTotal int64      `json:"grand_total"`
	Payment    Payment    `json:"pembayaran"`
	Processing bool       `json:"processing"`
	Completed  bool       `json:"completed"`
}

func NewSession(catalog CatalogStore, checkout *Checkout, numbers *ReceiptNumbers, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if numbers == nil {
		numbers = NewReceiptNumbers(DefaultReceiptPrefix)
	}
	return &Session{
		catalog:    catalog,
		checkout:   checkout,
		numbers:    numbers,
		logger:     logger,
		cart:       NewCart(),
		nomorStruk: numbers.Next(),
	}
}

func (s *Session) guard() error {
	if s.busy {
		return ErrCheckoutInProgress
	}
	if s.locked {
		return ErrSaleCompleted
	}
	return nil
}

func (s *Session) viewLocked() View {
	return View{
		NomorStruk: s.nomorStruk,
		Items:      s.cart.Lines(),
		TotalItems: s.cart.TotalItems(),
		Subtotal:   s.cart.Subtotal(),
		GrandTotal: s.cart.GrandTotal(),
		Payment:    s.cart.Payment(),
		Processing: s.busy,
		Completed:  s.locked,
	}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// RefreshCatalog membaca ulang katalog dan memperbarui snapshot keranjang.
// Setelah penjualan selesai snapshot tidak disentuh sampai NewSale.
func (s *Session) RefreshCatalog(ctx context.Context) ([]models.Produk, []Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return nil, nil, ErrCheckoutInProgress
	}
	products, err := s.catalog.ListProduk(ctx)
	if err != nil {
		return nil, nil, err
	}
	if s.locked {
		return products, nil, nil
	}
	return products, s.cart.RefreshSnapshot(products), nil
}

// AddItem menambah satu produk. Produk yang belum ada di snapshot memicu
// refresh katalog; penyesuaian baris lain dari refresh itu ikut dikembalikan
// sebelum warning penambahan.
func (s *Session) AddItem(ctx context.Context, produkID string) (View, []Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return s.viewLocked(), nil, err
	}

	var warnings []Warning
	p, ok := s.cart.Product(produkID)
	if !ok {
		products, err := s.catalog.ListProduk(ctx)
		if err != nil {
			return s.viewLocked(), nil, err
		}
		warnings = s.cart.RefreshSnapshot(products)
		if p, ok = s.cart.Product(produkID); !ok {
			return s.viewLocked(), warnings, ErrProdukNotFound
		}
	}
	if w := s.cart.AddItem(p); w != nil {
		warnings = append(warnings, *w)
	}
	return s.viewLocked(), warnings, nil
}

func (s *Session) RemoveItem(produkID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return s.viewLocked(), err
	}
	s.cart.RemoveItem(produkID)
	return s.viewLocked(), nil
}

func (s *Session) SetQuantity(produkID string, n int) (View, *Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return s.viewLocked(), nil, err
	}
	w := s.cart.SetQuantity(produkID, n)
	return s.viewLocked(), w, nil
}

func (s *Session) Clear() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return s.viewLocked(), err
	}
	s.cart.Clear()
	return s.viewLocked(), nil
}

func (s *Session) SetPayment(method PaymentMethod, tendered int64) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return s.viewLocked(), err
	}
	s.cart.SetPaymentMethod(method)
	s.cart.SetCashTendered(tendered)
	return s.viewLocked(), nil
}

// Checkout menjalankan checkout tanpa memegang lock, supaya View tetap
// bisa dibaca. Percobaan lain ditolak lewat flag busy.
func (s *Session) Checkout(ctx context.Context) (*Attempt, error) {
	s.mu.Lock()
	if err := s.guard(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.busy = true
	cart, nomor := s.cart, s.nomorStruk
	s.mu.Unlock()

	a, err := s.checkout.Run(ctx, nomor, cart)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.lastAttempt = a
	if err == nil {
		s.locked = true
		s.lastCompleted = a
	}
	return a, err
}

// NewSale memulai transaksi baru: nomor struk baru, keranjang kosong dan
// snapshot katalog yang segar.
func (s *Session) NewSale(ctx context.Context) (View, []Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return s.viewLocked(), nil, ErrCheckoutInProgress
	}
	s.cart.Clear()
	s.nomorStruk = s.numbers.Next()
	s.locked = false
	s.lastAttempt = nil

	products, err := s.catalog.ListProduk(ctx)
	if err != nil {
		s.logger.Warn("gagal memuat katalog untuk transaksi baru", zap.Error(err))
		return s.viewLocked(), nil, nil
	}
	return s.viewLocked(), s.cart.RefreshSnapshot(products), nil
}

// LastCompleted adalah checkout sukses terakhir, tetap tersedia setelah NewSale.
func (s *Session) LastCompleted() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCompleted
}

// LastAttempt adalah percobaan checkout terakhir pada transaksi berjalan.
func (s *Session) LastAttempt() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAttempt
}
