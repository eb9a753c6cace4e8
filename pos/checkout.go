package pos

import (
	"context"
	"sync"
	"time"

	"inventorypos/models"
	"inventorypos/receipt"

	"go.uber.org/zap"
)

// State adalah tahap checkout, dari IDLE sampai COMPLETE atau FAILED.
type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateReconcile  State = "RECONCILING_STOCK"
	StatePersisting State = "PERSISTING"
	StateNotifying  State = "NOTIFYING"
	StateComplete   State = "COMPLETE"
	StateFailed     State = "FAILED"
)

// Attempt mencatat satu percobaan checkout beserta riwayat state-nya.
type Attempt struct {
	NomorStruk string            `json:"nomor_struk"`
	State      State             `json:"state"`
	History    []State           `json:"history"`
	Transaksi  *models.Transaksi `json:"transaksi,omitempty"`
	Applied    []StockChange     `json:"stok_berubah,omitempty"`
	Err        error             `json:"-"`
}

func (a *Attempt) to(s State) {
	a.State = s
	a.History = append(a.History, s)
}

// Reached melaporkan apakah attempt pernah masuk ke state s.
func (a *Attempt) Reached(s State) bool {
	for _, h := range a.History {
		if h == s {
			return true
		}
	}
	return false
}

// Checkout menjalankan penjualan: validasi, kurangi stok, simpan transaksi
// lalu kirim notifikasi.
type Checkout struct {
	catalog       CatalogStore
	store         TransactionStore
	notifier      Notifier
	logger        *zap.Logger
	metrics       Recorder
	now           func() time.Time
	notifyTimeout time.Duration
	receiptOpts   receipt.Options
	summary       func(t *models.Transaksi, opts receipt.Options) (string, error)

	wg sync.WaitGroup
}

// Option mengatur dependensi opsional Checkout.
type Option func(*Checkout)

func WithNotifier(n Notifier) Option {
	return func(c *Checkout) { c.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Checkout) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMetrics(r Recorder) Option {
	return func(c *Checkout) {
		if r != nil {
			c.metrics = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Checkout) { c.now = now }
}

func WithNotifyTimeout(d time.Duration) Option {
	return func(c *Checkout) {
		if d > 0 {
			c.notifyTimeout = d
		}
	}
}

func WithReceiptOptions(o receipt.Options) Option {
	return func(c *Checkout) { c.receiptOpts = o }
}

func NewCheckout(catalog CatalogStore, store TransactionStore, opts ...Option) *Checkout {
	c := &Checkout{
		catalog:       catalog,
		store:         store,
		logger:        zap.NewNop(),
		metrics:       nopRecorder{},
		now:           time.Now,
		notifyTimeout: 10 * time.Second,
		summary:       receiptText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReceiptOptions dipakai controller untuk merender struk dengan format yang sama.
func (c *Checkout) ReceiptOptions() receipt.Options {
	return c.receiptOpts
}

// Run menjalankan satu percobaan checkout untuk isi keranjang saat ini.
// Keranjang tidak pernah diubah oleh Run. Kegagalan tidak di-retry dan
// pengurangan stok yang sudah terjadi tidak dikembalikan.
func (c *Checkout) Run(ctx context.Context, nomorStruk string, cart *Cart) (*Attempt, error) {
	a := &Attempt{NomorStruk: nomorStruk, State: StateIdle, History: []State{StateIdle}}
	log := c.logger.With(zap.String("nomor_struk", nomorStruk))

	a.to(StateValidating)
	if cart.Len() == 0 {
		return c.fail(log, a, ErrEmptyCart)
	}
	payment := cart.Payment()
	if !payment.sufficient(cart.GrandTotal()) {
		return c.fail(log, a, ErrInsufficientPayment)
	}

	// Mulai dari sini operasi tidak bisa dibatalkan lagi.
	ctx = context.WithoutCancel(ctx)

	a.to(StateReconcile)
	applied, err := c.reconcile(ctx, cart)
	a.Applied = applied
	if err != nil {
		return c.fail(log, a, err)
	}

	a.to(StatePersisting)
	trx := buildTransaksi(nomorStruk, cart, c.now())
	saved, err := c.store.AppendTransaksi(ctx, trx)
	if err == nil && (saved == nil || saved.ID == "" || saved.ID == nomorStruk) {
		err = ErrMissingServerID
	}
	if err != nil {
		return c.fail(log, a, &PersistenceError{NomorStruk: nomorStruk, Applied: applied, Err: err})
	}
	a.Transaksi = saved

	a.to(StateNotifying)
	c.notify(log, saved)

	a.to(StateComplete)
	c.metrics.ObserveCheckout("complete")
	log.Info("checkout selesai",
		zap.String("transaksi_id", saved.ID),
		zap.Int64("total", saved.Total),
		zap.String("metode", saved.MetodeBayar),
		zap.Int("items", len(saved.Items)))
	return a, nil
}

// reconcile mengurangi stok baris demi baris sesuai urutan keranjang.
// Stok dibaca sekali dari katalog dan dicek dulu supaya tidak ada stok negatif
// sebelum update pertama dikirim.
func (c *Checkout) reconcile(ctx context.Context, cart *Cart) ([]StockChange, error) {
	products, err := c.catalog.ListProduk(ctx)
	if err != nil {
		return nil, &StockReconciliationError{Err: err}
	}
	current := make(map[string]models.Produk, len(products))
	for _, p := range products {
		current[p.ID] = p
	}

	lines := cart.Lines()
	for i, line := range lines {
		p, ok := current[line.ProdukID]
		if !ok {
			return nil, &StockReconciliationError{ProdukID: line.ProdukID, Line: i + 1, Err: ErrProdukNotFound}
		}
		if p.Stok < line.Jumlah {
			return nil, &StockReconciliationError{ProdukID: line.ProdukID, Line: i + 1, Err: ErrInsufficientStock}
		}
	}

	applied := make([]StockChange, 0, len(lines))
	for i, line := range lines {
		before := current[line.ProdukID].Stok
		after := before - line.Jumlah
		if _, err := c.catalog.UpdateProduk(ctx, line.ProdukID, models.StokPatch(after)); err != nil {
			return applied, &StockReconciliationError{
				ProdukID: line.ProdukID,
				Line:     i + 1,
				Applied:  append([]StockChange(nil), applied...),
				Err:      err,
			}
		}
		applied = append(applied, StockChange{ProdukID: line.ProdukID, Sebelum: before, Sesudah: after})
	}
	return applied, nil
}

func (c *Checkout) fail(log *zap.Logger, a *Attempt, err error) (*Attempt, error) {
	stage := a.State
	a.Err = err
	a.to(StateFailed)
	c.metrics.ObserveStageFailure(string(stage))
	c.metrics.ObserveCheckout("failed")

	if IsUserError(err) {
		log.Info("checkout ditolak", zap.String("stage", string(stage)), zap.Error(err))
	} else {
		log.Error("checkout gagal",
			zap.String("stage", string(stage)),
			zap.Any("stok_berubah", a.Applied),
			zap.Error(err))
	}
	return a, err
}

// notify tidak pernah menunggu pengiriman. Gunakan Wait untuk menunggu
// notifikasi yang masih berjalan.
func (c *Checkout) notify(log *zap.Logger, t *models.Transaksi) {
	if c.notifier == nil {
		log.Debug("notifikasi dilewati, notifier tidak dikonfigurasi")
		return
	}
	text, err := c.summary(t, c.receiptOpts)
	if err != nil {
		c.metrics.ObserveNotification(false)
		log.Warn("gagal membuat teks notifikasi", zap.Error(err))
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.notifyTimeout)
		defer cancel()

		delivered := c.notifier.Send(ctx, text)
		c.metrics.ObserveNotification(delivered)
		if !delivered {
			log.Warn("notifikasi transaksi gagal dikirim")
			return
		}
		log.Debug("notifikasi transaksi terkirim")
	}()
}

func receiptText(t *models.Transaksi, opts receipt.Options) (string, error) {
	return receipt.Render(t, opts).Text()
}

// Wait menunggu semua notifikasi yang sedang dikirim.
func (c *Checkout) Wait() {
	c.wg.Wait()
}

func buildTransaksi(nomorStruk string, cart *Cart, now time.Time) *models.Transaksi {
	lines := cart.Lines()
	items := make([]models.TransaksiItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.TransaksiItem{
			ProdukID:    l.ProdukID,
			NamaProduk:  l.Nama,
			Jumlah:      l.Jumlah,
			HargaSatuan: l.HargaSatuan,
			Subtotal:    l.Subtotal,
		})
	}
	payment := cart.Payment()
	grand := cart.GrandTotal()
	return &models.Transaksi{
		NomorStruk:   nomorStruk,
		Items:        items,
		TotalProduk:  cart.TotalItems(),
		Subtotal:     cart.Subtotal(),
		Pajak:        0,
		Total:        grand,
		MetodeBayar:  string(payment.Method),
		UangDiterima: payment.Received(grand),
		Kembalian:    payment.ChangeDue,
		CreatedAt:    now,
	}
}
