package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"inventorypos/config"
	"inventorypos/controllers"
	_ "inventorypos/docs" // Import docs for swagger
	"inventorypos/metrics"
	"inventorypos/middleware"
	"inventorypos/notifier"
	"inventorypos/pgstore"
	"inventorypos/pos"
	"inventorypos/receipt"
	"inventorypos/repository"
	"inventorypos/routes"
)

//	@title			Inventory POS API
//	@version		1.0
//	@description	API kasir dan inventaris: keranjang, checkout, struk, katalog, stok dan laporan
//	@BasePath		/

func main() {
	settings := config.Load()

	logger, err := config.NewLogger(settings.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gagal membuat logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(settings, logger); err != nil {
		logger.Fatal("server berhenti", zap.Error(err))
	}
}

type stores struct {
	catalog   repository.CatalogStore
	transaksi repository.TransaksiStore
	closers   []func()
}

// openStores memilih backend katalog dan transaksi sesuai konfigurasi.
func openStores(ctx context.Context, s config.Settings, logger *zap.Logger) (*stores, error) {
	out := &stores{}
	var (
		mongoStore *repository.Mongo
		mem        *repository.Memory
	)

	needMongo := s.StoreBackend == "mongo" || s.TransactionBackend == "mongo"
	if needMongo {
		client, db, err := config.ConnectDB(ctx, s, logger)
		if err != nil {
			return nil, fmt.Errorf("koneksi MongoDB: %w", err)
		}
		out.closers = append(out.closers, func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		})
		mongoStore = repository.NewMongo(db)

		if err := mongoStore.InitializeCounters(ctx); err != nil {
			logger.Warn("inisialisasi counter gagal", zap.Error(err))
		}
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			logger.Warn("gagal membuat index", zap.Error(err))
		}
	}
	if s.StoreBackend == "memory" || s.TransactionBackend == "memory" {
		mem = repository.NewMemory()
	}

	switch s.StoreBackend {
	case "mongo":
		out.catalog = mongoStore
	case "memory":
		logger.Warn("katalog memakai penyimpanan memory, data hilang saat restart")
		out.catalog = mem
	default:
		return nil, fmt.Errorf("STORE_BACKEND tidak dikenal: %q", s.StoreBackend)
	}

	switch s.TransactionBackend {
	case "mongo":
		out.transaksi = mongoStore
	case "memory":
		out.transaksi = mem
	case "postgres":
		if s.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL wajib diisi untuk TRANSACTION_BACKEND=postgres")
		}
		pg, err := pgstore.New(ctx, s.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("koneksi Postgres: %w", err)
		}
		out.closers = append(out.closers, pg.Close)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("schema Postgres: %w", err)
		}
		out.transaksi = pg
	default:
		return nil, fmt.Errorf("TRANSACTION_BACKEND tidak dikenal: %q", s.TransactionBackend)
	}

	if _, err := repository.EnsureDefaultKategori(ctx, out.catalog); err != nil {
		logger.Warn("gagal membuat kategori default", zap.Error(err))
	}
	return out, nil
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func run(s config.Settings, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, s, logger)
	if err != nil {
		return err
	}
	defer st.close()

	// Notifikasi: Telegram dan/atau Kafka
	var senders []notifier.Sender
	if s.TelegramToken != "" && s.TelegramChatID != "" {
		senders = append(senders, notifier.NewTelegram(s.TelegramToken, s.TelegramChatID, logger.Named("telegram")))
	}
	// *Kafka nil tidak boleh masuk sebagai interface
	if k := notifier.NewKafka(s.KafkaBrokers, s.KafkaTopic, logger.Named("kafka")); k != nil {
		defer k.Close()
		senders = append(senders, k)
	}
	fanout := notifier.NewFanout(senders...)
	var notify pos.Notifier
	if fanout.Len() > 0 {
		notify = fanout
	} else {
		logger.Info("notifikasi tidak dikonfigurasi")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	checkoutMetrics := metrics.NewCheckout(reg)
	httpMetrics := metrics.NewHTTP(reg)

	receiptOpts := receipt.Options{SystemName: s.SystemName}
	checkout := pos.NewCheckout(
		st.catalog,
		repository.WithLedger(st.transaksi, st.catalog, logger.Named("ledger")),
		pos.WithNotifier(notify),
		pos.WithLogger(logger.Named("checkout")),
		pos.WithMetrics(checkoutMetrics),
		pos.WithNotifyTimeout(s.NotifyTimeout),
		pos.WithReceiptOptions(receiptOpts),
	)
	session := pos.NewSession(st.catalog, checkout, pos.NewReceiptNumbers(s.ReceiptPrefix), logger.Named("session"))
	if _, _, err := session.RefreshCatalog(ctx); err != nil {
		logger.Warn("gagal memuat katalog awal", zap.Error(err))
	}

	app := fiber.New(fiber.Config{AppName: s.SystemName})
	app.Use(middleware.LoggerMiddleware(logger.Named("http"), httpMetrics))
	app.Use(middleware.CorsMiddleware(s.CorsOrigins))

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(reg)))

	routes.SetupRoutes(app, routes.Controllers{
		POS:       controllers.NewPOSController(session, checkout.ReceiptOptions(), logger.Named("pos")),
		Produk:    controllers.NewProdukController(st.catalog, logger.Named("produk")),
		Kategori:  controllers.NewKategoriController(st.catalog),
		Pemasok:   controllers.NewPemasokController(st.catalog),
		Stok:      controllers.NewStokController(st.catalog),
		Transaksi: controllers.NewTransaksiController(st.transaksi, receiptOpts, time.Local),
		Laporan:   controllers.NewLaporanController(st.catalog, st.transaksi, notify, s.LowStockAlert, s.LowStockReport, logger.Named("laporan")),
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server jalan", zap.String("addr", "http://localhost:"+s.Port))
		errCh <- app.Listen(":" + s.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("mematikan server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown tidak bersih", zap.Error(err))
	}
	// tunggu notifikasi yang masih berjalan
	checkout.Wait()
	return nil
}
