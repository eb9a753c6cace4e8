// Package pgstore menyimpan transaksi di Postgres dengan skema yang sama
// seperti tabel transactions/transaction_items di Supabase.
package pgstore

import (
	"context"
	"errors"
	"time"

	"inventorypos/models"
	"inventorypos/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateStruk = errors.New("nomor struk sudah dipakai")

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id            UUID PRIMARY KEY,
	receiptnumber TEXT NOT NULL UNIQUE,
	subtotal      BIGINT NOT NULL,
	tax           BIGINT NOT NULL DEFAULT 0,
	total         BIGINT NOT NULL,
	paymentmethod TEXT NOT NULL,
	cashreceived  BIGINT,
	"change"      BIGINT,
	createdat     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS transactions_createdat_idx ON transactions (createdat DESC);
CREATE TABLE IF NOT EXISTS transaction_items (
	id             BIGSERIAL PRIMARY KEY,
	transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
	product_id     TEXT NOT NULL,
	product_name   TEXT NOT NULL,
	quantity       INT NOT NULL CHECK (quantity > 0),
	unit_price     BIGINT NOT NULL,
	subtotal       BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS transaction_items_trx_idx ON transaction_items (transaction_id);
`

// Store implements repository.TransaksiStore.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func New(ctx context.Context, url string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool, timeout: 5 * time.Second}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// nullableCash: kolom cashreceived/change hanya diisi untuk pembayaran tunai.
func nullableCash(t *models.Transaksi) (*int64, *int64) {
	if t.MetodeBayar != models.MetodeCash {
		return nil, nil
	}
	received, change := t.UangDiterima, t.Kembalian
	return &received, &change
}

func (s *Store) AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	saved := *t
	saved.ID = uuid.NewString()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}
	received, change := nullableCash(&saved)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions(id, receiptnumber, subtotal, tax, total, paymentmethod, cashreceived, "change", createdat)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		saved.ID, saved.NomorStruk, saved.Subtotal, saved.Pajak, saved.Total, saved.MetodeBayar, received, change, saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateStruk
		}
		return nil, err
	}

	for _, it := range saved.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO transaction_items(transaction_id, product_id, product_name, quantity, unit_price, subtotal)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			saved.ID, it.ProdukID, it.NamaProduk, it.Jumlah, it.HargaSatuan, it.Subtotal,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Store) ListTransaksi(ctx context.Context, filter models.TransaksiFilter) ([]models.Transaksi, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var start, end *time.Time
	if !filter.Start.IsZero() {
		start = &filter.Start
	}
	if !filter.End.IsZero() {
		end = &filter.End
	}
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id::text, receiptnumber, subtotal, tax, total, paymentmethod, cashreceived, "change", createdat
		 FROM transactions
		 WHERE ($1::timestamptz IS NULL OR createdat >= $1)
		   AND ($2::timestamptz IS NULL OR createdat < $2)
		 ORDER BY createdat DESC
		 LIMIT $3`,
		start, end, limit,
	)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, scanTransaksi)
	if err != nil {
		return nil, err
	}

	for i := range list {
		items, err := s.items(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Items = items
		list[i].TotalProduk = totalProduk(items)
	}
	if list == nil {
		list = []models.Transaksi{}
	}
	return list, nil
}

func (s *Store) GetTransaksi(ctx context.Context, id string) (*models.Transaksi, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id::text, receiptnumber, subtotal, tax, total, paymentmethod, cashreceived, "change", createdat
		 FROM transactions WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTransaksi)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	items, err := s.items(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	t.TotalProduk = totalProduk(items)
	return &t, nil
}

func (s *Store) items(ctx context.Context, trxID string) ([]models.TransaksiItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT product_id, product_name, quantity, unit_price, subtotal
		 FROM transaction_items WHERE transaction_id = $1 ORDER BY id`, trxID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TransaksiItem{}
	for rows.Next() {
		var it models.TransaksiItem
		if err := rows.Scan(&it.ProdukID, &it.NamaProduk, &it.Jumlah, &it.HargaSatuan, &it.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanTransaksi(row pgx.CollectableRow) (models.Transaksi, error) {
	var (
		t        models.Transaksi
		received *int64
		change   *int64
	)
	err := row.Scan(&t.ID, &t.NomorStruk, &t.Subtotal, &t.Pajak, &t.Total, &t.MetodeBayar, &received, &change, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	if received != nil {
		t.UangDiterima = *received
	} else {
		// kartu: uang diterima sama dengan total
		t.UangDiterima = t.Total
	}
	if change != nil {
		t.Kembalian = *change
	}
	return t, nil
}

func totalProduk(items []models.TransaksiItem) int {
	n := 0
	for _, it := range items {
		n += it.Jumlah
	}
	return n
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
