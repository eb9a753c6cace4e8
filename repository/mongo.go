package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo adalah implementasi CatalogStore dan TransaksiStore di atas MongoDB.
type Mongo struct {
	DB      *mongo.Database
	Timeout time.Duration
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{DB: db, Timeout: 10 * time.Second}
}

func (m *Mongo) produkCol() *mongo.Collection    { return m.DB.Collection("produk") }
func (m *Mongo) kategoriCol() *mongo.Collection  { return m.DB.Collection("kategori") }
func (m *Mongo) pemasokCol() *mongo.Collection   { return m.DB.Collection("pemasok") }
func (m *Mongo) stokCol() *mongo.Collection      { return m.DB.Collection("stok") }
func (m *Mongo) transaksiCol() *mongo.Collection { return m.DB.Collection("transaksi") }
func (m *Mongo) counterCol() *mongo.Collection   { return m.DB.Collection("counters") }

func (m *Mongo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.Timeout)
}

// EnsureIndexes membuat semua index yang dibutuhkan.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if _, err := m.produkCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "kategori_id", Value: 1}}},
		{Keys: bson.D{{Key: "sku", Value: 1}}},
	}); err != nil {
		return err
	}
	// Unique index on nama_kategori
	if _, err := m.kategoriCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nama_kategori", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := m.stokCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "produk_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}); err != nil {
		return err
	}
	_, err := m.transaksiCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "nomor_struk", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)
	list := []T{}
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, cur.Err()
}
