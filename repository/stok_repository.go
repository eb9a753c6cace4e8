package repository

import (
	"context"
	"errors"
	"time"

	"inventorypos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) CreateMutasi(ctx context.Context, mut *models.StokMutasi) error {
	// Validate produk exists
	if _, err := m.GetProduk(ctx, mut.ProdukID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrProdukNotFound
		}
		return err
	}
	if mut.ID == "" {
		id, err := m.GenerateID(ctx, "stok")
		if err != nil {
			return err
		}
		mut.ID = id
	}
	if mut.CreatedAt.IsZero() {
		mut.CreatedAt = time.Now()
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	_, err := m.stokCol().InsertOne(ctx, mut)
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("id mutasi duplikat")
	}
	return err
}

func (m *Mongo) ListMutasiByProduk(ctx context.Context, produkID string, page, pageSize int) ([]models.StokMutasi, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if page > 0 && pageSize > 0 {
		opts.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	}
	cur, err := m.stokCol().Find(ctx, bson.M{"produk_id": produkID}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.StokMutasi](ctx, cur)
}
