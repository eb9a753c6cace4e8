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

// AppendTransaksi menyimpan transaksi baru. ID server (TRSxxx) selalu berbeda dari nomor struk.
func (m *Mongo) AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error) {
	saved := *t
	id, err := m.GenerateID(ctx, "transaksi")
	if err != nil {
		return nil, err
	}
	saved.ID = id
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	if _, err := m.transaksiCol().InsertOne(ctx, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (m *Mongo) ListTransaksi(ctx context.Context, filter models.TransaksiFilter) ([]models.Transaksi, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	q := bson.M{}
	created := bson.M{}
	if !filter.Start.IsZero() {
		created["$gte"] = filter.Start
	}
	if !filter.End.IsZero() {
		created["$lt"] = filter.End
	}
	if len(created) > 0 {
		q["created_at"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	cur, err := m.transaksiCol().Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Transaksi](ctx, cur)
}

func (m *Mongo) GetTransaksi(ctx context.Context, id string) (*models.Transaksi, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	var t models.Transaksi
	err := m.transaksiCol().FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
