package repository

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var idPrefix = map[string]string{
	"produk":    "PRD",
	"kategori":  "KTG",
	"pemasok":   "SUP",
	"transaksi": "TRS",
	"stok":      "MUT",
}

// InitializeCounters membuat dokumen counter yang belum ada tanpa mereset nilainya.
func (m *Mongo) InitializeCounters(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	for name := range idPrefix {
		_, err := m.counterCol().UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"seq": 0}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("gagal inisialisasi counter %s: %w", name, err)
		}
	}
	return nil
}

// GenerateID menghasilkan ID berurutan, contoh PRD001, TRS042.
func (m *Mongo) GenerateID(ctx context.Context, name string) (string, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := m.counterCol().FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", fmt.Errorf("generate id %s: %w", name, err)
	}

	prefix, ok := idPrefix[name]
	if !ok {
		prefix = strings.ToUpper(name)
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
	}
	return fmt.Sprintf("%s%03d", prefix, counter.Seq), nil
}
