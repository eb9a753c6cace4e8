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

func (m *Mongo) ListKategori(ctx context.Context) ([]models.Kategori, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := m.kategoriCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Kategori](ctx, cur)
}

func (m *Mongo) GetKategori(ctx context.Context, id string) (*models.Kategori, error) {
	return m.findKategori(ctx, bson.M{"_id": id})
}

// FindKategoriByNama mencocokkan nama tanpa membedakan huruf besar/kecil.
func (m *Mongo) FindKategoriByNama(ctx context.Context, nama string) (*models.Kategori, error) {
	filter := bson.M{"nama_kategori": nama}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var k models.Kategori
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "id", Strength: 2})
	err := m.kategoriCol().FindOne(ctx, filter, opts).Decode(&k)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (m *Mongo) findKategori(ctx context.Context, filter bson.M) (*models.Kategori, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	var k models.Kategori
	err := m.kategoriCol().FindOne(ctx, filter).Decode(&k)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (m *Mongo) CreateKategori(ctx context.Context, k *models.Kategori) error {
	if k.ID == "" {
		id, err := m.GenerateID(ctx, "kategori")
		if err != nil {
			return err
		}
		k.ID = id
	}
	now := time.Now()
	k.CreatedAt = now
	k.UpdatedAt = now

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	_, err := m.kategoriCol().InsertOne(ctx, k)
	return err
}

func (m *Mongo) UpdateKategori(ctx context.Context, id string, patch models.KategoriPatch) (*models.Kategori, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.NamaKategori != nil {
		set["nama_kategori"] = *patch.NamaKategori
	}
	if patch.Deskripsi != nil {
		set["deskripsi"] = *patch.Deskripsi
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var k models.Kategori
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.kategoriCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&k)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (m *Mongo) DeleteKategori(ctx context.Context, id string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	res, err := m.kategoriCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
