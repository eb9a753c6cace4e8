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

func (m *Mongo) ListProduk(ctx context.Context) ([]models.Produk, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.produkCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Produk](ctx, cursor)
}

func (m *Mongo) GetProduk(ctx context.Context, id string) (*models.Produk, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var produk models.Produk
	err := m.produkCol().FindOne(ctx, bson.M{"_id": id}).Decode(&produk)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &produk, nil
}

func (m *Mongo) CountProdukByKategori(ctx context.Context, kategoriID string) (int, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	n, err := m.produkCol().CountDocuments(ctx, bson.M{"kategori_id": kategoriID})
	return int(n), err
}

func (m *Mongo) CreateProduk(ctx context.Context, p *models.Produk) error {
	if p.Stok < 0 {
		return ErrStokNegatif
	}
	if p.KategoriID != "" {
		if _, err := m.GetKategori(ctx, p.KategoriID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrKategoriNotFound
			}
			return err
		}
	}
	if p.ID == "" {
		id, err := m.GenerateID(ctx, "produk")
		if err != nil {
			return err
		}
		p.ID = id
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	_, err := m.produkCol().InsertOne(ctx, p)
	return err
}

func (m *Mongo) UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error) {
	if patch.Stok != nil && *patch.Stok < 0 {
		return nil, ErrStokNegatif
	}

	set := bson.M{"updated_at": time.Now()}
	if patch.NamaProduk != nil {
		set["nama_produk"] = *patch.NamaProduk
	}
	if patch.KategoriID != nil {
		set["kategori_id"] = *patch.KategoriID
	}
	if patch.Deskripsi != nil {
		set["deskripsi"] = *patch.Deskripsi
	}
	if patch.HargaJual != nil {
		set["harga_jual"] = *patch.HargaJual
	}
	if patch.Stok != nil {
		set["stok"] = *patch.Stok
	}
	if patch.LokasiRak != nil {
		set["lokasi_rak"] = *patch.LokasiRak
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var updated models.Produk
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.produkCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *Mongo) DeleteProduk(ctx context.Context, id string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.produkCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
