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

func (m *Mongo) ListPemasok(ctx context.Context) ([]models.Pemasok, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "nama", Value: 1}})
	cur, err := m.pemasokCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Pemasok](ctx, cur)
}

func (m *Mongo) GetPemasok(ctx context.Context, id string) (*models.Pemasok, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	var s models.Pemasok
	err := m.pemasokCol().FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Mongo) CreatePemasok(ctx context.Context, s *models.Pemasok) error {
	if s.ID == "" {
		id, err := m.GenerateID(ctx, "pemasok")
		if err != nil {
			return err
		}
		s.ID = id
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	_, err := m.pemasokCol().InsertOne(ctx, s)
	return err
}

func (m *Mongo) UpdatePemasok(ctx context.Context, id string, patch models.PemasokPatch) (*models.Pemasok, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Nama != nil {
		set["nama"] = *patch.Nama
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Telepon != nil {
		set["telepon"] = *patch.Telepon
	}
	if patch.Alamat != nil {
		set["alamat"] = *patch.Alamat
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var s models.Pemasok
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.pemasokCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Mongo) DeletePemasok(ctx context.Context, id string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	res, err := m.pemasokCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
