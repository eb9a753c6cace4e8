package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB membuka koneksi MongoDB dan memastikan server bisa diakses.
func ConnectDB(ctx context.Context, s Settings, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	logger.Info("menghubungkan ke MongoDB", zap.String("db", s.DBName))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.MongoURI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("terhubung ke MongoDB")
	return client, client.Database(s.DBName), nil
}
