package notifier

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Kafka menerbitkan setiap pesan ke satu topic. Dipakai oleh layanan lain
// (misalnya dashboard penjualan) yang tidak memakai Telegram.
type Kafka struct {
	writer *kafka.Writer
	logger *zap.Logger
}

type kafkaEvent struct {
	Type string    `json:"type"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafka mengembalikan nil bila tidak ada broker.
func NewKafka(brokersCSV, topic string, logger *zap.Logger) *Kafka {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

func (k *Kafka) Send(ctx context.Context, text string) bool {
	data, err := json.Marshal(kafkaEvent{Type: "pos.notification", Text: text, At: time.Now().UTC()})
	if err != nil {
		k.logger.Warn("kafka: gagal encode pesan", zap.Error(err))
		return false
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{Key: []byte("pos"), Value: data, Time: time.Now().UTC()})
	if err != nil {
		k.logger.Warn("kafka: gagal publish", zap.String("topic", k.writer.Topic), zap.Error(err))
		return false
	}
	return true
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
