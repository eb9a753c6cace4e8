package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port               string
	AppEnv             string
	MongoURI           string
	DBName             string
	StoreBackend       string // mongo | memory
	TransactionBackend string // mongo | postgres | memory
	PostgresURL        string
	ReceiptPrefix      string
	SystemName         string
	TelegramToken      string
	TelegramChatID     string
	KafkaBrokers       string
	KafkaTopic         string
	NotifyTimeout      time.Duration
	LowStockAlert      int
	LowStockReport     int
	CorsOrigins        string
}

// Load membaca .env (tidak fatal jika tidak ada, agar bisa jalan di Railway)
// lalu environment dengan default untuk development.
func Load() Settings {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) Settings {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	getInt := func(key string, def int) int {
		n, err := strconv.Atoi(get(key, ""))
		if err != nil || n < 0 {
			return def
		}
		return n
	}

	s := Settings{
		Port:               get("PORT", "5000"),
		AppEnv:             strings.ToLower(get("APP_ENV", "development")),
		MongoURI:           get("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             get("DB_NAME", "inventorypos"),
		StoreBackend:       strings.ToLower(get("STORE_BACKEND", "mongo")),
		TransactionBackend: strings.ToLower(get("TRANSACTION_BACKEND", "")),
		PostgresURL:        get("POSTGRES_URL", ""),
		ReceiptPrefix:      get("RECEIPT_PREFIX", "TRX"),
		SystemName:         get("SYSTEM_NAME", "INVENTORY SYSTEM"),
		TelegramToken:      get("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:     get("TELEGRAM_CHAT_ID", ""),
		KafkaBrokers:       get("KAFKA_BROKERS", ""),
		KafkaTopic:         get("KAFKA_TOPIC", "pos.notifications"),
		NotifyTimeout:      10 * time.Second,
		LowStockAlert:      getInt("LOW_STOCK_ALERT", 3),
		LowStockReport:     getInt("LOW_STOCK_REPORT", 5),
		CorsOrigins:        get("CORS_ORIGINS", "http://localhost:5000,http://localhost:5173"),
	}
	if d, err := time.ParseDuration(get("NOTIFY_TIMEOUT", "")); err == nil && d > 0 {
		s.NotifyTimeout = d
	}
	// transaksi ikut backend katalog kecuali diset eksplisit
	if s.TransactionBackend == "" {
		s.TransactionBackend = s.StoreBackend
	}
	return s
}

func (s Settings) Production() bool {
	return s.AppEnv == "production"
}
