// Package notifier mengirim ringkasan transaksi dan laporan stok ke kanal luar.
// Semua pengiriman best-effort: kegagalan dicatat dan dilaporkan sebagai false.
package notifier

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const telegramAPI = "https://api.telegram.org"

type Telegram struct {
	BaseURL   string
	Token     string
	ChatID    string
	ParseMode string
	Timeout   time.Duration
	Logger    *zap.Logger
}

func NewTelegram(token, chatID string, logger *zap.Logger) *Telegram {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Telegram{
		BaseURL:   telegramAPI,
		Token:     token,
		ChatID:    chatID,
		ParseMode: "Markdown",
		Timeout:   10 * time.Second,
		Logger:    logger,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *Telegram) timeout(ctx context.Context) time.Duration {
	d := t.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d || d <= 0 {
			d = left
		}
	}
	return d
}

func (t *Telegram) Send(ctx context.Context, text string) bool {
	if t.Token == "" || t.ChatID == "" {
		t.Logger.Debug("telegram belum dikonfigurasi, pesan dilewati")
		return false
	}
	d := t.timeout(ctx)
	if d <= 0 {
		t.Logger.Warn("telegram: waktu habis sebelum mengirim")
		return false
	}

	url := strings.TrimRight(t.BaseURL, "/") + "/bot" + t.Token + "/sendMessage"
	agent := fiber.Post(url).
		JSON(telegramMessage{ChatID: t.ChatID, Text: text, ParseMode: t.ParseMode}).
		Timeout(d)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		t.Logger.Warn("telegram: request gagal", zap.Errors("errors", errs))
		return false
	}

	var resp telegramResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Logger.Warn("telegram: response tidak valid", zap.Int("status", code), zap.Error(err))
		return false
	}
	if code != fiber.StatusOK || !resp.OK {
		t.Logger.Warn("telegram: pesan ditolak",
			zap.Int("status", code),
			zap.String("description", resp.Description))
		return false
	}
	return true
}
