package pos

import (
	"fmt"
	"strings"

	"inventorypos/models"
)

// PaymentMethod: cash atau card.
type PaymentMethod string

const (
	Cash PaymentMethod = models.MetodeCash
	Card PaymentMethod = models.MetodeCard
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case Cash:
		return Cash, nil
	case Card:
		return Card, nil
	}
	return "", fmt.Errorf("metode pembayaran tidak dikenal: %q", s)
}

// Payment: ChangeDue = max(0, CashTendered - grand total) untuk tunai, 0 untuk kartu.
type Payment struct {
	Method       PaymentMethod `json:"metode"`
	CashTendered int64         `json:"uang_diterima"`
	ChangeDue    int64         `json:"kembalian"`
}

// Received adalah uang yang dianggap diterima. Untuk kartu sama dengan grand total.
func (p Payment) Received(grandTotal int64) int64 {
	if p.Method == Card {
		return grandTotal
	}
	return p.CashTendered
}

func (p Payment) sufficient(grandTotal int64) bool {
	return p.Method == Card || p.CashTendered >= grandTotal
}
