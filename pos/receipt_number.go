package pos

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const DefaultReceiptPrefix = "TRX"

// ReceiptNumbers membuat nomor struk PREFIX-<unix millis>-<0..999>.
// Nomor yang sama dengan nomor terakhir dibuat ulang.
type ReceiptNumbers struct {
	Prefix string

	mu   sync.Mutex
	now  func() time.Time
	rand func(n int) int
	last string
}

func NewReceiptNumbers(prefix string) *ReceiptNumbers {
	if prefix == "" {
		prefix = DefaultReceiptPrefix
	}
	return &ReceiptNumbers{Prefix: prefix, now: time.Now, rand: rand.Intn}
}

func (r *ReceiptNumbers) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; ; attempt++ {
		ts := r.now().UnixMilli()
		if attempt > 0 {
			ts += int64(attempt)
		}
		n := fmt.Sprintf("%s-%d-%d", r.Prefix, ts, r.rand(1000))
		if n != r.last {
			r.last = n
			return n
		}
	}
}
