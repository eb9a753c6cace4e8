package pos

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumberFormat(t *testing.T) {
	r := NewReceiptNumbers("")
	n := r.Next()
	assert.Regexp(t, regexp.MustCompile(`^TRX-\d{13}-\d{1,3}$`), n)
}

func TestReceiptNumberNeverRepeatsLast(t *testing.T) {
	r := NewReceiptNumbers("POS")
	r.now = func() time.Time { return time.UnixMilli(1736480000000) }
	r.rand = func(int) int { return 7 }

	first := r.Next()
	second := r.Next()
	assert.Equal(t, "POS-1736480000000-7", first)
	assert.NotEqual(t, first, second)
}
