package notifier

import (
	"context"
	"sync"
)

type Sender interface {
	Send(ctx context.Context, text string) bool
}

// Fanout mengirim ke semua sender secara paralel. Berhasil bila minimal
// satu sender berhasil.
type Fanout struct {
	senders []Sender
}

func NewFanout(senders ...Sender) *Fanout {
	f := &Fanout{}
	for _, s := range senders {
		if s != nil {
			f.senders = append(f.senders, s)
		}
	}
	return f
}

func (f *Fanout) Len() int { return len(f.senders) }

func (f *Fanout) Send(ctx context.Context, text string) bool {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered bool
	)
	for _, s := range f.senders {
		wg.Add(1)
		go func(s Sender) {
			defer wg.Done()
			if s.Send(ctx, text) {
				mu.Lock()
				delivered = true
				mu.Unlock()
			}
		}(s)
	}
	wg.Wait()
	return delivered
}
