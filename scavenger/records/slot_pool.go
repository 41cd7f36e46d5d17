package records

import (
	"code.cloudfoundry.org/workpool"
)

// SlotPool bounds how many grid API requests may be in flight across the
// whole process. It is shared by every Fetcher so that fetching several
// record types concurrently still honors one global limit.
type SlotPool struct {
	pool *workpool.WorkPool
}

func NewSlotPool(maxInFlight int) (*SlotPool, error) {
	pool, err := workpool.NewWorkPool(maxInFlight)
	if err != nil {
		return nil, err
	}

	return &SlotPool{pool: pool}, nil
}

// Do blocks until a slot is free, runs work, and releases the slot when
// work returns.
func (s *SlotPool) Do(work func()) {
	done := make(chan struct{})

	s.pool.Submit(func() {
		defer close(done)
		work()
	})

	<-done
}

func (s *SlotPool) Close() {
	s.pool.Stop()
}
