package records_test

import (
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"dns-scavenger/scavenger/records"
)

var _ = Describe("SlotPool", func() {
	It("rejects a non-positive size", func() {
		_, err := records.NewSlotPool(0)
		Expect(err).To(HaveOccurred())
	})

	It("runs work to completion before returning", func() {
		slots, err := records.NewSlotPool(2)
		Expect(err).NotTo(HaveOccurred())
		defer slots.Close()

		ran := false
		slots.Do(func() { ran = true })
		Expect(ran).To(BeTrue())
	})

	It("never exceeds the in-flight bound", func() {
		slots, err := records.NewSlotPool(3)
		Expect(err).NotTo(HaveOccurred())
		defer slots.Close()

		var inFlight, peak int64

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slots.Do(func() {
					current := atomic.AddInt64(&inFlight, 1)
					for {
						observed := atomic.LoadInt64(&peak)
						if current <= observed || atomic.CompareAndSwapInt64(&peak, observed, current) {
							break
						}
					}
					atomic.AddInt64(&inFlight, -1)
				})
			}()
		}
		wg.Wait()

		Expect(atomic.LoadInt64(&peak)).To(BeNumerically("<=", 3))
	})
})
