package threadsafe_test

import (
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skybi/hashtable/internal/hashmap"
	"github.com/skybi/hashtable/internal/threadsafe"
)

var _ = Describe("Table", func() {
	It("should reject invalid capacities", func() {
		_, err := threadsafe.NewTable[string, int](0, hashmap.String)
		Expect(err).To(MatchError(hashmap.ErrInvalidCapacity))
	})

	It("should behave like the underlying table", func() {
		safe, err := threadsafe.NewTable[string, string](10, hashmap.String)
		Expect(err).NotTo(HaveOccurred())

		_, existed := safe.Update("Apple", "Applied")
		Expect(existed).To(BeFalse())
		previous, existed := safe.Update("Apple", "Offer")
		Expect(existed).To(BeTrue())
		Expect(previous).To(Equal("Applied"))
		Expect(safe.Get("Apple")).To(Equal("Offer"))

		safe.Assign("Fox", "Interview", true)
		Expect(safe.Size()).To(Equal(2))
		removed, existed := safe.Assign("Fox", "", false)
		Expect(existed).To(BeTrue())
		Expect(removed).To(Equal("Interview"))
		Expect(safe.Has("Fox")).To(BeFalse())
		Expect(safe.Capacity()).To(Equal(10))
		Expect(safe.String()).To(ContainSubstring(`(key: "Apple", value: "Offer")`))

		safe.Clear()
		Expect(safe.Size()).To(BeZero())
	})

	It("should survive concurrent writers and readers", func() {
		safe := threadsafe.Wrap(hashmap.MustNew[int, int](16, hashmap.Int))

		var wg sync.WaitGroup
		for worker := 0; worker < 8; worker++ {
			wg.Add(1)
			go func(worker int) {
				defer GinkgoRecover()
				defer wg.Done()
				for i := 0; i < 200; i++ {
					key := worker*1000 + i
					safe.Set(key, i)
					Expect(safe.Get(key)).To(Equal(i))
					safe.Range(func(int, int) bool { return false })
					if i%2 == 0 {
						safe.Unset(key)
					}
				}
			}(worker)
		}
		wg.Wait()

		Expect(safe.Size()).To(Equal(8 * 100))
		Expect(safe.Stats().Count).To(Equal(8 * 100))
	})

	It("should run manipulations under one lock", func() {
		safe := threadsafe.Wrap(hashmap.MustNew[string, int](4, hashmap.String))
		safe.Manipulate(func(table *hashmap.Table[string, int]) {
			for i := 0; i < 10; i++ {
				table.Set(fmt.Sprint(i), i)
			}
		})
		Expect(safe.Size()).To(Equal(10))
	})
})
