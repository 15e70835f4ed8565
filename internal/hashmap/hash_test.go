package hashmap_test

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skybi/hashtable/internal/hashmap"
)

var _ = Describe("Hash functions", func() {
	It("should be deterministic", func() {
		Expect(hashmap.String("Apple")).To(Equal(hashmap.String("Apple")))
		Expect(hashmap.Bytes([]byte("Apple"))).To(Equal(hashmap.String("Apple")))
		Expect(hashmap.Int(-7)).To(Equal(hashmap.Int64(-7)))
		Expect(hashmap.Int64(42)).To(Equal(hashmap.Uint64(42)))

		id := uuid.New()
		Expect(hashmap.UUID(id)).To(Equal(hashmap.UUID(id)))
	})

	It("should distinguish different keys", func() {
		Expect(hashmap.String("Apple")).NotTo(Equal(hashmap.String("Google")))
		Expect(hashmap.Int(1)).NotTo(Equal(hashmap.Int(2)))
		Expect(hashmap.UUID(uuid.New())).NotTo(Equal(hashmap.UUID(uuid.New())))
	})

	It("should work as table hash functions", func() {
		table := hashmap.MustNew[uuid.UUID, string](16, hashmap.UUID)
		ids := make([]uuid.UUID, 32)
		for i := range ids {
			ids[i] = uuid.New()
			table.Set(ids[i], ids[i].String())
		}
		Expect(table.Size()).To(Equal(len(ids)))
		for _, id := range ids {
			Expect(table.IndexFor(id)).To(BeNumerically(">=", 0))
			Expect(table.IndexFor(id)).To(BeNumerically("<", 16))
			Expect(table.Get(id)).To(Equal(id.String()))
		}
	})
})
