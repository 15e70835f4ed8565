package hashmap_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/skybi/hashtable/internal/hashmap"
)

var _ = Describe("Stats", func() {
	It("should describe an empty table", func() {
		stats := hashmap.MustNew[string, int](8, hashmap.String).Stats()
		Expect(stats).To(Equal(hashmap.Stats{Capacity: 8, EmptyBuckets: 8}))
		Expect(stats.LoadFactor()).To(BeZero())
	})

	It("should report the load factor", func() {
		table := hashmap.MustNew[int, int](4, hashmap.Int)
		for i := 0; i < 10; i++ {
			table.Set(i, i)
		}
		stats := table.Stats()
		Expect(stats.Count).To(Equal(10))
		Expect(stats.LoadFactor()).To(BeNumerically("~", 2.5))
		Expect(stats.LongestChain).To(BeNumerically(">=", 3))
	})

	It("should be loggable as an object", func() {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		stats := hashmap.Stats{Capacity: 2, Count: 3, EmptyBuckets: 0, LongestChain: 2}
		logger.Info().Object("stats", stats).Msg("")

		var line struct {
			Stats map[string]any `json:"stats"`
		}
		Expect(json.Unmarshal(buf.Bytes(), &line)).To(Succeed())
		Expect(line.Stats).To(HaveKeyWithValue("count", BeNumerically("==", 3)))
		Expect(line.Stats).To(HaveKeyWithValue("load_factor", BeNumerically("~", 1.5)))
	})
})
