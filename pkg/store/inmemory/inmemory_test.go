package inmemory_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/store"
	"github.com/memorymindai/memorymind/pkg/store/inmemory"
)

var _ = Describe("Driver", func() {
	var (
		driver *inmemory.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver(inmemory.Config{})
	})

	Describe("Ensure", func() {
		It("creates a graph on first call and reports it", func() {
			created, err := driver.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
		})

		It("is idempotent", func() {
			_, err := driver.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			created, err := driver.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
		})
	})

	Describe("Get", func() {
		It("returns ErrNotFound for an unknown user", func() {
			_, err := driver.Get(ctx, "ghost")

			var notFound store.ErrNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.UserID).To(Equal("ghost"))
		})

		It("returns a snapshot detached from the stored graph", func() {
			_, err := driver.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			snapshot, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			snapshot.MemoryNodes["rogue"] = graph.MemoryNode{ID: "rogue"}

			fresh, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.MemoryNodes).To(BeEmpty())
		})
	})

	Describe("Commit", func() {
		BeforeEach(func() {
			_, err := driver.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns ErrNotFound for an unknown user", func() {
			err := driver.Commit(ctx, "ghost", func(*store.Record) error { return nil })

			var notFound store.ErrNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("applies the mutation atomically", func() {
			err := driver.Commit(ctx, "alice", func(rec *store.Record) error {
				rec.Graph.MemoryNodes["a"] = graph.MemoryNode{ID: "a", Content: "hello"}
				rec.Log = append(rec.Log, store.ChatMessage{Role: "user", Content: "hi"})
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			g, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.MemoryNodes).To(HaveKey("a"))

			log, err := driver.Conversations(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(log).To(HaveLen(1))
		})

		It("leaves stored state untouched when the mutation fails", func() {
			boom := errors.New("boom")
			err := driver.Commit(ctx, "alice", func(rec *store.Record) error {
				rec.Graph.MemoryNodes["a"] = graph.MemoryNode{ID: "a"}
				return boom
			})
			Expect(err).To(MatchError(boom))

			g, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.MemoryNodes).To(BeEmpty())
		})

		It("refreshes LastUpdated on success", func() {
			before, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			time.Sleep(time.Millisecond)
			err = driver.Commit(ctx, "alice", func(*store.Record) error { return nil })
			Expect(err).NotTo(HaveOccurred())

			after, err := driver.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(after.LastUpdated).To(BeTemporally(">", before.LastUpdated))
		})

		It("evicts past the configured node cap", func() {
			capped := inmemory.NewDriver(inmemory.Config{MaxNodesPerGraph: 2})
			_, err := capped.Ensure(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			err = capped.Commit(ctx, "alice", func(rec *store.Record) error {
				base := time.Now()
				for i, id := range []string{"a", "b", "c"} {
					rec.Graph.MemoryNodes[id] = graph.MemoryNode{
						ID:           id,
						LastAccessed: base.Add(time.Duration(i) * time.Second),
					}
				}
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			g, err := capped.Get(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(g.MemoryNodes).To(HaveLen(2))
			Expect(g.MemoryNodes).NotTo(HaveKey("a"))
		})
	})

	Describe("Conversations", func() {
		It("returns ErrNotFound for an unknown user", func() {
			_, err := driver.Conversations(ctx, "ghost")

			var notFound store.ErrNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Describe("Users", func() {
		It("lists every user with a graph", func() {
			for _, id := range []string{"alice", "bob"} {
				_, err := driver.Ensure(ctx, id)
				Expect(err).NotTo(HaveOccurred())
			}

			users, err := driver.Users(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(ConsistOf("alice", "bob"))
		})
	})
})
