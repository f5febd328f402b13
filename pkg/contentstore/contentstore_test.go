package contentstore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/contentstore"
	"github.com/memorymindai/memorymind/pkg/ledger"
)

var _ = Describe("Store", func() {
	var (
		l *ledger.Ledger
		s *contentstore.Store
	)

	BeforeEach(func() {
		l = ledger.New(ledger.DefaultRates())
		s = contentstore.NewStore(l)
		l.Deposit("alice", 1_000_000)
	})

	Describe("Put", func() {
		It("stores content and debits the storage cost", func() {
			id, err := s.Put("alice", "hello", "note", contentstore.AccessPublic)

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(HavePrefix("content_alice_"))
			// 5 bytes * 100 cycles/byte
			Expect(l.CyclesSpent("alice")).To(Equal(uint64(500)))
		})

		It("fails without storing when the creator cannot afford it", func() {
			_, err := s.Put("broke", "hello", "note", contentstore.AccessPublic)

			Expect(err).To(MatchError(ContainSubstring("insufficient cycles")))
			Expect(s.CountByCreator("broke")).To(BeZero())
		})
	})

	Describe("Get", func() {
		It("returns ErrNotFound for an unknown id", func() {
			_, err := s.Get("nope", "alice")
			Expect(err).To(MatchError(contentstore.ErrNotFound))
		})

		It("serves public content to anyone", func() {
			id, err := s.Put("alice", "hello", "note", contentstore.AccessPublic)
			Expect(err).NotTo(HaveOccurred())

			item, err := s.Get(id, "stranger")
			Expect(err).NotTo(HaveOccurred())
			Expect(item.Content).To(Equal("hello"))
		})

		It("serves private content only to the creator", func() {
			id, err := s.Put("alice", "secret", "note", contentstore.AccessPrivate)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Get(id, "stranger")
			Expect(err).To(MatchError(contentstore.ErrAccessDenied))

			item, err := s.Get(id, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(item.Content).To(Equal("secret"))
		})

		It("serves community content to token holders", func() {
			id, err := s.Put("alice", "for members", "note", contentstore.AccessCommunity)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Get(id, "stranger")
			Expect(err).To(MatchError(contentstore.ErrAccessDenied))

			l.Mint("member", 1)
			_, err = s.Get(id, "member")
			Expect(err).NotTo(HaveOccurred())
		})

		It("serves premium content to subscribers", func() {
			id, err := s.Put("alice", "premium stuff", "note", contentstore.AccessPremium)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Get(id, "stranger")
			Expect(err).To(MatchError(contentstore.ErrAccessDenied))

			l.SetTier("subscriber", ledger.TierBasic)
			_, err = s.Get(id, "subscriber")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("CountByCreator", func() {
		It("counts only the creator's items", func() {
			_, err := s.Put("alice", "one", "note", contentstore.AccessPublic)
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Put("alice", "two longer content", "note", contentstore.AccessPrivate)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.CountByCreator("alice")).To(Equal(uint64(2)))
			Expect(s.CountByCreator("bob")).To(BeZero())
		})
	})
})
