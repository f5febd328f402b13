package auth_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/auth"
)

var (
	secret = []byte("test-secret")
	issuer = "memorymind-test"
)

var _ = Describe("Verifier", func() {
	var verifier *auth.Verifier

	BeforeEach(func() {
		verifier = auth.NewVerifier(secret, issuer)
	})

	It("round-trips a signed token", func() {
		token, err := auth.Sign(secret, issuer, "alice", false, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		identity, err := verifier.Parse(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.UserID).To(Equal("alice"))
		Expect(identity.Admin).To(BeFalse())
	})

	It("carries the admin claim", func() {
		token, err := auth.Sign(secret, issuer, "root", true, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		identity, err := verifier.Parse(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.Admin).To(BeTrue())
	})

	It("rejects tokens signed with a different secret", func() {
		token, err := auth.Sign([]byte("wrong"), issuer, "alice", false, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		_, err = verifier.Parse(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejects tokens from a different issuer", func() {
		token, err := auth.Sign(secret, "someone-else", "alice", false, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		_, err = verifier.Parse(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejects expired tokens", func() {
		token, err := auth.Sign(secret, issuer, "alice", false, -time.Minute)
		Expect(err).NotTo(HaveOccurred())

		_, err = verifier.Parse(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejects garbage", func() {
		_, err := verifier.Parse("not.a.token")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Identity", func() {
	It("lets a user act on their own data", func() {
		identity := auth.Identity{UserID: "alice"}
		Expect(identity.CanAct("alice")).To(BeTrue())
		Expect(identity.CanAct("bob")).To(BeFalse())
	})

	It("lets an admin act on anyone", func() {
		identity := auth.Identity{UserID: "root", Admin: true}
		Expect(identity.CanAct("bob")).To(BeTrue())
	})
})
