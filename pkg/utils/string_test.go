package utils

import (
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("truncate", func() {
	It("returns the string unchanged when within the limit", func() {
		Expect(Truncate("short", 10)).To(Equal("short"))
	})

	It("returns the string unchanged when exactly at the limit", func() {
		Expect(Truncate("12345", 5)).To(Equal("12345"))
	})

	It("truncates with ellipsis when over the limit", func() {
		result := Truncate("this is a long string", 10)
		Expect(result).To(Equal("this is a ..."))
	})

	It("counts characters, not bytes", func() {
		s := strings.Repeat("é", 60)

		result := Truncate(s, 50)

		Expect(utf8.ValidString(result)).To(BeTrue())
		Expect(result).To(Equal(strings.Repeat("é", 50) + "..."))
	})

	It("leaves a multi-byte string within the limit unchanged", func() {
		Expect(Truncate("héllo", 5)).To(Equal("héllo"))
	})
})
