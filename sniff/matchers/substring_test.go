package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/fuss/matches"
	"github.com/pivotal-cf/fuss/ranges"
	"github.com/pivotal-cf/fuss/sniff/matchers"
)

var _ = Describe("Substring", func() {
	var (
		config  matchers.SubstringConfig
		matcher matchers.Matcher
	)

	BeforeEach(func() {
		config = matchers.SubstringConfig{}
	})

	JustBeforeEach(func() {
		matcher = matchers.Substring(config)
	})

	onlyRange := func(match matches.RangedMatch[string]) ranges.Range {
		rs, ok := match.Ranges()
		Expect(ok).To(BeTrue())
		Expect(rs).To(HaveLen(1))
		return rs[0]
	}

	It("is case-insensitive by default", func() {
		item := "Prefix of String..."

		match, ok := matcher.Match(item, "x of s")
		Expect(ok).To(BeTrue())
		Expect(match.Item()).To(Equal(item))
		Expect(match.Score()).To(Equal(matchers.DefaultScore))
		Expect(onlyRange(match)).To(Equal(ranges.MustNew(5, 11)))
	})

	It("returns the leftmost occurrence", func() {
		match, ok := matcher.Match("abc ABC abc", "abc")
		Expect(ok).To(BeTrue())
		Expect(onlyRange(match)).To(Equal(ranges.MustNew(0, 3)))
	})

	It("returns false when the pattern does not occur", func() {
		_, ok := matcher.Match("this is not exactly a match", "exact match")
		Expect(ok).To(BeFalse())
	})

	It("never matches an empty pattern", func() {
		_, ok := matcher.Match("anything", "")
		Expect(ok).To(BeFalse())

		_, ok = matcher.Match("", "")
		Expect(ok).To(BeFalse())
	})

	It("does not match a pattern longer than the candidate", func() {
		_, ok := matcher.Match("abc", "abcd")
		Expect(ok).To(BeFalse())
	})

	Context("when the pattern must be a prefix", func() {
		BeforeEach(func() {
			config.Occurrence = matchers.Prefix
		})

		It("requires the pattern at the very start", func() {
			_, ok := matcher.Match(" prefix of string...", "Prefix")
			Expect(ok).To(BeFalse())
		})

		It("matches at the start", func() {
			match, ok := matcher.Match("prefix of string...", "Prefix")
			Expect(ok).To(BeTrue())
			Expect(onlyRange(match)).To(Equal(ranges.MustNew(0, 6)))
		})
	})

	Context("when the pattern must be a suffix", func() {
		BeforeEach(func() {
			config.Occurrence = matchers.Suffix
		})

		It("matches at the end ignoring case", func() {
			item := "string with suffix"

			match, ok := matcher.Match(item, "Suffix")
			Expect(ok).To(BeTrue())
			Expect(match.Item()).To(Equal(item))
			Expect(onlyRange(match)).To(Equal(ranges.MustNew(12, 18)))
		})

		It("does not match elsewhere", func() {
			_, ok := matcher.Match("suffix in the middle", "suffix")
			Expect(ok).To(BeFalse())
		})

		It("does not match a pattern longer than the candidate", func() {
			_, ok := matcher.Match("fix", "suffix")
			Expect(ok).To(BeFalse())
		})

		Context("and case matters", func() {
			BeforeEach(func() {
				config.CaseSensitive = true
			})

			It("does not match a differently cased suffix", func() {
				_, ok := matcher.Match("string with suffix", "Suffix")
				Expect(ok).To(BeFalse())
			})
		})
	})

	Context("when case matters", func() {
		BeforeEach(func() {
			config.CaseSensitive = true
		})

		It("matches exact text", func() {
			match, ok := matcher.Match("this is an exact match", "exact match")
			Expect(ok).To(BeTrue())
			Expect(onlyRange(match)).To(Equal(ranges.MustNew(11, 22)))
		})

		It("does not match differently cased text", func() {
			_, ok := matcher.Match("THIS IS NOT QUITE AN EXACT MATCH", "exact match")
			Expect(ok).To(BeFalse())
		})
	})

	Context("when folding changes the length of the text", func() {
		It("maps the match back onto the original text", func() {
			item := "Straße"

			match, ok := matcher.Match(item, "SS")
			Expect(ok).To(BeTrue())

			r := onlyRange(match)
			Expect(r).To(Equal(ranges.MustNew(4, 6)))
			Expect(r.Slice(item)).To(Equal("ß"))
		})

		It("maps offsets after multi-byte runes", func() {
			item := "Ünïcödé cAsE"

			match, ok := matcher.Match(item, "case")
			Expect(ok).To(BeTrue())
			Expect(onlyRange(match).Slice(item)).To(Equal("cAsE"))
		})

		It("skips occurrences that split a single character", func() {
			_, ok := matcher.Match("Straße", "sE")
			Expect(ok).To(BeFalse())
		})

		It("does not treat part of a character as a prefix", func() {
			config.Occurrence = matchers.Prefix
			matcher = matchers.Substring(config)

			_, ok := matcher.Match("ßa", "s")
			Expect(ok).To(BeFalse())
		})

		It("folds the Kelvin sign like a k", func() {
			item := "273 \u212a"

			match, ok := matcher.Match(item, "k")
			Expect(ok).To(BeTrue())
			Expect(onlyRange(match)).To(Equal(ranges.MustNew(4, 7)))
		})
	})

	DescribeTable("the matched range covers the matched text",
		func(sensitive bool, occurrence matchers.Occurrence, candidate, pattern, expected string) {
			matcher := matchers.Substring(matchers.SubstringConfig{
				Occurrence:    occurrence,
				CaseSensitive: sensitive,
			})

			match, ok := matcher.Match(candidate, pattern)
			Expect(ok).To(BeTrue())

			rs, _ := match.Ranges()
			Expect(rs[0].Slice(match.Item())).To(Equal(expected))
		},
		Entry("anywhere, ignoring case", false, matchers.Any, "Prefix of String...", "x of s", "x of S"),
		Entry("prefix, ignoring case", false, matchers.Prefix, "HELLO world", "hello", "HELLO"),
		Entry("suffix, ignoring case", false, matchers.Suffix, "string with SuFfIx", "suffix", "SuFfIx"),
		Entry("anywhere, exact case", true, matchers.Any, "an exact match", "exact", "exact"),
		Entry("prefix, exact case", true, matchers.Prefix, "Prefix of String", "Prefix", "Prefix"),
		Entry("suffix, exact case", true, matchers.Suffix, "with Suffix", "Suffix", "Suffix"),
	)
})
