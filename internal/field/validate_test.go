package field_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/taskrun/internal/field"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("ConvertsByKind", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		b := field.NewBoolean("b")
		s := field.NewString("s")
		i := field.NewInteger("i")
		f := field.NewFloat("f")
		c := mustCollection(g, b, s, i, f)

		b.AddValue(true)
		s.AddValue("text")
		i.AddValue("42")
		f.AddValue("2.5")

		g.Expect(c.Validate()).To(BeEmpty())
		g.Expect(b.Values()).To(Equal([]any{true}))
		g.Expect(s.Values()).To(Equal([]any{"text"}))
		g.Expect(i.Values()).To(Equal([]any{int64(42)}))
		g.Expect(f.Values()).To(Equal([]any{2.5}))
	})

	t.Run("BooleanAcceptsInlineText", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		b := field.NewBoolean("b")
		c := mustCollection(g, b)
		b.AddValue("false")

		g.Expect(c.Validate()).To(BeEmpty())
		g.Expect(b.Values()).To(Equal([]any{false}))
	})

	t.Run("BareStringBecomesEmpty", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		s := field.NewString("s")
		c := mustCollection(g, s)
		s.AddValue(true)

		g.Expect(c.Validate()).To(BeEmpty())
		g.Expect(s.Values()).To(Equal([]any{""}))
	})

	t.Run("ReportsConversionFailures", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		i := field.NewInteger("i").Limit(0)
		f := field.NewFloat("f")
		b := field.NewBoolean("b")
		c := mustCollection(g, i, f, b)

		i.AddValue("1")
		i.AddValue("x")
		f.AddValue(true)
		b.AddValue("maybe")

		errs := c.Validate()
		g.Expect(errs).To(ConsistOf(
			field.ValidationError{Field: "i", Message: "expecting an integer", Value: "x", Index: 1},
			field.ValidationError{Field: "f", Message: "expecting a float value", Value: true, Index: 0},
			field.ValidationError{Field: "b", Message: "expecting a boolean", Value: "maybe", Index: 0},
		))
		g.Expect(i.Values()).To(Equal([]any{int64(1)}))
	})

	t.Run("EnforcesOccurrenceLimit", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		s := field.NewString("s")
		c := mustCollection(g, s)
		s.AddValue("one")
		s.AddValue("two")

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(1))
		g.Expect(errs[0].Error()).To(Equal("s: expecting at most 1 value"))
		g.Expect(errs[0].Value).To(Equal("two"))
		g.Expect(errs[0].Index).To(Equal(1))
	})

	t.Run("UnlimitedAcceptsMany", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		s := field.NewString("s").Limit(0)
		c := mustCollection(g, s)

		for range 10 {
			s.AddValue("v")
		}

		g.Expect(c.Validate()).To(BeEmpty())
	})

	t.Run("Required", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c := mustCollection(g, field.NewFloat("value").Required())

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(1))
		g.Expect(errs[0].Error()).To(Equal("value: required"))
	})

	t.Run("OneOf", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		mode := field.NewString("mode").Rule(field.OneOf("serial", "parallel"))
		c := mustCollection(g, mode)
		mode.AddValue("random")

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(1))
		g.Expect(errs[0].Message).To(Equal("expecting one of serial, parallel"))
	})

	t.Run("MatchesGlob", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		src := field.NewString("src").Limit(0).Rule(field.MatchesGlob("**/*.go"))
		c := mustCollection(g, src)
		src.AddValue("internal/field/field.go")
		src.AddValue("README.md")

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(1))
		g.Expect(errs[0].Value).To(Equal("README.md"))
		g.Expect(errs[0].Message).To(Equal("must match '**/*.go'"))
	})

	t.Run("InvalidGlobPattern", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		src := field.NewString("src").Rule(field.MatchesGlob("[a-"))
		c := mustCollection(g, src)
		src.AddValue("a")

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(1))
		g.Expect(errs[0].Message).To(ContainSubstring("invalid pattern"))
	})

	t.Run("Bounds", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		n := field.NewInteger("n").Limit(0).Rule(field.Min(1), field.Max(10))
		c := mustCollection(g, n)
		n.AddValue("0")
		n.AddValue("5")
		n.AddValue("11")

		errs := c.Validate()
		g.Expect(errs).To(HaveLen(2))
		g.Expect(errs[0].Message).To(Equal("must be at least 1"))
		g.Expect(errs[1].Message).To(Equal("must be at most 10"))
	})
}

// unexported variables.
var (
	errStop = errors.New("stop")
)

func mustCollection(g Gomega, fields ...*field.Field) *field.Collection {
	c, err := field.NewCollection(fields...)
	g.Expect(err).NotTo(HaveOccurred())

	return c
}
