package field_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/taskrun/internal/field"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("KeepsDeclarationOrder", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c, err := field.NewCollection(
			field.NewString("zeta"),
			field.NewBoolean("alpha"),
			field.NewFloat("mid"),
		)
		g.Expect(err).NotTo(HaveOccurred())

		var names []string
		for _, f := range c.Fields() {
			names = append(names, f.Name())
		}

		g.Expect(names).To(Equal([]string{"zeta", "alpha", "mid"}))
		g.Expect(c.Len()).To(Equal(3))
	})

	t.Run("LookupResolvesNameAndAlias", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c, err := field.NewCollection(field.NewBoolean("verbose").Aliases("v", "vv"))
		g.Expect(err).NotTo(HaveOccurred())

		f, ok := c.Lookup("vv")
		g.Expect(ok).To(BeTrue())
		g.Expect(f.Name()).To(Equal("verbose"))

		_, ok = c.Get("vv")
		g.Expect(ok).To(BeFalse())

		_, ok = c.Lookup("missing")
		g.Expect(ok).To(BeFalse())
	})

	t.Run("RejectsDuplicateName", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := field.NewCollection(field.NewString("a"), field.NewBoolean("a"))
		g.Expect(err).To(MatchError(field.ErrFieldAlreadyDefined))
	})

	t.Run("RejectsAliasClashingWithName", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := field.NewCollection(field.NewString("h"), field.NewBoolean("help").Aliases("h"))
		g.Expect(err).To(MatchError(ContainSubstring("field already defined: h")))
	})

	t.Run("RejectsNameClashingWithAlias", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c, err := field.NewCollection(field.NewBoolean("help").Aliases("h"))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(c.Add(field.NewString("h"))).To(MatchError(field.ErrFieldAlreadyDefined))
	})

	t.Run("RejectsRepeatedAliasOnOneField", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := field.NewCollection(field.NewBoolean("verbose").Aliases("v", "v"))
		g.Expect(err).To(MatchError(field.ErrFieldAlreadyDefined))
	})

	t.Run("RejectsEmptyNames", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := field.NewCollection(field.NewString(""))
		g.Expect(err).To(MatchError(field.ErrEmptyName))

		_, err = field.NewCollection(field.NewString("x").Aliases(""))
		g.Expect(err).To(MatchError(field.ErrEmptyName))
	})

	t.Run("PositionalInDeclarationOrder", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c, err := field.NewCollection(
			field.NewString("dst").Positional(),
			field.NewBoolean("force"),
			field.NewString("src").Positional(),
		)
		g.Expect(err).NotTo(HaveOccurred())

		positional := c.Positional()
		g.Expect(positional).To(HaveLen(2))
		g.Expect(positional[0].Name()).To(Equal("dst"))
		g.Expect(positional[1].Name()).To(Equal("src"))
	})
}

func TestFieldFire(t *testing.T) {
	t.Parallel()

	t.Run("CallsListenersInOrder", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var calls []string

		f := field.NewBoolean("x").
			OnParse(func(ev field.Event) error {
				calls = append(calls, "first:"+ev.Name)
				return nil
			}).
			OnParse(func(ev field.Event) error {
				calls = append(calls, "second:"+ev.Name)
				return nil
			})

		g.Expect(f.Fire(field.Event{Field: f, Name: "x"})).To(Succeed())
		g.Expect(calls).To(Equal([]string{"first:x", "second:x"}))
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		called := false
		f := field.NewBoolean("x").
			OnParse(func(field.Event) error { return errStop }).
			OnParse(func(field.Event) error {
				called = true
				return nil
			})

		g.Expect(f.Fire(field.Event{Field: f})).To(MatchError(errStop))
		g.Expect(called).To(BeFalse())
	})
}

func TestFieldClone(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	f := field.NewString("name").Aliases("n").Limit(2).Positional().Required()
	f.AddValue("a")

	c := f.Clone()
	g.Expect(c.Name()).To(Equal("name"))
	g.Expect(c.GetAliases()).To(Equal([]string{"n"}))
	g.Expect(c.GetLimit()).To(Equal(2))
	g.Expect(c.IsPositional()).To(BeTrue())
	g.Expect(c.IsRequired()).To(BeTrue())
	g.Expect(c.Count()).To(BeZero())

	c.AddValue("b")
	c.Aliases("m")
	g.Expect(f.Raw()).To(Equal([]any{"a"}))
	g.Expect(f.GetAliases()).To(Equal([]string{"n"}))
}

func TestFieldDefaults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	f := field.NewInteger("count")
	g.Expect(f.GetHint()).To(Equal("count"))
	g.Expect(f.GetLimit()).To(Equal(1))
	g.Expect(f.GetExport()).To(Equal(field.ExportScalar))
	g.Expect(f.IsRequired()).To(BeFalse())
	g.Expect(f.IsPositional()).To(BeFalse())
	g.Expect(f.Kind().String()).To(Equal("integer"))

	f.Hint("n").Required()
	g.Expect(f.GetHint()).To(Equal("n"))
	g.Expect(f.IsRequired()).To(BeTrue())
}
