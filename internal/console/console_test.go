package console_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/taskrun/internal/console"
)

func TestApplyStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		enabled bool
		want    string
	}{
		{"bold", "@[bold]x@[reset]", true, "\x1b[1mx\x1b[0m"},
		{"combined", "@[bg:red+white] Error @[reset]", true, "\x1b[41;97m Error \x1b[0m"},
		{"spaces around keys", "@[bold + yellow]3", true, "\x1b[1;33m3"},
		{"reverse bold", "@[reverse+bold]NAME", true, "\x1b[7;1mNAME"},
		{"disabled strips", "@[bold]x@[reset] y", false, "x y"},
		{"unknown tag untouched", "@[sparkly]x", true, "@[sparkly]x"},
		{"unknown tag untouched when disabled", "@[sparkly]x", false, "@[sparkly]x"},
		{"partially known", "@[sparkly+red]x", true, "\x1b[31mx"},
		{"no tags", "plain text", true, "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := console.ApplyStyles(tt.input, tt.enabled); got != tt.want {
				t.Errorf("ApplyStyles(%q, %v) = %q, want %q", tt.input, tt.enabled, got, tt.want)
			}
		})
	}
}

func TestConsole(t *testing.T) {
	t.Parallel()

	t.Run("WriteAppliesStyles", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var out strings.Builder

		c := console.New(console.Config{Out: &out, Styled: true})
		c.Write("@[bold]hi@[reset]")
		g.Expect(out.String()).To(Equal("\x1b[1mhi\x1b[0m"))
	})

	t.Run("DisableStylesStripsTags", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var out strings.Builder

		c := console.New(console.Config{Out: &out, Styled: true})
		c.DisableStyles()
		c.Write("@[bold]hi@[reset]")
		g.Expect(c.Styled()).To(BeFalse())
		g.Expect(out.String()).To(Equal("hi"))
	})

	t.Run("PrintIsRaw", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var out strings.Builder

		c := console.New(console.Config{Out: &out})
		c.Print("@[bold]3")
		g.Expect(out.String()).To(Equal("@[bold]3"))
	})

	t.Run("ErrorWritesBannerToLogStream", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var out, errOut strings.Builder

		c := console.New(console.Config{Out: &out, Err: &errOut})
		c.Error("boom\n")
		g.Expect(out.String()).To(BeEmpty())
		g.Expect(errOut.String()).To(Equal(" Error  boom\n"))
	})

	t.Run("VerboseMessagesAreGated", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var errOut strings.Builder

		c := console.New(console.Config{Err: &errOut})
		c.V("one\n")
		g.Expect(errOut.String()).To(BeEmpty())

		c.SetVerbosity(console.More)
		c.V("one\n")
		c.VV("two\n")
		c.VVV("three\n")
		g.Expect(errOut.String()).To(Equal("one\ntwo\n"))
		g.Expect(c.Verbosity()).To(Equal(console.More))
	})

	t.Run("MostAnnouncesLevel", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var errOut strings.Builder

		c := console.New(console.Config{Err: &errOut})
		c.SetVerbosity(console.Most)
		g.Expect(errOut.String()).To(Equal("verbose level set to 3\n"))
	})

	t.Run("ProducerNotCalledBelowLevel", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var errOut strings.Builder

		c := console.New(console.Config{Err: &errOut})
		called := false
		produce := func() string {
			called = true
			return "lazy\n"
		}

		c.V(produce)
		g.Expect(called).To(BeFalse())

		c.SetVerbosity(console.Some)
		c.V(produce)
		g.Expect(called).To(BeTrue())
		g.Expect(errOut.String()).To(Equal("lazy\n"))
	})

	t.Run("LoggerFollowsVerbosity", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var errOut strings.Builder

		c := console.New(console.Config{Err: &errOut})
		c.Logger().Info("hidden")
		g.Expect(errOut.String()).To(BeEmpty())

		c.SetVerbosity(console.Some)
		c.Logger().Info("shown", "key", "value")
		c.Logger().Debug("still hidden")
		g.Expect(errOut.String()).To(ContainSubstring("msg=shown key=value"))
		g.Expect(errOut.String()).NotTo(ContainSubstring("still hidden"))
	})

	t.Run("LogFileReceivesCopy", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		var errOut strings.Builder

		path := filepath.Join(t.TempDir(), "run.log")
		c := console.New(console.Config{Err: &errOut, LogFile: path})
		c.Log("persisted\n")
		g.Expect(c.Close()).To(Succeed())

		content, err := os.ReadFile(path)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(string(content)).To(Equal("persisted\n"))
		g.Expect(errOut.String()).To(Equal("persisted\n"))
	})

	t.Run("NilStreamsDiscard", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		c := console.New(console.Config{Width: 120})
		c.Write("x")
		c.Log("y")
		g.Expect(c.Width()).To(Equal(120))
		g.Expect(c.Close()).To(Succeed())
	})
}

func TestVerbosityString(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(console.Quiet.String()).To(Equal("quiet"))
	g.Expect(console.Most.String()).To(Equal("most"))
	g.Expect(console.Verbosity(9).String()).To(Equal("unknown"))
}
