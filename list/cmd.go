package list

import (
	"fmt"
	"io"

	"hdrchecker/chart"
	"hdrchecker/colorimetry"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Charts      struct{} `cmd:"" help:"List built-in reference charts"`
	Spaces      struct{} `cmd:"" help:"List target color spaces"`
	Adaptations struct{} `cmd:"" help:"List chromatic adaptation transforms"`
	Transfers   struct{} `cmd:"" help:"List transfer function families"`
}

func (c *CLICmd) Run(kctx *kong.Context) error {
	return Print(kctx.Stdout, kctx.Selected().Name)
}

// Print writes the named catalogue to w, one entry per line.
func Print(w io.Writer, what string) error {
	switch what {
	case "charts":
		for _, name := range chart.Charts() {
			ch, err := chart.Lookup(name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\t%d patches\twhite %s\n", ch.Name, len(ch.Patches), formatXY(ch.WhitePoint)); err != nil {
				return err
			}
		}
	case "spaces":
		for _, name := range colorimetry.ColorSpaces() {
			cs, err := colorimetry.LookupColorSpace(name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\tR %s G %s B %s\twhite %s\n", cs.Name,
				formatXY(cs.Primaries[0]), formatXY(cs.Primaries[1]), formatXY(cs.Primaries[2]),
				formatXY(cs.WhitePoint)); err != nil {
				return err
			}
		}
	case "adaptations":
		return lines(w, colorimetry.Adaptations())
	case "transfers":
		return lines(w, colorimetry.Transfers())
	default:
		return fmt.Errorf("unknown catalogue %q", what)
	}
	return nil
}

func lines(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func formatXY(c colorimetry.XY) string {
	return fmt.Sprintf("(%.4f, %.4f)", c.X, c.Y)
}
