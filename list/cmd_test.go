package list

import (
	"bytes"
	"strings"
	"testing"

	"hdrchecker/colorimetry"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, what string) string {
	t.Helper()
	var cli struct {
		List CLICmd `cmd:""`
	}
	var out bytes.Buffer
	parser, err := kong.New(&cli, kong.Writers(&out, &out))
	require.NoError(t, err)
	kctx, err := parser.Parse([]string{"list", what})
	require.NoError(t, err)
	require.NoError(t, kctx.Run())
	return out.String()
}

func TestListTransfers(t *testing.T) {
	assert.Equal(t, "HLG\nST2084\n", run(t, "transfers"))
}

func TestListAdaptations(t *testing.T) {
	got := strings.Split(strings.TrimSpace(run(t, "adaptations")), "\n")
	assert.Equal(t, colorimetry.Adaptations(), got)
	assert.Contains(t, got, "CAT02")
	assert.Contains(t, got, "Bradford")
}

func TestListSpaces(t *testing.T) {
	out := run(t, "spaces")
	assert.Equal(t, len(colorimetry.ColorSpaces()), strings.Count(out, "\n"))
	assert.Contains(t, out, "ITU-R BT.2020\tR (0.7080, 0.2920) G (0.1700, 0.7970) B (0.1310, 0.0460)\twhite (0.3127, 0.3290)\n")
}

func TestListCharts(t *testing.T) {
	out := run(t, "charts")
	assert.Equal(t, "BabelColor Average\t24 patches\twhite (0.3457, 0.3585)\n"+
		"ColorChecker 1976\t24 patches\twhite (0.3101, 0.3162)\n"+
		"ColorChecker 2005\t24 patches\twhite (0.3457, 0.3585)\n", out)
}

func TestPrintUnknown(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, Print(&out, "illuminants"), "unknown catalogue")
	assert.Empty(t, out.String())
}
