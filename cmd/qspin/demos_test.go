package main

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qspin/internal/config"
)

func testConfig(demos ...string) *config.Config {
	return &config.Config{LogLevel: "info", Epsilon: 1e-9, Snap: 1e-12, Demos: demos}
}

func TestDemos_Output(t *testing.T) {
	testCases := []struct {
		demo string
		want []string
	}{
		{config.DemoAlgebra, []string{"z+w = 6+2i", "1/0  = ∞", "0/0  = NaN", "hermitian=true unitary=true", "singular matrix"}},
		{config.DemoSpin, []string{"|i> = (0.7071067811865475, 0.7071067811865475i)", "[<r|u>]² = 0.50", "σ(z)|d> = d", "σ(x)|u> = d", "σ(y)|u> = (|u> = (0, i), NaN)", "[<u|45°>]² = 0.85"}},
		{config.DemoPolarisation, []string{"H+ =", "[</|x>]² = 0.50", `Hx|\> = \`, "[<180°|275°>]² = 0.01", "|<↻|↺>|² = 0.00", "H*|↻> = ↻"}},
		{config.DemoDice, []string{"17%", "<Ψ|Ψ> = 1.0000", "<2|6> = 0", "Expectation value <Ψ|R|Ψ> = 7.0000 (classical mean 7.0000)", "= 5.8333"}},
	}
	for _, tc := range testCases {
		t.Run(tc.demo, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, demos[tc.demo](&buf, testConfig(tc.demo)))
			out := buf.String()
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRun_AllDemos(t *testing.T) {
	var buf, logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)
	require.NoError(t, run(&buf, testConfig(config.AllDemos...), log))
	assert.Contains(t, buf.String(), "Electron Spin")
	assert.Contains(t, buf.String(), "Two dice")
	assert.Contains(t, logs.String(), `"demo":"dice"`)
}

func TestRun_UnknownDemo(t *testing.T) {
	err := run(io.Discard, testConfig("dijkstra", config.DemoDice), zerolog.Nop())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestApplyFlags(t *testing.T) {
	cfg := testConfig(config.AllDemos...)
	require.NoError(t, applyFlags(cfg, []string{"-demo", "spin,dice", "-log-level", "WARN", "-pretty=false"}))
	assert.Equal(t, []string{config.DemoSpin, config.DemoDice}, cfg.Demos)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)

	require.ErrorIs(t, applyFlags(testConfig(config.DemoDice), []string{"-demo", "chess"}), config.ErrInvalidConfig)
	require.ErrorIs(t, applyFlags(testConfig(config.DemoDice), []string{"extra"}), config.ErrInvalidConfig)
	require.ErrorIs(t, applyFlags(testConfig(config.DemoDice), []string{"-h"}), flag.ErrHelp)
}
