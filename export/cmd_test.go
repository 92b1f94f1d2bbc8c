package export

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
)

func validCmd(t *testing.T) *CLICmd {
	t.Helper()
	return &CLICmd{
		Res:        t.TempDir(),
		BaseSize:   512,
		Filter:     "lanczos",
		Format:     "png",
		SquareName: "ic_launcher",
		RoundName:  "ic_launcher_round",
	}
}

func TestCLIValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CLICmd)
		wantErr string
	}{
		{"defaults", func(c *CLICmd) {}, ""},
		{"custom tiers", func(c *CLICmd) { c.Tier = []string{"drawable=24", "drawable-hdpi=36"} }, ""},
		{"duplicate tier", func(c *CLICmd) { c.Tier = []string{"a=1", "a=2"} }, "duplicate tier"},
		{"bad tier", func(c *CLICmd) { c.Tier = []string{"a"} }, "invalid tier"},
		{"zero base size", func(c *CLICmd) { c.BaseSize = 0 }, "invalid base size"},
		{"negative base size", func(c *CLICmd) { c.BaseSize = -1 }, "invalid base size"},
		{"unknown filter", func(c *CLICmd) { c.Filter = "sinc" }, "unsupported resampling filter"},
		{"bmp icons", func(c *CLICmd) { c.Format = "bmp" }, "cannot hold"},
		{"empty square name", func(c *CLICmd) { c.SquareName = "" }, "must not be empty"},
		{"empty round name", func(c *CLICmd) { c.RoundName = "" }, "must not be empty"},
		{"shared name", func(c *CLICmd) { c.RoundName = c.SquareName }, "share the name"},
		{"base out png", func(c *CLICmd) { c.BaseOut = "preview.png" }, ""},
		{"base out jpeg", func(c *CLICmd) { c.BaseOut = "preview.jpg" }, "unsupported output extension"},
		{"bad color", func(c *CLICmd) { c.Accent = "blue" }, "invalid accent color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCmd(t)
			tt.mutate(c)

			err := c.Validate(nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(c.Res))
			assert.NotEmpty(t, c.Tiers)
			assert.NotNil(t, c.Scaler)
		})
	}
}

func TestCLIValidateDefaultTiers(t *testing.T) {
	c := validCmd(t)
	require.NoError(t, c.Validate(nil))
	assert.Equal(t, AndroidTiers, c.Tiers)
	assert.Equal(t, Lanczos, c.Scaler)
}

func TestCLIRunBaseOut(t *testing.T) {
	for _, tt := range []struct {
		file   string
		format string
	}{
		{"preview.png", "png"},
		{"preview.bmp", "bmp"},
		{"preview.tiff", "tiff"},
	} {
		t.Run(tt.file, func(t *testing.T) {
			c := validCmd(t)
			c.Tier = []string{"mipmap-mdpi=48"}
			c.CreateDirs = true
			c.BaseOut = filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, c.Validate(nil))
			require.NoError(t, c.Run(quietLogger()))

			f, err := os.Open(c.BaseOut)
			require.NoError(t, err)
			defer f.Close()

			conf, format, err := image.DecodeConfig(f)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, 512, conf.Width)
			assert.Equal(t, 512, conf.Height)

			assert.FileExists(t, filepath.Join(c.Res, "mipmap-mdpi", "ic_launcher.png"))
			assert.FileExists(t, filepath.Join(c.Res, "mipmap-mdpi", "ic_launcher_round.png"))
		})
	}
}

func TestCLIRunMissingFolder(t *testing.T) {
	c := validCmd(t)
	c.Res = filepath.Join(c.Res, "missing")
	require.NoError(t, c.Validate(nil))

	err := c.Run(quietLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
