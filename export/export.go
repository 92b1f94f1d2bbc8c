package export

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Exporter writes a square and a round variant of one image into a folder
// per tier under Dir.
type Exporter struct {
	Dir        string
	Tiers      []Tier
	Scaler     draw.Scaler
	Format     string
	SquareName string
	RoundName  string
	CreateDirs bool
	Logger     *slog.Logger
}

// Result is what Run wrote for a single tier.
type Result struct {
	Tier   Tier
	Square string
	Round  string
}

// FileName returns the name of a variant called base in the exporter's
// output format.
func (e *Exporter) FileName(base string) string {
	return fmt.Sprintf("%s.%s", base, e.Format)
}

// Run exports every tier in order. It stops at the first failure and returns
// the tiers completed so far along with the error.
func (e *Exporter) Run(img image.Image) ([]Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scaler := e.Scaler
	if scaler == nil {
		scaler = Lanczos
	}
	if !alphaFormats[e.Format] {
		return nil, fmt.Errorf("output format %q cannot hold the round icon's transparency", e.Format)
	}

	results := make([]Result, 0, len(e.Tiers))
	for _, tier := range e.Tiers {
		res, err := e.tier(logger.With("tier", tier.Name), img, tier, scaler)
		if err != nil {
			return results, fmt.Errorf("could not export tier %s: %w", tier.Name, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func (e *Exporter) tier(logger *slog.Logger, img image.Image, tier Tier, scaler draw.Scaler) (Result, error) {
	dir := filepath.Join(e.Dir, tier.Name)
	if err := checkDir(dir, e.CreateDirs); err != nil {
		return Result{}, err
	}

	sq := square(logger, img, tier.Size, scaler)
	res := Result{
		Tier:   tier,
		Square: filepath.Join(dir, e.FileName(e.SquareName)),
		Round:  filepath.Join(dir, e.FileName(e.RoundName)),
	}

	if err := save(sq, e.Format, dir, e.FileName(e.SquareName)); err != nil {
		return Result{}, err
	}
	if err := save(round(sq), e.Format, dir, e.FileName(e.RoundName)); err != nil {
		return Result{}, err
	}

	logger.Info("icons written", "size", tier.Size, "square", res.Square, "round", res.Round)
	return res, nil
}

func checkDir(dir string, create bool) error {
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create destination folder %q: %w", dir, err)
		}
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("destination folder %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %q is not a directory", dir)
	}
	return nil
}
