package export

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier is a density bucket and the edge length of the icons written to it.
type Tier struct {
	Name string
	Size int
}

func (t Tier) String() string {
	return fmt.Sprintf("%s=%d", t.Name, t.Size)
}

// AndroidTiers are the launcher icon sizes of the Android mipmap buckets.
var AndroidTiers = []Tier{
	{Name: "mipmap-mdpi", Size: 48},
	{Name: "mipmap-hdpi", Size: 72},
	{Name: "mipmap-xhdpi", Size: 96},
	{Name: "mipmap-xxhdpi", Size: 144},
	{Name: "mipmap-xxxhdpi", Size: 192},
}

// ParseTier reads a "name=size" pair.
func ParseTier(s string) (Tier, error) {
	name, size, ok := strings.Cut(s, "=")
	if !ok {
		return Tier{}, fmt.Errorf("invalid tier %q, should be name=size", s)
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return Tier{}, fmt.Errorf("invalid tier name %q", name)
	}

	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		return Tier{}, fmt.Errorf("invalid tier size %q: %w", size, err)
	} else if n < 1 {
		return Tier{}, fmt.Errorf("invalid tier size: %d", n)
	}

	return Tier{Name: name, Size: n}, nil
}

// ParseTiers parses every pair and rejects duplicate names. An empty list
// yields AndroidTiers.
func ParseTiers(specs []string) ([]Tier, error) {
	if len(specs) == 0 {
		return AndroidTiers, nil
	}

	tiers := make([]Tier, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		t, err := ParseTier(s)
		if err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tier %q", t.Name)
		}
		seen[t.Name] = true
		tiers = append(tiers, t)
	}

	return tiers, nil
}
