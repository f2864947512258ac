package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Anchor is the top-left corner of a stack's footprint in board
// coordinates.
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Layout holds the board geometry: where each pile sits and how far
// apart the tableau columns and foundation slots are spread.
type Layout struct {
	Stock           Anchor  `yaml:"stock"`
	Waste           Anchor  `yaml:"waste"`
	FoundationStart Anchor  `yaml:"foundation_start"`
	TableauStart    Anchor  `yaml:"tableau_start"`
	ColumnSpacing   float64 `yaml:"column_spacing"`
}

// TableauAnchor returns the anchor of tableau column col (0..6).
func (l *Layout) TableauAnchor(col int) Anchor {
	return Anchor{
		X: l.TableauStart.X + float64(col)*l.ColumnSpacing,
		Y: l.TableauStart.Y,
	}
}

// FoundationAnchor returns the anchor of foundation slot i (0..3).
func (l *Layout) FoundationAnchor(i int) Anchor {
	return Anchor{
		X: l.FoundationStart.X + float64(i)*l.ColumnSpacing,
		Y: l.FoundationStart.Y,
	}
}

// LoadLayout reads a board layout from a YAML file.
func LoadLayout(path string) (*Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l := DefaultLayout()
	if err := yaml.Unmarshal(raw, l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if l.ColumnSpacing <= 0 {
		return nil, fmt.Errorf("layout %s: column_spacing must be positive", path)
	}
	return l, nil
}

// DefaultLayout returns the stock 800×600 board geometry.
func DefaultLayout() *Layout {
	return &Layout{
		Stock:           Anchor{X: 100, Y: 50},
		Waste:           Anchor{X: 200, Y: 50},
		FoundationStart: Anchor{X: 400, Y: 50},
		TableauStart:    Anchor{X: 100, Y: 200},
		ColumnSpacing:   100,
	}
}
