package challenge

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Theme is one entry of the fixed challenge catalog.
type Theme struct {
	Theme  string `yaml:"theme"`
	Prompt string `yaml:"prompt"`
}

// badgeRule pairs a catalog badge with the streak length that unlocks it.
type badgeRule struct {
	models.Badge `yaml:",inline"`
	Threshold    int `yaml:"threshold"`
}

type catalog struct {
	Themes []Theme     `yaml:"themes"`
	Badges []badgeRule `yaml:"badges"`
}

// The catalog is static; loading it at package init keeps every lookup pure.
var loaded = mustLoadCatalog()

func mustLoadCatalog() catalog {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		panic(fmt.Sprintf("challenge: bad embedded catalog: %v", err))
	}
	if len(c.Themes) == 0 || len(c.Badges) == 0 {
		panic("challenge: embedded catalog is empty")
	}
	return c
}

// Themes returns the ordered theme catalog.
func Themes() []Theme {
	return append([]Theme(nil), loaded.Themes...)
}

// AllBadges returns the full badge catalog in unlock order.
func AllBadges() []models.Badge {
	out := make([]models.Badge, 0, len(loaded.Badges))
	for _, b := range loaded.Badges {
		out = append(out, b.Badge)
	}
	return out
}

// BadgesFor resolves badge ids into catalog entries, skipping unknown ids.
func BadgesFor(ids []string) []models.Badge {
	out := make([]models.Badge, 0, len(ids))
	for _, b := range loaded.Badges {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, b.Badge)
				break
			}
		}
	}
	return out
}
