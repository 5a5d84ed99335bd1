package pricing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"commerce_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrUnknownPackage = errors.New("unknown package")

// Package is a sellable bundle with its welcome-email feature list.
type Package struct {
	Name     string   `yaml:"name"`
	Price    float64  `yaml:"price"`
	Features []string `yaml:"features"`
}

// Catalog resolves package names and prices orders.
//
// Aliases map legacy or marketing names onto canonical packages; canonical names
// resolve to themselves. "custom" is always accepted and carries no base price.
type Catalog struct {
	Packages map[string]Package `yaml:"packages"`
	Aliases  map[string]string  `yaml:"aliases"`
	Addons   map[string]float64 `yaml:"addons"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from path, falling back to the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Packages) == 0 {
		return nil, errors.New("catalog has no packages")
	}
	for alias, target := range c.Aliases {
		if _, ok := c.Packages[target]; !ok {
			return nil, fmt.Errorf("alias %q points to unknown package %q", alias, target)
		}
	}
	return &c, nil
}

// Resolve returns the canonical package name.
func (c *Catalog) Resolve(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == entities.PackageCustom {
		return entities.PackageCustom, nil
	}
	if _, ok := c.Packages[key]; ok {
		return key, nil
	}
	if target, ok := c.Aliases[key]; ok {
		return target, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPackage, name)
}

// PackagePrice returns the base price of a canonical package (0 for custom).
func (c *Catalog) PackagePrice(canonical string) decimal.Decimal {
	p, ok := c.Packages[canonical]
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(p.Price)
}

// AddonPrice returns the price of an add-on and whether it is known.
func (c *Catalog) AddonPrice(name string) (decimal.Decimal, bool) {
	price, ok := c.Addons[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(price), true
}

// Features returns the welcome-email bullet list for a canonical package.
func (c *Catalog) Features(canonical string) ([]string, bool) {
	p, ok := c.Packages[canonical]
	if !ok || len(p.Features) == 0 {
		return nil, false
	}
	return p.Features, true
}

// DisplayName returns the human name for a package, or the key itself.
func (c *Catalog) DisplayName(canonical string) string {
	if p, ok := c.Packages[canonical]; ok && p.Name != "" {
		return p.Name
	}
	if canonical == entities.PackageCustom {
		return "Custom"
	}
	return canonical
}

// Quote is the priced breakdown of an order request.
type Quote struct {
	Package       string
	KnownAddons   []string
	IgnoredAddons []string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PackageAmount decimal.Decimal
	AddonsAmount  decimal.Decimal
	CustomAmount  decimal.Decimal
}

// Price computes subtotal = package + known add-ons + custom items. Unknown add-ons
// are ignored; tax is always zero.
func (c *Catalog) Price(pkgName string, addons []string, items []entities.CustomItem) (Quote, error) {
	canonical, err := c.Resolve(pkgName)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{Package: canonical, PackageAmount: c.PackagePrice(canonical), Tax: decimal.Zero}
	for _, a := range addons {
		price, ok := c.AddonPrice(a)
		if !ok {
			q.IgnoredAddons = append(q.IgnoredAddons, a)
			continue
		}
		q.KnownAddons = append(q.KnownAddons, strings.ToLower(strings.TrimSpace(a)))
		q.AddonsAmount = q.AddonsAmount.Add(price)
	}
	for _, it := range items {
		q.CustomAmount = q.CustomAmount.Add(decimal.NewFromFloat(it.Price))
	}

	q.Subtotal = q.PackageAmount.Add(q.AddonsAmount).Add(q.CustomAmount).Round(2)
	q.Total = q.Subtotal.Add(q.Tax)
	return q, nil
}

// PackageNames returns canonical package names, sorted.
func (c *Catalog) PackageNames() []string {
	names := make([]string, 0, len(c.Packages))
	for k := range c.Packages {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ToMinorUnits converts an amount to cents.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromMinorUnits converts cents to an amount.
func FromMinorUnits(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// WithinTolerance reports |a-b| <= 0.01.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(decimal.New(1, -2))
}
