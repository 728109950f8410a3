package taxengine

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed rulesets.yaml
var embeddedRulesets []byte

// ErrUnknownRuleset is returned when a ruleset version tag is not registered.
var ErrUnknownRuleset = errors.New("unknown tax ruleset version")

// Bucket is the classification target of an expense record.
type Bucket int

const (
	BucketBusinessDeductible Bucket = iota
	BucketCapitalAsset
	BucketSalaryPension
	BucketPersonalRent
	BucketWHTCredit
	BucketNonDeductible

	bucketCount
)

var bucketNames = [bucketCount]string{
	BucketBusinessDeductible: "business_deductible",
	BucketCapitalAsset:       "capital_asset",
	BucketSalaryPension:      "salary_pension",
	BucketPersonalRent:       "personal_rent",
	BucketWHTCredit:          "wht_credit",
	BucketNonDeductible:      "non_deductible",
}

func (b Bucket) String() string {
	if b < 0 || b >= bucketCount {
		return fmt.Sprintf("bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// UnmarshalText decodes a bucket from its snake_case name.
func (b *Bucket) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, n := range bucketNames {
		if n == name {
			*b = Bucket(i)
			return nil
		}
	}
	return fmt.Errorf("unknown expense bucket %q", name)
}

// MarshalText encodes a bucket as its snake_case name.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// CategoryRule routes a category label to a bucket depending on the expense type.
type CategoryRule struct {
	Business Bucket `yaml:"business" json:"business"`
	Personal Bucket `yaml:"personal" json:"personal"`
}

// For returns the bucket for the given expense type.
func (r CategoryRule) For(t domain.ExpenseType) Bucket {
	if t.Normalize() == domain.ExpensePersonal {
		return r.Personal
	}
	return r.Business
}

// BandRule is one row of the banding table. A nil UpTo means unbounded.
type BandRule struct {
	Band domain.TaxBand   `yaml:"band" json:"band"`
	UpTo *decimal.Decimal `yaml:"upTo,omitempty" json:"upTo,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// ConsolidatedRelief describes the CRA formula: Floor + RevenueRate × revenue.
type ConsolidatedRelief struct {
	Enabled              bool            `yaml:"enabled" json:"enabled"`
	Floor                decimal.Decimal `yaml:"floor" json:"floor"`
	RevenueRate          decimal.Decimal `yaml:"revenueRate" json:"revenueRate"`
	ApplyToTaxableIncome bool            `yaml:"applyToTaxableIncome" json:"applyToTaxableIncome"`
}

// PersonalRentRelief caps rent relief at RevenueCapRate × revenue. A zero rate disables it.
type PersonalRentRelief struct {
	RevenueCapRate decimal.Decimal `yaml:"revenueCapRate" json:"revenueCapRate"`
	TipCategory    string          `yaml:"tipCategory" json:"tipCategory"`
}

// Ruleset is a versioned, immutable table of bands, rates and relief formulas.
type Ruleset struct {
	Version              string                  `yaml:"version" json:"version"`
	Description          string                  `yaml:"description" json:"description"`
	Bands                []BandRule              `yaml:"bands" json:"bands"`
	CapitalAllowanceRate decimal.Decimal         `yaml:"capitalAllowanceRate" json:"capitalAllowanceRate"`
	ConsolidatedRelief   ConsolidatedRelief      `yaml:"consolidatedRelief" json:"consolidatedRelief"`
	PersonalRentRelief   PersonalRentRelief      `yaml:"personalRentRelief" json:"personalRentRelief"`
	DefaultCategory      *CategoryRule           `yaml:"defaultCategory" json:"defaultCategory"`
	Categories           map[string]CategoryRule `yaml:"categories" json:"categories"`
}

// fallbackCategory applies when a ruleset document omits defaultCategory.
var fallbackCategory = CategoryRule{Business: BucketBusinessDeductible, Personal: BucketNonDeductible}

var one = decimal.NewFromInt(1)

func rateInRange(rate decimal.Decimal) bool {
	return !rate.IsNegative() && !rate.GreaterThan(one)
}

// Validate checks the band table is ordered and ends with an unbounded band,
// and that every rate lies in [0, 1].
func (rs *Ruleset) Validate() error {
	if rs.Version == "" {
		return errors.New("ruleset version is required")
	}
	if len(rs.Bands) == 0 {
		return fmt.Errorf("ruleset %s: at least one band is required", rs.Version)
	}
	for i, b := range rs.Bands {
		if !rateInRange(b.Rate) {
			return fmt.Errorf("ruleset %s: band %s rate %s out of range", rs.Version, b.Band, b.Rate)
		}
		last := i == len(rs.Bands)-1
		if last && b.UpTo != nil {
			return fmt.Errorf("ruleset %s: last band %s must be unbounded", rs.Version, b.Band)
		}
		if !last && b.UpTo == nil {
			return fmt.Errorf("ruleset %s: only the last band may be unbounded", rs.Version)
		}
		if i > 0 && !last && !b.UpTo.GreaterThan(*rs.Bands[i-1].UpTo) {
			return fmt.Errorf("ruleset %s: band %s upper bound must be ascending", rs.Version, b.Band)
		}
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"capitalAllowanceRate", rs.CapitalAllowanceRate},
		{"consolidatedRelief.revenueRate", rs.ConsolidatedRelief.RevenueRate},
		{"personalRentRelief.revenueCapRate", rs.PersonalRentRelief.RevenueCapRate},
	}
	for _, r := range rates {
		if !rateInRange(r.rate) {
			return fmt.Errorf("ruleset %s: %s %s out of range", rs.Version, r.name, r.rate)
		}
	}
	if rs.ConsolidatedRelief.Floor.IsNegative() {
		return fmt.Errorf("ruleset %s: consolidatedRelief.floor must not be negative", rs.Version)
	}
	return nil
}

// band returns the band rule that covers revenue.
func (rs *Ruleset) band(revenue decimal.Decimal) BandRule {
	for _, b := range rs.Bands {
		if b.UpTo == nil || revenue.LessThanOrEqual(*b.UpTo) {
			return b
		}
	}
	return rs.Bands[len(rs.Bands)-1]
}

// categoryRule looks a label up in the category table, falling back to the default rule.
func (rs *Ruleset) categoryRule(label string) CategoryRule {
	if rule, ok := rs.Categories[normalizeLabel(label)]; ok {
		return rule
	}
	if rs.DefaultCategory == nil {
		return fallbackCategory
	}
	return *rs.DefaultCategory
}

func normalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

type rulesetDocument struct {
	Default  string     `yaml:"default"`
	Rulesets []*Ruleset `yaml:"rulesets"`
}

// Registry holds the published rulesets keyed by version.
type Registry struct {
	rulesets       map[string]*Ruleset
	defaultVersion string
}

// LoadRegistry parses a YAML rulesets document.
func LoadRegistry(data []byte) (*Registry, error) {
	var doc rulesetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rulesets: %w", err)
	}

	reg := &Registry{rulesets: make(map[string]*Ruleset, len(doc.Rulesets))}
	for _, rs := range doc.Rulesets {
		if rs == nil {
			return nil, errors.New("empty ruleset entry")
		}
		if err := rs.Validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.rulesets[rs.Version]; dup {
			return nil, fmt.Errorf("duplicate ruleset version %s", rs.Version)
		}
		normalized := make(map[string]CategoryRule, len(rs.Categories))
		for label, rule := range rs.Categories {
			normalized[normalizeLabel(label)] = rule
		}
		rs.Categories = normalized
		if rs.DefaultCategory == nil {
			rule := fallbackCategory
			rs.DefaultCategory = &rule
		}
		reg.rulesets[rs.Version] = rs
	}

	if _, ok := reg.rulesets[doc.Default]; !ok {
		return nil, fmt.Errorf("default ruleset %q: %w", doc.Default, ErrUnknownRuleset)
	}
	reg.defaultVersion = doc.Default
	return reg, nil
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the registry built from the embedded rulesets.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := LoadRegistry(embeddedRulesets)
		if err != nil {
			panic(fmt.Sprintf("embedded tax rulesets are invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Get returns the ruleset for version; an empty version selects the default.
func (r *Registry) Get(version string) (*Ruleset, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		version = r.defaultVersion
	}
	rs, ok := r.rulesets[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuleset, version)
	}
	return rs, nil
}

// DefaultVersion returns the version used when none is requested.
func (r *Registry) DefaultVersion() string {
	return r.defaultVersion
}

// Versions lists the registered versions, newest tag first.
func (r *Registry) Versions() []string {
	versions := make([]string, 0, len(r.rulesets))
	for v := range r.rulesets {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))
	return versions
}

// resolvable reports whether the registry can serve its default version.
func (r *Registry) resolvable() bool {
	if r == nil {
		return false
	}
	_, ok := r.rulesets[r.defaultVersion]
	return ok
}

// WithDefault returns a copy of the registry whose default is version.
func (r *Registry) WithDefault(version string) (*Registry, error) {
	if _, err := r.Get(version); err != nil {
		return nil, err
	}
	return &Registry{rulesets: r.rulesets, defaultVersion: version}, nil
}
