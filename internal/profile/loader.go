package profile

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	"invoscan/internal/domain"
)

// fileMetadataRule mirrors MetadataFieldRule in profile YAML files.
type fileMetadataRule struct {
	Pattern string `mapstructure:"pattern"`
	Group   int    `mapstructure:"group"`
	Where   string `mapstructure:"where"`
	Format  string `mapstructure:"format"`
}

// filePattern mirrors LineItemPattern. Capture groups and constants are two
// separate maps so a YAML author never has to encode a union type.
type filePattern struct {
	Name      string             `mapstructure:"name"`
	Pattern   string             `mapstructure:"pattern"`
	Groups    map[string]int     `mapstructure:"groups"`
	Constants map[string]float64 `mapstructure:"constants"`
}

type fileValidation struct {
	QuantityMin       float64   `mapstructure:"quantity_min"`
	QuantityMax       float64   `mapstructure:"quantity_max"`
	PriceMin          float64   `mapstructure:"price_min"`
	PriceMax          float64   `mapstructure:"price_max"`
	TaxRatePercent    float64   `mapstructure:"tax_rate_percent"`
	ExpectedDiscounts []float64 `mapstructure:"expected_discounts"`
}

type fileProfile struct {
	Code            string                        `mapstructure:"code"`
	DisplayName     string                        `mapstructure:"display_name"`
	Identifier      string                        `mapstructure:"identifier"`
	Metadata        map[string][]fileMetadataRule `mapstructure:"metadata"`
	LineItems       []filePattern                 `mapstructure:"line_items"`
	Validation      fileValidation                `mapstructure:"validation"`
	PromptHints     []string                      `mapstructure:"prompt_hints"`
	ExpectedColumns []string                      `mapstructure:"expected_columns"`
}

// NewDefaultRegistry builds the registry from the builtin catalog plus, when
// path is non-empty, the profiles of a YAML file appended after the builtins.
// Builtins keep detection priority over file-loaded profiles.
func NewDefaultRegistry(path string) (*Registry, error) {
	profiles := Builtin()
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, extra...)
	}
	return NewRegistry(profiles...)
}

// LoadFile reads supplementary supplier profiles from a YAML file. Returned
// profiles keep file order, so their detection priority follows the file.
func LoadFile(path string) ([]*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading profile file %s: %w", path, err)
	}

	var specs []fileProfile
	if err := v.UnmarshalKey("profiles", &specs); err != nil {
		return nil, fmt.Errorf("decoding profile file %s: %w", path, err)
	}

	profiles := make([]*Profile, 0, len(specs))
	for _, spec := range specs {
		p, err := compile(&spec)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func compile(spec *fileProfile) (*Profile, error) {
	ident, err := regexp.Compile(spec.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: profile %q identifier: %v", domain.ErrInvalidProfile, spec.Code, err)
	}

	metadata := make(map[domain.MetadataField][]MetadataFieldRule, len(spec.Metadata))
	for field, rules := range spec.Metadata {
		compiled := make([]MetadataFieldRule, 0, len(rules))
		for i, r := range rules {
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: profile %q metadata %s[%d]: %v", domain.ErrInvalidProfile, spec.Code, field, i, err)
			}
			compiled = append(compiled, MetadataFieldRule{Pattern: re, Group: r.Group, Where: r.Where, Format: r.Format})
		}
		metadata[domain.MetadataField(field)] = compiled
	}

	patterns := make([]LineItemPattern, 0, len(spec.LineItems))
	for _, fp := range spec.LineItems {
		re, err := regexp.Compile(fp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %q pattern %q: %v", domain.ErrInvalidProfile, spec.Code, fp.Name, err)
		}
		fields := make(map[domain.ItemField]FieldSource, len(fp.Groups)+len(fp.Constants))
		for name, group := range fp.Groups {
			fields[domain.ItemField(name)] = Grp(group)
		}
		for name, value := range fp.Constants {
			fields[domain.ItemField(name)] = Fixed(value)
		}
		patterns = append(patterns, LineItemPattern{Name: fp.Name, Pattern: re, Fields: fields})
	}

	return &Profile{
		Code:             spec.Code,
		DisplayName:      spec.DisplayName,
		Identifier:       ident,
		MetadataSpecs:    metadata,
		LineItemPatterns: patterns,
		Validation: ValidationRules{
			QuantityMin:       spec.Validation.QuantityMin,
			QuantityMax:       spec.Validation.QuantityMax,
			PriceMin:          spec.Validation.PriceMin,
			PriceMax:          spec.Validation.PriceMax,
			TaxRatePercent:    spec.Validation.TaxRatePercent,
			ExpectedDiscounts: spec.Validation.ExpectedDiscounts,
		},
		PromptHints:     spec.PromptHints,
		ExpectedColumns: spec.ExpectedColumns,
	}, nil
}
