// Package theme defines the design tokens shipped to the external
// painter as a flat property map, plus YAML load/save for custom themes.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Colors holds every color token.
type Colors struct {
	BgPrimary   string `yaml:"bg_primary"`
	BgSecondary string `yaml:"bg_secondary"`
	BgTertiary  string `yaml:"bg_tertiary"`

	FgPrimary   string `yaml:"fg_primary"`
	FgSecondary string `yaml:"fg_secondary"`
	FgMuted     string `yaml:"fg_muted"`

	Accent       string `yaml:"accent"`
	AccentHover  string `yaml:"accent_hover"`
	AccentSubtle string `yaml:"accent_subtle"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// Typography holds font families, sizes, line heights, and weights.
type Typography struct {
	FontSans string `yaml:"font_sans"`
	FontMono string `yaml:"font_mono"`

	TextXS   string `yaml:"text_xs"`
	TextSM   string `yaml:"text_sm"`
	TextBase string `yaml:"text_base"`
	TextLG   string `yaml:"text_lg"`
	TextXL   string `yaml:"text_xl"`
	Text2XL  string `yaml:"text_2xl"`
	Text3XL  string `yaml:"text_3xl"`
	Text4XL  string `yaml:"text_4xl"`

	LeadingTight   string `yaml:"leading_tight"`
	LeadingNormal  string `yaml:"leading_normal"`
	LeadingRelaxed string `yaml:"leading_relaxed"`

	WeightNormal   string `yaml:"weight_normal"`
	WeightMedium   string `yaml:"weight_medium"`
	WeightSemibold string `yaml:"weight_semibold"`
	WeightBold     string `yaml:"weight_bold"`
}

// Spacing holds the spacing scale, container padding, and radii.
type Spacing struct {
	Space1  string `yaml:"space_1"`
	Space2  string `yaml:"space_2"`
	Space3  string `yaml:"space_3"`
	Space4  string `yaml:"space_4"`
	Space6  string `yaml:"space_6"`
	Space8  string `yaml:"space_8"`
	Space12 string `yaml:"space_12"`
	Space16 string `yaml:"space_16"`
	Space24 string `yaml:"space_24"`

	ContainerPadding string `yaml:"container_padding"`

	RadiusSM   string `yaml:"radius_sm"`
	RadiusMD   string `yaml:"radius_md"`
	RadiusLG   string `yaml:"radius_lg"`
	RadiusFull string `yaml:"radius_full"`
}

// Timing holds animation durations and easing expressions.
type Timing struct {
	DurationInstant string `yaml:"duration_instant"`
	DurationFast    string `yaml:"duration_fast"`
	DurationNormal  string `yaml:"duration_normal"`
	DurationSlow    string `yaml:"duration_slow"`
	DurationSlower  string `yaml:"duration_slower"`

	EaseDefault string `yaml:"ease_default"`
	EaseIn      string `yaml:"ease_in"`
	EaseOut     string `yaml:"ease_out"`
	EaseInOut   string `yaml:"ease_in_out"`
	EaseSpring  string `yaml:"ease_spring"`
}

// Shadows holds box-shadow tokens.
type Shadows struct {
	ShadowSM string `yaml:"shadow_sm"`
	ShadowMD string `yaml:"shadow_md"`
	ShadowLG string `yaml:"shadow_lg"`
}

// Theme is a complete set of design tokens.
type Theme struct {
	Name       string     `yaml:"name"`
	Colors     Colors     `yaml:"colors"`
	Typography Typography `yaml:"typography"`
	Spacing    Spacing    `yaml:"spacing"`
	Timing     Timing     `yaml:"timing"`
	Shadows    Shadows    `yaml:"shadows"`
}

// Properties flattens the theme into "--scene-<token>: value" pairs for
// the painter.
func (t *Theme) Properties() map[string]string {
	props := map[string]string{}
	put := func(token, value string) {
		props["--scene-"+token] = value
	}

	c := &t.Colors
	put("bg-primary", c.BgPrimary)
	put("bg-secondary", c.BgSecondary)
	put("bg-tertiary", c.BgTertiary)
	put("fg-primary", c.FgPrimary)
	put("fg-secondary", c.FgSecondary)
	put("fg-muted", c.FgMuted)
	put("accent", c.Accent)
	put("accent-hover", c.AccentHover)
	put("accent-subtle", c.AccentSubtle)
	put("success", c.Success)
	put("warning", c.Warning)
	put("error", c.Error)

	ty := &t.Typography
	put("font-sans", ty.FontSans)
	put("font-mono", ty.FontMono)
	put("text-xs", ty.TextXS)
	put("text-sm", ty.TextSM)
	put("text-base", ty.TextBase)
	put("text-lg", ty.TextLG)
	put("text-xl", ty.TextXL)
	put("text-2xl", ty.Text2XL)
	put("text-3xl", ty.Text3XL)
	put("text-4xl", ty.Text4XL)
	put("leading-tight", ty.LeadingTight)
	put("leading-normal", ty.LeadingNormal)
	put("leading-relaxed", ty.LeadingRelaxed)
	put("font-weight-normal", ty.WeightNormal)
	put("font-weight-medium", ty.WeightMedium)
	put("font-weight-semibold", ty.WeightSemibold)
	put("font-weight-bold", ty.WeightBold)

	s := &t.Spacing
	put("space-1", s.Space1)
	put("space-2", s.Space2)
	put("space-3", s.Space3)
	put("space-4", s.Space4)
	put("space-6", s.Space6)
	put("space-8", s.Space8)
	put("space-12", s.Space12)
	put("space-16", s.Space16)
	put("space-24", s.Space24)
	put("container-padding", s.ContainerPadding)
	put("radius-sm", s.RadiusSM)
	put("radius-md", s.RadiusMD)
	put("radius-lg", s.RadiusLG)
	put("radius-full", s.RadiusFull)

	tm := &t.Timing
	put("duration-instant", tm.DurationInstant)
	put("duration-fast", tm.DurationFast)
	put("duration-normal", tm.DurationNormal)
	put("duration-slow", tm.DurationSlow)
	put("duration-slower", tm.DurationSlower)
	put("ease-default", tm.EaseDefault)
	put("ease-in", tm.EaseIn)
	put("ease-out", tm.EaseOut)
	put("ease-in-out", tm.EaseInOut)
	put("ease-spring", tm.EaseSpring)

	sh := &t.Shadows
	put("shadow-sm", sh.ShadowSM)
	put("shadow-md", sh.ShadowMD)
	put("shadow-lg", sh.ShadowLG)

	return props
}

// Save writes the theme to a YAML file.
func Save(t *Theme, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("theme %s has no name", path)
	}
	return &t, nil
}
