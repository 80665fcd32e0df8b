// Package config defines the options surface of the ordering engine: option types, their
// validation, merging of defaults with shared settings and per-construct overrides, and
// config file loading.
package config

// FallbackSort is applied when the primary comparator reports equality.
type FallbackSort struct {
	Type     SortType      `yaml:"type"     toml:"type"`
	Order    Order         `yaml:"order"    toml:"order"`
	Fallback *FallbackSort `yaml:"fallback" toml:"fallback"`
}

// Options is a full set of recognized options. Zero values mean "not set" so that
// several layers of options can be merged with Resolve.
type Options struct {
	Type              SortType          `yaml:"type"              toml:"type"`
	Order             Order             `yaml:"order"             toml:"order"`
	IgnoreCase        *bool             `yaml:"ignoreCase"        toml:"ignoreCase"`
	SpecialCharacters SpecialCharacters `yaml:"specialCharacters" toml:"specialCharacters"`
	Locale            string            `yaml:"locale"            toml:"locale"`
	Alphabet          string            `yaml:"alphabet"          toml:"alphabet"`
	FallbackSort      *FallbackSort     `yaml:"fallbackSort"      toml:"fallbackSort"`

	Groups       Groups        `yaml:"groups"       toml:"groups"`
	CustomGroups []CustomGroup `yaml:"customGroups" toml:"customGroups"`

	PartitionByComment *PartitionByComment `yaml:"partitionByComment" toml:"partitionByComment"`
	PartitionByNewLine *bool               `yaml:"partitionByNewLine" toml:"partitionByNewLine"`
	NewlinesBetween    NewlinesBetween     `yaml:"newlinesBetween"    toml:"newlinesBetween"`

	// DisableDirectives are extra comment directives that disable sorting for an element.
	DisableDirectives []string `yaml:"disableDirectives" toml:"disableDirectives"`
}

// Defaults returns engine defaults.
func Defaults() Options {
	return Options{
		Type:               SortTypeAlphabetical,
		Order:              OrderAsc,
		IgnoreCase:         ptr(true),
		SpecialCharacters:  SpecialCharactersKeep,
		PartitionByNewLine: ptr(false),
		NewlinesBetween:    NewlinesBetweenIgnore,
	}
}

// IsIgnoreCase returns the effective ignoreCase value.
func (o *Options) IsIgnoreCase() bool {
	return o.IgnoreCase == nil || *o.IgnoreCase
}

// IsPartitionByNewLine returns the effective partitionByNewLine value.
func (o *Options) IsPartitionByNewLine() bool {
	return o.PartitionByNewLine != nil && *o.PartitionByNewLine
}

// Resolve merges option layers: every set field of a later layer overrides the earlier ones.
// Layers are not modified.
func Resolve(defaults, settings, override Options) Options {
	res := defaults
	for _, layer := range []Options{settings, override} {
		res = merge(res, layer)
	}

	return res
}

func merge(base, over Options) Options {
	if over.Type != SortTypeInvalid {
		base.Type = over.Type
	}
	if over.Order != OrderInvalid {
		base.Order = over.Order
	}
	if over.IgnoreCase != nil {
		base.IgnoreCase = ptr(*over.IgnoreCase)
	}
	if over.SpecialCharacters != SpecialCharactersInvalid {
		base.SpecialCharacters = over.SpecialCharacters
	}
	if over.Locale != "" {
		base.Locale = over.Locale
	}
	if over.Alphabet != "" {
		base.Alphabet = over.Alphabet
	}
	if over.FallbackSort != nil {
		base.FallbackSort = over.FallbackSort
	}
	if over.Groups != nil {
		base.Groups = over.Groups
	}
	if over.CustomGroups != nil {
		base.CustomGroups = over.CustomGroups
	}
	if over.PartitionByComment != nil {
		base.PartitionByComment = over.PartitionByComment
	}
	if over.PartitionByNewLine != nil {
		base.PartitionByNewLine = ptr(*over.PartitionByNewLine)
	}
	if over.NewlinesBetween.IsSet() {
		base.NewlinesBetween = over.NewlinesBetween
	}
	if over.DisableDirectives != nil {
		base.DisableDirectives = over.DisableDirectives
	}

	return base
}

// CustomGroupByName returns the custom group definition for the name if there is one.
func (o *Options) CustomGroupByName(name string) (*CustomGroup, bool) {
	for i := range o.CustomGroups {
		if o.CustomGroups[i].GroupName == name {
			return &o.CustomGroups[i], true
		}
	}

	return nil, false
}

func ptr[T any](v T) *T {
	return &v
}
