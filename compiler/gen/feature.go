package gen

import (
	"github.com/syssam/enumext"
)

// Stage describes the maturity of a generation feature.
type Stage int

// Feature stages.
const (
	_ Stage = iota
	Experimental
	Alpha
	Beta
	Stable
)

// String returns the name of the stage.
func (s Stage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	}
	return "unknown"
}

// Feature is an opt-in generation feature.
type Feature struct {
	// Name of the feature as written in configuration.
	Name string
	// Stage of the feature.
	Stage Stage
	// Default values indicates if this feature is enabled by default.
	Default bool
	// A Description of this feature.
	Description string
}

var (
	// FeatureTextMarshal emits encoding.TextMarshaler/TextUnmarshaler
	// implementations backed by the snake_case name form.
	FeatureTextMarshal = Feature{
		Name:        "textmarshal",
		Stage:       Beta,
		Description: "Emits MarshalText/UnmarshalText using the snake_case variant names",
	}

	// FeatureRandom emits a rand-backed variant picker.
	FeatureRandom = Feature{
		Name:        "random",
		Stage:       Experimental,
		Description: "Emits a helper returning a uniformly random variant",
	}
)

// AllFeatures holds all the feature flags, in configuration-name order.
var AllFeatures = []Feature{
	FeatureRandom,
	FeatureTextMarshal,
}

// Features returns the features in the given names. Unknown names are
// ParseErrors.
func Features(names ...string) ([]Feature, error) {
	fs := make([]Feature, 0, len(names))
	for _, name := range names {
		f, ok := featureByName(name)
		if !ok {
			return nil, enumext.NewParseError("features", name, "unknown feature name")
		}
		fs = append(fs, f)
	}
	return fs, nil
}

func featureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
