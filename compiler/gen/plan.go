package gen

import (
	"github.com/syssam/enumext/schema/enum"
)

// FeaturePlan records which generated capabilities an enum qualifies for.
// Planning is a pure function of the declared capability set, discriminant
// presence and the chosen integer type; resolving the same declaration twice
// yields identical plans.
type FeaturePlan struct {
	// EmitIntegerConversion enables discriminant round-trip conversion.
	// It requires at least one explicit discriminant.
	EmitIntegerConversion bool
	// EmitOrdinalReconstruction enables rebuilding a variant from its
	// ordinal. It requires the duplication capability, declared or
	// auto-added.
	EmitOrdinalReconstruction bool
	// AutoAddDuplication records that the duplication capability was added
	// on the enum's behalf because integer conversion needs it.
	AutoAddDuplication bool
	// EmitPrettyPrint enables the canonical declaration rendering. It is
	// unconditional.
	EmitPrettyPrint bool
	// IntType is the integer type conversion is planned at.
	IntType enum.IntType
}

// PlanFeatures derives the feature plan for one enum.
func PlanFeatures(caps CapabilitySet, hasDiscriminant bool, t enum.IntType) FeaturePlan {
	p := FeaturePlan{
		EmitPrettyPrint: true,
		IntType:         t,
	}
	if hasDiscriminant {
		p.EmitIntegerConversion = true
		// Round-trip conversion hands out copies of the variant, so the
		// duplication capability is added when the declaration lacks it.
		if !caps.Clone {
			p.AutoAddDuplication = true
		}
	}
	if caps.Clone || p.AutoAddDuplication {
		p.EmitOrdinalReconstruction = true
	}
	return p
}
