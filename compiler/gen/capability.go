package gen

// Tracked capability names. A capability is a structural guarantee the
// enum's owner has asserted for the type; it gates which derived operations
// are legal to emit.
const (
	CapClone      = "Clone"
	CapCopy       = "Copy"
	CapDebug      = "Debug"
	CapDefault    = "Default"
	CapPartialEq  = "PartialEq"
	CapPartialOrd = "PartialOrd"
	CapEq         = "Eq"
	CapOrd        = "Ord"
)

// CapabilitySet is an immutable snapshot of the capabilities declared on an
// enum. Only the eight tracked capabilities are recorded; unknown tokens are
// ignored, not errors. The originally declared token list is retained in
// declared order for canonical printing.
type CapabilitySet struct {
	// HasDerive reports if any capability token was declared at all.
	HasDerive bool

	Clone      bool
	Copy       bool
	Debug      bool
	Default    bool
	PartialEq  bool
	PartialOrd bool
	Eq         bool
	Ord        bool

	declared []string
}

// InspectCapabilities classifies the declared capability tokens. Zero tokens
// yield an all-false set. Pure classification; no failure modes.
func InspectCapabilities(tokens []string) CapabilitySet {
	s := CapabilitySet{}
	if len(tokens) == 0 {
		return s
	}
	s.HasDerive = true
	s.declared = append([]string(nil), tokens...)
	for _, tok := range tokens {
		switch tok {
		case CapClone:
			s.Clone = true
		case CapCopy:
			s.Copy = true
		case CapDebug:
			s.Debug = true
		case CapDefault:
			s.Default = true
		case CapPartialEq:
			s.PartialEq = true
		case CapPartialOrd:
			s.PartialOrd = true
		case CapEq:
			s.Eq = true
		case CapOrd:
			s.Ord = true
		}
	}
	return s
}

// Declared returns a copy of the originally declared token list, in declared
// order, including tokens the inspector does not track.
func (s CapabilitySet) Declared() []string {
	return append([]string(nil), s.declared...)
}
