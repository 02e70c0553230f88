package enum

// PayloadKind classifies the payload shape of a variant.
type PayloadKind uint8

// Payload shapes. A variant is either a bare tag (PayloadNone), carries an
// ordered list of unnamed field types (PayloadPositional), or carries named
// fields (PayloadNamed).
const (
	PayloadNone PayloadKind = iota
	PayloadPositional
	PayloadNamed
)

// String returns the name of the payload kind.
func (k PayloadKind) String() string {
	switch k {
	case PayloadNone:
		return "none"
	case PayloadPositional:
		return "positional"
	case PayloadNamed:
		return "named"
	}
	return "unknown"
}

// PayloadField is one field of a payload-bearing variant. Name is empty for
// positional fields. Type is the declared field type, kept verbatim.
type PayloadField struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type" yaml:"type"`
}

// Payload is the ordered field list of a variant. Field order is preserved
// from the declaration.
type Payload []PayloadField

// Kind classifies the payload: empty payloads are PayloadNone, payloads
// whose first field is named are PayloadNamed, otherwise PayloadPositional.
// Mixing named and unnamed fields is rejected by the resolver.
func (p Payload) Kind() PayloadKind {
	if len(p) == 0 {
		return PayloadNone
	}
	if p[0].Name != "" {
		return PayloadNamed
	}
	return PayloadPositional
}

// IsEmpty reports if the variant carries no payload.
func (p Payload) IsEmpty() bool {
	return len(p) == 0
}

// Mixed reports if the payload mixes named and unnamed fields, which is an
// illegal shape.
func (p Payload) Mixed() bool {
	if len(p) < 2 {
		return false
	}
	named := p[0].Name != ""
	for _, f := range p[1:] {
		if (f.Name != "") != named {
			return true
		}
	}
	return false
}
