package enum

// IntType is the integer type used to evaluate discriminant expressions and
// to back integer round-trip conversion in generated code.
//
// The set of supported types is a fixed whitelist: signed and unsigned
// 8/16/32/64/128-bit types plus the pointer-sized pair. The tags follow the
// declaration syntax ("i8" through "usize"); the zero value is invalid.
type IntType uint8

// Supported integer types.
const (
	IntTypeInvalid IntType = iota
	IntTypeI8
	IntTypeU8
	IntTypeI16
	IntTypeU16
	IntTypeI32
	IntTypeU32
	IntTypeI64
	IntTypeU64
	IntTypeI128
	IntTypeU128
	IntTypeIsize
	IntTypeUsize

	endIntTypes
)

// DefaultIntType is used when a declaration does not request an integer
// type: the unsigned pointer-sized type.
const DefaultIntType = IntTypeUsize

var intTypeTags = [...]string{
	IntTypeInvalid: "invalid",
	IntTypeI8:      "i8",
	IntTypeU8:      "u8",
	IntTypeI16:     "i16",
	IntTypeU16:     "u16",
	IntTypeI32:     "i32",
	IntTypeU32:     "u32",
	IntTypeI64:     "i64",
	IntTypeU64:     "u64",
	IntTypeI128:    "i128",
	IntTypeU128:    "u128",
	IntTypeIsize:   "isize",
	IntTypeUsize:   "usize",
}

// String returns the declaration tag of the integer type.
func (t IntType) String() string {
	if t < endIntTypes {
		return intTypeTags[t]
	}
	return intTypeTags[IntTypeInvalid]
}

// Valid reports if the type is one of the supported whitelist members.
func (t IntType) Valid() bool {
	return t > IntTypeInvalid && t < endIntTypes
}

// Signed reports if the type is signed.
func (t IntType) Signed() bool {
	switch t {
	case IntTypeI8, IntTypeI16, IntTypeI32, IntTypeI64, IntTypeI128, IntTypeIsize:
		return true
	}
	return false
}

// Bits returns the width of the type in bits. The pointer-sized types
// evaluate at 64 bits.
func (t IntType) Bits() int {
	switch t {
	case IntTypeI8, IntTypeU8:
		return 8
	case IntTypeI16, IntTypeU16:
		return 16
	case IntTypeI32, IntTypeU32:
		return 32
	case IntTypeI64, IntTypeU64, IntTypeIsize, IntTypeUsize:
		return 64
	case IntTypeI128, IntTypeU128:
		return 128
	}
	return 0
}

// GoType returns the Go type backing this integer type in generated code.
// The 128-bit types have no Go equivalent and return an empty string.
func (t IntType) GoType() string {
	switch t {
	case IntTypeI8:
		return "int8"
	case IntTypeU8:
		return "uint8"
	case IntTypeI16:
		return "int16"
	case IntTypeU16:
		return "uint16"
	case IntTypeI32:
		return "int32"
	case IntTypeU32:
		return "uint32"
	case IntTypeI64:
		return "int64"
	case IntTypeU64:
		return "uint64"
	case IntTypeIsize:
		return "int"
	case IntTypeUsize:
		return "uint"
	}
	return ""
}

// MethodSuffix returns the suffix used in generated conversion helper names,
// e.g. "Int32" for StatusFromInt32/AsInt32. Empty for types without a Go
// equivalent.
func (t IntType) MethodSuffix() string {
	switch t {
	case IntTypeI8:
		return "Int8"
	case IntTypeU8:
		return "Uint8"
	case IntTypeI16:
		return "Int16"
	case IntTypeU16:
		return "Uint16"
	case IntTypeI32:
		return "Int32"
	case IntTypeU32:
		return "Uint32"
	case IntTypeI64:
		return "Int64"
	case IntTypeU64:
		return "Uint64"
	case IntTypeIsize:
		return "Int"
	case IntTypeUsize:
		return "Uint"
	}
	return ""
}

// ParseIntType returns the IntType named by tag. The second return value
// reports if the tag is a member of the whitelist.
func ParseIntType(tag string) (IntType, bool) {
	for t := IntTypeI8; t < endIntTypes; t++ {
		if intTypeTags[t] == tag {
			return t, true
		}
	}
	return IntTypeInvalid, false
}

// IntTypes returns the whitelist of supported integer types in declaration
// order.
func IntTypes() []IntType {
	ts := make([]IntType, 0, int(endIntTypes)-1)
	for t := IntTypeI8; t < endIntTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

// IntTypeTags returns the tags of the supported integer types, for error
// messages.
func IntTypeTags() []string {
	ts := IntTypes()
	tags := make([]string, len(ts))
	for i, t := range ts {
		tags[i] = t.String()
	}
	return tags
}
