package x690

/*
enum.go implements the ASN.1 ENUMERATED type, per spec §4.2. Shares
its two's complement core with int.go, since ENUMERATED and INTEGER
are wire-identical aside from tag number (ITU-T X.690 clause 8.4).
*/

// Enumerated implements the ASN.1 ENUMERATED type, restricted to the
// range of a signed 64-bit machine word.
type Enumerated int64

// Tag returns TagEnumerated.
func (Enumerated) Tag() int { return TagEnumerated }

// String returns the decimal representation of the receiver.
func (r Enumerated) String() string { return fmtInt(int64(r), 10) }

// NewEnumerated constructs an Enumerated from an int64 or any Go
// signed integer type, or an existing Enumerated.
func NewEnumerated(x any) (Enumerated, error) {
	switch tv := x.(type) {
	case Enumerated:
		return tv, nil
	case int:
		return Enumerated(tv), nil
	case int8:
		return Enumerated(tv), nil
	case int16:
		return Enumerated(tv), nil
	case int32:
		return Enumerated(tv), nil
	case int64:
		return Enumerated(tv), nil
	default:
		return 0, newErr(GenericError, invalidEncodingRule, "invalid type for ENUMERATED")
	}
}

// ToElement encodes the receiver as a primitive UNIVERSAL ENUMERATED
// Element.
func (r Enumerated) ToElement() *Element {
	return Universal(TagEnumerated, false, encodeTwosComplement(int64(r)))
}

// ParseEnumerated decodes e, previously read under rule, as an
// ENUMERATED.
func ParseEnumerated(e *Element, rule EncodingRule) (Enumerated, error) {
	if e.Constructed {
		return 0, newErr(ConstructionError, rule, "ENUMERATED must be primitive")
	}
	v, err := decodeTwosComplement(e.Value, rule)
	if err != nil {
		return 0, err
	}
	return Enumerated(v), nil
}
