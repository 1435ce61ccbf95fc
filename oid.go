package x690

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER and RELATIVE-OID types,
per spec §4.2 and ITU-T X.690 clauses 8.19-8.20. Grounded on the
teacher's oid.go for the type surface; the base-128 arc codec itself
is shared with tlv.go's long-form tag number codec ([encodeBase128],
[decodeBase128]).
*/

import "strings"

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type: a
// sequence of arcs, the first two of which are combined on the wire
// per X.690 clause 8.19.4.
type ObjectIdentifier []uint64

// Tag returns TagOID.
func (ObjectIdentifier) Tag() int { return TagOID }

// String returns the receiver in dotted-decimal notation.
func (r ObjectIdentifier) String() string {
	parts := make([]string, len(r))
	for i, arc := range r {
		parts[i] = fmtInt(int64(arc), 10)
	}
	return strings.Join(parts, ".")
}

// NewObjectIdentifier constructs an ObjectIdentifier from a
// dotted-decimal string, a []uint64 or []int of arcs, or an existing
// ObjectIdentifier. The first arc must be 0, 1, or 2; if it is 0 or 1
// the second arc must be under 40.
func NewObjectIdentifier(x any) (ObjectIdentifier, error) {
	var arcs []uint64
	switch tv := x.(type) {
	case ObjectIdentifier:
		return tv, nil
	case []uint64:
		arcs = append(arcs, tv...)
	case []int:
		for _, v := range tv {
			if v < 0 {
				return nil, newErr(GenericError, invalidEncodingRule, "negative OID arc")
			}
			arcs = append(arcs, uint64(v))
		}
	case string:
		var err error
		arcs, err = parseArcs(tv)
		if err != nil {
			return nil, err
		}
	default:
		return nil, newErr(GenericError, invalidEncodingRule, "invalid type for OBJECT IDENTIFIER")
	}
	if err := validateOIDArcs(arcs); err != nil {
		return nil, err
	}
	return ObjectIdentifier(arcs), nil
}

func parseArcs(s string) ([]uint64, error) {
	fields := strings.Split(strings.TrimSpace(s), ".")
	arcs := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := atoi(f)
		if err != nil || n < 0 {
			return nil, newErr(GenericError, invalidEncodingRule, "invalid OID arc "+f)
		}
		arcs[i] = uint64(n)
	}
	return arcs, nil
}

func validateOIDArcs(arcs []uint64) error {
	if len(arcs) < 2 {
		return newErr(GenericError, invalidEncodingRule, "OBJECT IDENTIFIER requires at least two arcs")
	}
	if arcs[0] > 2 {
		return newErr(GenericError, invalidEncodingRule, "OID first arc must be 0, 1, or 2")
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return newErr(GenericError, invalidEncodingRule, "OID second arc must be under 40 when first arc is 0 or 1")
	}
	return nil
}

// ToElement encodes the receiver as a primitive UNIVERSAL OBJECT
// IDENTIFIER Element.
func (r ObjectIdentifier) ToElement() *Element {
	var content []byte
	first := r[0]*40 + r[1]
	content = append(content, encodeBase128(first)...)
	for _, arc := range r[2:] {
		content = append(content, encodeBase128(arc)...)
	}
	return Universal(TagOID, false, content)
}

// ParseObjectIdentifier decodes e, previously read under rule, as an
// OBJECT IDENTIFIER.
func ParseObjectIdentifier(e *Element, rule EncodingRule) (ObjectIdentifier, error) {
	if e.Constructed {
		return nil, newErr(ConstructionError, rule, "OBJECT IDENTIFIER must be primitive")
	}
	if len(e.Value) == 0 {
		return nil, newErr(SizeError, rule, "empty OBJECT IDENTIFIER content")
	}
	first, n, err := decodeBase128(e.Value)
	if err != nil {
		return nil, err
	}
	var arc0, arc1 uint64
	switch {
	case first < 40:
		arc0, arc1 = 0, first
	case first < 80:
		arc0, arc1 = 1, first-40
	default:
		arc0, arc1 = 2, first-80
	}
	arcs := []uint64{arc0, arc1}
	pos := n
	for pos < len(e.Value) {
		v, m, derr := decodeBase128(e.Value[pos:])
		if derr != nil {
			return nil, derr
		}
		arcs = append(arcs, v)
		pos += m
	}
	return ObjectIdentifier(arcs), nil
}

// RelativeOID implements the ASN.1 RELATIVE-OID type: a sequence of
// arcs each independently base-128 encoded, with no combining of the
// first two as OBJECT IDENTIFIER does.
type RelativeOID []uint64

// Tag returns TagRelativeOID.
func (RelativeOID) Tag() int { return TagRelativeOID }

// String returns the receiver in dotted-decimal notation.
func (r RelativeOID) String() string {
	parts := make([]string, len(r))
	for i, arc := range r {
		parts[i] = fmtInt(int64(arc), 10)
	}
	return strings.Join(parts, ".")
}

// NewRelativeOID constructs a RelativeOID from a dotted-decimal
// string, a []uint64 of arcs, or an existing RelativeOID.
func NewRelativeOID(x any) (RelativeOID, error) {
	switch tv := x.(type) {
	case RelativeOID:
		return tv, nil
	case []uint64:
		return RelativeOID(append([]uint64(nil), tv...)), nil
	case string:
		arcs, err := parseArcs(tv)
		if err != nil {
			return nil, err
		}
		return RelativeOID(arcs), nil
	default:
		return nil, newErr(GenericError, invalidEncodingRule, "invalid type for RELATIVE-OID")
	}
}

// ToElement encodes the receiver as a primitive UNIVERSAL RELATIVE-OID
// Element.
func (r RelativeOID) ToElement() *Element {
	var content []byte
	for _, arc := range r {
		content = append(content, encodeBase128(arc)...)
	}
	return Universal(TagRelativeOID, false, content)
}

// ParseRelativeOID decodes e, previously read under rule, as a
// RELATIVE-OID.
func ParseRelativeOID(e *Element, rule EncodingRule) (RelativeOID, error) {
	if e.Constructed {
		return nil, newErr(ConstructionError, rule, "RELATIVE-OID must be primitive")
	}
	var arcs []uint64
	pos := 0
	for pos < len(e.Value) {
		v, n, err := decodeBase128(e.Value[pos:])
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, v)
		pos += n
	}
	return RelativeOID(arcs), nil
}
