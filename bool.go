package x690

/*
bool.go implements the ASN.1 BOOLEAN type, per spec §4.2 and ITU-T
X.690 clause 8.2. Grounded on the teacher's bool.go, trimmed of the
reflect/Constraint machinery this package does not carry.
*/

// Boolean implements the ASN.1 BOOLEAN type.
type Boolean bool

// Tag returns TagBoolean.
func (Boolean) Tag() int { return TagBoolean }

// String returns "true" or "false".
func (r Boolean) String() string { return bool2str(bool(r)) }

// Byte returns the receiver expressed as its BER content octet: 0x00
// for false, 0xFF for true.
func (r Boolean) Byte() byte {
	if r {
		return 0xFF
	}
	return 0x00
}

// NewBoolean constructs a Boolean from a bool, *bool, or an existing
// Boolean.
func NewBoolean(x any) (Boolean, error) {
	switch tv := x.(type) {
	case Boolean:
		return tv, nil
	case bool:
		return Boolean(tv), nil
	case *bool:
		if tv == nil {
			return false, newErr(GenericError, invalidEncodingRule, "nil *bool for BOOLEAN")
		}
		return Boolean(*tv), nil
	default:
		return false, newErr(GenericError, invalidEncodingRule, "invalid type for BOOLEAN")
	}
}

// ToElement encodes the receiver as a primitive UNIVERSAL BOOLEAN
// Element.
func (r Boolean) ToElement() *Element {
	return Universal(TagBoolean, false, []byte{r.Byte()})
}

// ParseBoolean decodes e, previously read under rule, as a BOOLEAN.
// CER and DER require the content octet to be exactly 0x00 or 0xFF;
// BER accepts any nonzero octet as true.
func ParseBoolean(e *Element, rule EncodingRule) (Boolean, error) {
	if e.Constructed {
		return false, newErr(ConstructionError, rule, "BOOLEAN must be primitive")
	}
	if len(e.Value) != 1 {
		return false, newErr(SizeError, rule, "BOOLEAN content must be exactly one octet")
	}
	b := e.Value[0]
	if rule.booleanDecodeStrict() && b != 0x00 && b != 0xFF {
		return false, newErr(GenericError, rule, "non-canonical BOOLEAN content octet under "+rule.String())
	}
	return Boolean(b != 0x00), nil
}
