package x690

/*
oct.go implements the ASN.1 OCTET STRING type, per spec §4.2/§4.4 and
ITU-T X.690 clauses 8.7 and 9.13. Grounded on the teacher's oct.go for
the type surface and on cer_on.go's segmented read/write, generalized
in constructed.go, for CER fragmentation.
*/

// OctetString implements the ASN.1 OCTET STRING type.
type OctetString []byte

// Tag returns TagOctetString.
func (OctetString) Tag() int { return TagOctetString }

// String returns the receiver's bytes reinterpreted as a string.
func (r OctetString) String() string { return string(r) }

// NewOctetString constructs an OctetString from []byte, string, or an
// existing OctetString.
func NewOctetString(x any) (OctetString, error) {
	switch tv := x.(type) {
	case OctetString:
		return tv, nil
	case []byte:
		return OctetString(append([]byte(nil), tv...)), nil
	case string:
		return OctetString(tv), nil
	default:
		return nil, newErr(GenericError, invalidEncodingRule, "invalid type for OCTET STRING")
	}
}

// ToElement encodes the receiver as a UNIVERSAL OCTET STRING Element,
// fragmenting into CER's constructed form when rule requires it.
func (r OctetString) ToElement(rule EncodingRule) *Element {
	return BuildFragmentable(rule, ClassUniversal, TagOctetString, []byte(r))
}

// ParseOctetString decodes e, previously read under rule, as an
// OCTET STRING, reassembling a CER/BER constructed fragmentation if
// present.
func ParseOctetString(e *Element, rule EncodingRule) (OctetString, error) {
	v, err := e.Deconstruct(rule)
	if err != nil {
		return nil, err
	}
	return OctetString(v), nil
}
