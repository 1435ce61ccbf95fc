package x690

/*
ns.go implements the ASN.1 NumericString type, per spec §4.2 and
ITU-T X.680 clause 41. Grounded on the teacher's ns.go.
*/

// NumericString implements the ASN.1 NumericString type: digits and
// space only.
type NumericString string

// Tag returns TagNumericString.
func (NumericString) Tag() int { return TagNumericString }

// String returns the receiver as a native Go string.
func (r NumericString) String() string { return string(r) }

// NewNumericString constructs a NumericString from a string,
// validating its character repertoire.
func NewNumericString(s string) (NumericString, error) {
	for _, r := range s {
		if !isNumericChar(r) {
			return "", newErr(CharactersError, invalidEncodingRule, "character not permitted in NumericString")
		}
	}
	return NumericString(s), nil
}

// ToElement encodes the receiver as a UNIVERSAL NumericString Element.
func (r NumericString) ToElement(rule EncodingRule) (*Element, error) {
	return encodeRestrictedString(rule, TagNumericString, string(r), isNumericChar)
}

// ParseNumericString decodes e, previously read under rule, as a
// NumericString.
func ParseNumericString(e *Element, rule EncodingRule) (NumericString, error) {
	s, err := decodeRestrictedString(e, rule, TagNumericString, isNumericChar)
	return NumericString(s), err
}
