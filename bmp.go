package x690

/*
bmp.go implements the ASN.1 BMPString type, per spec §4.2 and ITU-T
X.680 clause 41. Grounded on the teacher's bmp.go: each code point is
encoded as two big-endian octets (UCS-2/UTF-16BE), per ITU-T X.690
clause 8.22. A surrogate pair, which would require a code point
outside the Basic Multilingual Plane, is rejected.
*/

import "unicode/utf16"

// BMPString implements the ASN.1 BMPString type: a sequence of
// Unicode code points restricted to the Basic Multilingual Plane.
type BMPString []rune

// Tag returns TagBMPString.
func (BMPString) Tag() int { return TagBMPString }

// String returns the receiver as a native Go string.
func (r BMPString) String() string { return string(r) }

// NewBMPString constructs a BMPString from a string or []rune,
// rejecting any code point outside the Basic Multilingual Plane.
func NewBMPString(x any) (BMPString, error) {
	var runes []rune
	switch tv := x.(type) {
	case BMPString:
		return tv, nil
	case string:
		runes = []rune(tv)
	case []rune:
		runes = tv
	default:
		return nil, newErr(GenericError, invalidEncodingRule, "invalid type for BMPString")
	}
	for _, r := range runes {
		if r > 0xFFFF {
			return nil, newErr(CharactersError, invalidEncodingRule, "code point outside Basic Multilingual Plane")
		}
	}
	return BMPString(runes), nil
}

// ToElement encodes the receiver as a UNIVERSAL BMPString Element,
// fragmenting into CER's constructed form when rule requires it.
func (r BMPString) ToElement(rule EncodingRule) (*Element, error) {
	content := make([]byte, 0, len(r)*2)
	for _, ch := range r {
		if ch > 0xFFFF {
			return nil, newErr(CharactersError, rule, "code point outside Basic Multilingual Plane")
		}
		content = append(content, byte(ch>>8), byte(ch))
	}
	return BuildFragmentable(rule, ClassUniversal, TagBMPString, content), nil
}

// ParseBMPString decodes e, previously read under rule, as a
// BMPString.
func ParseBMPString(e *Element, rule EncodingRule) (BMPString, error) {
	content, err := e.Deconstruct(rule)
	if err != nil {
		return nil, err
	}
	if len(content)%2 != 0 {
		return nil, newErr(SizeError, rule, "BMPString content length must be a multiple of two")
	}
	units := make([]uint16, len(content)/2)
	for i := range units {
		units[i] = uint16(content[2*i])<<8 | uint16(content[2*i+1])
		if utf16.IsSurrogate(rune(units[i])) {
			return nil, newErr(CharactersError, rule, "surrogate code unit: code point outside Basic Multilingual Plane")
		}
	}
	return BMPString(utf16.Decode(units)), nil
}
