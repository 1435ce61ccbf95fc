package x690

/*
bs.go implements the ASN.1 BIT STRING type, per spec §4.2/§4.4 and
ITU-T X.690 clauses 8.6 and 9.13. Grounded on the teacher's bs.go for
the type surface and on cer_on.go's segmented read/write, generalized
in constructed.go (with its BIT STRING-specific unused-bits handling),
for CER fragmentation.
*/

// BitString implements the ASN.1 BIT STRING type: an ordered sequence
// of bits, stored packed into Bytes with Unused trailing bits in the
// final byte ignored.
type BitString struct {
	Bytes  []byte
	Unused int
}

// Tag returns TagBitString.
func (BitString) Tag() int { return TagBitString }

// Len returns the number of significant bits in the receiver.
func (r BitString) Len() int {
	if len(r.Bytes) == 0 {
		return 0
	}
	return len(r.Bytes)*8 - r.Unused
}

// At reports the value of the i'th bit, most significant bit of
// Bytes[0] first.
func (r BitString) At(i int) bool {
	if i < 0 || i >= r.Len() {
		return false
	}
	return r.Bytes[i/8]&(0x80>>uint(i%8)) != 0
}

// NewBitString constructs a BitString from an existing BitString or a
// []byte of fully-significant bits (zero unused bits). Any other type,
// including a bit string literal such as "'1011'B", is rejected with
// GenericError.
func NewBitString(x any) (BitString, error) {
	switch tv := x.(type) {
	case BitString:
		return tv, nil
	case []byte:
		return BitString{Bytes: append([]byte(nil), tv...)}, nil
	default:
		return BitString{}, newErr(GenericError, invalidEncodingRule, "invalid type for BIT STRING")
	}
}

// ToElement encodes the receiver as a UNIVERSAL BIT STRING Element,
// fragmenting into CER's constructed form when rule requires it.
func (r BitString) ToElement(rule EncodingRule) *Element {
	content := append([]byte{byte(r.Unused)}, r.Bytes...)
	return BuildFragmentable(rule, ClassUniversal, TagBitString, content)
}

// ParseBitString decodes e, previously read under rule, as a BIT
// STRING, reassembling a CER/BER constructed fragmentation if present.
func ParseBitString(e *Element, rule EncodingRule) (BitString, error) {
	content, err := e.Deconstruct(rule)
	if err != nil {
		return BitString{}, err
	}
	if len(content) == 0 {
		return BitString{}, newErr(SizeError, rule, "BIT STRING content must carry an unused-bits octet")
	}
	unused := int(content[0])
	if unused > 7 || (unused > 0 && len(content) == 1) {
		return BitString{}, newErr(GenericError, rule, "invalid BIT STRING unused-bits count")
	}
	bits := append([]byte(nil), content[1:]...)
	if rule.bitStringUnusedBitsStrict() && unused > 0 {
		mask := byte(0xFF >> uint(8-unused))
		if bits[len(bits)-1]&mask != 0 {
			return BitString{}, newErr(PaddingError, rule, "nonzero BIT STRING padding bits under "+rule.String())
		}
	}
	return BitString{Bytes: bits, Unused: unused}, nil
}
