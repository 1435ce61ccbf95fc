package x690

/*
int.go implements the ASN.1 INTEGER type, per spec §4.2 and ITU-T
X.690 clause 8.3. Grounded on the teacher's int.go, diverging from it
by design: the teacher backs INTEGER with math/big.Int for arbitrary
precision, but this package's Non-goals restrict INTEGER (and
ENUMERATED, enum.go) to the machine int64 range, so the encode/decode
core here works directly in int64 two's complement rather than
big.Int. golang.org/x/exp/constraints grounds the generic narrowing
accessor [IntegerAs].
*/

import "golang.org/x/exp/constraints"

// Integer implements the ASN.1 INTEGER type, restricted to the range
// of a signed 64-bit machine word.
type Integer int64

// Tag returns TagInteger.
func (Integer) Tag() int { return TagInteger }

// String returns the decimal representation of the receiver.
func (r Integer) String() string { return fmtInt(int64(r), 10) }

// NewInteger constructs an Integer from an int64 or any Go signed
// integer type, a string of decimal digits, or an existing Integer.
func NewInteger(x any) (Integer, error) {
	switch tv := x.(type) {
	case Integer:
		return tv, nil
	case int:
		return Integer(tv), nil
	case int8:
		return Integer(tv), nil
	case int16:
		return Integer(tv), nil
	case int32:
		return Integer(tv), nil
	case int64:
		return Integer(tv), nil
	case string:
		n, err := atoi(tv)
		if err != nil {
			return 0, newErr(GenericError, invalidEncodingRule, "invalid INTEGER literal "+tv)
		}
		return Integer(n), nil
	default:
		return 0, newErr(GenericError, invalidEncodingRule, "invalid type for INTEGER")
	}
}

// IntegerAs narrows r into T, a Go signed integer type, failing with
// OverflowError if r does not fit.
func IntegerAs[T constraints.Signed](r Integer) (T, error) {
	v := int64(r)
	probe := T(v)
	if int64(probe) != v {
		return 0, newErr(OverflowError, invalidEncodingRule, "INTEGER value does not fit requested type")
	}
	return probe, nil
}

// ToElement encodes the receiver as a primitive UNIVERSAL INTEGER
// Element.
func (r Integer) ToElement() *Element {
	return Universal(TagInteger, false, encodeTwosComplement(int64(r)))
}

// ParseInteger decodes e, previously read under rule, as an INTEGER.
func ParseInteger(e *Element, rule EncodingRule) (Integer, error) {
	if e.Constructed {
		return 0, newErr(ConstructionError, rule, "INTEGER must be primitive")
	}
	v, err := decodeTwosComplement(e.Value, rule)
	if err != nil {
		return 0, err
	}
	return Integer(v), nil
}

// encodeTwosComplement returns the minimum-width two's complement
// big-endian encoding of v.
func encodeTwosComplement(v int64) []byte {
	var full [8]byte
	u := uint64(v)
	for i := 7; i >= 0; i-- {
		full[i] = byte(u)
		u >>= 8
	}
	i := 0
	for i < 7 {
		if full[i] == 0x00 && full[i+1]&0x80 == 0 {
			i++
			continue
		}
		if full[i] == 0xFF && full[i+1]&0x80 != 0 {
			i++
			continue
		}
		break
	}
	return append([]byte(nil), full[i:]...)
}

// decodeTwosComplement decodes a two's complement big-endian INTEGER
// or ENUMERATED content value, bounded to the range of int64. CER and
// DER require the minimum-width encoding; BER accepts any valid
// non-empty encoding.
func decodeTwosComplement(buf []byte, rule EncodingRule) (int64, error) {
	if len(buf) == 0 {
		return 0, newErr(SizeError, rule, "empty INTEGER content")
	}
	if len(buf) > 8 {
		return 0, newErr(OverflowError, rule, "INTEGER exceeds 64-bit machine-word range")
	}
	if rule.integerDecodeStrict() && len(buf) > 1 {
		b0, b1 := buf[0], buf[1]
		if (b0 == 0x00 && b1&0x80 == 0) || (b0 == 0xFF && b1&0x80 != 0) {
			return 0, newErr(PaddingError, rule, "non-minimal INTEGER encoding under "+rule.String())
		}
	}
	var v int64
	if buf[0]&0x80 != 0 {
		v = -1
	}
	for _, b := range buf {
		v = (v << 8) | int64(b)
	}
	return v, nil
}
