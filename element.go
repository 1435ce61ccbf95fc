package x690

/*
element.go implements component C3: the generic TLV node this package
decodes every ASN.1 value into, plus the top-level framing functions
that tie the tag/length codec (tlv.go) to a chosen Transfer Syntax
(er.go). Per-type files (bool.go, int.go, ...) build their typed views
on top of an *Element's Value octets; this file never interprets them.
*/

import "time"

// Element is one decoded ASN.1 TLV: an identifier (Class, Constructed,
// Tag) and the raw content octets (Value). For a primitive element,
// Value holds the type's encoded content directly. For a constructed
// element, Value holds the concatenation of its children's complete
// TLV encodings (including, for an indefinitely-fragmented string, the
// raw octets each child fragment contributed, EOC already stripped).
type Element struct {
	Class       int
	Constructed bool
	Tag         int
	Value       []byte
}

// NewElement constructs an Element directly from its parts. value is
// retained, not copied.
func NewElement(class int, constructed bool, tag int, value []byte) *Element {
	return &Element{Class: class, Constructed: constructed, Tag: tag, Value: value}
}

// Universal constructs an Element tagged in the UNIVERSAL class, the
// class every built-in ASN.1 type in this package uses.
func Universal(tag int, constructed bool, value []byte) *Element {
	return NewElement(ClassUniversal, constructed, tag, value)
}

// codecOptions carries the per-call settings a caller may override via
// functional [Option]s, rather than the teacher's package-global
// mutable configuration.
type codecOptions struct {
	nestingLimit int
	indefinite   bool
}

func defaultCodecOptions() codecOptions {
	return codecOptions{nestingLimit: NestingLimit}
}

// Option configures a single call to [FromBytes], [Element.ToBytes],
// or [Deconstruct].
type Option func(*codecOptions)

// WithNestingLimit overrides [NestingLimit] for one call.
func WithNestingLimit(n int) Option {
	return func(o *codecOptions) { o.nestingLimit = n }
}

// WithIndefiniteLength requests indefinite-length encoding for a
// constructed Element under BER. CER and DER ignore this option, since
// their length form is dictated by the dialect, not the caller.
func WithIndefiniteLength() Option {
	return func(o *codecOptions) { o.indefinite = true }
}

// FromBytes decodes the single TLV frame at the front of buf under
// rule, returning the decoded Element and the number of octets
// consumed. Trailing octets in buf beyond the frame are left unread.
func FromBytes(rule EncodingRule, buf []byte, opts ...Option) (*Element, int, error) {
	cfg := defaultCodecOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return readFrame(buf, rule, 0, cfg.nestingLimit)
}

// readFrame decodes one TLV frame at depth within a nesting chain
// bounded by limit.
func readFrame(buf []byte, rule EncodingRule, depth, limit int) (e *Element, consumed int, err error) {
	if depth > limit {
		err = errRecursion
		return
	}

	class, constructed, tag, idLen, err := readIdentifier(buf)
	if err != nil {
		return
	}

	length, lenLen, err := readLength(buf[idLen:], constructed)
	if err != nil {
		return
	}
	headerLen := idLen + lenLen

	if length >= 0 {
		if rule == DER {
			if derr := checkDERLength(length, lenLen-1); derr != nil {
				err = derr
				return
			}
		}
		if headerLen+length > len(buf) {
			err = newErr(TruncationError, rule, "truncated value content")
			return
		}
		value := append([]byte(nil), buf[headerLen:headerLen+length]...)
		e = &Element{Class: class, Constructed: constructed, Tag: tag, Value: value}
		consumed = headerLen + length
		return
	}

	if !rule.allowsIndefinite() {
		err = errIndefiniteDenied
		return
	}
	debugTLV("indefinite length, class=%d tag=%d depth=%d", class, tag, depth)
	content, n, serr := scanIndefiniteContent(buf[headerLen:], rule, depth, limit)
	if serr != nil {
		err = serr
		return
	}
	e = &Element{Class: class, Constructed: constructed, Tag: tag, Value: append([]byte(nil), content...)}
	consumed = headerLen + n
	return
}

// scanIndefiniteContent consumes child TLV frames from the front of
// buf until it finds an end-of-contents marker not itself nested
// inside a child, per spec §4.1 point 4: a naive byte search for 00 00
// would stop at an EOC belonging to a nested indefinite-length child
// rather than the element currently being read.
func scanIndefiniteContent(buf []byte, rule EncodingRule, depth, limit int) (content []byte, consumed int, err error) {
	pos := 0
	for {
		if pos+2 > len(buf) {
			err = errNoEOC
			return
		}
		if buf[pos] == 0x00 && buf[pos+1] == 0x00 {
			content = buf[:pos]
			consumed = pos + 2
			return
		}
		_, n, cerr := readFrame(buf[pos:], rule, depth+1, limit)
		if cerr != nil {
			err = cerr
			return
		}
		pos += n
	}
}

// ToBytes encodes e under rule, returning the complete TLV octets. For
// a constructed Element, CER always forces indefinite length and DER
// always forces definite minimal length; under BER, [WithIndefiniteLength]
// selects indefinite length and its absence selects definite.
func (e *Element) ToBytes(rule EncodingRule, opts ...Option) ([]byte, error) {
	cfg := defaultCodecOptions()
	for _, o := range opts {
		o(&cfg)
	}

	useIndefinite := false
	if e.Constructed {
		switch {
		case rule.forcesIndefiniteConstructed():
			useIndefinite = true
		case rule.forcesDefiniteMinimal():
			useIndefinite = false
		case cfg.indefinite && rule.allowsIndefinite():
			useIndefinite = true
		}
	}

	dst := writeIdentifier(nil, e.Class, e.Constructed, e.Tag)
	if useIndefinite {
		dst = writeIndefiniteLength(dst)
		dst = append(dst, e.Value...)
		dst = append(dst, eocMarker...)
		return dst, nil
	}
	dst = writeDefiniteLength(dst, len(e.Value))
	dst = append(dst, e.Value...)
	return dst, nil
}

// WrapExplicit returns a new constructed Element in the given class
// and tag, whose content is the complete encoding of e under rule —
// the standard construction for an explicitly-tagged value.
func (e *Element) WrapExplicit(rule EncodingRule, class, tag int) (*Element, error) {
	inner, err := e.ToBytes(rule)
	if err != nil {
		return nil, err
	}
	return NewElement(class, true, tag, inner), nil
}

// Inner decodes and returns the single Element nested inside an
// explicitly-tagged wrapper produced by [Element.WrapExplicit].
func (e *Element) Inner(rule EncodingRule) (*Element, error) {
	inner, n, err := FromBytes(rule, e.Value)
	if err != nil {
		return nil, err
	}
	if n != len(e.Value) {
		return nil, newErr(ConstructionError, rule, "trailing octets after explicitly-tagged inner value")
	}
	return inner, nil
}

// Is reports whether e carries the given UNIVERSAL class tag number.
func (e *Element) Is(tag int) bool {
	return e.Class == ClassUniversal && e.Tag == tag
}

// Encode selects a default UNIVERSAL tag for x from its runtime type and
// encodes it: bool->BOOLEAN, a signed integer->INTEGER, a float->REAL,
// string->UTF8String, nil->NULL, []byte->OCTET STRING, a Sequence or
// *Sequence->SEQUENCE, a Set or *Set->SET, time.Time->GeneralizedTime,
// ObjectIdentifier->OBJECT IDENTIFIER. Grounded on the teacher's
// getTagMethod/marshalPrimitive dispatch in common.go/runtime.go,
// adapted to switch on the Go value directly rather than walking a
// reflect.Value.
func Encode(x any, rule EncodingRule) (*Element, error) {
	switch v := x.(type) {
	case nil:
		return Null{}.ToElement(), nil
	case bool:
		return Boolean(v).ToElement(), nil
	case int:
		return Integer(v).ToElement(), nil
	case int8:
		return Integer(v).ToElement(), nil
	case int16:
		return Integer(v).ToElement(), nil
	case int32:
		return Integer(v).ToElement(), nil
	case int64:
		return Integer(v).ToElement(), nil
	case float32:
		return Real(v).ToElement()
	case float64:
		return Real(v).ToElement()
	case string:
		return UTF8String(v).ToElement(rule)
	case []byte:
		return OctetString(v).ToElement(rule), nil
	case time.Time:
		return GeneralizedTime(v).ToElement(), nil
	case ObjectIdentifier:
		return v.ToElement(), nil
	case Sequence:
		return v.ToElement(rule)
	case *Sequence:
		return v.ToElement(rule)
	case Set:
		return v.ToElement(rule)
	case *Set:
		return v.ToElement(rule)
	default:
		return nil, newErr(GenericError, rule, "no default UNIVERSAL tag for this Go type")
	}
}

// FromSequence drops any nil entry from children (a null-hole left by a
// caller building the slice conditionally) and emits a constructed
// UNIVERSAL SEQUENCE Element wrapping the rest, in order.
func FromSequence(children []*Element, rule EncodingRule, opts ...Option) (*Element, error) {
	seq := &Sequence{}
	for _, c := range children {
		if c != nil {
			seq.Append(c)
		}
	}
	return seq.ToElement(rule, opts...)
}

// FromSet drops any nil entry from children and emits a constructed
// UNIVERSAL SET Element wrapping the rest, canonically ordered under
// CER and DER per [Set.ToElement].
func FromSet(children []*Element, rule EncodingRule, opts ...Option) (*Element, error) {
	set := &Set{}
	for _, c := range children {
		if c != nil {
			set.Append(c)
		}
	}
	return set.ToElement(rule, opts...)
}
