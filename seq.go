package x690

/*
seq.go implements the ASN.1 SEQUENCE type, per spec §4.2 and ITU-T
X.690 clause 8.9. The teacher builds SEQUENCE by reflecting over a
tagged Go struct; that machinery is out of this package's scope (see
SPEC_FULL.md §1), so Sequence here is a plain ordered slice of
*Element children, each of which a caller has already produced from
its own typed value.
*/

// Sequence implements the ASN.1 SEQUENCE type: an ordered collection
// of elements, encoding order preserved.
type Sequence struct {
	Elements []*Element
}

// Tag returns TagSequence.
func (Sequence) Tag() int { return TagSequence }

// Append adds e to the end of the receiver's element list and returns
// the receiver, for chained construction.
func (r *Sequence) Append(e *Element) *Sequence {
	r.Elements = append(r.Elements, e)
	return r
}

// ToElement encodes the receiver as a constructed UNIVERSAL SEQUENCE
// Element whose content is its children's encodings in order.
func (r *Sequence) ToElement(rule EncodingRule, opts ...Option) (*Element, error) {
	var content []byte
	for _, child := range r.Elements {
		b, err := child.ToBytes(rule, opts...)
		if err != nil {
			return nil, err
		}
		content = append(content, b...)
	}
	return Universal(TagSequence, true, content), nil
}

// ParseSequence decodes e, previously read under rule, as a SEQUENCE,
// recursively decoding each child TLV frame.
func ParseSequence(e *Element, rule EncodingRule, opts ...Option) (*Sequence, error) {
	if !e.Constructed {
		return nil, newErr(ConstructionError, rule, "SEQUENCE must be constructed")
	}
	cfg := defaultCodecOptions()
	for _, o := range opts {
		o(&cfg)
	}
	children, err := readChildren(e.Value, rule, cfg.nestingLimit)
	if err != nil {
		return nil, err
	}
	return &Sequence{Elements: children}, nil
}

// readChildren decodes every TLV frame in buf in order, used by both
// SEQUENCE and SET decoding.
func readChildren(buf []byte, rule EncodingRule, limit int) ([]*Element, error) {
	var children []*Element
	pos := 0
	for pos < len(buf) {
		child, n, err := readFrame(buf[pos:], rule, 1, limit)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		pos += n
	}
	return children, nil
}
