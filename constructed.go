package x690

/*
constructed.go implements component C4: reassembling a constructed,
fragmented restricted-string value on decode, and fragmenting a long
value into CER's mandatory constructed form on encode. Grounded on the
teacher's cerSegmentedOctetStringRead/Write (cer_on.go), generalized
here from OCTET STRING alone to every restricted string type, per
spec §4.4 and ITU-T X.690 clause 9.13.
*/

// Deconstruct returns the logical content octets of e, reassembling
// them from constructed child fragments if e is constructed. A
// primitive e returns its Value unchanged.
func (e *Element) Deconstruct(rule EncodingRule, opts ...Option) ([]byte, error) {
	cfg := defaultCodecOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return deconstruct(e, rule, 0, cfg.nestingLimit)
}

func deconstruct(e *Element, rule EncodingRule, depth, limit int) ([]byte, error) {
	if !e.Constructed {
		return e.Value, nil
	}
	if depth >= limit {
		return nil, errRecursion
	}
	if !isRestrictedStringTag(e.Tag) {
		return nil, errConstruction
	}
	if e.Tag == TagBitString {
		return deconstructBitString(e, rule, depth, limit)
	}

	out := make([]byte, 0, len(e.Value))
	pos := 0
	for pos < len(e.Value) {
		child, n, err := readFrame(e.Value[pos:], rule, depth+1, limit)
		if err != nil {
			return nil, err
		}
		if child.Class != e.Class || child.Tag != e.Tag {
			return nil, errConstruction
		}
		seg, err := deconstruct(child, rule, depth+1, limit)
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
		pos += n
	}
	return out, nil
}

// deconstructBitString reassembles a constructed BIT STRING, honoring
// the rule that only the final fragment may declare nonzero unused
// trailing bits; every earlier fragment must be byte-aligned.
func deconstructBitString(e *Element, rule EncodingRule, depth, limit int) ([]byte, error) {
	var bits []byte
	var unused byte
	pos := 0
	for pos < len(e.Value) {
		child, n, err := readFrame(e.Value[pos:], rule, depth+1, limit)
		if err != nil {
			return nil, err
		}
		if child.Class != e.Class || child.Tag != e.Tag {
			return nil, errConstruction
		}
		seg, err := deconstruct(child, rule, depth+1, limit)
		if err != nil {
			return nil, err
		}
		if len(seg) == 0 {
			return nil, newErr(SizeError, rule, "empty BIT STRING fragment")
		}
		pos += n
		if pos < len(e.Value) && seg[0] != 0x00 {
			return nil, newErr(PaddingError, rule, "non-final BIT STRING fragment has nonzero unused bits")
		}
		unused = seg[0]
		bits = append(bits, seg[1:]...)
	}
	return append([]byte{unused}, bits...), nil
}

// BuildFragmentable returns the Element encoding value under tag in
// the given class, fragmenting it into CER's mandatory constructed,
// indefinite-length, 1000-octet-segment form when rule requires it.
// Under BER and DER the value is always returned as a primitive
// Element.
func BuildFragmentable(rule EncodingRule, class, tag int, value []byte) *Element {
	if rule.fragmentsStrings() && len(value) > cerFragmentSize {
		debugCodec("fragmenting tag %d, %d octets", tag, len(value))
		return fragmentElement(class, tag, value)
	}
	return NewElement(class, false, tag, value)
}

func fragmentElement(class, tag int, value []byte) *Element {
	var children []byte
	appendFragment := func(segValue []byte) {
		frag := NewElement(class, false, tag, segValue)
		enc, _ := frag.ToBytes(CER)
		children = append(children, enc...)
	}

	if tag == TagBitString {
		unused := value[0]
		content := value[1:]
		for len(content) > cerFragmentSize-1 {
			appendFragment(append([]byte{0x00}, content[:cerFragmentSize-1]...))
			content = content[cerFragmentSize-1:]
		}
		appendFragment(append([]byte{unused}, content...))
	} else {
		for len(value) > cerFragmentSize {
			appendFragment(value[:cerFragmentSize])
			value = value[cerFragmentSize:]
		}
		appendFragment(value)
	}

	return NewElement(class, true, tag, children)
}
