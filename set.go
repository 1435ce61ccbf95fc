package x690

/*
set.go implements the ASN.1 SET type, per spec §4.2 and ITU-T X.690
clause 8.11. Shares its children-decoding core with seq.go; differs
from Sequence only in that CER and DER require canonical (by-tag)
element ordering on encode.
*/

import "sort"

// Set implements the ASN.1 SET type: an unordered collection of
// elements, canonically ordered by (Class, Tag) on encode under CER
// and DER.
type Set struct {
	Elements []*Element
}

// Tag returns TagSet.
func (Set) Tag() int { return TagSet }

// Append adds e to the receiver's element list and returns the
// receiver, for chained construction.
func (r *Set) Append(e *Element) *Set {
	r.Elements = append(r.Elements, e)
	return r
}

// ToElement encodes the receiver as a constructed UNIVERSAL SET
// Element. Under CER and DER, children are sorted by (Class, Tag)
// before encoding; under BER, insertion order is preserved.
func (r *Set) ToElement(rule EncodingRule, opts ...Option) (*Element, error) {
	elems := r.Elements
	if rule.setCanonicalOrder() {
		elems = append([]*Element(nil), elems...)
		sort.SliceStable(elems, func(i, j int) bool {
			if elems[i].Class != elems[j].Class {
				return elems[i].Class < elems[j].Class
			}
			return elems[i].Tag < elems[j].Tag
		})
	}
	var content []byte
	for _, child := range elems {
		b, err := child.ToBytes(rule, opts...)
		if err != nil {
			return nil, err
		}
		content = append(content, b...)
	}
	return Universal(TagSet, true, content), nil
}

// ParseSet decodes e, previously read under rule, as a SET,
// recursively decoding each child TLV frame.
func ParseSet(e *Element, rule EncodingRule, opts ...Option) (*Set, error) {
	if !e.Constructed {
		return nil, newErr(ConstructionError, rule, "SET must be constructed")
	}
	cfg := defaultCodecOptions()
	for _, o := range opts {
		o(&cfg)
	}
	children, err := readChildren(e.Value, rule, cfg.nestingLimit)
	if err != nil {
		return nil, err
	}
	return &Set{Elements: children}, nil
}
