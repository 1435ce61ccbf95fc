package x690

import "testing"

func TestEnumeratedRoundTrip(t *testing.T) {
	for _, rule := range []EncodingRule{BER, CER, DER} {
		for _, want := range []int64{0, 1, 2, -1, 255} {
			en, err := NewEnumerated(want)
			if err != nil {
				t.Fatalf("NewEnumerated(%d): %v", want, err)
			}
			wire, err := en.ToElement().ToBytes(rule)
			if err != nil {
				t.Fatalf("%s: ToBytes: %v", rule, err)
			}
			e, n, err := FromBytes(rule, wire)
			if err != nil || n != len(wire) {
				t.Fatalf("%s: FromBytes: %v", rule, err)
			}
			got, err := ParseEnumerated(e, rule)
			if err != nil {
				t.Fatalf("%s: ParseEnumerated: %v", rule, err)
			}
			if int64(got) != want {
				t.Errorf("%s: got %d, want %d", rule, got, want)
			}
		}
	}
}

func TestEnumeratedTagDistinctFromInteger(t *testing.T) {
	e := Enumerated(5).ToElement()
	if e.Tag == TagInteger {
		t.Error("ENUMERATED must not share INTEGER's tag")
	}
	if e.Tag != TagEnumerated {
		t.Errorf("got tag %d, want %d", e.Tag, TagEnumerated)
	}
}
