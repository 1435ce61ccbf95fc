package x690

import "testing"

func TestEncodeDefaultTagDispatch(t *testing.T) {
	cases := []struct {
		name string
		in   any
		tag  int
	}{
		{"bool", true, TagBoolean},
		{"int", 7, TagInteger},
		{"float64", 1.5, TagReal},
		{"string", "hi", TagUTF8String},
		{"nil", nil, TagNull},
		{"bytes", []byte("x"), TagOctetString},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Encode(c.in, BER)
			if err != nil {
				t.Fatal(err)
			}
			if e.Tag != c.tag {
				t.Errorf("got tag %d, want %d", e.Tag, c.tag)
			}
		})
	}
}

func TestEncodeRejectsUndispatchableType(t *testing.T) {
	if _, err := Encode(struct{}{}, BER); err == nil {
		t.Error("expected an unrecognized Go type to fail")
	}
}

func TestFromSequenceDropsNullHoles(t *testing.T) {
	el, err := FromSequence([]*Element{
		Integer(1).ToElement(),
		nil,
		Boolean(true).ToElement(),
	}, BER)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseSequence(el, BER)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Elements) != 2 {
		t.Fatalf("got %d elements, want 2 (nil hole dropped)", len(got.Elements))
	}
}

func TestFromSetDropsNullHolesAndOrdersUnderDER(t *testing.T) {
	el, err := FromSet([]*Element{
		OctetString("x").ToElement(BER),
		nil,
		Boolean(true).ToElement(),
	}, DER)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseSet(el, DER)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Elements) != 2 {
		t.Fatalf("got %d elements, want 2 (nil hole dropped)", len(got.Elements))
	}
	if got.Elements[0].Tag != TagBoolean {
		t.Errorf("expected canonical DER ordering to place BOOLEAN first, got tag %d", got.Elements[0].Tag)
	}
}
