package x690

import "testing"

func TestSetCanonicalOrderingUnderDER(t *testing.T) {
	set := (&Set{}).
		Append(Universal(TagOctetString, false, []byte("x"))).
		Append(Universal(TagBoolean, false, []byte{0xFF})).
		Append(Universal(TagInteger, false, []byte{0x01}))

	el, err := set.ToElement(DER)
	if err != nil {
		t.Fatal(err)
	}

	wire, err := el.ToBytes(DER)
	if err != nil {
		t.Fatal(err)
	}
	decoded, n, err := FromBytes(DER, wire)
	if err != nil || n != len(wire) {
		t.Fatalf("FromBytes: %v", err)
	}
	got, err := ParseSet(decoded, DER)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []int{TagBoolean, TagInteger, TagOctetString}
	for i, tag := range wantOrder {
		if got.Elements[i].Tag != tag {
			t.Errorf("position %d: got tag %d, want %d", i, got.Elements[i].Tag, tag)
		}
	}
}

func TestSetPreservesInsertionOrderUnderBER(t *testing.T) {
	set := (&Set{}).
		Append(Universal(TagOctetString, false, []byte("x"))).
		Append(Universal(TagBoolean, false, []byte{0xFF}))

	el, err := set.ToElement(BER)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseSet(el, BER)
	if err != nil {
		t.Fatal(err)
	}
	if got.Elements[0].Tag != TagOctetString || got.Elements[1].Tag != TagBoolean {
		t.Errorf("BER must preserve insertion order, got %+v", got.Elements)
	}
}
