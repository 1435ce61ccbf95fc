package x690

import "testing"

func TestIntegerRoundTrip(t *testing.T) {
	for _, rule := range []EncodingRule{BER, CER, DER} {
		for _, want := range []int64{0, 1, -1, 127, -128, 128, 32767, -32768, 1 << 40, -(1 << 40)} {
			i, err := NewInteger(want)
			if err != nil {
				t.Fatalf("NewInteger(%d): %v", want, err)
			}
			wire, err := i.ToElement().ToBytes(rule)
			if err != nil {
				t.Fatalf("%s: ToBytes(%d): %v", rule, want, err)
			}
			e, n, err := FromBytes(rule, wire)
			if err != nil || n != len(wire) {
				t.Fatalf("%s: FromBytes(%d): %v (consumed %d/%d)", rule, want, err, n, len(wire))
			}
			got, err := ParseInteger(e, rule)
			if err != nil {
				t.Fatalf("%s: ParseInteger(%d): %v", rule, want, err)
			}
			if int64(got) != want {
				t.Errorf("%s: got %d, want %d", rule, got, want)
			}
		}
	}
}

func TestIntegerMinimalEncoding(t *testing.T) {
	cases := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{-128, []byte{0x80}},
		{32767, []byte{0x7F, 0xFF}},
		{-32768, []byte{0x80, 0x00}},
	}
	for _, c := range cases {
		got := encodeTwosComplement(c.v)
		if string(got) != string(c.want) {
			t.Errorf("encodeTwosComplement(%d) = % X, want % X", c.v, got, c.want)
		}
	}
}

func TestIntegerDERRejectsNonMinimal(t *testing.T) {
	wire := []byte{0x02, 0x02, 0x00, 0x01}
	e, _, err := FromBytes(DER, wire)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseInteger(e, DER); err == nil {
		t.Error("expected DER to reject a non-minimal INTEGER encoding")
	}
	if _, err := ParseInteger(e, BER); err != nil {
		t.Errorf("BER should accept a non-minimal INTEGER encoding: %v", err)
	}
}

func TestIntegerAs(t *testing.T) {
	i := Integer(200)
	if _, err := IntegerAs[int8](i); err == nil {
		t.Error("expected overflow narrowing 200 into int8")
	}
	v, err := IntegerAs[int32](i)
	if err != nil || v != 200 {
		t.Errorf("IntegerAs[int32](200) = %v, %v", v, err)
	}
}
