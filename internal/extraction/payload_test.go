package extraction

import (
	"errors"
	"testing"
)

func TestDecodeStripsFences(t *testing.T) {
	p, err := Decode("```json\n{\"quantity\": 120, \"palletized\": true}\n```")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n, ok := p.Int("quantity"); !ok || n != 120 {
		t.Fatalf("quantity=%v ok=%v", n, ok)
	}
	if b, ok := p.Bool("palletized"); !ok || !b {
		t.Fatalf("palletized=%v ok=%v", b, ok)
	}
}

func TestDecodeEmptyAndMalformed(t *testing.T) {
	p, err := Decode("   ")
	if err != nil || !p.Empty() {
		t.Fatalf("empty reply: err=%v empty=%v", err, p.Empty())
	}
	p, err = Decode("Sorry, I cannot help with that.")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v", err)
	}
	if !p.Empty() {
		t.Fatalf("malformed payload should be empty")
	}
	if _, err := Decode(`[1, 2]`); !errors.Is(err, ErrMalformed) {
		t.Fatalf("array err=%v", err)
	}
}

func TestCandidatePaths(t *testing.T) {
	p, err := Decode(`{
		"miles_to_travel": "62 miles",
		"origin": "",
		"drayage": {"miles": null, "origin_city": "Long Beach", "invoice": {"chassis_days": 3}}
	}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m, ok := p.Float("drayage.miles", "drayage.miles_to_travel", "miles_to_travel"); !ok || m != 62 {
		t.Fatalf("miles=%v ok=%v", m, ok)
	}
	if o, ok := p.String("drayage.origin", "drayage.origin_city", "origin"); !ok || o != "Long Beach" {
		t.Fatalf("origin=%q ok=%v", o, ok)
	}
	if d, ok := p.Float("drayage.chassis_days", "drayage.invoice.chassis_days"); !ok || d != 3 {
		t.Fatalf("chassis days=%v ok=%v", d, ok)
	}
	if _, ok := p.String("origin"); ok {
		t.Fatalf("empty string should be absent")
	}
	if _, ok := p.Float("drayage.origin_city.deeper"); ok {
		t.Fatalf("path through a string should be absent")
	}
}

func TestFloatSkipsUnparseableCandidates(t *testing.T) {
	p := New(map[string]any{"a": "n/a", "b": 7.5})
	if f, ok := p.Float("a", "b"); !ok || f != 7.5 {
		t.Fatalf("f=%v ok=%v", f, ok)
	}
}

func TestBoolCoercion(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, false},
		{"Yes", true},
		{" y ", true},
		{"on", true},
		{"no", false},
		{"maybe", false},
		{float64(1), true},
		{float64(0), false},
	}
	for _, c := range cases {
		got, ok := New(map[string]any{"v": c.value}).Bool("v")
		if !ok || got != c.want {
			t.Fatalf("value=%v got=%v ok=%v", c.value, got, ok)
		}
	}
	if _, ok := New(nil).Bool("v"); ok {
		t.Fatalf("missing bool should be absent")
	}
}

func TestHasObject(t *testing.T) {
	p, _ := Decode(`{"drayage": {"miles": null, "origin": null}, "other": {"x": 1}, "flat": 3}`)
	if p.HasObject("drayage") {
		t.Fatalf("all-null object should not count")
	}
	if !p.HasObject("other") {
		t.Fatalf("object with a value should count")
	}
	if p.HasObject("flat") || p.HasObject("missing") {
		t.Fatalf("non-objects should not count")
	}
}
