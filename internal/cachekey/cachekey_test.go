package cachekey

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDeriveDeterministicAcrossKeyOrder(t *testing.T) {
	a := map[string]interface{}{
		"role":       "finance",
		"experience": "5-8",
		"answers":    map[string]interface{}{"b": "2", "a": "1"},
	}
	// Same pairs, different insertion order via JSON round trip.
	var b map[string]interface{}
	if err := json.Unmarshal([]byte(`{"answers":{"a":"1","b":"2"},"experience":"5-8","role":"finance"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ka, err := Derive(a, "gpt-4o")
	if err != nil {
		t.Fatalf("derive a: %v", err)
	}
	kb, err := Derive(b, "gpt-4o")
	if err != nil {
		t.Fatalf("derive b: %v", err)
	}
	if ka != kb {
		t.Fatalf("keys differ for equal payloads: %s vs %s", ka, kb)
	}
}

func TestDeriveNumericRepresentations(t *testing.T) {
	a := map[string]interface{}{"score": float64(10)}
	b := map[string]interface{}{"score": 10.0}
	var c map[string]interface{}
	if err := json.Unmarshal([]byte(`{"score":10}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var d map[string]interface{}
	if err := json.Unmarshal([]byte(`{"score":10.0}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want, err := Derive(a, "m")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	for i, payload := range []interface{}{b, c, d} {
		got, err := Derive(payload, "m")
		if err != nil {
			t.Fatalf("derive #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("payload #%d hashed to %s, want %s", i, got, want)
		}
	}
}

func TestDeriveModelDiscrimination(t *testing.T) {
	payload := map[string]interface{}{"role": "sales"}

	k1, err := Derive(payload, "gpt-4o")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := Derive(payload, "gpt-4o-mini")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if k1 == k2 {
		t.Fatal("distinct models produced the same key")
	}
}

func TestDeriveFixedWidth(t *testing.T) {
	k, err := Derive(map[string]interface{}{"a": 1}, "m")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(k) != 64 {
		t.Fatalf("key length = %d, want 64", len(k))
	}
	if strings.ToLower(k) != k {
		t.Fatalf("key is not lowercase hex: %s", k)
	}
}

func TestSubmissionHash(t *testing.T) {
	a := map[string]interface{}{"targetRole": "pm", "timeline": "6m"}
	b := map[string]interface{}{"timeline": "6m", "targetRole": "pm"}

	ha, err := SubmissionHash(a)
	if err != nil {
		t.Fatalf("hash a: %v", err)
	}
	hb, err := SubmissionHash(b)
	if err != nil {
		t.Fatalf("hash b: %v", err)
	}
	if ha != hb {
		t.Fatalf("submission hashes differ: %s vs %s", ha, hb)
	}
	if len(ha) != 16 {
		t.Fatalf("submission hash length = %d, want 16", len(ha))
	}

	hc, err := SubmissionHash(map[string]interface{}{"targetRole": "pm", "timeline": "12m"})
	if err != nil {
		t.Fatalf("hash c: %v", err)
	}
	if hc == ha {
		t.Fatal("different submissions hashed identically")
	}
}

func TestCanonicalizeCompactForm(t *testing.T) {
	got, err := Canonicalize(map[string]interface{}{
		"b": []interface{}{1, "two", nil},
		"a": map[string]interface{}{"y": true, "x": 1.5},
	})
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	want := `{"a":{"x":1.5,"y":true},"b":[1,"two",null]}`
	if string(got) != want {
		t.Fatalf("canonical form = %s, want %s", got, want)
	}
}

func TestCanonicalizeStructAndMapAgree(t *testing.T) {
	type req struct {
		Role string `json:"role"`
		Exp  string `json:"experience"`
	}
	fromStruct, err := Canonicalize(req{Role: "founder", Exp: "12+"})
	if err != nil {
		t.Fatalf("canonicalize struct: %v", err)
	}
	fromMap, err := Canonicalize(map[string]string{"experience": "12+", "role": "founder"})
	if err != nil {
		t.Fatalf("canonicalize map: %v", err)
	}
	if string(fromStruct) != string(fromMap) {
		t.Fatalf("struct and map canonical forms differ: %s vs %s", fromStruct, fromMap)
	}
}
