package domain

import "testing"

func TestNormalizeParsesTextualEncodings(t *testing.T) {
	cases := map[string]float64{
		"92,5%": 92.5,
		"92.5%": 92.5,
		"2,31":  2.31,
		"5":     5,
		" 91,0": 91.0,
	}
	rec := Record{}
	for input, expected := range cases {
		rec["stat"] = input
		got, ok := Normalize(rec, "stat")
		if !ok {
			t.Fatalf("expected %q to normalize", input)
		}
		if got != expected {
			t.Fatalf("normalize %q: expected %v, got %v", input, expected, got)
		}
	}
}

func TestNormalizePassesNumbersThrough(t *testing.T) {
	rec := Record{"stat": 91.0}
	got, ok := Normalize(rec, "stat")
	if !ok || got != 91.0 {
		t.Fatalf("expected 91.0, got %v ok=%v", got, ok)
	}
}

func TestNormalizeZeroIsValidAbsentIsNot(t *testing.T) {
	rec := Record{"stat": 0.0}
	if got, ok := Normalize(rec, "stat"); !ok || got != 0 {
		t.Fatalf("numeric zero must be valid, got %v ok=%v", got, ok)
	}
	if _, ok := Normalize(rec, "missing"); ok {
		t.Fatal("absent field must not be valid")
	}
}

func TestNormalizeRejectsNullAndGarbage(t *testing.T) {
	rec := Record{"null": nil, "text": "n/a", "flag": true}
	for _, field := range []string{"null", "text", "flag"} {
		if _, ok := Normalize(rec, field); ok {
			t.Fatalf("field %q should not normalize", field)
		}
	}
}

func TestNormalizeOrDefaultsToZero(t *testing.T) {
	rec := Record{"games": "12"}
	if got := NormalizeOr(rec, "games"); got != 12 {
		t.Fatalf("expected 12, got %v", got)
	}
	if got := NormalizeOr(rec, "gkWins"); got != 0 {
		t.Fatalf("expected 0 for missing field, got %v", got)
	}
}
