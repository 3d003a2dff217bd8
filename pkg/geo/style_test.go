package geo

import "testing"

func TestDarkMapStyle(t *testing.T) {
	rules := DarkMapStyle()
	if len(rules) != 16 {
		t.Fatalf("expected 16 rules, got %d", len(rules))
	}

	// The sheet opens with the base geometry rule and closes with the water
	// label rule. Order is part of the contract.
	if rules[0].ElementType != "geometry" || rules[0].Stylers[0].Color != "#242f3e" {
		t.Fatalf("unexpected first rule: %+v", rules[0])
	}
	last := rules[len(rules)-1]
	if last.FeatureType != "water" || last.ElementType != "labels.text.fill" {
		t.Fatalf("unexpected last rule: %+v", last)
	}
}

func TestDarkMapStyle_ReturnsCopy(t *testing.T) {
	first := DarkMapStyle()
	first[0].ElementType = "mutated"

	second := DarkMapStyle()
	if second[0].ElementType == "mutated" {
		t.Fatalf("callers must not be able to mutate the canonical sheet")
	}
}
