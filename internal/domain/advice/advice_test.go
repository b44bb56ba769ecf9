package advice

import (
	"errors"
	"strings"
	"testing"

	"workout/internal/domain/bmi"
)

// TestFor_AllCategories tests that every category has deterministic, non-empty advice.
func TestFor_AllCategories(t *testing.T) {
	for _, c := range bmi.Categories {
		first, err := For(c)
		if err != nil {
			t.Fatalf("For(%s) error: %v", c, err)
		}
		if strings.TrimSpace(first) == "" {
			t.Errorf("For(%s) returned empty text", c)
		}
		second, _ := For(c)
		if first != second {
			t.Errorf("For(%s) not deterministic", c)
		}
	}
}

// TestFor_UnderweightMentionsUnderweight tests the underweight wording.
func TestFor_UnderweightMentionsUnderweight(t *testing.T) {
	text, err := For(bmi.CategoryUnderweight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "underweight") {
		t.Errorf("expected advice to mention underweight, got %q", text)
	}
	if len(Lines(text)) != 4 {
		t.Errorf("expected 4 lines, got %d", len(Lines(text)))
	}
}

// TestFor_UnknownCategory covers values outside the four categories.
func TestFor_UnknownCategory(t *testing.T) {
	_, err := For(bmi.Category("Athletic"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

// TestCheckComplete tests the init-time completeness check.
func TestCheckComplete(t *testing.T) {
	if err := checkComplete(table); err != nil {
		t.Fatalf("built-in table incomplete: %v", err)
	}

	missing := map[bmi.Category]string{
		bmi.CategoryUnderweight: "a",
		bmi.CategoryNormal:      "b",
		bmi.CategoryOverweight:  "c",
	}
	if err := checkComplete(missing); err == nil {
		t.Error("expected error for missing category")
	}

	extra := map[bmi.Category]string{
		bmi.CategoryUnderweight: "a",
		bmi.CategoryNormal:      "b",
		bmi.CategoryOverweight:  "c",
		bmi.CategoryObesity:     "d",
		bmi.Category("Other"):   "e",
	}
	if err := checkComplete(extra); err == nil {
		t.Error("expected error for extra category")
	}
}
