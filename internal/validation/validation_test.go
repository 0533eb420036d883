package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"petshop/catalog/internal/domain"
)

func TestValidate_CategoryNameBounds(t *testing.T) {
	engine := New()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "    ", wantErr: true},
		{name: "one char", input: "A", wantErr: true},
		{name: "one char padded", input: "  A  ", wantErr: true},
		{name: "two chars", input: "Ab", wantErr: false},
		{name: "hundred chars", input: strings.Repeat("x", 100), wantErr: false},
		{name: "hundred and one chars", input: strings.Repeat("x", 101), wantErr: true},
		{name: "multibyte counted as characters", input: strings.Repeat("đ", 100), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := engine.Validate(domain.CategoryDraft{CategoryName: tt.input, Status: true})
			if tt.wantErr {
				assert.Contains(t, errs, "categoryName")
			} else {
				assert.True(t, errs.OK(), errs.Error())
			}
		})
	}
}

func TestValidate_CategoryMessages(t *testing.T) {
	engine := New()

	errs := engine.Validate(domain.CategoryDraft{CategoryName: " "})
	assert.Equal(t, "Category name is required", errs["categoryName"])

	errs = engine.Validate(domain.CategoryDraft{CategoryName: "A"})
	assert.Equal(t, "Category name must be at least 2 characters", errs["categoryName"])

	errs = engine.Validate(domain.CategoryDraft{CategoryName: "Dog Food", Description: strings.Repeat("d", 501)})
	assert.Equal(t, FieldErrors{"description": "Description must not exceed 500 characters"}, errs)
}

func TestValidate_SizeNameBounds(t *testing.T) {
	engine := New()

	for _, n := range []int{1, 49, 50} {
		errs := engine.Validate(domain.SizeDraft{SizeName: strings.Repeat("s", n)})
		assert.True(t, errs.OK(), "length %d: %v", n, errs)
	}
	for _, n := range []int{0, 51, 200} {
		errs := engine.Validate(domain.SizeDraft{SizeName: strings.Repeat("s", n)})
		assert.Contains(t, errs, "sizeName", "length %d", n)
	}
}

func TestValidate_DisplayOrder(t *testing.T) {
	engine := New()

	valid := []string{"", "0", "1", "999", " 42 ", "   "}
	for _, v := range valid {
		errs := engine.Validate(domain.SizeDraft{SizeName: "M", DisplayOrder: v})
		assert.True(t, errs.OK(), "displayOrder %q: %v", v, errs)
	}

	invalid := []string{"-1", "1000", "abc", "1.5", "12a", "1e3"}
	for _, v := range invalid {
		errs := engine.Validate(domain.SizeDraft{SizeName: "M", DisplayOrder: v})
		assert.Equal(t, "Display order must be a number from 0 to 999", errs["displayOrder"], "displayOrder %q", v)
	}
}

func TestValidate_SizeValueAndUnit(t *testing.T) {
	engine := New()

	errs := engine.Validate(domain.SizeDraft{
		SizeName: "Bag",
		Value:    strings.Repeat("9", 21),
		Unit:     domain.Unit("kg"),
	})
	assert.Equal(t, []string{"unit", "value"}, errs.Fields())

	errs = engine.Validate(domain.SizeDraft{SizeName: "Bag", Value: "500", Unit: domain.UnitWeight})
	assert.True(t, errs.OK())
}

func TestValidate_MultipleFieldsIndependent(t *testing.T) {
	engine := New()

	errs := engine.Validate(domain.SizeDraft{
		SizeName:     "",
		Description:  strings.Repeat("d", 600),
		DisplayOrder: "x",
	})
	assert.Len(t, errs, 3)

	cleared := errs.Clear("sizeName")
	assert.NotContains(t, cleared, "sizeName")
	assert.Contains(t, cleared, "description")
	assert.Contains(t, cleared, "displayOrder")
	assert.Contains(t, errs, "sizeName", "Clear must not mutate the receiver")

	assert.Equal(t, cleared, cleared.Clear("missing"))
}

func TestFieldErrors_ClearAbsentFieldCopies(t *testing.T) {
	errs := FieldErrors{"sizeName": "Size name is required"}

	out := errs.Clear("value")
	assert.Equal(t, errs, out)

	out["value"] = "edited"
	delete(out, "sizeName")
	assert.Equal(t, FieldErrors{"sizeName": "Size name is required"}, errs)
}

func TestValidate_Deterministic(t *testing.T) {
	engine := New()
	draft := domain.SizeDraft{SizeName: "", Value: strings.Repeat("v", 30)}

	first := engine.Validate(draft)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Validate(draft))
	}
}
