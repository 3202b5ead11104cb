package schema

import (
	"errors"
	"testing"

	"github.com/aretw0/coerce/pkg/ident"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		input   string
		want    Form
		wantErr bool
	}{
		{"integer", Pred("integer"), false},
		{"  uuid ", Pred("uuid"), false},
		{"app.preds/int?", Pred("app.preds/int?"), false},
		{"[integer]", CollOf{Elem: Pred("integer")}, false},
		{"[[keyword]]", CollOf{Elem: CollOf{Elem: Pred("keyword")}}, false},
		{"?integer", Nilable{Form: Pred("integer")}, false},
		{"@user/id", Ref{ID: ident.Keyword{Namespace: "user", Name: "id"}}, false},
		{"?@user/id", Nilable{Form: NewRef("user/id")}, false},
		{"and(nat-int, adult)", NewAnd(Pred("nat-int"), Pred("adult")), false},
		{"and(@user/age, or(a, [b]))", NewAnd(NewRef("user/age"), NewOr(Pred("a"), CollOf{Elem: Pred("b")})), false},
		{"", nil, true},
		{"and()", nil, true},
		{"xor(a, b)", nil, true},
		{"and(a, b", nil, true},
		{"and(a], b)", nil, true},
		{"two words", nil, true},
		{"@", nil, true},
		{"[]", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseForm(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseForm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			var formErr *FormError
			if !errors.As(err, &formErr) {
				t.Errorf("ParseForm(%q) error should be *FormError, got %T", tt.input, err)
			}
			continue
		}
		if got.String() != tt.want.String() {
			t.Errorf("ParseForm(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestForm_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"integer",
		"[?uuid]",
		"@http/port",
		"and(int, pos)",
		"or(@a/b, [keyword])",
	}
	for _, in := range inputs {
		f := MustParseForm(in)
		if f.String() != in {
			t.Errorf("String() = %q, want %q", f.String(), in)
		}
	}
}

func TestAnd_Governing(t *testing.T) {
	f, ok := NewAnd(Pred("int"), Pred("pos")).Governing()
	if !ok || f != Pred("int") {
		t.Errorf("Governing() = %v, %v, want int, true", f, ok)
	}
	if _, ok := (And{}).Governing(); ok {
		t.Error("empty conjunction should have no governing form")
	}
}

func TestParseFormMap(t *testing.T) {
	formMap := map[string]string{
		"user/age":  "nat-int",
		"user/tags": "[keyword]",
		"age":       "integer",
	}

	s, err := ParseFormMap(formMap)
	if err != nil {
		t.Fatalf("ParseFormMap() error = %v", err)
	}
	if len(s) != len(formMap) {
		t.Errorf("ParseFormMap() len = %d, want %d", len(s), len(formMap))
	}
	if s[ident.MustKeyword("user/tags")].String() != "[keyword]" {
		t.Error("user/tags should be [keyword]")
	}
	if s[ident.Keyword{Name: "age"}] != Pred("integer") {
		t.Error("age should be integer")
	}
}

func TestParseFormMapErrors(t *testing.T) {
	_, err := ParseFormMap(map[string]string{
		"user/age": "and(",
		"":         "integer",
		"ok/field": "integer",
	})
	if err == nil {
		t.Fatal("ParseFormMap() should return error for invalid entries")
	}
	errs := DefinitionErrors(err)
	if len(errs) != 2 {
		t.Fatalf("DefinitionErrors() = %d errors, want 2", len(errs))
	}
	var defErr *DefinitionError
	if !errors.As(errs[1], &defErr) || defErr.ID != "user/age" {
		t.Errorf("second error should concern user/age, got %v", errs[1])
	}
	if !errors.Is(err, ident.ErrEmptyName) {
		t.Error("aggregate should unwrap to ident.ErrEmptyName")
	}
}
