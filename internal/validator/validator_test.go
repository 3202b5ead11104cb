package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

func TestValidateSchemas(t *testing.T) {
	// 1. Valid registry
	valid := schema.NewRegistry().
		MustDefine("user/id", schema.Pred("uuid")).
		MustDefine("app/owner", schema.NewAnd(schema.NewRef("user/id"), schema.Pred("owner?"))).
		MustDefine("app/owners", schema.CollOf{Elem: schema.NewRef("app/owner")})
	valid.DefineParent(ident.MustKeyword("app/owner"), ident.MustKeyword("user/id"))

	if err := ValidateSchemas(valid); err != nil {
		t.Errorf("Valid registry failed: %v", err)
	}

	// 2. Broken reference and parent
	broken := schema.NewRegistry().
		MustDefine("app/owner", schema.Nilable{Form: schema.NewRef("ghost/id")})
	broken.DefineParent(ident.MustKeyword("app/owner"), ident.MustKeyword("ghost/parent"))

	err := ValidateSchemas(broken)
	if err == nil {
		t.Fatal("Broken registry should have failed, but got nil")
	}
	if !strings.Contains(err.Error(), "Missing schema: 'ghost/id'") {
		t.Errorf("Expected 'Missing schema' error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "Missing parent: 'ghost/parent'") {
		t.Errorf("Expected 'Missing parent' error, got: %v", err)
	}

	// 3. Cycle
	loop := schema.NewRegistry().
		MustDefine("a/x", schema.NewRef("a/y")).
		MustDefine("a/y", schema.NewAnd(schema.NewRef("a/x"), schema.Pred("pos-int")))

	err = ValidateSchemas(loop)
	if err == nil {
		t.Fatal("Cyclic registry should have failed, but got nil")
	}
	if !strings.Contains(err.Error(), "a/x -> a/y -> a/x") {
		t.Errorf("Expected cycle path, got: %v", err)
	}
	if !strings.Contains(err.Error(), "found 2 errors") {
		t.Errorf("Expected one cycle per member, got: %v", err)
	}
}
