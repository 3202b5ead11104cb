package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/coerce/pkg/ident"
)

func TestSchema_JSON(t *testing.T) {
	s := Schema{
		ident.MustKeyword("user/age"): NewAnd(Pred("nat-int"), Pred("adult")),
		ident.MustKeyword("user/ids"): CollOf{Elem: Pred("uuid")},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user/age":"and(nat-int, adult)","user/ids":"[uuid]"}`, string(data))

	var back Schema
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestSchema_JSONNull(t *testing.T) {
	var s Schema
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	s = Schema{}
	require.NoError(t, json.Unmarshal([]byte("null"), &s))
	assert.Nil(t, s)
}

func TestSchema_JSONInvalid(t *testing.T) {
	var s Schema
	assert.Error(t, json.Unmarshal([]byte(`{"a/b": 1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a/b": "and("}`), &s))
}
