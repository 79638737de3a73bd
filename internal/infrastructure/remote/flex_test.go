package remote

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	var v struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"75012","b":75012,"c":null}`), &v))

	assert.Equal(t, "75012", v.A.String())
	assert.Equal(t, "75012", v.B.String())
	assert.Equal(t, "", v.C.String())

	assert.Error(t, json.Unmarshal([]byte(`{"a":{}}`), &v))
}
