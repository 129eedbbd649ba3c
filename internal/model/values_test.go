package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		wantValid bool
		wantErr   bool
	}{
		{name: "number", input: `52000.5`, want: 52000.5, wantValid: true},
		{name: "numeric string", input: `"89.3"`, want: 89.3, wantValid: true},
		{name: "null", input: `null`},
		{name: "blank string", input: `"  "`},
		{name: "free text string", input: `"暂无"`},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, n.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.want, n.Value, 1e-9)
			}
		})
	}
}

func TestNumber_Finite(t *testing.T) {
	assert.True(t, Num(1).Finite())
	assert.False(t, Number{}.Finite())
	assert.False(t, Num(math.NaN()).Finite())
	assert.False(t, Num(math.Inf(1)).Finite())
	assert.Nil(t, Num(math.Inf(-1)).Ptr())
	require.NotNil(t, Num(3).Ptr())
	assert.Equal(t, 3.0, *Num(3).Ptr())
}

func TestText_UnmarshalJSON(t *testing.T) {
	var l struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"朝阳","b":1998,"c":null,"d":true}`), &l))
	assert.Equal(t, "朝阳", l.A.String())
	assert.Equal(t, "1998", l.B.String())
	assert.True(t, l.C.Empty())
	assert.Equal(t, "true", l.D.String())

	var bad Text
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &bad))
}
