package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositional_MarshalJSON(t *testing.T) {
	cases := []struct {
		name      string
		positions []int
		want      string
	}{
		{"empty", nil, `[]`},
		{"contiguous", []int{0, 1, 2}, `["p0","p1","p2"]`},
		{"gap", []int{0, 2, 3}, `{"0":"p0","2":"p2","3":"p3"}`},
		{"not from zero", []int{1}, `{"1":"p1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Positional[string]
			for _, pos := range tc.positions {
				p.Add(pos, "p"+string(rune('0'+pos)))
			}

			data, err := json.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestPositional_KeepsOrderInObject(t *testing.T) {
	var p Positional[int]
	p.Add(3, 30)
	p.Add(10, 100)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"3":30,"10":100}`, string(data))
}

func TestPositional_OmitEmpty(t *testing.T) {
	type holder struct {
		Items Positional[int] `json:"items,omitempty"`
	}

	data, err := json.Marshal(holder{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPositional_Accessors(t *testing.T) {
	var p Positional[string]
	p.Add(0, "a")
	p.Add(2, "c")

	assert.Equal(t, []string{"a", "c"}, p.Values())
	assert.False(t, p.IsList())

	v, ok := p.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = p.Get(1)
	assert.False(t, ok)
}
