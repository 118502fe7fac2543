package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetArea_UnmarshalBothShapes(t *testing.T) {
	var single, multi, none Exercise
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"targetArea":"knee"}`), &single))
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"targetArea":["knee","hip"]}`), &multi))
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"targetArea":null}`), &none))

	assert.False(t, single.TargetArea.IsMultiple())
	assert.Equal(t, []string{"knee"}, single.TargetArea.Areas())
	assert.True(t, multi.TargetArea.IsMultiple())
	assert.Equal(t, []string{"knee", "hip"}, multi.TargetArea.Areas())
	assert.True(t, none.TargetArea.IsZero())

	var bad Exercise
	assert.Error(t, json.Unmarshal([]byte(`{"targetArea":42}`), &bad))
}

func TestTargetArea_MarshalKeepsShape(t *testing.T) {
	out, err := json.Marshal(SingleArea("knee"))
	require.NoError(t, err)
	assert.JSONEq(t, `"knee"`, string(out))

	out, err = json.Marshal(MultipleAreas("knee", "hip"))
	require.NoError(t, err)
	assert.JSONEq(t, `["knee","hip"]`, string(out))

	out, err = json.Marshal(TargetArea{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTargetArea_Matches(t *testing.T) {
	tests := []struct {
		name   string
		stored TargetArea
		query  TargetArea
		want   bool
	}{
		{"single equals single", SingleArea("knee"), SingleArea("knee"), true},
		{"single differs", SingleArea("knee"), SingleArea("hip"), false},
		{"single within query list", SingleArea("knee"), MultipleAreas("knee", "hip"), true},
		{"single outside query list", SingleArea("neck"), MultipleAreas("knee", "hip"), false},
		{"list contains query", MultipleAreas("knee", "hip"), SingleArea("hip"), true},
		{"list misses query", MultipleAreas("knee", "hip"), SingleArea("neck"), false},
		{"lists intersect", MultipleAreas("knee", "hip"), MultipleAreas("hip", "back"), true},
		{"lists disjoint", MultipleAreas("knee"), MultipleAreas("back"), false},
		{"empty query", SingleArea("knee"), TargetArea{}, false},
		{"empty stored", TargetArea{}, SingleArea("knee"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stored.Matches(tt.query))
		})
	}
}

func TestParseTargetArea(t *testing.T) {
	assert.Equal(t, SingleArea("knee"), ParseTargetArea("knee"))
	assert.Equal(t, MultipleAreas("knee", "hip"), ParseTargetArea("knee, hip,"))
	assert.True(t, ParseTargetArea("  ").IsZero())
}
