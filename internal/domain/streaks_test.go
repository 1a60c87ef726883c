package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStreakMap_InsertionOrder(t *testing.T) {
	var m StreakMap
	m.Set("sleep", 1)
	m.Set("coding", 4)
	m.Set("gym", 2)
	m.Set("sleep", 5)

	assert.Equal(t, []string{"sleep", "coding", "gym"}, m.Keys())
	assert.Equal(t, 5, m.Get("sleep"))
	assert.Equal(t, 5, m.Max())
}

func TestStreakMap_IncrementAndDelete(t *testing.T) {
	var m StreakMap
	assert.Equal(t, 1, m.Increment("yoga"))
	assert.Equal(t, 2, m.Increment("yoga"))

	assert.True(t, m.Delete("yoga"))
	assert.False(t, m.Delete("yoga"))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Get("yoga"))
}

func TestStreakMap_NegativeClampsToZero(t *testing.T) {
	var m StreakMap
	m.Set("gym", -3)
	assert.Equal(t, 0, m.Get("gym"))
	assert.True(t, m.Has("gym"))
}

func TestStreakMap_RenameKeepsPosition(t *testing.T) {
	m := NewStreakMap(
		StreakEntry{Activity: "a", Count: 1},
		StreakEntry{Activity: "b", Count: 2},
		StreakEntry{Activity: "c", Count: 3},
	)

	assert.True(t, m.Rename("b", "z"))
	assert.Equal(t, []string{"a", "z", "c"}, m.Keys())
	assert.Equal(t, 2, m.Get("z"))

	assert.False(t, m.Rename("missing", "q"))
	assert.False(t, m.Rename("a", "c"), "target taken")
}

func TestStreakMap_JSONPreservesOrder(t *testing.T) {
	m := NewStreakMap(
		StreakEntry{Activity: "zeta", Count: 1},
		StreakEntry{Activity: "alpha", Count: 7},
	)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":1,"alpha":7}`, string(data))
	assert.Equal(t, `{"zeta":1,"alpha":7}`, string(data))

	var back StreakMap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"zeta", "alpha"}, back.Keys())
	assert.Equal(t, 7, back.Get("alpha"))
}

func TestStreakMap_JSONInsideStruct(t *testing.T) {
	st := TrackerState{}
	st.Streaks.Set("reading", 3)

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var back TrackerState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 3, back.Streaks.Get("reading"))
}

func TestStreakMap_UnmarshalRejectsNonObject(t *testing.T) {
	var m StreakMap
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, 0, m.Len())
}

func TestStreakMap_CloneIsIndependent(t *testing.T) {
	m := NewStreakMap(StreakEntry{Activity: "gym", Count: 2})
	c := m.Clone()
	c.Increment("gym")

	assert.Equal(t, 2, m.Get("gym"))
	assert.Equal(t, 3, c.Get("gym"))
}

func TestStreakMap_YAMLPreservesOrder(t *testing.T) {
	m := NewStreakMap(
		StreakEntry{Activity: "sleep", Count: 2},
		StreakEntry{Activity: "coding", Count: 9},
	)

	out, err := yaml.Marshal(struct {
		Streaks StreakMap `yaml:"streaks"`
	}{m})
	require.NoError(t, err)
	assert.Equal(t, "streaks:\n    sleep: 2\n    coding: 9\n", string(out))
}

func TestStreakMap_YAMLDecodeKeepsOrder(t *testing.T) {
	var doc struct {
		Streaks StreakMap `yaml:"streaks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("streaks:\n  sleep: 2\n  coding: 9\n  gym: 0\n"), &doc))

	assert.Equal(t, []string{"sleep", "coding", "gym"}, doc.Streaks.Keys())
	assert.Equal(t, 9, doc.Streaks.Get("coding"))
}

func TestStreakMap_YAMLDecodeRejectsList(t *testing.T) {
	var doc struct {
		Streaks StreakMap `yaml:"streaks"`
	}
	err := yaml.Unmarshal([]byte("streaks:\n  - gym\n"), &doc)
	assert.ErrorContains(t, err, "expected mapping")
}
