package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet_ColumnEncoding(t *testing.T) {
	set := NewStringSet("student2", "student1")

	val, err := set.Value()
	assert.NoError(t, err)
	assert.Equal(t, "student1,student2", val)

	var scanned StringSet
	assert.NoError(t, scanned.Scan([]byte("student2,student1")))
	assert.True(t, scanned.Has("student1"))
	assert.True(t, scanned.Has("student2"))
	assert.False(t, scanned.Has("student3"))
}

func TestStringSet_EmptyColumn(t *testing.T) {
	var set StringSet
	assert.NoError(t, set.Scan(""))
	assert.Empty(t, set.Sorted())

	val, err := set.Value()
	assert.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestStringSet_IdempotentMutation(t *testing.T) {
	set := NewStringSet()
	set.Add("student1")
	set.Add("student1")
	assert.Equal(t, []string{"student1"}, set.Sorted())

	set.Remove("student1")
	set.Remove("student1")
	assert.Empty(t, set.Sorted())
}

func TestStringSet_JSONIsSortedArray(t *testing.T) {
	set := NewStringSet("b", "a", "c")
	data, err := json.Marshal(set)
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, string(data))
}

func TestStringList_ColumnEncoding(t *testing.T) {
	list := StringList{"dal", "rice", "curd"}

	val, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, "dal,rice,curd", val)

	var scanned StringList
	assert.NoError(t, scanned.Scan("dal,rice,curd"))
	assert.Equal(t, list, scanned)

	var empty StringList
	assert.NoError(t, empty.Scan(""))
	assert.Nil(t, empty)
}
