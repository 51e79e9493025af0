package listparty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionSetListClearsLoading(t *testing.T) {
	s := containerState[int]{loading: true}
	s = s.apply(action[int]{kind: actSetList, list: []int{1, 2}})
	assert.Equal(t, []int{1, 2}, s.list)
	assert.False(t, s.loading)
}

func TestTransitionLoadingTrueClearsError(t *testing.T) {
	s := containerState[int]{err: errors.New("boom")}
	s = s.apply(action[int]{kind: actSetLoading, loading: true})
	assert.True(t, s.loading)
	assert.NoError(t, s.err)
}

func TestTransitionLoadingFalsePreservesError(t *testing.T) {
	boom := errors.New("boom")
	s := containerState[int]{err: boom, loading: true}
	s = s.apply(action[int]{kind: actSetLoading, loading: false})
	assert.False(t, s.loading)
	assert.Equal(t, boom, s.err)
}

func TestTransitionSetErrorDropsListAndLoading(t *testing.T) {
	boom := errors.New("boom")
	s := containerState[int]{list: []int{1}, loading: true}
	s = s.apply(action[int]{kind: actSetError, err: boom})
	assert.Nil(t, s.list)
	assert.False(t, s.loading)
	assert.Equal(t, boom, s.err)
}

func TestTransitionDataActions(t *testing.T) {
	s := containerState[int]{}
	s = s.apply(action[int]{kind: actSetData, data: Data{"a": 1, "b": 2}})
	assert.Equal(t, Data{"a": 1, "b": 2}, s.data)

	s = s.apply(action[int]{kind: actUpdateData, data: Data{"b": 3, "c": 4}})
	assert.Equal(t, Data{"a": 1, "b": 3, "c": 4}, s.data)

	// resetData carries the originally configured record, not whatever
	// was last passed to setData.
	s = s.apply(action[int]{kind: actResetData, data: Data{"a": 1}})
	assert.Equal(t, Data{"a": 1}, s.data)
}

func TestTicketerLastWriterWins(t *testing.T) {
	var tk ticketer
	first := tk.begin()
	second := tk.begin()
	assert.Greater(t, second, first)
	assert.False(t, tk.current(first))
	assert.True(t, tk.current(second))
}
