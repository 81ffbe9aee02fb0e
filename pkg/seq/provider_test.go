package seq_test

import (
	"fmt"
	"testing"

	"github.com/pclscope/pcl-go/pkg/seq"
	"github.com/pclscope/pcl-go/pkg/seq/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discreteRoot(t *testing.T, r *seq.Registry, k seq.Key, flags seq.Flags) {
	t.Helper()
	require.NoError(t, r.Add(seq.Entry{
		Key:         k,
		Param:       seq.Param{Kind: seq.ParamGeneric},
		Flags:       flags | seq.FlagDiscrete | seq.FlagGenericFallback,
		Category:    seq.CategoryPrintModel,
		Description: seq.NewDescription("Logical Operation (# = discrete value)"),
	}))
}

func TestExpandFamily_Coverage(t *testing.T) {
	r := seq.NewRegistry()
	root := seq.RootKey('*', 'l', 'O')
	discreteRoot(t, r, root, seq.FlagDisplayHex)

	p := mocks.NewMockProvider(t)
	p.EXPECT().Count().Return(4).Once()
	p.EXPECT().IDValue(mock.Anything).RunAndReturn(func(i int) int32 { return int32(i * 10) })
	p.EXPECT().Describe(mock.Anything).RunAndReturn(func(i int) string { return fmt.Sprintf("op %d", i) })

	n, err := seq.ExpandFamily(r, root, "Logical Operation", p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for i := 0; i < 4; i++ {
		e, ok := r.Lookup(root.WithValue(int32(i * 10)))
		require.True(t, ok)
		assert.Contains(t, e.Description.String(), fmt.Sprintf("op %d", i))
		assert.Equal(t, "Logical Operation: "+fmt.Sprintf("op %d", i), e.Description.String())
		assert.Equal(t, seq.CategoryPrintModel, e.Category)
		assert.True(t, e.Flags.Has(seq.FlagDiscrete|seq.FlagDisplayHex))
		assert.False(t, e.Flags.Has(seq.FlagGenericFallback))
	}
}

func TestExpandFamily_EmptyAndNil(t *testing.T) {
	r := seq.NewRegistry()
	root := seq.RootKey('&', 'l', 'A')
	discreteRoot(t, r, root, 0)

	empty := mocks.NewMockProvider(t)
	empty.EXPECT().Count().Return(0).Once()

	n, err := seq.ExpandFamily(r, root, "Page Size", empty)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = seq.ExpandFamily(r, root, "Page Size", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, r.Len())
}

func TestExpandFamily_Errors(t *testing.T) {
	r := seq.NewRegistry()

	_, err := seq.ExpandFamily(r, seq.RootKey('&', 'l', 'A'), "Page Size", nil)
	assert.ErrorIs(t, err, seq.ErrOrphanValue)

	require.NoError(t, r.Add(seq.Entry{
		Key:   seq.RootKey('&', 'l', 'X'),
		Param: seq.Param{Kind: seq.ParamContinuous},
	}))
	_, err = seq.ExpandFamily(r, seq.RootKey('&', 'l', 'X'), "Copies", nil)
	assert.ErrorIs(t, err, seq.ErrNotDiscrete)
}

func TestFilter(t *testing.T) {
	sp := mocks.NewMockSelectorProvider(t)
	sp.EXPECT().Count().Return(3).Once()
	sp.EXPECT().Select(0, byte('U')).Return(seq.Selected{ID: 8, Name: "Roman-8"}, true).Once()
	sp.EXPECT().Select(1, byte('U')).Return(seq.Selected{}, false).Once()
	sp.EXPECT().Select(2, byte('U')).Return(seq.Selected{ID: 10, Name: "PC-8"}, true).Once()

	p := seq.Filter(sp, 'U')
	require.Equal(t, 2, p.Count())
	assert.Equal(t, int32(10), p.IDValue(1))
	assert.Equal(t, "Roman-8", p.Describe(0))

	assert.Equal(t, 0, seq.Filter(nil, 'U').Count())
}
