package htmltree

import (
	"bytes"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	root := bintree.MustFromString("[1, null, 3]")
	var bf bytes.Buffer
	require.NoError(t, Render(root, nil, &bf))
	require.Equal(t,
		`<ul class="bintree"><li><span class="value">1</span><ul><li class="null">null</li>`+
			`<li><span class="value">3</span></li></ul></li></ul>`,
		bf.String())
}

func TestRenderEmpty(t *testing.T) {
	var bf bytes.Buffer
	require.NoError(t, Render[int](nil, nil, &bf))
	require.Equal(t, `<ul class="bintree"></ul>`, bf.String())
	require.ErrorIs(t, Render(bintree.New(1), nil, nil), bintree.ErrIllegalArguments)
}

func TestRenderEscapes(t *testing.T) {
	root := bintree.Strings.MustFromString(`["<b>", "a&b"]`)
	var bf bytes.Buffer
	require.NoError(t, Render(root, nil, &bf))
	require.Contains(t, bf.String(), "&lt;b&gt;")
	require.Contains(t, bf.String(), "a&amp;b")
}

func TestValuesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	root := bintree.MustFromString("[3,0,4,null,2,null,null,1]")
	var bf bytes.Buffer
	require.NoError(t, Render(root, nil, &bf))
	values, err := Values(&bf)
	require.NoError(t, err)
	// document order is pre-order
	require.Equal(t, []string{"3", "0", "2", "1", "4"}, values)
}
