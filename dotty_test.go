package bintree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	root := MustFromString("[1, null, 3]")
	var bf bytes.Buffer
	if err := ToDot(root, &bf); err != nil {
		t.Fatal(err.Error())
	}
	dot := bf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT output to start with digraph header")
	}
	for _, frag := range []string{
		`"1" [label="1"`,
		`"2" [label="3"`,
		`"1" -> "-1";`,
		`"1" -> "2";`,
	} {
		if !strings.Contains(dot, frag) {
			t.Errorf("expected DOT output to contain %s", frag)
		}
	}
}

func TestToDotEmptyAndIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	var bf bytes.Buffer
	if err := ToDot[int](nil, &bf); err != nil {
		t.Fatal(err.Error())
	}
	if bf.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("unexpected DOT output for empty tree: %q", bf.String())
	}
	if err := ToDot(New(1), nil); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil writer, have %v", err)
	}
}

func TestCodecToDotQuotesLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	var bf bytes.Buffer
	root := Strings.MustFromString(`["say \"hi\""]`)
	if err := Strings.ToDot(root, &bf); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(bf.String(), `label="\"say \\\"hi\\\"\""`) {
		t.Errorf("expected quoted label, have %s", bf.String())
	}
}
