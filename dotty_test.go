package deque

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeque2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()

	d := newTestDeque(t, 2)
	fill(d, 6)
	var buf bytes.Buffer
	if err := Deque2Dot(d, &buf, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	if n := strings.Count(out, "shape=box"); n != d.Blocks() {
		t.Errorf("expected %d blocks in DOT output, found %d", d.Blocks(), n)
	}
	if n := strings.Count(out, "->"); n != d.Blocks()-1 {
		t.Errorf("expected %d edges in DOT output, found %d", d.Blocks()-1, n)
	}
	if !strings.Contains(out, "⊣") {
		t.Errorf("sentinel missing from DOT output")
	}
	if err := Deque2Dot[int](nil, &buf, 2); err == nil {
		t.Errorf("expected error for nil deque")
	}
}

func TestDumpWithoutColor(t *testing.T) {
	d := newTestDeque(t, 4)
	fill(d, 20)
	var buf bytes.Buffer
	d.Dump(&buf, &DumpConfig{LineWidth: 60, NoColor: true})
	out := buf.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != d.Blocks()+1 {
		t.Fatalf("expected header and %d block lines, have %d lines", d.Blocks(), len(lines))
	}
	if !strings.HasPrefix(lines[0], "deque: 20 elements") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("escape sequences in uncolored output")
	}
	if !strings.HasSuffix(lines[len(lines)-1], "⊣") {
		t.Errorf("last block line should mark the end")
	}
}
