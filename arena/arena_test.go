package arena

import "testing"

func TestZeroPoolIsUsable(t *testing.T) {
	var p Pool[int]
	h := p.Alloc()
	if h.IsNil() {
		t.Fatalf("expected non-nil handle from zero pool")
	}
	*p.At(h) = 7
	if *p.At(h) != 7 || p.Len() != 1 {
		t.Fatalf("unexpected pool state: value=%d len=%d", *p.At(h), p.Len())
	}
}

func TestFreeListReuse(t *testing.T) {
	p := &Pool[string]{}
	a, b, c := p.Alloc(), p.Alloc(), p.Alloc()
	*p.At(b) = "b"
	p.Free(b)
	if p.Live(b) {
		t.Fatalf("freed handle %d still live", b)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 live items, have %d", p.Len())
	}
	d := p.Alloc()
	if d != b {
		t.Fatalf("expected freed slot %d to be re-used, got %d", b, d)
	}
	if *p.At(d) != "" {
		t.Fatalf("re-used slot not reset: %q", *p.At(d))
	}
	if e := p.Alloc(); e == a || e == b || e == c {
		t.Fatalf("fresh handle %d collides with a live one", e)
	}
}

func TestAccessToFreedHandlePanics(t *testing.T) {
	p := &Pool[int]{}
	h := p.Alloc()
	p.Free(h)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on access to freed handle")
		}
	}()
	_ = p.At(h)
}

func TestNilHandleIsNeverLive(t *testing.T) {
	p := &Pool[int]{}
	p.Alloc()
	if p.Live(Nil) {
		t.Fatalf("Nil must not be live")
	}
	if p.Live(Handle(42)) {
		t.Fatalf("out-of-range handle must not be live")
	}
}

func TestResetAndEach(t *testing.T) {
	p := &Pool[int]{}
	for i := 0; i < 5; i++ {
		*p.At(p.Alloc()) = i
	}
	p.Free(Handle(2))
	sum, n := 0, 0
	p.Each(func(_ Handle, v *int) bool {
		sum += *v
		n++
		return true
	})
	if n != 4 || sum != 0+2+3+4 {
		t.Fatalf("unexpected iteration: n=%d sum=%d", n, sum)
	}
	p.Reset()
	if p.Len() != 0 || p.Live(Handle(3)) {
		t.Fatalf("reset pool not empty: len=%d", p.Len())
	}
	if h := p.Alloc(); h != Handle(1) {
		t.Fatalf("expected first handle after reset to be 1, got %d", h)
	}
}

func TestGenerationsTellReusedSlots(t *testing.T) {
	var p Pool[int]
	h := p.Alloc()
	gen := p.Gen(h)
	if !p.Holds(h, gen) {
		t.Fatalf("fresh allocation not held")
	}
	p.Free(h)
	if p.Holds(h, gen) {
		t.Fatalf("freed allocation still held")
	}
	if r := p.Alloc(); r != h {
		t.Fatalf("expected slot %d to be re-used, got %d", h, r)
	}
	if p.Holds(h, gen) {
		t.Fatalf("re-used slot mistaken for the old allocation")
	}
	if !p.Holds(h, p.Gen(h)) {
		t.Fatalf("new allocation not held")
	}
	gen = p.Gen(h)
	p.Reset()
	if r := p.Alloc(); r != h || p.Holds(h, gen) {
		t.Fatalf("allocation from before Reset still held (handle %d)", r)
	}
}
