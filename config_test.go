package deque

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.normalized().BlockCapacity != DefaultBlockCapacity {
		t.Fatalf("zero config should select default capacity")
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("zero config should be valid: %v", err)
	}
	var d *Deque[int]
	if d.BlockCapacity() != DefaultBlockCapacity {
		t.Fatalf("nil deque should report default capacity")
	}
}

func TestConfigThresholds(t *testing.T) {
	cfg := Config{BlockCapacity: 7}
	if cfg.splitAt() != 14 || cfg.mergeAt() != 3 {
		t.Fatalf("B=7: split at %d, merge at %d", cfg.splitAt(), cfg.mergeAt())
	}
}

func TestConfigRejectsSmallCapacity(t *testing.T) {
	for _, b := range []int{1, -1, -100} {
		if _, err := NewWithConfig[int](Config{BlockCapacity: b}); !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("B=%d: expected ErrIllegalArguments, got %v", b, err)
		}
	}
	if _, err := NewWithConfig[int](Config{BlockCapacity: MinBlockCapacity}); err != nil {
		t.Errorf("minimum capacity rejected: %v", err)
	}
}

func TestConfigFromApplicationConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()

	conf := testconfig.Conf{
		ConfigKeyBlockCapacity: "8",
	}
	cfg := ConfigFrom(conf)
	if cfg.BlockCapacity != 8 {
		t.Fatalf("expected block capacity 8 from configuration, have %d", cfg.BlockCapacity)
	}
	d, err := NewWithConfig[int](cfg)
	if err != nil {
		t.Fatal(err)
	}
	fill(d, 100)
	for _, size := range d.BlockSizes() {
		if size >= 16 {
			t.Fatalf("block of size %d with B=8", size)
		}
	}
	if cfg = ConfigFrom(testconfig.Conf{}); cfg.BlockCapacity != DefaultBlockCapacity {
		t.Fatalf("unset key should keep default, have %d", cfg.BlockCapacity)
	}
	if cfg = ConfigFrom(nil); cfg.BlockCapacity != DefaultBlockCapacity {
		t.Fatalf("nil configuration should keep default, have %d", cfg.BlockCapacity)
	}
}
