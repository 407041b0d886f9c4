//go:build linux

package mmio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blacktop/go-aielib/config"
)

const (
	testArraySize = 0x40000
	testFileSize  = 0x42000
)

func u64(v uint64) *uint64 { return &v }

// testConfig describes a sparse regular file standing in for the device
// node: the aperture at offset 0, one page aligned region and one region
// that starts inside a page.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aie.mem")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(testFileSize))
	require.NoError(t, f.Close())

	cfg := config.Default()
	cfg.Device = config.Device{
		Path:        path,
		ArrayBase:   0x20000000000,
		ArrayOffset: u64(0),
		ArraySize:   testArraySize,
	}
	cfg.Regions = []config.Region{
		{Name: "ddr", Phys: 0x40000000, Size: 0x1000, Offset: u64(0x40000)},
		{Name: "bram", Phys: 0x50000010, Size: 0x100, Offset: u64(0x41010)},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func newTestDevice(t *testing.T) (*Device, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	d := Open(cfg)
	require.NoError(t, d.Init())
	t.Cleanup(func() { d.Close() })
	return d, cfg
}
