package human

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	require.Equal(t, "0 B", Bytes(0))
	require.Equal(t, "512 B", Bytes(512))
	require.Equal(t, "1.0 KiB", Bytes(1024))
	require.Equal(t, "12.0 MiB", Bytes(12<<20))
	require.Equal(t, "2.5 GiB", Bytes(2<<30+512<<20))
}
