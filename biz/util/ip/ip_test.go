package ip

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Hex(t *testing.T) {
	h := IPv4Hex()
	assert.Len(t, h, 8)

	if s := IPv4(); s != "" {
		assert.NotNil(t, net.ParseIP(s).To4())
	} else {
		assert.Equal(t, "00000000", h)
	}
}
