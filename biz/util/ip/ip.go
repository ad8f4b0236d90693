package ip

import (
	"encoding/hex"
	"net"
	"runtime"
)

func firstIPv4() net.IP {
	if runtime.GOOS == "windows" {
		return nil
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if v4 := ipNet.IP.To4(); v4 != nil {
				return v4
			}
		}
	}
	return nil
}

// IPv4 returns the first non-loopback IPv4 address of the host, or "".
func IPv4() string {
	if v4 := firstIPv4(); v4 != nil {
		return v4.String()
	}
	return ""
}

// IPv4Hex is IPv4 as 8 hex digits, "00000000" when unknown.
func IPv4Hex() string {
	if v4 := firstIPv4(); v4 != nil {
		return hex.EncodeToString(v4)
	}
	return "00000000"
}
