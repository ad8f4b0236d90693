package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"authgate/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var idgen = NewIDGenerator(16)

// NewID returns a log id: base36 millis, host ipv4 hex, pid, random suffix.
func NewID() string {
	return idgen.NewID()
}

// IDGenerator precomputes ids on a background goroutine until stopped.
type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, stop, ip.IPv4Hex()+strconv.Itoa(os.Getpid())),
		stop: stop,
	}
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func newPool(size int, stop chan struct{}, host string) <-chan string {
	pool := make(chan string, size)

	go func() {
		for {
			var sb strings.Builder
			sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
			sb.WriteString(host)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
