package logger

import (
	"time"

	"authgate/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzlogrus "github.com/hertz-contrib/logger/logrus"
	"github.com/sirupsen/logrus"
)

const fieldLogId = "log_id"

// Init installs a logrus backed hlog logger configured from config.GetLoggerConf.
func Init() {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	hl := hertzlogrus.NewLogger(
		hertzlogrus.WithLogger(l),
		hertzlogrus.WithHook(logIdHook{}),
	)
	hlog.SetLogger(hl)
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}

type logIdHook struct{}

func (logIdHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (logIdHook) Fire(e *logrus.Entry) error {
	if e.Context == nil {
		return nil
	}
	if id := trace_info.GetLogId(e.Context); id != "" {
		e.Data[fieldLogId] = id
	}
	return nil
}
