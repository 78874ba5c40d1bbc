package nslog

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Logrus adapts a *logrus.Logger to the Log interface.
type Logrus struct {
	Logger  *logrus.Logger
	Enable  Topics
	counter uint64
}

// Default returns a Logrus logger with every topic enabled.
func Default() *Logrus {
	return &Logrus{
		Logger: logrus.New(),
		Enable: AllTopics,
	}
}

func (l *Logrus) Enabled(topics Topics) bool {
	return l.Enable&topics != 0
}

func flatten(entry *logrus.Entry, fields Fields, msg string) {
	flat := make(Fields, len(fields))
	for name, value := range fields {
		if df, ok := value.(DebugFields); ok {
			for sub, v := range df.Fields() {
				flat[name+"."+sub] = v
			}
			continue
		}
		flat[name] = value
	}
	entry.WithFields(flat).Info(msg)
}

func (l *Logrus) Call(name string, args Fields) string {
	if !l.Enabled(TopicCall) {
		return ""
	}
	cookie := fmt.Sprintf("%x", atomic.AddUint64(&l.counter, 1))
	flatten(l.Logger.WithFields(logrus.Fields{"op": name, "cookie": cookie}), args, "call")
	return cookie
}

func (l *Logrus) Return(name, cookie string, rets Fields) {
	if !l.Enabled(TopicCall) {
		return
	}
	flatten(l.Logger.WithFields(logrus.Fields{"op": name, "cookie": cookie}), rets, "return")
}

func (l *Logrus) Log(topics Topics, msg string) {
	if !l.Enabled(topics) {
		return
	}
	l.Logger.Info(msg)
}

func (l *Logrus) Logf(topics Topics, format string, args ...any) {
	if !l.Enabled(topics) {
		return
	}
	l.Logger.Infof(format, args...)
}

var _ Log = (*Logrus)(nil)
