package socket

import (
	"testing"

	"vibin_web/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestServerIsEventSink(t *testing.T) {
	var _ services.EventSink = (*Server)(nil)

	s := NewSocketServer(func(string) bool { return true }, zap.NewNop())
	assert.NotNil(t, s.Handler())
	assert.NotPanics(t, func() {
		s.Emit("session-1", services.EventTyping, map[string]interface{}{"typing": true})
	})
}
