package socket

import (
	"net/http"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

const namespace = "/"

// Server pushes session events to connected views. Each view joins the room named
// after its session id.
type Server struct {
	io     *socketio.Server
	logger *zap.Logger
}

// NewSocketServer wires the connection handlers. sessionOpen reports whether a session id
// may be joined.
func NewSocketServer(sessionOpen func(string) bool, logger *zap.Logger) *Server {
	server := socketio.NewServer(nil)
	s := &Server{io: server, logger: logger}

	server.OnConnect(namespace, func(c socketio.Conn) error {
		logger.Info("✅ Socket connected", zap.String("socket", c.ID()))
		return nil
	})

	server.OnEvent(namespace, "join", func(c socketio.Conn, data map[string]string) {
		sessionID := data["sessionId"]
		if sessionID == "" || !sessionOpen(sessionID) {
			logger.Warn("❌ Invalid sessionId in join request", zap.String("socket", c.ID()))
			c.Emit("error", map[string]string{"message": "unknown session"})
			return
		}
		logger.Info("👥 Socket joined session", zap.String("socket", c.ID()), zap.String("session", sessionID))
		c.Join(sessionID)
		c.Emit("joined", map[string]string{"sessionId": sessionID})
	})

	server.OnError(namespace, func(c socketio.Conn, err error) {
		logger.Warn("⚠️ Socket error", zap.Error(err))
	})

	server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		logger.Info("❌ Socket disconnected", zap.String("socket", c.ID()), zap.String("reason", reason))
	})

	return s
}

// Emit broadcasts event to every view joined to room
func (s *Server) Emit(room, event string, payload interface{}) {
	if !s.io.BroadcastToRoom(namespace, room, event, payload) {
		s.logger.Debug("📭 No socket namespace for broadcast", zap.String("room", room), zap.String("event", event))
	}
}

// Handler serves the socket.io transport; mount it at /socket.io/
func (s *Server) Handler() http.Handler {
	return s.io
}

// Start runs the engine loop in the background
func (s *Server) Start() {
	go func() {
		if err := s.io.Serve(); err != nil {
			s.logger.Error("❌ Socket server stopped", zap.Error(err))
		}
	}()
}

func (s *Server) Close() error {
	return s.io.Close()
}
