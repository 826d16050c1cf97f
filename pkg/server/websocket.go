package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/loader"
	"github.com/vango-dev/markup/pkg/tag"
)

const previewWriteWait = 10 * time.Second

// PreviewReply answers one preview message. Exactly one of Markup and Error
// is set.
type PreviewReply struct {
	Markup string `json:"markup,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

// handlePreview upgrades to a websocket and renders each text message as a
// description until the client goes away.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		s.logger.Debug("preview upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxPreviewSize)

	s.metrics.RecordPreviewOpen()
	defer s.metrics.RecordPreviewClose()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("preview closed", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		reply := s.preview(RequestContext(r), data)
		_ = conn.SetWriteDeadline(time.Now().Add(previewWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("preview write failed", "error", err)
			return
		}
	}
}

func (s *Server) preview(ctx tag.Context, data []byte) PreviewReply {
	root, err := loader.LoadBytes(data, ctx)
	if err == nil {
		var markup string
		if markup, err = s.renderer.RenderToString(root); err == nil {
			s.metrics.RecordRender(len(markup))
			return PreviewReply{Markup: markup}
		}
	}
	code := errors.Code(err)
	s.metrics.RecordRenderError(code)
	return PreviewReply{Error: err.Error(), Code: code}
}
