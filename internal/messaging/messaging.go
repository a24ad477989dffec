// Package messaging implements the request/response protocol between a UI
// context and the privileged context that owns the browser APIs. Requests
// name an action verb plus an optional payload; responses report success or
// carry an error string, never a transport failure.
package messaging

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/palette"
)

// Request is one inbound message.
type Request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Response is the reply for a Request.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Payload carries the candidate fields a request may reference.
type Payload struct {
	TabID      int    `json:"tabId,omitempty"`
	WindowID   int    `json:"windowId,omitempty"`
	BookmarkID string `json:"bookmarkId,omitempty"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Pinned     bool   `json:"pinned,omitempty"`
	Muted      bool   `json:"muted,omitempty"`
}

// Handler routes decoded requests into the palette dispatcher.
type Handler struct {
	Dispatcher *palette.Dispatcher
	Log        zerolog.Logger
}

// Handle decodes one raw request, executes it and encodes the reply. Every
// failure path still yields a well-formed Response; the error string is the
// whole contract for the caller.
func (h *Handler) Handle(ctx context.Context, raw []byte) []byte {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		h.Log.Warn().Err(err).Msg("malformed request")
		return encode(Response{Success: false, Error: "malformed request: " + err.Error()})
	}
	return encode(h.HandleRequest(ctx, req))
}

// HandleRequest executes one decoded request.
func (h *Handler) HandleRequest(ctx context.Context, req Request) Response {
	var p Payload
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &p); err != nil {
			return Response{Success: false, Error: "malformed payload: " + err.Error()}
		}
	}

	action := buildAction(req.Action, p)
	mode, _ := palette.ParseQuery(p.Mode)

	if err := h.Dispatcher.Execute(ctx, action, mode); err != nil {
		h.Log.Warn().Err(err).Str("action", req.Action).Msg("request failed")
		return Response{Success: false, Error: err.Error()}
	}
	return Response{Success: true}
}

// buildAction reconstructs a palette candidate from the wire payload. The
// variant decides how destructive modes treat it, so the bookmark and tab
// hints take precedence over a plain static action.
func buildAction(verb string, p Payload) palette.Action {
	meta := palette.Meta{
		ID:    verb,
		Title: p.Title,
		Verb:  verb,
		URL:   p.URL,
	}
	switch {
	case p.BookmarkID != "":
		return palette.BookmarkAction{Meta: meta, BookmarkID: p.BookmarkID}
	case p.TabID != 0:
		return palette.TabAction{
			Meta:     meta,
			TabID:    p.TabID,
			WindowID: p.WindowID,
			Pinned:   p.Pinned,
			Muted:    p.Muted,
		}
	default:
		return palette.Static{Meta: meta}
	}
}

func encode(resp Response) []byte {
	out, err := json.Marshal(resp)
	if err != nil {
		return []byte(`{"success":false,"error":"encoding failure"}`)
	}
	return out
}
