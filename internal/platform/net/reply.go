package net

import (
	"encoding/json"

	perr "foodproxy/internal/platform/errors"
)

// ErrorReply builds the status and client facing body for err
//
//	{"error": "Missing barcode"}
//	{"error": "USDA proxy failed", "details": "...", "usda": <raw upstream body or null>}
func ErrorReply(err error) (int, map[string]any) {
	status, w := perr.HTTP(err)
	body := map[string]any{"error": w.Error}
	up, ok := perr.UpstreamOf(err)
	if !ok {
		return status, body
	}
	body["details"] = w.Details
	if up.Source != "" {
		var raw any
		if len(up.Body) > 0 {
			raw = json.RawMessage(up.Body)
		}
		body[up.Source] = raw
	}
	return status, body
}
