// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and body size for the access log.
//
// WriteHeader is forwarded to the underlying writer exactly once: subsequent
// calls are silently ignored, mirroring the behaviour documented by the
// [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// size is the running total of bytes successfully written to the response body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends 200 OK when no status was written, like the
// standard library's response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *responseWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// boundaryWriter holds the downstream status code until the first body byte
// is written, the response is flushed, or the guarded handler returns. Until
// then the status is pending and a fault may still replace the whole
// response.
//
// Informational (1xx) statuses other than 101 are forwarded immediately and
// do not commit the response.
type boundaryWriter struct {
	http.ResponseWriter

	// status is the pending or committed status code; zero when none was set.
	status int

	// committed reports whether the status line has reached the underlying
	// writer. After that the response can no longer be replaced.
	committed bool

	// header is the header map as it was when the pending status was set.
	// commit sends this copy.
	header http.Header
}

func (w *boundaryWriter) WriteHeader(statusCode int) {
	if w.committed || w.status != 0 {
		return
	}

	if statusCode >= 100 && statusCode < 200 && statusCode != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}

	w.status = statusCode
	w.header = w.Header().Clone()
	if statusCode == http.StatusSwitchingProtocols {
		w.commit()
	}
}

func (w *boundaryWriter) Write(b []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(b)
}

func (w *boundaryWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *boundaryWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// commit sends the pending status, 200 OK when none was set.
func (w *boundaryWriter) commit() {
	if w.committed {
		return
	}
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.header != nil {
		w.freezeHeader()
	}
	w.committed = true
	w.ResponseWriter.WriteHeader(w.status)
}

// freezeHeader resets the live header map to the copy taken at WriteHeader.
// Keys with [http.TrailerPrefix] are trailers and survive.
func (w *boundaryWriter) freezeHeader() {
	live := w.Header()
	for key := range live {
		if !strings.HasPrefix(key, http.TrailerPrefix) {
			delete(live, key)
		}
	}
	for key, values := range w.header {
		live[key] = values
	}
	w.header = nil
}

// discardStatus drops a pending status so an error response can take its
// place. It has no effect once the response is committed.
func (w *boundaryWriter) discardStatus() {
	if !w.committed {
		w.status = 0
		w.header = nil
	}
}
