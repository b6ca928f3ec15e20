// Package notify carries transient user-facing messages, the equivalent
// of the storefront's toast popups.
package notify

import "sync"

const (
	KindSuccess = "success"
	KindError   = "error"
)

type Notifier interface {
	Success(message string)
	Error(message string)
}

// Flash is a one-shot notifier: it keeps the most recent message until
// the next rendered page takes it.
type Flash struct {
	mu      sync.Mutex
	message string
	kind    string
	set     bool
}

func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Success(message string) {
	f.put(message, KindSuccess)
}

func (f *Flash) Error(message string) {
	f.put(message, KindError)
}

func (f *Flash) put(message, kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.message = message
	f.kind = kind
	f.set = true
}

// Take returns and clears the pending message.
func (f *Flash) Take() (message, kind string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.set {
		return "", "", false
	}
	message, kind = f.message, f.kind
	f.message, f.kind, f.set = "", "", false
	return message, kind, true
}
