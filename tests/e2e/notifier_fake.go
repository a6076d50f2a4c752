//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SentEmail is the subset of the notifier payload the e2e tests assert on.
type SentEmail struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	EmailNumber int    `json:"email_number"`
	CartID      string `json:"cart_id"`
	RecoveryURL string `json:"recovery_url"`
	Discount    *struct {
		Code    string `json:"code"`
		Percent *int   `json:"percent"`
	} `json:"discount"`
}

// FakeNotifier stands in for the email service and records every accepted send.
type FakeNotifier struct {
	server *nethttptest.Server

	mu      sync.Mutex
	sent    []SentEmail
	failFor map[string]int
	delay   time.Duration
}

func NewFakeNotifier() *FakeNotifier {
	f := &FakeNotifier{failFor: map[string]int{}}
	f.server = nethttptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeNotifier) URL() string {
	return f.server.URL + "/send"
}

func (f *FakeNotifier) Close() {
	f.server.Close()
}

func (f *FakeNotifier) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.failFor = map[string]int{}
	f.delay = 0
}

// FailFor makes every send to email answer with status.
func (f *FakeNotifier) FailFor(email string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFor[email] = status
}

// SetDelay widens the window between selection and advancement.
func (f *FakeNotifier) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *FakeNotifier) Sent() []SentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentEmail, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *FakeNotifier) handle(w http.ResponseWriter, r *http.Request) {
	var email SentEmail
	if err := json.NewDecoder(r.Body).Decode(&email); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	status, fail := f.failFor[email.To]
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail {
		http.Error(w, "rejected by fake notifier", status)
		return
	}

	f.mu.Lock()
	f.sent = append(f.sent, email)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": uuid.NewString()})
}
