package identity

import "sync"

// User is the resolved current-user identity
type User struct {
	// ID is the user's unique identity
	ID string

	// Name is the user's display name
	Name string
}

// Provider resolves the current user, if one is signed in
type Provider interface {
	Current() (*User, bool)
}

// StaticProvider holds the signed-in user in memory. The auth layer
// sets it on sign-in and clears it on sign-out.
type StaticProvider struct {
	mu   sync.RWMutex
	user *User
}

// NewStaticProvider creates a provider, optionally pre-resolved
func NewStaticProvider(user *User) *StaticProvider {
	return &StaticProvider{user: user}
}

// SetUser replaces the resolved identity; nil clears it
func (p *StaticProvider) SetUser(user *User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.user = user
}

// Current returns the resolved identity, if any
func (p *StaticProvider) Current() (*User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.user == nil {
		return nil, false
	}

	user := *p.user
	return &user, true
}
