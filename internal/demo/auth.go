package demo

import (
	"strings"
	"sync"
	"time"

	"northgate/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a demo-mode account. It exists only in process memory.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`

	passwordHash []byte
}

// Session wraps the signed-in demo user.
type Session struct {
	User     *User     `json:"user"`
	IssuedAt time.Time `json:"issued_at"`
}

// AuthEvent describes an auth state transition delivered to subscribers.
type AuthEvent struct {
	SignedIn bool
	Email    string
}

// Auth is the demo-mode authentication state machine: SIGNED_OUT to SIGNED_IN
// on SignUp/SignInWithPassword, back to SIGNED_OUT on SignOut. The original
// system observed transitions by reloading the page; here subscribers receive
// an explicit event instead. Failures are plain AppError values shaped exactly
// like real backend errors, and no method ever panics.
type Auth struct {
	mu      sync.Mutex
	now     func() time.Time
	users   map[string]*User // keyed by lowercase email
	current *User
	subs    map[int]func(AuthEvent)
	nextSub int
}

// NewAuth returns a signed-out demo auth instance with no registered users.
func NewAuth() *Auth {
	return &Auth{
		now:   time.Now,
		users: make(map[string]*User),
		subs:  make(map[int]func(AuthEvent)),
	}
}

// Session returns the current session, or nil when signed out. Never errors.
func (a *Auth) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	user := *a.current
	return &Session{User: &user, IssuedAt: a.now()}
}

// SignUp registers a new demo user and signs it in. Registering an email that
// already exists fails without touching the existing record or the current
// session.
func (a *Auth) SignUp(email, password string, metadata map[string]any) (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := normalizeEmail(email)
	if key == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}
	if _, exists := a.users[key]; exists {
		return nil, models.NewConflictError("An account with this email already exists (Demo Mode)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        key,
		UserMetadata: metadata,
		CreatedAt:    a.now(),
		passwordHash: hash,
	}
	a.users[key] = user
	a.current = user
	a.notifyLocked(AuthEvent{SignedIn: true, Email: key})

	signedUp := *user
	return &Session{User: &signedUp, IssuedAt: a.now()}, nil
}

// SignInWithPassword signs in a previously registered demo user. A wrong
// password or unknown email fails with a fixed message and leaves the current
// session unchanged.
func (a *Auth) SignInWithPassword(email, password string) (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := normalizeEmail(email)
	user, ok := a.users[key]
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid email or password (Demo Mode: sign up first, then sign in)")
	}
	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password (Demo Mode: sign up first, then sign in)")
	}

	a.current = user
	a.notifyLocked(AuthEvent{SignedIn: true, Email: key})

	signedIn := *user
	return &Session{User: &signedIn, IssuedAt: a.now()}, nil
}

// SignInWithOAuth always fails: there is no OAuth provider in demo mode.
func (a *Auth) SignInWithOAuth() error {
	return models.NewValidationError("OAuth not available in demo mode")
}

// SignOut clears the current session. Signing out while signed out is a no-op.
func (a *Auth) SignOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return
	}
	email := a.current.Email
	a.current = nil
	a.notifyLocked(AuthEvent{SignedIn: false, Email: email})
}

// Subscribe registers fn for auth state transitions and returns an
// unsubscribe func. The current state is delivered once, asynchronously,
// on subscription.
func (a *Auth) Subscribe(fn func(AuthEvent)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn

	initial := AuthEvent{}
	if a.current != nil {
		initial = AuthEvent{SignedIn: true, Email: a.current.Email}
	}
	a.mu.Unlock()

	go fn(initial)

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

func (a *Auth) notifyLocked(ev AuthEvent) {
	for _, fn := range a.subs {
		fn := fn
		go fn(ev)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
