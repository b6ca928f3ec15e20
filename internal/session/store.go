// Package session owns the logged-in identity. Credentials pass through
// to the remote service unmodified; only the resulting identity is kept,
// in memory and as a signed snapshot on disk so a restart can restore
// the session without re-authenticating.
package session

import (
	"context"
	"errors"
	"os"
	"time"

	"shopfront/internal/models"
	"shopfront/internal/state"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Authenticator is the slice of the remote client the store needs.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type Store struct {
	auth         Authenticator
	appState     *state.Store
	secretKey    []byte
	snapshotPath string
	logger       zerolog.Logger
}

type snapshotClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func NewStore(auth Authenticator, appState *state.Store, secretKey, snapshotPath string, logger zerolog.Logger) *Store {
	return &Store{
		auth:         auth,
		appState:     appState,
		secretKey:    []byte(secretKey),
		snapshotPath: snapshotPath,
		logger:       logger,
	}
}

// Login authenticates against the remote service and, on success,
// installs the session and persists its snapshot. The returned error is
// the remote client's error, suitable for inline display.
func (s *Store) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := s.auth.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("login response carried no user")
	}

	sess := user.Session()
	s.appState.SetSession(sess)
	if err := s.persist(sess); err != nil {
		// The session is still valid for this run; only the reload
		// convenience is lost.
		s.logger.Warn().Err(err).Msg("Failed to persist session snapshot")
	}
	return &sess, nil
}

func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.auth.Register(ctx, req)
}

// Logout clears the in-memory session, its persisted snapshot, and by
// cascade the cart and order snapshots.
func (s *Store) Logout() {
	s.appState.ClearSession()
	if err := os.Remove(s.snapshotPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("Failed to remove session snapshot")
	}
}

// Restore reads the persisted snapshot at startup. A missing, malformed
// or tampered snapshot restores nothing.
func (s *Store) Restore() *models.Session {
	raw, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		return nil
	}

	claims := &snapshotClaims{}
	token, err := jwt.ParseWithClaims(string(raw), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		s.logger.Warn().Err(err).Msg("Discarding invalid session snapshot")
		return nil
	}

	sess := models.Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
	s.appState.SetSession(sess)
	return &sess
}

func (s *Store) Current() *models.Session {
	return s.appState.Session()
}

func (s *Store) persist(sess models.Session) error {
	claims := &snapshotClaims{
		UserID:   sess.UserID,
		Username: sess.Username,
		IsAdmin:  sess.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return err
	}
	return os.WriteFile(s.snapshotPath, []byte(signed), 0o600)
}
