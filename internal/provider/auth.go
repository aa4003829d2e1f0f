package provider

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type User struct {
	ID               string     `json:"id"`
	Aud              string     `json:"aud"`
	Role             string     `json:"role"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	LastSignInAt     *time.Time `json:"last_sign_in_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	ExpiresAt   int64  `json:"expires_at"`
	User        *User  `json:"user"`

	id string
}

type AuthResponse struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

type AdminUserAttributes struct {
	Email        string
	Password     string
	EmailConfirm bool
}

type UserAttributes struct {
	Password string
}

func toUser(identity *model.Identity) *User {
	return &User{
		ID:               identity.ID,
		Aud:              RoleAuthenticated,
		Role:             RoleAuthenticated,
		Email:            identity.Email,
		EmailConfirmedAt: identity.EmailConfirmedAt,
		LastSignInAt:     identity.LastSignInAt,
		CreatedAt:        identity.CreatedAt,
		UpdatedAt:        identity.UpdatedAt,
	}
}

func (c *Client) identities(ctx context.Context) (repository.IdentityRepository, error) {
	db, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewIdentityRepository(db), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email string, password string) (*AuthResponse, error) {
	invalid := newError(http.StatusBadRequest, CodeInvalidCredentials, "Invalid login credentials")
	if email == "" || password == "" {
		return nil, invalid
	}

	repo, err := c.identities(ctx)
	if err != nil {
		return nil, err
	}
	identity, err := repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invalid
	} else if err != nil {
		return nil, Classify(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, invalid
	}
	if identity.EmailConfirmedAt == nil {
		return nil, newError(http.StatusBadRequest, CodeEmailNotConfirmed, "Email not confirmed")
	}

	now := c.factory.now()
	if err := repo.TouchSignIn(ctx, identity.ID, now); err != nil {
		return nil, Classify(err)
	}
	identity.LastSignInAt = &now

	session, err := c.issueSession(identity)
	if err != nil {
		return nil, err
	}
	if c.persist {
		c.session = session
	}
	return &AuthResponse{User: session.User, Session: session}, nil
}

// SignUp registers a new identity. When e-mail auto-confirmation is off the
// response carries no session.
func (c *Client) SignUp(ctx context.Context, email string, password string) (*AuthResponse, error) {
	identity, err := c.createIdentity(ctx, email, password, c.factory.autoConfirm, CodeUserAlreadyExists, "User already registered")
	if err != nil {
		return nil, err
	}
	resp := &AuthResponse{User: toUser(identity)}
	if identity.EmailConfirmedAt == nil {
		return resp, nil
	}

	session, err := c.issueSession(identity)
	if err != nil {
		return nil, err
	}
	if c.persist {
		c.session = session
	}
	resp.Session = session
	return resp, nil
}

func (c *Client) AdminCreateUser(ctx context.Context, attrs AdminUserAttributes) (*User, error) {
	if !c.IsServiceRole() {
		return nil, newError(http.StatusForbidden, CodeNotAdmin, "User not allowed")
	}
	identity, err := c.createIdentity(ctx, attrs.Email, attrs.Password, attrs.EmailConfirm, CodeUserAlreadyExists, "A user with this email address has already been registered")
	if err != nil {
		return nil, err
	}
	return toUser(identity), nil
}

func (c *Client) createIdentity(ctx context.Context, email string, password string, confirm bool, dupCode string, dupMessage string) (*model.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, newError(http.StatusBadRequest, CodeValidationFailed, "Unable to validate email address: invalid format")
	}
	if len(password) < minPasswordLength {
		return nil, newError(http.StatusUnprocessableEntity, CodeWeakPassword, "Password should be at least 6 characters.")
	}

	repo, err := c.identities(ctx)
	if err != nil {
		return nil, err
	}
	duplicate := newError(http.StatusUnprocessableEntity, dupCode, dupMessage)
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil, duplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Classify(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.factory.passwordCost)
	if err != nil {
		return nil, err
	}
	identity := &model.Identity{Email: email, PasswordHash: string(hash)}
	if confirm {
		now := c.factory.now()
		identity.EmailConfirmedAt = &now
	}
	if err := repo.Create(ctx, identity); err != nil {
		if IsCode(Classify(err), CodeUniqueViolation) {
			return nil, duplicate
		}
		return nil, Classify(err)
	}
	return identity, nil
}

func (c *Client) issueSession(identity *model.Identity) (*Session, error) {
	now := c.factory.now()
	expiresAt := now.Add(c.factory.sessionTTL)
	sessionID := uuid.NewString()

	token, err := signSession(c.factory.secret, &sessionClaims{
		Email: identity.Email,
		Role:  RoleAuthenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(c.factory.sessionTTL.Seconds()),
		ExpiresAt:   expiresAt.Unix(),
		User:        toUser(identity),
		id:          sessionID,
	}, nil
}

// GetUser resolves the identity behind an access token.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	session, err := c.verify(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.User, nil
}

// SetSession verifies token and attaches it to the client, so later table
// access runs as that user.
func (c *Client) SetSession(ctx context.Context, token string) (*User, error) {
	session, err := c.verify(ctx, token)
	if err != nil {
		return nil, err
	}
	c.session = session
	return session.User, nil
}

func (c *Client) verify(ctx context.Context, token string) (*Session, error) {
	claims, err := parseSession(c.factory.secret, token, c.factory.now)
	if err != nil {
		return nil, err
	}
	revoked, err := c.factory.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
	}
	if revoked {
		return nil, newError(http.StatusForbidden, CodeSessionMissing, "Session from session_id claim in JWT does not exist")
	}

	repo, err := c.identities(ctx)
	if err != nil {
		return nil, err
	}
	identity, err := repo.FindByID(ctx, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(http.StatusForbidden, CodeUserNotFound, "User from sub claim in JWT does not exist")
	} else if err != nil {
		return nil, Classify(err)
	}

	expiresAt := claims.ExpiresAt.Time
	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(expiresAt.Sub(c.factory.now()).Seconds()),
		ExpiresAt:   expiresAt.Unix(),
		User:        toUser(identity),
		id:          claims.ID,
	}, nil
}

// UpdateUser changes the password of the signed-in user.
func (c *Client) UpdateUser(ctx context.Context, attrs UserAttributes) (*User, error) {
	if c.session == nil {
		return nil, newError(http.StatusUnauthorized, CodeSessionMissing, "Auth session missing!")
	}
	if len(attrs.Password) < minPasswordLength {
		return nil, newError(http.StatusUnprocessableEntity, CodeWeakPassword, "Password should be at least 6 characters.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(attrs.Password), c.factory.passwordCost)
	if err != nil {
		return nil, err
	}
	repo, err := c.identities(ctx)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdatePassword(ctx, c.session.User.ID, string(hash)); err != nil {
		return nil, Classify(err)
	}
	return c.session.User, nil
}

// SignOut revokes the attached session for the rest of its lifetime.
func (c *Client) SignOut(ctx context.Context) error {
	if c.session == nil {
		return newError(http.StatusUnauthorized, CodeSessionMissing, "Auth session missing!")
	}
	ttl := time.Unix(c.session.ExpiresAt, 0).Sub(c.factory.now())
	if err := c.factory.revoker.Revoke(ctx, c.session.id, ttl); err != nil {
		return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
	}
	c.session = nil
	return nil
}
