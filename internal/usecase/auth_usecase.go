package usecase

import (
	"context"
	"fmt"
	"strings"

	"dayflow/config"
	"dayflow/internal/model"
	"dayflow/internal/provider"
	"dayflow/internal/repository"
	"dayflow/pkg/logger"

	"go.uber.org/zap"
)

const profilePendingWarning = "User created but profile insert may be pending"

type AuthUsecase struct {
	factory *provider.Factory
}

func NewAuthUsecase(factory *provider.Factory) *AuthUsecase {
	return &AuthUsecase{factory: factory}
}

type LoginResult struct {
	User    *provider.User    `json:"user"`
	Session *provider.Session `json:"session"`
	Role    string            `json:"role"`
}

// Login signs in with the anon key and resolves the stored role. Provider
// errors from the sign-in step are returned unchanged.
func (u *AuthUsecase) Login(ctx context.Context, settings config.Provider, email string, password string) (*LoginResult, error) {
	if settings.Missing() {
		return nil, ErrMissingConfig
	}
	client, err := u.factory.Client(settings.URL, settings.AnonKey)
	if err != nil {
		return nil, err
	}

	auth, err := client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	db, err := client.DB(ctx)
	if err != nil {
		logger.Logger.Warn("role lookup failed", zap.String("user_id", auth.User.ID), zap.Error(err))
		return nil, ErrRoleLookup
	}
	profile, err := repository.NewUserRepository(db).FindByID(ctx, auth.User.ID)
	if err != nil {
		logger.Logger.Warn("role lookup failed", zap.String("user_id", auth.User.ID), zap.Error(err))
		return nil, ErrRoleLookup
	}

	role := profile.Role
	if role == "" {
		role = model.RoleEmployee
	}
	return &LoginResult{User: auth.User, Session: auth.Session, Role: role}, nil
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type RegisterResult struct {
	UserID  string       `json:"userId"`
	Profile []model.User `json:"profile,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

// Register creates the auth identity, through the admin API when a service key
// is configured, then inserts the profile row. A profile insert refused by row
// policy still counts as success and carries a warning.
func (u *AuthUsecase) Register(ctx context.Context, settings config.Provider, input RegisterInput) (*RegisterResult, error) {
	if settings.URL == "" || settings.AdminKey() == "" {
		return nil, ErrMissingConfig
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = model.RoleEmployee
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be one of employee, hr, admin", ErrInvalidInput)
	}

	client, err := u.factory.Client(settings.URL, settings.AdminKey(), provider.WithPersistSession(false))
	if err != nil {
		return nil, err
	}

	var user *provider.User
	if settings.HasServiceKey() {
		user, err = client.AdminCreateUser(ctx, provider.AdminUserAttributes{
			Email:        input.Email,
			Password:     input.Password,
			EmailConfirm: true,
		})
	} else {
		var resp *provider.AuthResponse
		resp, err = client.SignUp(ctx, input.Email, input.Password)
		if resp != nil {
			user = resp.User
		}
		// The profile row is written as the new user. Without a session
		// (confirmation pending) the insert falls through to the warning.
		if err == nil && resp.Session != nil {
			_, err = client.SetSession(ctx, resp.Session.AccessToken)
		}
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserMissing
	}

	profile := model.User{
		ID:         user.ID,
		EmployeeID: EmployeeCode(user.ID),
		Name:       input.Name,
		Email:      user.Email,
		Role:       role,
	}

	db, err := client.DB(ctx)
	if err == nil {
		err = repository.NewUserRepository(db).Create(ctx, &profile)
	}
	if err != nil {
		perr, _ := provider.AsError(provider.Classify(err))
		if perr.Code == provider.CodePermissionDenied || strings.Contains(perr.Message, "permission denied") {
			logger.Logger.Warn("profile insert blocked by row policy", zap.String("user_id", user.ID))
			return &RegisterResult{UserID: user.ID, Warning: profilePendingWarning}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrProfileCreate, perr.Message)
	}

	return &RegisterResult{UserID: user.ID, Profile: []model.User{profile}}, nil
}

// EmployeeCode derives a short display code from the identity id.
func EmployeeCode(id string) string {
	code := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(code) > 8 {
		code = code[:8]
	}
	return "EMP-" + code
}

func (u *AuthUsecase) Logout(ctx context.Context, client *provider.Client) error {
	return client.SignOut(ctx)
}

// ChangePassword re-checks the current password on a throwaway client before
// updating it on the caller's session.
func (u *AuthUsecase) ChangePassword(ctx context.Context, settings config.Provider, client *provider.Client, email string, current string, next string) error {
	if current == "" || next == "" {
		return fmt.Errorf("%w: current and new password are required", ErrInvalidInput)
	}
	verifier, err := u.factory.Client(settings.URL, settings.AnonKey, provider.WithPersistSession(false))
	if err != nil {
		return err
	}
	if _, err := verifier.SignInWithPassword(ctx, email, current); err != nil {
		if provider.IsCode(err, provider.CodeInvalidCredentials) {
			return fmt.Errorf("%w: current password is incorrect", ErrInvalidInput)
		}
		return err
	}
	_, err = client.UpdateUser(ctx, provider.UserAttributes{Password: next})
	return err
}
