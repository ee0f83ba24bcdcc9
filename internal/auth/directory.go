package auth

import (
	"context"
	"os"
	"strings"

	"github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"

	autherrors "github.com/JohanKruger/traindev-api/internal/auth/errors"
)

// DirectoryValidator checks a username and password against an identity
// store. The production implementation binds to Active Directory.
type DirectoryValidator interface {
	Validate(ctx context.Context, username, password string) error
}

// NewDirectoryValidator selects the validator from AUTH_MODE. Anything
// other than the explicit insecure opt-in gets the directory bind.
func NewDirectoryValidator(logger *zap.Logger) DirectoryValidator {
	if os.Getenv("AUTH_MODE") == "insecure-accept-all" {
		logger.Warn("authentication is running in insecure-accept-all mode")
		return acceptAllValidator{}
	}
	return &ldapValidator{
		addr:   os.Getenv("LDAP_ADDR"),
		domain: os.Getenv("LDAP_DOMAIN"),
		logger: logger.Named("auth.ldap"),
	}
}

type ldapValidator struct {
	addr   string
	domain string
	logger *zap.Logger
}

func (v *ldapValidator) Validate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return autherrors.ErrMissingCredentials
	}

	conn, err := ldap.DialURL(v.addr)
	if err != nil {
		v.logger.Error("directory unreachable", zap.String("addr", v.addr), zap.Error(err))
		return autherrors.ErrDirectoryUnavailable
	}
	defer conn.Close()

	bindDN := username
	if v.domain != "" && !strings.Contains(username, "@") {
		bindDN = username + "@" + v.domain
	}

	if err := conn.Bind(bindDN, password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return autherrors.ErrInvalidCredentials
		}
		v.logger.Error("directory bind failed", zap.Error(err))
		return autherrors.ErrDirectoryUnavailable
	}

	return nil
}

// acceptAllValidator passes any non-empty credentials. Local development
// only, selected by an explicit AUTH_MODE value.
type acceptAllValidator struct{}

func (acceptAllValidator) Validate(_ context.Context, username, password string) error {
	if username == "" || password == "" {
		return autherrors.ErrMissingCredentials
	}
	return nil
}
