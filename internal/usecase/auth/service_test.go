package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	"example.com/sector17-directory/internal/gateway"
)

type mockAuthenticator struct {
	result gateway.Result[domadmin.Session]
	err    error
	calls  int
	email  string
}

func (m *mockAuthenticator) AdminLogin(ctx context.Context, email, password string) (gateway.Result[domadmin.Session], error) {
	m.calls++
	m.email = email
	return m.result, m.err
}

func TestLogin_Success(t *testing.T) {
	authn := &mockAuthenticator{
		result: gateway.OK(domadmin.Session{Token: "tok", Email: "admin@sector17.com"}),
	}
	svc := NewService(authn)

	sess, err := svc.Login(context.Background(), "admin@sector17.com", "admin123")

	require.NoError(t, err)
	require.Equal(t, "tok", sess.Token)
	require.Equal(t, "admin@sector17.com", sess.Email)
	require.Equal(t, 1, authn.calls)
}

func TestLogin_EmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "admin123"},
		{name: "empty password", email: "admin@sector17.com", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authn := &mockAuthenticator{}
			svc := NewService(authn)

			_, err := svc.Login(context.Background(), tt.email, tt.password)

			require.ErrorIs(t, err, domadmin.ErrInvalidCredentials)
			require.Zero(t, authn.calls, "backend should not be asked")
		})
	}
}

func TestLogin_ForwardsEmailUnchanged(t *testing.T) {
	authn := &mockAuthenticator{
		result: gateway.Fail[domadmin.Session](domadmin.InvalidCredentialsMessage),
	}
	svc := NewService(authn)

	sess, err := svc.Login(context.Background(), " admin@sector17.com", "admin123")

	require.Nil(t, sess)
	require.ErrorIs(t, err, domadmin.ErrInvalidCredentials)
	require.Equal(t, 1, authn.calls)
	require.Equal(t, " admin@sector17.com", authn.email)
}

func TestLogin_FailureEnvelope(t *testing.T) {
	authn := &mockAuthenticator{
		result: gateway.Fail[domadmin.Session](domadmin.InvalidCredentialsMessage),
	}
	svc := NewService(authn)

	sess, err := svc.Login(context.Background(), "admin@sector17.com", "wrong")

	require.Nil(t, sess)
	require.ErrorIs(t, err, domadmin.ErrInvalidCredentials)
	require.Contains(t, err.Error(), domadmin.InvalidCredentialsMessage)
}

func TestLogin_SuccessWithoutToken(t *testing.T) {
	authn := &mockAuthenticator{result: gateway.OK(domadmin.Session{Email: "admin@sector17.com"})}
	svc := NewService(authn)

	_, err := svc.Login(context.Background(), "admin@sector17.com", "admin123")

	require.ErrorIs(t, err, domadmin.ErrInvalidCredentials)
}

func TestLogin_TransportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	authn := &mockAuthenticator{err: transportErr}
	svc := NewService(authn)

	_, err := svc.Login(context.Background(), "admin@sector17.com", "admin123")

	require.ErrorIs(t, err, transportErr)
	require.NotErrorIs(t, err, domadmin.ErrInvalidCredentials)
}
