package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fiorellalancissi/Vittorea/internal/application/auth"
	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	pkgjwt "github.com/fiorellalancissi/Vittorea/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "vittorea-test",
}

func bcryptVerifier(t *testing.T, username, password string) auth.BcryptVerifier {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.BcryptVerifier{Username: username, PasswordHash: string(hash)}
}

// Credenciales correctas: token firmado con el usuario en los claims.
func TestLogin_CredencialesValidas(t *testing.T) {
	uc := auth.NewAuthUseCase(bcryptVerifier(t, "admin", "secreta123"), testJWTCfg)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Success)
	assert.Equal(t, "admin", out.Username)
	require.NotEmpty(t, out.Token)

	username, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

// El rechazo es un resultado estructurado, no un error.
func TestLogin_CredencialesInvalidasNoSonError(t *testing.T) {
	uc := auth.NewAuthUseCase(bcryptVerifier(t, "admin", "secreta123"), testJWTCfg)

	cases := []dto.LoginRequest{
		{Username: "admin", Password: "incorrecta"},
		{Username: "otro", Password: "secreta123"},
		{Username: "", Password: ""},
	}
	for _, in := range cases {
		out, err := uc.Login(in)
		require.NoError(t, err, "el fallo de autenticación no debe ser un error")
		require.NotNil(t, out)
		assert.False(t, out.Success)
		assert.Empty(t, out.Token)
		assert.NotEmpty(t, out.Message)
	}
}

// El verificador en claro solo acepta si hay contraseña configurada.
func TestPlainVerifier(t *testing.T) {
	v := auth.PlainVerifier{Username: "admin", Password: "clave"}
	assert.True(t, v.Verify("admin", "clave"))
	assert.False(t, v.Verify("admin", "otra"))
	assert.False(t, v.Verify("otro", "clave"))

	empty := auth.PlainVerifier{Username: "admin", Password: ""}
	assert.False(t, empty.Verify("admin", ""),
		"sin contraseña configurada nunca debe autenticar")
}
