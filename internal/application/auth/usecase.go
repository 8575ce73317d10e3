// Package auth autenticación del back-office: un solo operador, sin registro.
package auth

import (
	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// CredentialVerifier valida el par usuario/contraseña del operador.
// Se inyecta para que el caso de uso no conozca de dónde salen las
// credenciales ni cómo están almacenadas.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// BcryptVerifier compara contra un hash bcrypt de la contraseña del operador.
type BcryptVerifier struct {
	Username     string
	PasswordHash string
}

// Verify compara usuario en claro y contraseña contra el hash.
func (v BcryptVerifier) Verify(username, password string) bool {
	if username != v.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
}

// PlainVerifier compara contra credenciales en claro tomadas de la
// configuración. Pensado para entornos de desarrollo sin hash generado.
type PlainVerifier struct {
	Username string
	Password string
}

// Verify compara ambos valores en claro.
func (v PlainVerifier) Verify(username, password string) bool {
	return v.Password != "" && username == v.Username && password == v.Password
}

var (
	_ CredentialVerifier = BcryptVerifier{}
	_ CredentialVerifier = PlainVerifier{}
)

// AuthUseCase caso de uso de login del operador.
type AuthUseCase struct {
	verifier CredentialVerifier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(verifier CredentialVerifier, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, jwtCfg: jwtCfg}
}

// Login valida credenciales y genera el JWT de sesión.
// El rechazo es un resultado estructurado, no un error: credenciales
// inválidas devuelven Success en false con mensaje para el operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResult, error) {
	if !uc.verifier.Verify(in.Username, in.Password) {
		return &dto.LoginResult{
			Success: false,
			Message: "Usuario o contraseña incorrectos",
		}, nil
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{
		Success:  true,
		Message:  "Sesión iniciada",
		Token:    token,
		Username: in.Username,
	}, nil
}
