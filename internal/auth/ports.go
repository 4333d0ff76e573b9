package auth

type AuthServicePort interface {
	Login(username, password string) (string, error)
}

var _ AuthServicePort = (*AuthService)(nil)
var _ CredentialVerifier = (*EnvCredentialVerifier)(nil)
