package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	config "github.com/Davi-Bueno/api-vendas/configs"
)

const TokenTTL = 24 * time.Hour

var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims is the payload carried by every session token. Timestamp is the
// issuance instant in Unix milliseconds.
type Claims struct {
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.LoadServerConfig().Secret)
}

// GerarToken signs a session token for username, valid for 24 hours.
func GerarToken(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		Username:  username,
		Timestamp: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// VerificarToken validates signature and expiry, returning the decoded
// claims. Failures collapse into ErrTokenExpirado or ErrTokenInvalido.
func VerificarToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return secret(), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	if !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}

// tokenTTLRestante reports how long a token remains valid, so blacklist
// entries can expire together with the token itself. Unparseable tokens get
// the full window.
func tokenTTLRestante(tokenString string) time.Duration {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil || claims.ExpiresAt == nil {
		return TokenTTL
	}

	restante := time.Until(claims.ExpiresAt.Time)
	if restante <= 0 {
		return time.Minute
	}
	return restante
}
