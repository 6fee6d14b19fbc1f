package jwtdecoder

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type keyParser func([]byte) (any, error)

// TokenGenerator signs and verifies tokens. Keys are parsed according to the
// algorithm family: HMAC algorithms use the secret bytes directly, the rest
// expect PEM encoded keys.
type TokenGenerator struct {
	signingKeyParsers      map[string]keyParser
	verificationKeyParsers map[string]keyParser
	now                    func() time.Time
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{
		signingKeyParsers: map[string]keyParser{
			"HS": func(secret []byte) (any, error) { return secret, nil },
			"RS": func(secret []byte) (any, error) { return jwt.ParseRSAPrivateKeyFromPEM(secret) },
			"ES": func(secret []byte) (any, error) { return jwt.ParseECPrivateKeyFromPEM(secret) },
		},
		verificationKeyParsers: map[string]keyParser{
			"HS": func(secret []byte) (any, error) { return secret, nil },
			"RS": func(secret []byte) (any, error) { return jwt.ParseRSAPublicKeyFromPEM(secret) },
			"ES": func(secret []byte) (any, error) { return jwt.ParseECPublicKeyFromPEM(secret) },
		},
		now: time.Now,
	}
}

type SignOptions struct {
	Algorithm   string
	Secret      string
	Claims      map[string]any
	ExpiresIn   time.Duration
	SetIssuedAt bool
}

func (g *TokenGenerator) Sign(opts SignOptions) (string, error) {
	signingMethod := jwt.GetSigningMethod(opts.Algorithm)
	if signingMethod == nil {
		return "", fmt.Errorf("unsupported algorithm: %s", opts.Algorithm)
	}

	key, err := parseKey(g.signingKeyParsers, opts.Algorithm, []byte(opts.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to parse key for algorithm %s: %w", opts.Algorithm, err)
	}

	claims := jwt.MapClaims{}
	for k, v := range opts.Claims {
		claims[k] = v
	}

	now := g.now()

	if opts.SetIssuedAt {
		claims["iat"] = now.Unix()
	}

	if opts.ExpiresIn > 0 {
		claims["exp"] = now.Add(opts.ExpiresIn).Unix()
	}

	token := jwt.NewWithClaims(signingMethod, claims)

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token's signature with secret, using the algorithm the
// token declares. exp and nbf are validated against the generator's clock.
func (g *TokenGenerator) Verify(tokenString string, secret string) (*jwt.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods(supportedAlgorithms()),
		jwt.WithTimeFunc(g.now),
	)

	return parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return parseKey(g.verificationKeyParsers, token.Method.Alg(), []byte(secret))
	})
}

func parseKey(parsers map[string]keyParser, algorithm string, secret []byte) (any, error) {
	for prefix, parser := range parsers {
		if strings.HasPrefix(algorithm, prefix) {
			return parser(secret)
		}
	}

	return nil, fmt.Errorf("unsupported algorithm: %s", algorithm)
}

func supportedAlgorithms() []string {
	algorithms := make([]string, 0, len(algorithmOptions))
	for _, option := range algorithmOptions {
		algorithms = append(algorithms, option.Value.(string))
	}
	return algorithms
}
