package rsakeygen

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/youmark/pkcs8"
)

const (
	pemTypePublicKey           = "PUBLIC KEY"
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemTypeRSAPrivateKey       = "RSA PRIVATE KEY"
)

type RSAKeyGeneratorTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewRSAKeyGeneratorTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &RSAKeyGeneratorTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Generate, tool.Generate).
		AddPerItem(ToolActionType_Inspect, tool.Inspect)

	return tool
}

func (t *RSAKeyGeneratorTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type GenerateParams struct {
	Bits       int    `json:"bits"`
	Passphrase string `json:"passphrase"`
}

type InspectParams struct {
	PrivateKey string `json:"private_key"`
	Passphrase string `json:"passphrase"`
}

func (t *RSAKeyGeneratorTool) Generate(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := GenerateParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Generate))
	if err != nil {
		return nil, err
	}

	key, err := rsa.GenerateKey(rand.Reader, p.Bits)
	if err != nil {
		return nil, domain.NewComputationError(err, "Failed to generate key pair: %s", err)
	}

	// 4096 bit keys take long enough that the caller may have given up.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	privateDER, err := pkcs8.MarshalPrivateKey(key, []byte(p.Passphrase), nil)
	if err != nil {
		return nil, domain.NewComputationError(err, "Failed to encode private key: %s", err)
	}

	privateType := pemTypePrivateKey
	if p.Passphrase != "" {
		privateType = pemTypeEncryptedPrivateKey
	}

	publicPEM, fingerprint, err := encodePublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	privatePEM := string(pem.EncodeToMemory(&pem.Block{Type: privateType, Bytes: privateDER}))

	return domain.Item{
		"output":      publicPEM + "\n" + privatePEM,
		"public_key":  publicPEM,
		"private_key": privatePEM,
		"bits":        key.N.BitLen(),
		"encrypted":   p.Passphrase != "",
		"fingerprint": fingerprint,
	}, nil
}

func (t *RSAKeyGeneratorTool) Inspect(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := InspectParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Inspect))
	if err != nil {
		return nil, err
	}

	key, err := ParsePrivateKey(p.PrivateKey, p.Passphrase)
	if err != nil {
		return nil, err
	}

	publicPEM, fingerprint, err := encodePublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	return domain.Item{
		"output":      publicPEM,
		"public_key":  publicPEM,
		"bits":        key.N.BitLen(),
		"exponent":    key.E,
		"fingerprint": fingerprint,
	}, nil
}

// ParsePrivateKey decodes PKCS#8 (plain or encrypted) and PKCS#1 PEM keys.
func ParsePrivateKey(privateKeyPEM, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(privateKeyPEM)))
	if block == nil {
		return nil, domain.NewInvalidInputError("Invalid private key: no PEM block found")
	}

	var parsed any
	var err error

	switch block.Type {
	case pemTypeEncryptedPrivateKey:
		if passphrase == "" {
			return nil, domain.NewInvalidInputError("Passphrase is required for an encrypted private key")
		}

		parsed, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, domain.WrapInvalidInput(err, "Invalid private key: wrong passphrase or corrupted key")
		}
	case pemTypePrivateKey:
		parsed, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, domain.WrapInvalidInput(err, "Invalid private key: "+err.Error())
		}
	case pemTypeRSAPrivateKey:
		parsed, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, domain.WrapInvalidInput(err, "Invalid private key: "+err.Error())
		}
	default:
		return nil, domain.NewInvalidInputError("Invalid private key: unsupported PEM type %q", block.Type)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, domain.NewInvalidInputError("Invalid private key: not an RSA key")
	}

	return key, nil
}

// encodePublicKey returns the SPKI PEM of key and the SHA-256 fingerprint of its DER bytes.
func encodePublicKey(key *rsa.PublicKey) (string, string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", "", domain.NewComputationError(err, "Failed to encode public key: %s", err)
	}

	sum := sha256.Sum256(der)
	fingerprint := "SHA256:" + base64.RawStdEncoding.EncodeToString(sum[:])

	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der})), fingerprint, nil
}
