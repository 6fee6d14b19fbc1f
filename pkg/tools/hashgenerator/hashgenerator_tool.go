package hashgenerator

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"hash"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"golang.org/x/crypto/sha3"
)

var algorithms = map[string]func() hash.Hash{
	"SHA-1":    sha1.New,
	"SHA-256":  sha256.New,
	"SHA-384":  sha512.New384,
	"SHA-512":  sha512.New,
	"SHA3-256": sha3.New256,
	"SHA3-512": sha3.New512,
}

type HashGeneratorTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewHashGeneratorTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &HashGeneratorTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Hash, tool.Hash).
		AddPerItem(ToolActionType_HMAC, tool.HMAC)

	return tool
}

func (t *HashGeneratorTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type HashParams struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm"`
	Encoding  string `json:"encoding"`
}

type HMACParams struct {
	Text      string `json:"text"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Encoding  string `json:"encoding"`
}

func (t *HashGeneratorTool) Hash(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := HashParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Hash))
	if err != nil {
		return nil, err
	}

	newHash, err := lookup(p.Algorithm)
	if err != nil {
		return nil, err
	}

	h := newHash()
	h.Write([]byte(p.Text))

	return digestItem(p.Algorithm, p.Encoding, h.Sum(nil)), nil
}

func (t *HashGeneratorTool) HMAC(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := HMACParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_HMAC))
	if err != nil {
		return nil, err
	}

	newHash, err := lookup(p.Algorithm)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(newHash, []byte(p.Key))
	mac.Write([]byte(p.Text))

	return digestItem("HMAC-"+p.Algorithm, p.Encoding, mac.Sum(nil)), nil
}

func lookup(algorithm string) (func() hash.Hash, error) {
	if algorithm == "MD5" {
		return nil, domain.NewUnsupportedOperationError("MD5 is not supported because it is cryptographically broken; use SHA-256 or stronger")
	}

	newHash, ok := algorithms[algorithm]
	if !ok {
		return nil, domain.NewUnsupportedOperationError("%s is not supported", algorithm)
	}

	return newHash, nil
}

func digestItem(algorithm, encoding string, sum []byte) domain.Item {
	var output string
	if encoding == "base64" {
		output = base64.StdEncoding.EncodeToString(sum)
	} else {
		output = hex.EncodeToString(sum)
	}

	return domain.Item{
		"output":    output,
		"algorithm": algorithm,
		"bits":      len(sum) * 8,
	}
}
