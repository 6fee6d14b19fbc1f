package jwtdecoder

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
)

type JWTDecoderTool struct {
	binder         domain.ToolParameterBinder
	tokenGenerator *TokenGenerator
	actionManager  *domain.ToolActionManager
}

func NewJWTDecoderTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &JWTDecoderTool{
		binder:         deps.ParameterBinder,
		tokenGenerator: NewTokenGenerator(),
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Decode, tool.Decode).
		AddPerItem(ToolActionType_Sign, tool.Sign).
		AddPerItem(ToolActionType_Verify, tool.Verify)

	return tool
}

func (t *JWTDecoderTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type DecodeParams struct {
	Token string `json:"token"`
}

type SignParams struct {
	Payload       string `json:"payload"`
	Secret        string `json:"secret"`
	Algorithm     string `json:"algorithm"`
	ExpireSeconds int64  `json:"expire_seconds"`
	IssuedAt      bool   `json:"issued_at"`
}

type VerifyParams struct {
	Token  string `json:"token"`
	Secret string `json:"secret"`
}

// DecodedToken holds the two JSON segments of a token in their original form.
type DecodedToken struct {
	Header    gjson.Result
	Payload   gjson.Result
	Signature string
}

func (t *JWTDecoderTool) Decode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := DecodeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Decode))
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeToken(p.Token)
	if err != nil {
		return nil, err
	}

	header, err := toolkit.DecodeJSON(decoded.Header.Raw)
	if err != nil {
		return nil, err
	}

	payload, err := toolkit.DecodeJSON(decoded.Payload.Raw)
	if err != nil {
		return nil, err
	}

	combined := `{"header":` + decoded.Header.Raw + `,"payload":` + decoded.Payload.Raw + `}`

	result := domain.Item{
		"output":    toolkit.PrettyJSON([]byte(combined)),
		"header":    header,
		"payload":   payload,
		"signature": decoded.Signature,
		"algorithm": decoded.Header.Get("alg").String(),
	}

	if exp := decoded.Payload.Get("exp"); exp.Type == gjson.Number {
		expiresAt := time.Unix(exp.Int(), 0).UTC()

		result["expires_at"] = expiresAt.Format(time.RFC3339)
		result["expired"] = !t.tokenGenerator.now().Before(expiresAt)
	}

	if iat := decoded.Payload.Get("iat"); iat.Type == gjson.Number {
		result["issued_at"] = time.Unix(iat.Int(), 0).UTC().Format(time.RFC3339)
	}

	return result, nil
}

func (t *JWTDecoderTool) Sign(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := SignParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Sign))
	if err != nil {
		return nil, err
	}

	claims := map[string]any{}

	if err := json.Unmarshal([]byte(p.Payload), &claims); err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid JSON: payload must be a JSON object")
	}

	token, err := t.tokenGenerator.Sign(SignOptions{
		Algorithm:   p.Algorithm,
		Secret:      p.Secret,
		Claims:      claims,
		ExpiresIn:   time.Duration(p.ExpireSeconds) * time.Second,
		SetIssuedAt: p.IssuedAt,
	})
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid signing key: "+err.Error())
	}

	return domain.Item{
		"output":    token,
		"algorithm": p.Algorithm,
	}, nil
}

func (t *JWTDecoderTool) Verify(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := VerifyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Verify))
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeToken(p.Token)
	if err != nil {
		return nil, err
	}

	algorithm := decoded.Header.Get("alg").String()

	_, err = t.tokenGenerator.Verify(strings.TrimSpace(p.Token), p.Secret)
	if err != nil {
		return domain.Item{
			"output":    "Invalid signature or claims",
			"valid":     false,
			"reason":    verificationFailure(err),
			"algorithm": algorithm,
		}, nil
	}

	return domain.Item{
		"output":    "Signature verified",
		"valid":     true,
		"algorithm": algorithm,
	}, nil
}

// DecodeToken splits a compact JWT and decodes its header and payload
// without verifying the signature.
func DecodeToken(token string) (DecodedToken, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return DecodedToken{}, domain.NewInvalidInputError("Invalid JWT format: expected 3 parts separated by dots")
	}

	parser := jwt.NewParser(jwt.WithPaddingAllowed())

	header, err := decodeSegment(parser, parts[0], "header")
	if err != nil {
		return DecodedToken{}, err
	}

	payload, err := decodeSegment(parser, parts[1], "payload")
	if err != nil {
		return DecodedToken{}, err
	}

	return DecodedToken{
		Header:    header,
		Payload:   payload,
		Signature: parts[2],
	}, nil
}

func decodeSegment(parser *jwt.Parser, segment string, name string) (gjson.Result, error) {
	raw, err := parser.DecodeSegment(segment)
	if err != nil {
		return gjson.Result{}, domain.WrapInvalidInput(err, "Invalid JWT format: "+name+" is not valid base64url")
	}

	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, domain.NewInvalidInputError("Invalid JWT format: %s is not valid JSON", name)
	}

	result := gjson.ParseBytes(raw)
	if !result.IsObject() {
		return gjson.Result{}, domain.NewInvalidInputError("Invalid JWT format: %s is not a JSON object", name)
	}

	return result, nil
}

func verificationFailure(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature is invalid"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token is expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token is not valid yet"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token is unverifiable: " + err.Error()
	}

	return err.Error()
}
