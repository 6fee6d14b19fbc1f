package bcrypthash

import (
	"context"
	"errors"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"golang.org/x/crypto/bcrypt"
)

type maxCostKey struct{}

// WithMaxCost lowers the highest cost Hash accepts for calls made with the
// returned context. Values outside bcrypt's own range are ignored.
func WithMaxCost(ctx context.Context, cost int) context.Context {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return ctx
	}

	return context.WithValue(ctx, maxCostKey{}, cost)
}

func maxCost(ctx context.Context) int {
	if cost, ok := ctx.Value(maxCostKey{}).(int); ok {
		return cost
	}

	return bcrypt.MaxCost
}

type BcryptTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewBcryptTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &BcryptTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Hash, tool.Hash).
		AddPerItem(ToolActionType_Verify, tool.Verify)

	return tool
}

func (t *BcryptTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type HashParams struct {
	Password string `json:"password"`
	Cost     int    `json:"cost"`
}

type VerifyParams struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

func (t *BcryptTool) Hash(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := HashParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Hash))
	if err != nil {
		return nil, err
	}

	if limit := maxCost(ctx); p.Cost > limit {
		return nil, domain.NewInvalidInputError("Cost must be between %d and %d", bcrypt.MinCost, limit)
	}

	hashed, err := generate(ctx, []byte(p.Password), p.Cost)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, domain.NewComputationError(ctxErr, "Hashing was cancelled")
		}

		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.WrapInvalidInput(err, "Password must not be longer than 72 bytes")
		}

		return nil, domain.NewComputationError(err, "Failed to hash password: %s", err)
	}

	return domain.Item{
		"output": string(hashed),
		"cost":   p.Cost,
	}, nil
}

type hashResult struct {
	hash []byte
	err  error
}

// generate stops waiting when ctx is done. The hash itself cannot be
// interrupted and finishes in the background.
func generate(ctx context.Context, password []byte, cost int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan hashResult, 1)
	go func() {
		hash, err := bcrypt.GenerateFromPassword(password, cost)
		done <- hashResult{hash: hash, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-done:
		return result.hash, result.err
	}
}

func (t *BcryptTool) Verify(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := VerifyParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Verify))
	if err != nil {
		return nil, err
	}

	hashed := []byte(strings.TrimSpace(p.Hash))

	cost, err := bcrypt.Cost(hashed)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid bcrypt hash")
	}

	err = bcrypt.CompareHashAndPassword(hashed, []byte(p.Password))
	switch {
	case err == nil:
		return domain.Item{"output": "Password matches", "valid": true, "cost": cost}, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.Item{"output": "Password does not match", "valid": false, "cost": cost}, nil
	default:
		return nil, domain.WrapInvalidInput(err, "Invalid bcrypt hash")
	}
}
