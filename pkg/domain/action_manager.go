package domain

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

type ActionFuncPerItem func(ctx context.Context, input ToolInput, item Item) (Item, error)

type ToolActionManager struct {
	mtx                sync.RWMutex
	actionFuncsPerItem map[ToolActionType]ActionFuncPerItem
}

func NewToolActionManager() *ToolActionManager {
	return &ToolActionManager{
		actionFuncsPerItem: make(map[ToolActionType]ActionFuncPerItem),
	}
}

func (m *ToolActionManager) AddPerItem(actionType ToolActionType, actionFunc ActionFuncPerItem) *ToolActionManager {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.actionFuncsPerItem[actionType] = actionFunc

	return m
}

func (m *ToolActionManager) GetPerItem(actionType ToolActionType) (ActionFuncPerItem, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	actionFunc, ok := m.actionFuncsPerItem[actionType]
	return actionFunc, ok
}

// Run applies the action to every input item in order. An input without
// items runs the action once against an empty item so declared defaults apply.
func (m *ToolActionManager) Run(ctx context.Context, actionType ToolActionType, input ToolInput) (ToolOutput, error) {
	actionFunc, ok := m.GetPerItem(actionType)
	if !ok {
		return ToolOutput{}, fmt.Errorf("%w: %s", ErrActionNotFound, actionType)
	}

	items := input.Items
	if len(items) == 0 {
		items = []Item{{}}
	}

	outputs := make([]Item, 0, len(items))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return ToolOutput{}, err
		}

		if item == nil {
			item = Item{}
		}

		output, err := runSafely(ctx, actionFunc, input, item)
		if err != nil {
			return ToolOutput{}, err
		}

		outputs = append(outputs, output)
	}

	return ToolOutput{
		Items: outputs,
	}, nil
}

func runSafely(ctx context.Context, actionFunc ActionFuncPerItem, input ToolInput, item Item) (output Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("tool_id", string(input.ToolID)).
				Str("action_type", string(input.ActionType)).
				Str("stack", string(debug.Stack())).
				Msgf("recovered from panic in tool action: %v", r)

			output = nil
			err = NewComputationError(fmt.Errorf("panic: %v", r), "Unexpected error while computing the result")
		}
	}()

	return actionFunc(ctx, input, item)
}
