package domain

import (
	"context"
	"sync"
)

type WidgetState string

const (
	WidgetState_Idle        WidgetState = "idle"
	WidgetState_ValidOutput WidgetState = "valid_output"
	WidgetState_Error       WidgetState = "error"
)

type WidgetSnapshot struct {
	ToolID     ToolType       `json:"tool_id"`
	ActionType ToolActionType `json:"action_type"`
	State      WidgetState    `json:"state"`
	Output     Item           `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
	ErrorKind  ErrorKind      `json:"kind,omitempty"`
}

// Widget holds the transient state of one open tool. Invocations are numbered
// when they start; a result is only applied if no later invocation has been
// applied already, so a slow early call can never overwrite a newer result.
type Widget struct {
	mtx        sync.Mutex
	tool       Tool
	executor   ToolExecutor
	actionType ToolActionType

	state     WidgetState
	output    Item
	err       *ToolError
	issuedSeq uint64
	shownSeq  uint64
}

func NewWidget(tool Tool, executor ToolExecutor) *Widget {
	return &Widget{
		tool:       tool,
		executor:   executor,
		actionType: tool.DefaultAction().ActionType,
		state:      WidgetState_Idle,
	}
}

func (w *Widget) Tool() Tool {
	return w.tool
}

func (w *Widget) ActionType() ToolActionType {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.actionType
}

// SelectAction switches the active action and returns the widget to idle.
func (w *Widget) SelectAction(actionType ToolActionType) error {
	if _, ok := w.tool.Action(actionType); !ok {
		return NewUnsupportedOperationError("%s does not support action %q", w.tool.Name, actionType)
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.actionType = actionType
	w.resetLocked()

	return nil
}

func (w *Widget) Reset() {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.resetLocked()
}

func (w *Widget) resetLocked() {
	w.state = WidgetState_Idle
	w.output = nil
	w.err = nil
	// Results still in flight belong to the old inputs.
	w.shownSeq = w.issuedSeq
}

// Apply runs the active action against settings. The returned snapshot is the
// widget state after the call, and applied is false when the result was stale.
func (w *Widget) Apply(ctx context.Context, settings Item) (snapshot WidgetSnapshot, applied bool) {
	w.mtx.Lock()
	w.issuedSeq++
	seq := w.issuedSeq
	actionType := w.actionType
	w.mtx.Unlock()

	output, err := w.executor.Execute(ctx, ToolInput{
		ToolID:     w.tool.ID,
		ActionType: actionType,
		Items:      []Item{settings},
	})

	w.mtx.Lock()
	defer w.mtx.Unlock()

	if seq <= w.shownSeq || actionType != w.actionType {
		return w.snapshotLocked(), false
	}

	w.shownSeq = seq

	if err != nil {
		w.state = WidgetState_Error
		w.output = nil
		w.err = AsToolError(err)

		return w.snapshotLocked(), true
	}

	w.state = WidgetState_ValidOutput
	w.output = output.First()
	w.err = nil

	return w.snapshotLocked(), true
}

func (w *Widget) Snapshot() WidgetSnapshot {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.snapshotLocked()
}

func (w *Widget) snapshotLocked() WidgetSnapshot {
	snapshot := WidgetSnapshot{
		ToolID:     w.tool.ID,
		ActionType: w.actionType,
		State:      w.state,
		Output:     w.output,
	}

	if w.err != nil {
		snapshot.Error = w.err.Message
		snapshot.ErrorKind = w.err.Kind
	}

	return snapshot
}
