package controllers

import (
	"errors"
	"strconv"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/bcrypthash"
	"github.com/devtoolbox/devtoolbox/pkg/utils/pagination"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// ToolController serves the catalog and runs tool actions.
type ToolController struct {
	registry      domain.ToolRegistry
	paginator     *pagination.OffsetHandler
	maxBcryptCost int
}

type ToolControllerDependencies struct {
	Registry domain.ToolRegistry
	// MaxBcryptCost caps the bcrypt cost accepted over HTTP. Zero keeps
	// bcrypt's own limit.
	MaxBcryptCost int
}

func NewToolController(deps ToolControllerDependencies) *ToolController {
	return &ToolController{
		registry:      deps.Registry,
		paginator:     pagination.NewOffsetHandler(100, 100),
		maxBcryptCost: deps.MaxBcryptCost,
	}
}

type ListToolsResponse struct {
	Tools      []domain.Tool       `json:"tools"`
	Count      int                 `json:"count"`
	Pagination pagination.Metadata `json:"pagination"`
}

type ListCategoriesResponse struct {
	Categories []domain.CategoryCount `json:"categories"`
}

type ExecuteActionRequest struct {
	Settings domain.Item   `json:"settings"`
	Items    []domain.Item `json:"items"`
}

type ExecuteActionResponse struct {
	State  domain.WidgetState `json:"state"`
	Output domain.Item        `json:"output,omitempty"`
	Items  []domain.Item      `json:"items,omitempty"`
	Error  string             `json:"error,omitempty"`
	Kind   domain.ErrorKind   `json:"kind,omitempty"`
}

// Catalog answers the root page: ?tool=<id> selects one tool, otherwise the
// catalog is filtered by ?q= and ?category=.
func (c *ToolController) Catalog(ctx fiber.Ctx) error {
	if id := ctx.Query("tool"); id != "" {
		return c.respondWithTool(ctx, domain.ToolType(id))
	}

	return c.ListTools(ctx)
}

func (c *ToolController) ListTools(ctx fiber.Ctx) error {
	category := domain.Category(ctx.Query("category"))
	if category != "" && !category.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category")
	}

	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return err
	}

	offset, err := queryInt(ctx, "offset")
	if err != nil {
		return err
	}

	params, err := c.paginator.Normalize(pagination.Params{Limit: limit, Offset: offset})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tools := c.registry.Filter(ctx.Query("q"), category)
	page, metadata := pagination.Page(tools, params)

	return ctx.JSON(ListToolsResponse{
		Tools:      page,
		Count:      len(tools),
		Pagination: metadata,
	})
}

func queryInt(ctx fiber.Ctx, key string) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" must be a whole number")
	}

	return value, nil
}

func (c *ToolController) GetTool(ctx fiber.Ctx) error {
	return c.respondWithTool(ctx, domain.ToolType(ctx.Params("id")))
}

func (c *ToolController) ListCategories(ctx fiber.Ctx) error {
	return ctx.JSON(ListCategoriesResponse{
		Categories: c.registry.CategoryCounts(),
	})
}

func (c *ToolController) ExecuteAction(ctx fiber.Ctx) error {
	toolID := domain.ToolType(ctx.Params("id"))
	actionType := domain.ToolActionType(ctx.Params("action"))

	tool, err := c.registry.Lookup(toolID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, domain.ErrToolNotFound.Error())
	}

	if _, ok := tool.Action(actionType); !ok {
		return fiber.NewError(fiber.StatusNotFound, domain.ErrActionNotFound.Error())
	}

	var req ExecuteActionRequest

	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().Body(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	items := req.Items
	if len(items) == 0 {
		items = []domain.Item{req.Settings}
	}

	executor, err := c.registry.Select(ctx.RequestCtx(), domain.SelectToolParams{ToolType: toolID})
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, domain.ErrToolNotFound.Error())
	}

	log.Debug().
		Str("tool_id", string(toolID)).
		Str("action", string(actionType)).
		Int("item_count", len(items)).
		Msg("Executing tool action")

	runCtx := bcrypthash.WithMaxCost(ctx.RequestCtx(), c.maxBcryptCost)

	output, err := executor.Execute(runCtx, domain.ToolInput{
		ToolID:     toolID,
		ActionType: actionType,
		Items:      items,
	})
	if err != nil {
		toolErr := domain.AsToolError(err)

		if errors.Is(err, domain.ErrComputation) {
			log.Error().Err(err).Str("tool_id", string(toolID)).Str("action", string(actionType)).Msg("Tool action failed")
		}

		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ExecuteActionResponse{
			State: domain.WidgetState_Error,
			Error: toolErr.Message,
			Kind:  toolErr.Kind,
		})
	}

	return ctx.JSON(ExecuteActionResponse{
		State:  domain.WidgetState_ValidOutput,
		Output: output.First(),
		Items:  output.Items,
	})
}

func (c *ToolController) respondWithTool(ctx fiber.Ctx, id domain.ToolType) error {
	tool, err := c.registry.Lookup(id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, domain.ErrToolNotFound.Error())
	}

	return ctx.JSON(tool)
}
