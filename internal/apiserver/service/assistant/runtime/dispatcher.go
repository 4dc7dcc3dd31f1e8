package runtime

import (
	"context"
	"fmt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/catalog"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/pkg/logger"
)

// Handler executes one tool call for the acting user and returns the
// result payload.
type Handler func(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error)

// Dispatcher maps normalized tool calls to domain operations. Failures are
// isolated per call: a panicking or erroring handler yields a failed
// ToolResult, never an aborted turn.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher builds the name-to-handler table from the toolset and
// validates it against the catalog, failing fast on any mismatch.
func NewDispatcher(ts *Toolset) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: map[string]Handler{
			"add_meal":            ts.AddMeal,
			"update_meal":         ts.UpdateMeal,
			"delete_meal":         ts.DeleteMeal,
			"add_workout":         ts.AddWorkout,
			"add_water":           ts.AddWater,
			"add_weight":          ts.AddWeight,
			"set_goal":            ts.SetGoal,
			"update_profile":      ts.UpdateProfile,
			"search_food":         ts.SearchFood,
			"get_daily_summary":   ts.GetDailySummary,
			"get_weekly_summary":  ts.GetWeeklySummary,
			"save_favorite_food":  ts.SaveFavoriteFood,
			"list_favorite_foods": ts.ListFavoriteFoods,
		},
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// validate checks catalog/handler parity in both directions.
func (d *Dispatcher) validate() error {
	for _, spec := range catalog.List() {
		if _, ok := d.handlers[spec.Name]; !ok {
			return fmt.Errorf("catalog tool %q has no handler", spec.Name)
		}
	}
	for name := range d.handlers {
		if catalog.Lookup(name) == nil {
			return fmt.Errorf("handler %q has no catalog entry", name)
		}
	}
	return nil
}

// Dispatch executes the calls one at a time in call order and returns one
// result per call. Handlers read-modify-write shared aggregates (the profile
// in particular), so calls within a turn must not overlap.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, calls []*entity.ToolCall) []*entity.ToolResult {
	if len(calls) == 0 {
		return nil
	}

	results := make([]*entity.ToolResult, len(calls))
	for i, call := range calls {
		results[i] = d.dispatchOne(ctx, userID, call)
	}
	return results
}

func (d *Dispatcher) dispatchOne(ctx context.Context, userID string, call *entity.ToolCall) (res *entity.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Dispatcher] tool %q panicked: %v", call.Name, r)
			res = entity.FailedResult(call.ID, fmt.Sprintf("tool %s failed: %v", call.Name, r))
		}
	}()

	handler, ok := d.handlers[call.Name]
	if !ok {
		return entity.FailedResult(call.ID, "Unknown tool: "+call.Name)
	}

	// Arguments are untrusted vendor output; check them against the spec
	// before the handler sees them.
	if spec := catalog.Lookup(call.Name); spec != nil {
		if err := spec.ValidateArgs(call.Arguments); err != nil {
			return entity.FailedResult(call.ID, err.Error())
		}
	}

	payload, err := handler(ctx, userID, call.Arguments)
	if err != nil {
		logger.Warn("[Dispatcher] tool %q failed: %v", call.Name, err)
		return entity.FailedResult(call.ID, err.Error())
	}
	return entity.OKResult(call.ID, payload)
}
