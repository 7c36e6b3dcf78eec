package interp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// logc logs a message with the innermost frame attached.
func (i *Interpreter) logc(ctx context.Context, level slog.Level, msg string, args ...any) {
	// usually depth is 2, because logc is called from other functions
	i.logcWithCallerDepth(ctx, level, 2, msg, args...)
}

// for user, use logc instead of this function
func (i *Interpreter) logcWithCallerDepth(ctx context.Context, level slog.Level, depth int, msg string, args ...any) {
	if !i.logger.Enabled(ctx, level) {
		return
	}

	_, file, line, ok := runtime.Caller(depth)
	if ok {
		args = append([]any{slog.String("exec_pos", fmt.Sprintf("%s:%d", file, line))}, args...)
	}

	if f := i.stack.Top(); f != nil {
		contextArgs := []any{
			slog.Int("depth", i.stack.Len()),
			slog.String("scope", f.Scope.String()),
			slog.String("state", f.State.String()),
			slog.Int("operand", f.Operand),
		}
		args = append(contextArgs, args...)
	}

	i.logger.Log(ctx, level, msg, args...)
}
