package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors logs the non-nil errs under "errors", keyed by their position.
// With no non-nil error the attribute is empty and dropped by handlers.
func Errors(errs ...error) slog.Attr {
	var group []slog.Attr
	for i, err := range errs {
		if err == nil {
			continue
		}
		group = append(group, slog.Any(strconv.Itoa(i), err))
	}
	if group == nil {
		return slog.Attr{}
	}
	return Group("errors", group...)
}

// Error logs err under "error"; a nil err yields an empty attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Strategy records the execution strategy under the key "strategy".
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Status records a validation status under the key "status".
func Status(status string) slog.Attr {
	return slog.String("status", status)
}

// Tag records the tag of a validated value under the key "tag".
// An empty tag yields an empty Attr.
func Tag(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("tag", tag)
}

// Constraint records a constraint name under the key "constraint".
func Constraint(name string) slog.Attr {
	return slog.String("constraint", name)
}

// InvocationID records a validation invocation identifier under the key "invocation_id".
// If id is nil, it returns an empty Attr.
func InvocationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("invocation_id", id)
}

// RunID records a bulk run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
