package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers return an empty Attr for zero values so call sites stay
// free of nil checks; slog drops empty attrs.

// Error attaches err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed reports the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Request attributes.

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr { return slog.String("method", method) }

func Path(path string) slog.Attr { return slog.String("path", path) }

func StatusCode(code int) slog.Attr { return slog.Int("status_code", code) }

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count is a counter under a caller-chosen key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Catalog attributes.

func Catalog(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("catalog", name)
}

// KeyPath is a dotted catalog key such as "address.city".
func KeyPath(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("key_path", path)
}

// Locale accepts catalog.Locale or a plain string.
func Locale[T ~string](locale T) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", string(locale))
}
