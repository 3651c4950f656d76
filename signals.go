package octet

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for adapter events.
var (
	SignalExtractStart    = capitan.NewSignal("octet.extract.start", "Extraction beginning")
	SignalExtractComplete = capitan.NewSignal("octet.extract.complete", "Extraction finished")
	SignalRespondComplete = capitan.NewSignal("octet.respond.complete", "Response constructed")
)

// Keys for typed event data.
var (
	KeyFormat   = capitan.NewStringKey("format")
	KeyTypeName = capitan.NewStringKey("type_name")
	KeySize     = capitan.NewIntKey("size")
	KeyStatus   = capitan.NewIntKey("status")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitExtractStart emits an event when extraction begins.
func emitExtractStart(ctx context.Context, format, typeName string) {
	capitan.Emit(ctx, SignalExtractStart,
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
	)
}

// emitExtractComplete emits an event when extraction finishes.
func emitExtractComplete(ctx context.Context, format, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalExtractComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalExtractComplete, fields...)
	}
}

// emitRespondComplete emits an event when a response has been built.
func emitRespondComplete(ctx context.Context, format, typeName string, status, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeyStatus.Field(status),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRespondComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRespondComplete, fields...)
	}
}
