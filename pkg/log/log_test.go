package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("Training started",
		OperationKey, "fit",
		SamplesKey, 5,
		LabelsKey, 3,
	)

	if !logger.ContainsMessage("Training started") {
		t.Error("Expected captured message 'Training started'")
	}
	if !logger.ContainsField(OperationKey, "fit") {
		t.Error("Expected ml.operation=fit field")
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0]["level"] != "INFO" {
		t.Errorf("Expected INFO level, got %v", entries[0]["level"])
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	if logger.ContainsMessage("hidden") {
		t.Error("Messages below the minimum level should not be captured")
	}
	if !logger.ContainsMessage("visible") {
		t.Error("Warn message should be captured")
	}
	if buffer.Len() == 0 {
		t.Error("Buffer should contain the warn entry")
	}

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Debug should not be enabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("Error should be enabled at warn level")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	named := logger.With(ComponentKey, "multioutput.chain")
	named.Info("Chain fitted")

	testLogger, ok := named.(*TestLogger)
	if !ok {
		t.Fatal("With should return a *TestLogger")
	}
	if !testLogger.ContainsField(ComponentKey, "multioutput.chain") {
		t.Error("Pre-populated component field should appear in entries")
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.name); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("ToLogLevel should panic on an unknown level name")
		}
	}()
	ToLogLevel("verbose")
}

func TestErrFmtHandlerExtractsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Error("fit failed", ErrAttr(errors.New("boom")))

	out := buf.String()
	if !strings.Contains(out, `"`+StacktraceAttrKey+`"`) {
		t.Errorf("record should carry a %q attribute, got %s", StacktraceAttrKey, out)
	}
	if !strings.Contains(out, "log_test.go") {
		t.Errorf("stacktrace should name the logging call site, got %s", out)
	}
}

func TestErrFmtHandlerPassThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Info("scored", "count", 3)

	out := buf.String()
	if strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("records without an error field must not grow a stacktrace, got %s", out)
	}
	if !strings.Contains(out, `"count":3`) {
		t.Errorf("fields should pass through unchanged, got %s", out)
	}
}

func TestProviderSwap(t *testing.T) {
	testProvider, _ := NewTestLoggerProvider(LevelDebug)
	SetLoggerProvider(testProvider)
	defer SetLoggerProvider(newSlogProvider())

	logger := GetLoggerWithName("metrics")
	logger.Info("scored")

	if !testProvider.logger.ContainsField(ComponentKey, "metrics") {
		t.Error("Named logger should carry the component field")
	}
	if !testProvider.logger.ContainsMessage("scored") {
		t.Error("Message should be routed to the installed provider")
	}
}
