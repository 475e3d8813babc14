package audit

import (
	"context"
	"testing"

	"school-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewZapLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: "admin-1", StaffID: "staff-1", Role: "admin"})

	l.Log(ctx, Entry{
		Action:  "SALARY_PERIOD_PAID",
		Message: "salary period marked as paid",
		Meta:    map[string]any{"month": 5},
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		e := entries[0]
		assert.Equal(t, "audit", e.LoggerName)
		fields := e.ContextMap()
		assert.Equal(t, "SALARY_PERIOD_PAID", fields["action"])
		assert.Equal(t, "rid-9", fields["request_id"])
		assert.Equal(t, "admin-1", fields["actor_id"])
		assert.Equal(t, "admin", fields["actor_role"])
	}
}
