package logging

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func Test_FromContext_WithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	entry := log.NewEntry(logger).WithField("request-id", "1234")

	ctx := WithLogger(context.Background(), entry)
	current := FromContext(ctx, nil)
	assert.Contains(t, current.Data, "request-id")

	current.Info("hello")
	assert.Equal(t, 1, len(hook.Entries))
	assert.Equal(t, "hello", hook.LastEntry().Message)
}

func Test_FromContext_WithFallback(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fallback := log.NewEntry(logger).WithField("component", "staffomatic")

	current := FromContext(context.Background(), fallback)
	assert.Equal(t, fallback, current)
}

func Test_FromContext_WithNoLogger(t *testing.T) {
	current := FromContext(context.Background(), nil)
	assert.NotNil(t, current)
	assert.Equal(t, 0, len(current.Data))
}
