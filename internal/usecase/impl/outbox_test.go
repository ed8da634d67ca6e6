package impl

import (
	"strconv"
	"testing"
	"time"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutbox(t *testing.T, buffer int) *outbox {
	t.Helper()

	o := newOutbox(buffer)
	t.Cleanup(o.close)

	return o
}

func TestOutbox_PreservesOrder(t *testing.T) {
	o := newTestOutbox(t, 0)

	kinds := []entity.MessageKind{
		entity.MessageInitialize,
		entity.MessageProcessing,
		entity.MessageLoading,
		entity.MessageLoaded,
	}
	for _, kind := range kinds {
		o.push(entity.Message{Kind: kind})
	}

	for _, kind := range kinds {
		assert.Equal(t, kind, nextMessage(t, o.messages()).Kind)
	}
}

func TestOutbox_CoalescesLoadingWhileConsumerIsBehind(t *testing.T) {
	o := newTestOutbox(t, 1)

	o.push(entity.Message{Kind: entity.MessageInitialize})
	require.Eventually(t, func() bool { return len(o.out) == 1 }, testTimeout, 5*time.Millisecond)

	o.push(entity.Message{Kind: entity.MessageProcessing})
	for i := range 5 {
		o.push(entity.Message{Kind: entity.MessageLoading, Text: strconv.Itoa(i)})
	}
	o.push(entity.Message{Kind: entity.MessageLoaded})

	messages := []entity.Message{
		nextMessage(t, o.messages()),
		nextMessage(t, o.messages()),
		nextMessage(t, o.messages()),
		nextMessage(t, o.messages()),
	}
	assert.Equal(t, []entity.MessageKind{
		entity.MessageInitialize,
		entity.MessageProcessing,
		entity.MessageLoading,
		entity.MessageLoaded,
	}, messageKinds(messages))
	assert.Equal(t, "4", messages[2].Text, "only the newest snapshot is kept")
	assertNoMessage(t, o.messages())
}

func TestOutbox_CapsBacklog(t *testing.T) {
	o := newTestOutbox(t, 1)

	total := maxOutboxBacklog * 2
	for i := range total {
		o.push(entity.Message{Kind: entity.MessageError, Text: strconv.Itoa(i)})
	}

	queued, dropped := o.backlog()
	assert.LessOrEqual(t, queued, maxOutboxBacklog)
	assert.Positive(t, dropped)

	var last entity.Message
	received := 0
	for last.Text != strconv.Itoa(total-1) {
		last = nextMessage(t, o.messages())
		received++
	}
	assert.LessOrEqual(t, received, maxOutboxBacklog+2, "one buffered and one in flight beyond the backlog")
}
