package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, subject, body string
	err               error
	block             chan struct{}
}

func (f *fakeSender) Send(to, subject, body string) error {
	if f.block != nil {
		<-f.block
	}
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func TestNotifyRespondentSendsAccessCode(t *testing.T) {
	sender := &fakeSender{}
	n := NewRespondentNotifier(sender)

	require.NoError(t, n.NotifyRespondent(context.Background(), "a@x.com", "RESP-42"))

	assert.Equal(t, "a@x.com", sender.to)
	assert.Equal(t, notifySubject, sender.subject)
	assert.Contains(t, sender.body, "RESP-42", "the responseId is the access code")
}

func TestNotifyRespondentReturnsDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: mailbox unavailable")}
	n := NewRespondentNotifier(sender)

	err := n.NotifyRespondent(context.Background(), "bad@x.com", "RESP-1")
	assert.Error(t, err)
}

func TestNotifyRespondentTimesOut(t *testing.T) {
	sender := &fakeSender{block: make(chan struct{})}
	defer close(sender.block)
	n := NewRespondentNotifier(sender)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := n.NotifyRespondent(ctx, "slow@x.com", "RESP-9")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
