package email

import (
	"context"
	"fmt"
	"log"
)

const notifySubject = "Your Unique Code to Join the Meeting"

// RespondentNotifier sends each new applicant their one-time access code
// (the responseId, delivered verbatim; the interview step looks it up).
type RespondentNotifier struct {
	Sender MailSender
}

func NewRespondentNotifier(sender MailSender) *RespondentNotifier {
	return &RespondentNotifier{Sender: sender}
}

// NotifyRespondent reports delivery failure as an ordinary error value so the
// caller records the outcome per response; it never aborts sibling sends.
// The send is bounded by ctx: SMTP has no native cancellation, so a timed-out
// dial is abandoned and reported as a failure.
func (n *RespondentNotifier) NotifyRespondent(ctx context.Context, to, responseID string) error {
	body := fmt.Sprintf("Here is your unique code to join the meeting: %s", responseID)

	done := make(chan error, 1)
	go func() {
		done <- n.Sender.Send(to, notifySubject, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("❌ [email] send failed to=%s responseId=%s: %v", to, responseID, err)
			return err
		}
		log.Printf("✅ [email] sent to=%s responseId=%s", to, responseID)
		return nil
	case <-ctx.Done():
		log.Printf("❌ [email] send timed out to=%s responseId=%s", to, responseID)
		return ctx.Err()
	}
}
