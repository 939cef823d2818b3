package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notified states for a stored response. "pending" only ever exists in the
// sync engine's in-memory working copy; the store sees "sent" or "failed".
const (
	NotifyPending = "pending"
	NotifySent    = "sent"
	NotifyFailed  = "failed"
)

// ApplicationForm is one tracked hiring application: the operator's original
// requirements, the generated artifacts, and every response observed so far.
type ApplicationForm struct {
	ID                    primitive.ObjectID        `bson:"_id,omitempty" json:"id,omitempty"`
	ApplicationName       string                    `bson:"applicationName" json:"applicationName"`
	FormID                string                    `bson:"formId" json:"formId"`
	FormURL               string                    `bson:"formUrl" json:"formUrl"`
	ApplicationFormReqs   string                    `bson:"applicationFormReqs" json:"applicationFormReqs"`
	InterviewQuestionReqs string                    `bson:"interviewQuestionReqs" json:"interviewQuestionReqs"`
	ReportReqs            string                    `bson:"reportReqs" json:"reportReqs"`
	ReportTemplate        *ReportTemplate           `bson:"reportTemplate,omitempty" json:"reportTemplate,omitempty"`
	InterviewQuestions    []InterviewQuestion       `bson:"interviewQuestions,omitempty" json:"interviewQuestions,omitempty"`
	Responses             map[string]ResponseRecord `bson:"responses,omitempty" json:"responses,omitempty"`
	CreatedAt             time.Time                 `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ResponseRecord is one candidate submission. Answers and SubmittedTime are
// immutable once written; only Notified transitions.
type ResponseRecord struct {
	SubmittedTime time.Time         `bson:"submittedTime" json:"submittedTime"`
	Answers       map[string]string `bson:"answers" json:"answers"`
	Notified      string            `bson:"notified" json:"notified"`
}

// RawResponse is a submission as returned by the form service, before
// question ids are resolved to titles.
type RawResponse struct {
	ResponseID    string
	SubmittedTime time.Time
	Answers       map[string][]string
}
