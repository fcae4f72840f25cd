package models

type FeedbackStatus string

const (
	FeedbackApproved FeedbackStatus = "APPROVED"
	FeedbackRejected FeedbackStatus = "REJECTED"
)

func (s FeedbackStatus) IsFinal() bool {
	return s == FeedbackApproved || s == FeedbackRejected
}

type VideoStatus string

const (
	VideoStatusNone      VideoStatus = "none"
	VideoStatusRequested VideoStatus = "requested"
	VideoStatusReceived  VideoStatus = "received"
)
