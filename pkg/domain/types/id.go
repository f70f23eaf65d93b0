package types

import "github.com/google/uuid"

func NewActivityID() ActivityID {
	return ActivityID(uuid.NewString())
}

func NewSummaryID() SummaryID {
	return SummaryID(uuid.NewString())
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}
