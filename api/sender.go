package api

import (
	"vincit.fi/image-matrix/api/apitype"
)

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type Topic string

const (
	ProcessStatusUpdated Topic = "process-status-updated"
	ShowError            Topic = "show-error"
)

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int

	apitype.NotThrottled
}

type ErrorCommand struct {
	Message string

	apitype.NotThrottled
}
