package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubUsername   string
	GitHubToken      string
	EmailServiceID   string
	EmailTemplateID  string
	EmailPublicKey   string
	EmailAccessToken string
	RequestID        string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x EmailAccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x EmailAccessToken) String() string {
	return "***********"
}
