package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/infra"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/safe"
)

// DefaultEndpoint is the EmailJS REST endpoint for sending a templated email
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// maxErrorBody bounds how much of a failed response is kept for diagnostics
const maxErrorBody = 4096

type Client struct {
	endpoint   string
	httpClient infra.HTTPClient
}

var _ interfaces.EmailRelay = (*Client)(nil)

func New(endpoint string, httpClient infra.HTTPClient) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

type sendRequest struct {
	ServiceID      types.EmailServiceID  `json:"service_id"`
	TemplateID     types.EmailTemplateID `json:"template_id"`
	UserID         types.EmailPublicKey  `json:"user_id"`
	AccessToken    string                `json:"accessToken,omitempty"`
	TemplateParams map[string]string     `json:"template_params"`
}

// Send posts the template parameters to the relay. Only HTTP 200 counts as delivered.
func (x *Client) Send(ctx context.Context, input *interfaces.SendEmailInput) error {
	if input == nil || input.Config == nil {
		return goerr.Wrap(types.ErrInvalidOption, "email dispatch config is required")
	}
	if err := input.Config.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(&sendRequest{
		ServiceID:      input.Config.ServiceID,
		TemplateID:     input.Config.TemplateID,
		UserID:         input.Config.PublicKey,
		AccessToken:    string(input.Config.AccessToken),
		TemplateParams: input.Params,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create email request", goerr.V("endpoint", x.endpoint))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send email request", goerr.V("endpoint", x.endpoint))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.New("email relay rejected the request",
			goerr.V("endpoint", x.endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	logging.From(ctx).Info("Email relayed",
		slog.Any("serviceID", input.Config.ServiceID),
		slog.Any("templateID", input.Config.TemplateID),
	)

	return nil
}
