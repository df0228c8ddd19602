package config

import (
	"log/slog"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/infra"
	"github.com/sujeeth-infosec/portfolio/pkg/infra/emailjs"
	"github.com/urfave/cli/v3"
)

type EmailJS struct {
	serviceID   types.EmailServiceID
	templateID  types.EmailTemplateID
	publicKey   types.EmailPublicKey
	accessToken types.EmailAccessToken `masq:"secret"`
	endpoint    string
}

func (x *EmailJS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "emailjs-service-id",
			Usage:       "EmailJS service ID",
			Category:    "EmailJS",
			Destination: (*string)(&x.serviceID),
			Sources:     cli.EnvVars("PORTFOLIO_EMAILJS_SERVICE_ID"),
		},
		&cli.StringFlag{
			Name:        "emailjs-template-id",
			Usage:       "EmailJS template ID",
			Category:    "EmailJS",
			Destination: (*string)(&x.templateID),
			Sources:     cli.EnvVars("PORTFOLIO_EMAILJS_TEMPLATE_ID"),
		},
		&cli.StringFlag{
			Name:        "emailjs-public-key",
			Usage:       "EmailJS public key (user ID)",
			Category:    "EmailJS",
			Destination: (*string)(&x.publicKey),
			Sources:     cli.EnvVars("PORTFOLIO_EMAILJS_PUBLIC_KEY"),
		},
		&cli.StringFlag{
			Name:        "emailjs-access-token",
			Usage:       "EmailJS private key, required when strict mode is enabled on the account",
			Category:    "EmailJS",
			Destination: (*string)(&x.accessToken),
			Sources:     cli.EnvVars("PORTFOLIO_EMAILJS_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "emailjs-endpoint",
			Usage:       "EmailJS send API endpoint",
			Category:    "EmailJS",
			Value:       emailjs.DefaultEndpoint,
			Destination: &x.endpoint,
			Sources:     cli.EnvVars("PORTFOLIO_EMAILJS_ENDPOINT"),
		},
	}
}

// DispatchConfig returns the identifiers injected into every contact submission.
// It is not validated here so the server can start without email configured; a
// submission with incomplete configuration fails at send time.
func (x *EmailJS) DispatchConfig() model.EmailDispatchConfig {
	return model.EmailDispatchConfig{
		ServiceID:   x.serviceID,
		TemplateID:  x.templateID,
		PublicKey:   x.publicKey,
		AccessToken: x.accessToken,
	}
}

func (x *EmailJS) NewClient(httpClient infra.HTTPClient) *emailjs.Client {
	return emailjs.New(x.endpoint, httpClient)
}

func (x EmailJS) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ServiceID", x.serviceID),
		slog.Any("TemplateID", x.templateID),
		slog.Any("PublicKey", x.publicKey),
		slog.Int("AccessToken.len", len(x.accessToken)),
		slog.Any("Endpoint", x.endpoint),
	)
}
