package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/errutil"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
)

// SubmitContact forwards a contact form submission to the email relay. Every relay
// failure is reported as types.ErrSendFailed. A second submission from the same sender
// while the first is still in flight fails with types.ErrSubmissionInFlight and sends
// nothing.
func (x *UseCase) SubmitContact(ctx context.Context, input *model.ContactFormInput) error {
	if input == nil {
		return goerr.Wrap(types.ErrValidationFailed, "contact form input is empty")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	key := input.SubmitterKey()
	if !x.inFlight.acquire(key) {
		logging.From(ctx).Warn("Rejected duplicate contact submission while in flight")
		return goerr.Wrap(types.ErrSubmissionInFlight, "contact submission already in flight")
	}
	defer x.inFlight.release(key)

	if x.clients.EmailRelay() == nil {
		err := goerr.Wrap(types.ErrSendFailed, "email relay is not configured")
		errutil.HandleError(ctx, "Error sending email", err)
		return err
	}

	cfg := x.emailConfig
	if err := x.clients.EmailRelay().Send(ctx, &interfaces.SendEmailInput{
		Config: &cfg,
		Params: input.Params(),
	}); err != nil {
		wrapped := goerr.Wrap(errors.Join(types.ErrSendFailed, err), "failed to relay contact message")
		errutil.HandleError(ctx, "Error sending email", wrapped)
		return wrapped
	}

	logging.From(ctx).Info("Contact message sent", slog.Any("input", input))
	return nil
}
