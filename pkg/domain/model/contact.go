package model

import (
	"net/mail"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

// Form field identifiers, also used as template parameter names of the relay
const (
	FieldUserName  = "user_name"
	FieldUserEmail = "user_email"
	FieldMessage   = "message"
)

const (
	ContactSentMessage     = "Message sent successfully!"
	ContactFailedMessage   = "Failed to send message. Please try again."
	ContactInFlightMessage = "Your message is already being sent."
	ContactInvalidMessage  = "Please fill in your name, a valid email and a message."

	SubmitLabel     = "Send Message"
	SubmittingLabel = "Sending..."
)

// ContactFormInput is the value of the contact form at submit time
type ContactFormInput struct {
	Name    string `json:"user_name"`
	Email   string `json:"user_email"`
	Message string `json:"message"`
}

func (x *ContactFormInput) Validate() error {
	if strings.TrimSpace(x.Name) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is required", goerr.V("field", FieldUserName))
	}
	if strings.TrimSpace(x.Email) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "email is required", goerr.V("field", FieldUserEmail))
	}
	if _, err := mail.ParseAddress(x.Email); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "email is malformed",
			goerr.V("field", FieldUserEmail),
			goerr.V("cause", err.Error()),
		)
	}
	if strings.TrimSpace(x.Message) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "message is required", goerr.V("field", FieldMessage))
	}
	return nil
}

// Params returns the form values keyed by field identifier
func (x *ContactFormInput) Params() map[string]string {
	return map[string]string{
		FieldUserName:  x.Name,
		FieldUserEmail: x.Email,
		FieldMessage:   x.Message,
	}
}

// SubmitterKey identifies a submitter for the in-flight guard
func (x *ContactFormInput) SubmitterKey() string {
	return strings.ToLower(strings.TrimSpace(x.Email))
}

// EmailDispatchConfig identifies the account of the transactional email relay
type EmailDispatchConfig struct {
	ServiceID   types.EmailServiceID
	TemplateID  types.EmailTemplateID
	PublicKey   types.EmailPublicKey
	AccessToken types.EmailAccessToken `masq:"secret"`
}

func (x *EmailDispatchConfig) Validate() error {
	if x.ServiceID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "email service ID is empty")
	}
	if x.TemplateID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "email template ID is empty")
	}
	if x.PublicKey == "" {
		return goerr.Wrap(types.ErrInvalidOption, "email public key is empty")
	}
	return nil
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message shown next to the contact form
type Notification struct {
	Kind    NotificationKind `json:"status"`
	Message string           `json:"message"`
}

// ContactForm is the render state of the contact form
type ContactForm struct {
	Input        ContactFormInput
	Submitting   bool
	Notification *Notification
}

func (x *ContactForm) SubmitLabel() string {
	if x.Submitting {
		return SubmittingLabel
	}
	return SubmitLabel
}

// BusyLabel is shown by the page while a submission is in flight
func (x *ContactForm) BusyLabel() string {
	return SubmittingLabel
}

// Succeed shows the success notification and clears every field
func (x *ContactForm) Succeed() {
	x.Input = ContactFormInput{}
	x.Submitting = false
	x.Notification = &Notification{Kind: NotificationSuccess, Message: ContactSentMessage}
}

// Fail shows a failure notification and keeps the entered values
func (x *ContactForm) Fail(message string) {
	x.Submitting = false
	x.Notification = &Notification{Kind: NotificationError, Message: message}
}
