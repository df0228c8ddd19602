package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

func TestContactFormInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		input := &model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Message: "hi"}
		gt.NoError(t, input.Validate())
	})

	testCases := map[string]model.ContactFormInput{
		"missing name":    {Email: "alice@example.com", Message: "hi"},
		"missing email":   {Name: "Alice", Message: "hi"},
		"malformed email": {Name: "Alice", Email: "alice", Message: "hi"},
		"missing message": {Name: "Alice", Email: "alice@example.com"},
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			err := input.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		})
	}
}

func TestContactFormInputParams(t *testing.T) {
	input := &model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Message: "hi"}
	gt.V(t, input.Params()).Equal(map[string]string{
		"user_name":  "Alice",
		"user_email": "alice@example.com",
		"message":    "hi",
	})
	gt.V(t, (&model.ContactFormInput{Email: " Alice@Example.COM "}).SubmitterKey()).Equal("alice@example.com")
}

func TestEmailDispatchConfigValidate(t *testing.T) {
	valid := model.EmailDispatchConfig{ServiceID: "s", TemplateID: "t", PublicKey: "p"}
	gt.NoError(t, valid.Validate())

	for _, cfg := range []model.EmailDispatchConfig{
		{TemplateID: "t", PublicKey: "p"},
		{ServiceID: "s", PublicKey: "p"},
		{ServiceID: "s", TemplateID: "t"},
	} {
		err := cfg.Validate()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	}
}

func TestContactForm(t *testing.T) {
	t.Run("succeed clears every field", func(t *testing.T) {
		form := &model.ContactForm{
			Input:      model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Message: "hi"},
			Submitting: true,
		}
		gt.V(t, form.SubmitLabel()).Equal("Sending...")

		form.Succeed()
		gt.V(t, form.Input).Equal(model.ContactFormInput{})
		gt.False(t, form.Submitting)
		gt.V(t, form.SubmitLabel()).Equal("Send Message")
		gt.V(t, form.Notification.Kind).Equal(model.NotificationSuccess)
		gt.V(t, form.Notification.Message).Equal("Message sent successfully!")
	})

	t.Run("fail keeps entered values", func(t *testing.T) {
		input := model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Message: "hi"}
		form := &model.ContactForm{Input: input, Submitting: true}

		form.Fail(model.ContactFailedMessage)
		gt.V(t, form.Input).Equal(input)
		gt.False(t, form.Submitting)
		gt.V(t, form.Notification.Kind).Equal(model.NotificationError)
		gt.V(t, form.Notification.Message).Equal("Failed to send message. Please try again.")
	})
}

func TestProfile(t *testing.T) {
	p := model.Profile{Email: "me@example.com", Phone: "+91 8688466702"}
	gt.V(t, p.MailtoURL()).Equal("mailto:me@example.com")
	gt.V(t, p.TelURL()).Equal("tel:+918688466702")

	gt.A(t, model.DefaultSkills()).Length(6)
	gt.A(t, model.DefaultCertifications()).Length(4)
}
