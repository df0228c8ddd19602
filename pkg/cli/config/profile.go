package config

import (
	"log/slog"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Profile struct {
	name        string
	email       string
	phone       string
	location    string
	linkedInURL string
}

func (x *Profile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profile-name",
			Usage:       "Display name shown in the page header",
			Category:    "Profile",
			Value:       "Sujeeth Kumar Arjun",
			Destination: &x.name,
			Sources:     cli.EnvVars("PORTFOLIO_PROFILE_NAME"),
		},
		&cli.StringFlag{
			Name:        "profile-email",
			Usage:       "Contact email address",
			Category:    "Profile",
			Value:       "sujeethkumararjun@gmail.com",
			Destination: &x.email,
			Sources:     cli.EnvVars("PORTFOLIO_PROFILE_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "profile-phone",
			Usage:       "Contact phone number",
			Category:    "Profile",
			Value:       "+91 8688466702",
			Destination: &x.phone,
			Sources:     cli.EnvVars("PORTFOLIO_PROFILE_PHONE"),
		},
		&cli.StringFlag{
			Name:        "profile-location",
			Usage:       "Location shown in contact information",
			Category:    "Profile",
			Value:       "Tirupati, India",
			Destination: &x.location,
			Sources:     cli.EnvVars("PORTFOLIO_PROFILE_LOCATION"),
		},
		&cli.StringFlag{
			Name:        "profile-linkedin-url",
			Usage:       "LinkedIn profile URL",
			Category:    "Profile",
			Value:       "https://www.linkedin.com/in/sujeethkumararjun",
			Destination: &x.linkedInURL,
			Sources:     cli.EnvVars("PORTFOLIO_PROFILE_LINKEDIN_URL"),
		},
	}
}

// Build assembles the profile; the GitHub link follows the account whose
// repositories are listed.
func (x *Profile) Build(github *GitHub) model.Profile {
	return model.Profile{
		Name:        x.name,
		Email:       x.email,
		Phone:       x.phone,
		Location:    x.location,
		GitHubURL:   github.ProfileURL(),
		LinkedInURL: x.linkedInURL,
	}
}

func (x Profile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Name", x.name),
		slog.Any("Location", x.location),
		slog.Any("LinkedInURL", x.linkedInURL),
	)
}
