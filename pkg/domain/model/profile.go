package model

import "strings"

// SkillCategory is one card of the skills showcase
type SkillCategory struct {
	Icon  string
	Title string
	Items []string
}

func DefaultSkills() []SkillCategory {
	return []SkillCategory{
		{
			Icon:  "code",
			Title: "Programming Languages",
			Items: []string{"JavaScript", "TypeScript", "Python", "Java", "HTML", "CSS"},
		},
		{
			Icon:  "globe",
			Title: "Web Technologies",
			Items: []string{"React.js", "Node.js", "Express.js", "RESTful APIs", "GraphQL"},
		},
		{
			Icon:  "cloud",
			Title: "AWS Cloud",
			Items: []string{"EC2 Instance", "S3 Bucket", "VPC", "Lambda", "IAM", "Cloud Watch"},
		},
		{
			Icon:  "shield",
			Title: "Cybersecurity",
			Items: []string{
				"Web Penetration Testing",
				"Vulnerability Assessment",
				"Digital Forensics",
				"Security Hardening",
			},
		},
		{
			Icon:  "terminal",
			Title: "Development Tools",
			Items: []string{"Git", "Docker", "VS Code", "Postman", "Linux"},
		},
		{
			Icon:  "database",
			Title: "Databases",
			Items: []string{"MySQL", "MongoDB", "PostgreSQL", "Database Security"},
		},
	}
}

func DefaultCertifications() []string {
	return []string{
		"Microsoft Certified: Azure Administrator Associate",
		"Certified Linux File System Professional",
		"Infosys: Cyber Security and Applied Ethical Hacking",
		"Cisco: Ethical Hacker",
	}
}

// Profile holds the static contact information and social links
type Profile struct {
	Name        string
	Email       string
	Phone       string
	Location    string
	GitHubURL   string
	LinkedInURL string
}

func (x Profile) MailtoURL() string {
	return "mailto:" + x.Email
}

// TelURL strips everything but digits and a leading plus sign
func (x Profile) TelURL() string {
	var b strings.Builder
	for i, r := range x.Phone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}
