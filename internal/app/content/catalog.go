package content

import "storefront/internal/app/ds"

// Catalog - весь статический контент сайта
type Catalog struct {
	Features           []ds.FeatureEntry      `json:"features" yaml:"features"`
	TargetAudiences    []ds.TargetAudience    `json:"target_audiences" yaml:"target_audiences"`
	PricingTiers       []ds.PricingTier       `json:"pricing_tiers" yaml:"pricing_tiers"`
	SecurityHighlights []ds.SecurityHighlight `json:"security_highlights" yaml:"security_highlights"`
	SecurityPolicies   []ds.SecurityPolicy    `json:"security_policies" yaml:"security_policies"`
	PasswordTips       []string               `json:"password_tips" yaml:"password_tips"`
	LoginSafeguards    []string               `json:"login_safeguards" yaml:"login_safeguards"`
	TeamTips           []ds.TeamTip           `json:"team_tips" yaml:"team_tips"`
	Contact            ds.ContactInfo         `json:"contact" yaml:"contact"`
}

// DefaultCatalog - встроенный контент Legistant
func DefaultCatalog() Catalog {
	return Catalog{
		Features: []ds.FeatureEntry{
			{
				Icon:        "calendar",
				Title:       "Client Appointment Scheduling",
				Description: "Streamlined client meeting scheduling with instant persistence and validation",
				Details:     "Dedicated appointment form that captures client information, validates requests, and writes to the case database with comprehensive test coverage for legal consultations.",
			},
			{
				Icon:        "bar-chart-3",
				Title:       "Legal Dashboard",
				Description: "Comprehensive case oversight and management interface",
				Details:     "Protected dashboard view for legal professionals with case tracking, deadline monitoring, and secure route protection for sensitive legal data.",
			},
			{
				Icon:        "settings",
				Title:       "Secure Account Management",
				Description: "Complete attorney and staff account lifecycle with enhanced security",
				Details:     "Registration, password resets, profile updates, and password changes with comprehensive test coverage designed for legal practice security requirements.",
			},
			{
				Icon:        "shield",
				Title:       "Two-Factor Authentication",
				Description: "Attorney-grade security with 2FA and recovery codes",
				Details:     "Active 2FA with confirmation and recovery codes, tested enabling/disabling flows and code regeneration to protect sensitive client information.",
			},
			{
				Icon:        "users",
				Title:       "Law Firm Collaboration",
				Description: "Complete legal team management and case collaboration",
				Details:     "Full team management with attorney and staff invitations, tested team creation, member invitation, and cancellation workflows for law firm operations.",
			},
			{
				Icon:        "search",
				Title:       "Legal Workflow UI",
				Description: "Case search, deadline notifications, and quick-access legal tools",
				Details:     "Integrated top bar with global case search, theme toggling, deadline notifications, and quick-access menus for enhanced legal workflow efficiency.",
			},
		},
		TargetAudiences: []ds.TargetAudience{
			{
				Icon:        "building",
				Title:       "Solo Practitioners & Small Law Firms",
				Description: "Lightweight case and client management with streamlined appointment forms and instant persistence designed for independent legal practices.",
			},
			{
				Icon:        "user-check",
				Title:       "Managing Partners & Legal Coordinators",
				Description: "Built-in team creation and invitation workflows to quickly onboard attorneys, paralegals, and support staff for collaborative case management.",
			},
			{
				Icon:        "shield-check",
				Title:       "Compliance-Focused Law Firms",
				Description: "Enforced 2FA, strong password management, and auditable account deletion flows meeting legal industry compliance and client confidentiality requirements.",
			},
			{
				Icon:        "headphones",
				Title:       "Legal Operations & Support Staff",
				Description: "At-a-glance case awareness with dashboard, global search, and deadline notification menus to monitor court dates, client commitments, and legal tasks.",
			},
		},
		PricingTiers: []ds.PricingTier{
			{
				Name:      "Starter",
				BasePrice: 15,
				Features: []string{
					"Client Appointment Scheduling",
					"Basic Legal Dashboard",
					"Secure Account Management",
					"Email Support",
				},
			},
			{
				Name:      "Professional",
				BasePrice: 35,
				Popular:   true,
				Features: []string{
					"All Starter Features",
					"Two-Factor Authentication",
					"Law Firm Collaboration (up to 10 members)",
					"Case Analytics & Reporting",
					"Priority Support",
				},
			},
			{
				Name:      "Enterprise",
				BasePrice: 65,
				Features: []string{
					"All Professional Features",
					"Unlimited Attorneys & Staff",
					"Court System Integrations",
					"Advanced Legal Security Features",
					"Dedicated Account Manager",
					"24/7 Phone Support",
				},
			},
		},
		SecurityHighlights: []ds.SecurityHighlight{
			{
				Icon:        "shield-check",
				Title:       "Regular Security Tests",
				Description: "Internal audits and dependency monitoring keep our platform resilient against new threats with rapid remediation workflows.",
			},
			{
				Icon:        "bug",
				Title:       "Daily Malware Scan",
				Description: "Independent Linux Kern scans certify the core application daily and rotate servers to harden long-running attack surfaces.",
			},
			{
				Icon:        "code-2",
				Title:       "Secure Development",
				Description: "Mandatory reviews, coding standards, and built-in security consultations ensure every release meets our quality bar.",
			},
			{
				Icon:        "lock",
				Title:       "Login Safeguards",
				Description: "Accounts temporarily lock after repeated failed attempts, protecting sensitive legal data from brute-force activity.",
			},
			{
				Icon:        "key-round",
				Title:       "Password Policies",
				Description: "Enforce strong passwords, scheduled resets, and breached password checks directly within Legistant settings.",
			},
			{
				Icon:        "server",
				Title:       "Security Blueprint",
				Description: "Our 500-point blueprint guides responses to emerging incidents with constant updates from leading security advisories.",
			},
		},
		SecurityPolicies: []ds.SecurityPolicy{
			{
				Title:       "Role Based Permissions",
				Description: "Granular access controls",
				Details:     "Restrict case visibility to authorized lawyers and staff, ensuring confidential client information stays protected.",
			},
			{
				Title:       "Standard Security Practices",
				Description: "Industry-grade protections",
				Details:     "TLS encryption, strict transport security, minimal encrypted cookies, and adaptive firewalls safeguard your workspace.",
			},
			{
				Title:       "Login Tracking",
				Description: "Visibility into account activity",
				Details:     "Monitor IP addresses and block unfamiliar geographies to identify suspicious access before it becomes an incident.",
			},
			{
				Title:       "Employee Safeguards",
				Description: "Trained and verified team",
				Details:     "Office access controls, 2FA enforcement, device policies, background checks, and recurring security training.",
			},
		},
		PasswordTips: []string{
			"Forbid common passwords and encourage memorable pass phrases",
			"Require numeric, special, upper, and lowercase characters",
			"Enforce minimum lengths of at least sixteen characters",
			"Rotate passwords on a defined schedule with lifetime policies",
			"Check credentials against breach databases using hashed lookups",
		},
		LoginSafeguards: []string{
			"Temporary account locks after repeated failed login attempts stop brute-force attacks.",
			"IP-based login tracking highlights suspicious access and blocks unfamiliar regions.",
			"Role-based permissions limit sensitive case information to authorized legal professionals.",
		},
		TeamTips: []ds.TeamTip{
			{Title: "Lock It Up", Text: "Never leave devices unattended and secure external drives that store case information."},
			{Title: "Practice Safe Clicking", Text: "Inspect unexpected links and attachments. Verify URLs to avoid spoofed domains designed to harvest credentials."},
			{Title: "Beware of Browsing", Text: "Perform sensitive work only on trusted devices and networks to prevent session hijacking or data theft."},
			{Title: "Stay Vigilant", Text: "Monitor accounts for unfamiliar activity and report anomalies immediately to your Legistant administrator."},
		},
		Contact: ds.ContactInfo{
			Address: "110 - 1/1, Havelock Road, Colombo 05, Sri Lanka",
			Email:   "info@legistant.com",
			Phones:  []string{"+94 77 627 3901", "+94 77 838 5938"},
			Website: "www.legistant.com",
		},
	}
}
