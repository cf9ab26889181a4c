package view

// Menu is a navigation dropdown. Items are display labels only.
type Menu struct {
	Label string
	Items []string
}

// FooterLink is a placeholder footer entry; it does not navigate anywhere.
type FooterLink struct {
	Label string
}

// Site holds the static chrome around the project grid.
type Site struct {
	Brand       string
	Menus       []Menu
	CTALabel    string
	HeroTitle   string
	HeroText    string
	FooterLinks []FooterLink
	Copyright   string
}

// DefaultSite returns the page chrome served in production.
func DefaultSite() Site {
	return Site{
		Brand: "Portfolio",
		Menus: []Menu{
			{Label: "Work", Items: []string{"Case Studies", "Product Design", "Web Development"}},
			{Label: "Services", Items: []string{"Branding", "UI/UX", "Consulting"}},
			{Label: "About", Items: []string{"Studio", "Process", "Careers"}},
		},
		CTALabel:  "Get in touch",
		HeroTitle: "Portfolio",
		HeroText:  "A collection of selected works and case studies showcasing design and development expertise.",
		FooterLinks: []FooterLink{
			{Label: "Privacy"},
			{Label: "Terms"},
			{Label: "Contact"},
		},
		Copyright: "All rights reserved.",
	}
}
