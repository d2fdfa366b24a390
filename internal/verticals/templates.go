package verticals

import (
	"strings"

	"github.com/goliatone/go-funnel/internal/pages"
)

// Vertical is a business-category tag used to select seed page content before
// the author customizes it.
type Vertical string

const (
	Fitness    Vertical = "FITNESS_OS"
	Agency     Vertical = "AGENCY_OS"
	RealEstate Vertical = "REAL_ESTATE_OS"
	Creator    Vertical = "CREATOR_OS"
)

// Verticals lists the supported business categories.
func Verticals() []Vertical {
	return []Vertical{Fitness, Agency, RealEstate, Creator}
}

// Parse normalizes a raw vertical tag. Unknown tags fall back to Fitness, the
// catalogue's default seed.
func Parse(raw string) Vertical {
	switch Vertical(strings.ToUpper(strings.TrimSpace(raw))) {
	case Agency:
		return Agency
	case RealEstate:
		return RealEstate
	case Creator:
		return Creator
	default:
		return Fitness
	}
}

// TemplateFor returns the seed PageDocument for a vertical. The returned
// document is a fresh copy; callers may mutate it freely.
func TemplateFor(vertical Vertical) pages.PageDocument {
	switch vertical {
	case Agency:
		return agencyTemplate.Clone()
	case RealEstate:
		return realEstateTemplate.Clone()
	case Creator:
		return creatorTemplate.Clone()
	default:
		return fitnessTemplate.Clone()
	}
}

var agencyTemplate = pages.PageDocument{
	HeroHeadline: "Scale Your Agency to $50k/mo",
	HeroSubhead:  "The exact blueprint used by 500+ agency owners to automate client acquisition.",
	CTAText:      "Get The Blueprint",
	Problem:      "You're stuck in the 'feast or famine' cycle. You're great at delivery, but you don't have a predictable way to get new clients.",
	Solution:     "We provide a plug-and-play agency operating system that automates your lead gen, hiring, and onboarding.",
	Features: []string{
		"Automated Outreach System",
		"High-Ticket Sales Script",
		"Client Fulfillment SOPs",
	},
	CoachBio: &pages.CoachBio{
		Name:     "Agency Expert",
		Headline: "Founder of ScaleMyAgency",
		Story:    "I went from a struggling freelancer to running a 7-figure agency. Now I teach others how to do the same.",
	},
	Pricing: []pages.PricingTier{
		{Name: "Starter", Price: "$997", Features: []string{"Core Curriculum", "Community Access", "Weekly Q&A"}},
		{Name: "Growth", Price: "$2,997", Features: []string{"Everything in Starter", "1-on-1 Mentorship", "Done-For-You Outreach"}},
	},
	FAQ: []pages.FAQEntry{
		{Question: "Does this work for new agencies?", Answer: "Yes, we help you pick a niche and get your first client in 30 days."},
		{Question: "How is this different?", Answer: "We focus on systems, not just tactics."},
	},
	Urgency: &pages.UrgencySetting{Enabled: true, BannerText: "Doors Close in 48 Hours", SpotsLeft: 5},
}

var realEstateTemplate = pages.PageDocument{
	HeroHeadline: "Sell Your Home for Top Dollar",
	HeroSubhead:  "The modern strategy to get maximum value for your property in minimum time.",
	CTAText:      "Schedule Valuation",
	Problem:      "Selling a home is stressful. Complexity, paperwork, and uncertainty about the final price.",
	Solution:     "Our 'Smart Sale' system uses data and digital marketing to create a bidding war for your home.",
	Features: []string{
		"Professional Staging",
		"3D Virtual Tours",
		"Targeted Social Ads",
	},
	CoachBio: &pages.CoachBio{
		Name:     "Top Realtor",
		Headline: "Luxury Estate Specialist",
		Story:    "With over $100M in sold inventory, I know exactly what triggers buyers to make an offer.",
	},
	Pricing: []pages.PricingTier{
		{Name: "Standard", Price: "1.5%", Features: []string{"MLS Listing", "Open House"}},
		{Name: "Premium", Price: "2.5%", Features: []string{"Virtual Staging", "Drone Video", "Social Ads"}},
	},
	FAQ: []pages.FAQEntry{
		{Question: "How fast can you sell?", Answer: "Our average time to offer is 14 days."},
	},
	Urgency: &pages.UrgencySetting{Enabled: false, BannerText: ""},
}

var creatorTemplate = pages.PageDocument{
	HeroHeadline: "Turn Your Audience Into Income",
	HeroSubhead:  "Stop relying on ad revenue. Build a sustainable business around your personal brand.",
	CTAText:      "Join The Academy",
	Problem:      "You have followers, but you're burnout from the content treadmill and not making enough money.",
	Solution:     "Launch your own high-ticket community and digital products.",
	Features: []string{
		"Community Building",
		"Digital Product Launch",
		"Brand Deal Negotiation",
	},
	CoachBio: &pages.CoachBio{
		Name:     "Top Creator",
		Headline: "YouTuber with 1M+ Subs",
		Story:    "I replaced my ad revenue with digital products and now I make 10x more while posting less.",
	},
	Pricing: []pages.PricingTier{
		{Name: "Creator", Price: "$497", Features: []string{"Course Access", "Templates"}},
		{Name: "Influencer", Price: "$1,497", Features: []string{"Group Coaching", "Brand Deal Scripts"}},
	},
	FAQ: []pages.FAQEntry{
		{Question: "Do I need a huge following?", Answer: "No, you can start monetizing with just 1,000 true fans."},
	},
	Urgency: &pages.UrgencySetting{Enabled: true, BannerText: "Cohort Starts Soon", SpotsLeft: 10},
}

var fitnessTemplate = pages.PageDocument{
	HeroHeadline: "Scale Your Fitness Business to $50k/mo",
	HeroSubhead:  "The exact blueprint used by 500+ coaches to automate client acquisition and delivery.",
	CTAText:      "Get The Blueprint",
	Problem:      "You're stuck trading time for money. You love coaching, but you hate the hustle of finding new clients every single month.",
	Solution:     "We provide a plug-and-play operating system that automates your lead gen, sales, and client onboarding.",
	Features: []string{
		"Automated Lead Pipeline",
		"High-Ticket Sales Script",
		"Client Success Dashboard",
	},
	CoachBio: &pages.CoachBio{
		Name:     "Alex Hormozi",
		Headline: "Founder of Gym Launch",
		Story:    "I started with nothing and built a $100M empire. Now I'm sharing the exact tools I used to get there.",
	},
	Pricing: []pages.PricingTier{
		{Name: "Starter", Price: "$997", Features: []string{"Core Curriculum", "Weekly Q&A"}},
		{Name: "Inner Circle", Price: "$2,997", Features: []string{"1-on-1 Mentorship", "Done-For-You Tech"}},
	},
	FAQ: []pages.FAQEntry{
		{Question: "Is this for beginners?", Answer: "Yes."},
	},
	Urgency: &pages.UrgencySetting{Enabled: true, BannerText: "Doors Close in 48 Hours", SpotsLeft: 3},
}
