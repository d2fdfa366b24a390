package growth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-funnel/internal/identity"
	"github.com/google/uuid"
)

// PostType classifies a content-plan entry by its medium.
type PostType string

const (
	PostVideo    PostType = "Video"
	PostImage    PostType = "Image"
	PostCarousel PostType = "Carousel"
	PostText     PostType = "Text"
)

// SocialPost is one day in a content plan.
type SocialPost struct {
	ID          string   `json:"id"`
	Day         int      `json:"day"`
	Hook        string   `json:"hook"`
	Body        string   `json:"body"`
	CTA         string   `json:"cta"`
	Type        PostType `json:"type"`
	Hashtags    []string `json:"hashtags,omitempty"`
	ImagePrompt string   `json:"imagePrompt,omitempty"`
}

// Experiment is one growth initiative with concrete steps.
type Experiment struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Steps          []string `json:"steps"`
	ExpectedImpact string   `json:"expectedImpact"`
}

// Message is a suggested outreach script.
type Message struct {
	Channel string `json:"channel"`
	Copy    string `json:"copy"`
	Context string `json:"context"`
}

// Plan bundles experiments and outreach scripts for a niche.
type Plan struct {
	ID                uuid.UUID    `json:"id"`
	Niche             string       `json:"niche"`
	Experiments       []Experiment `json:"experiments"`
	SuggestedMessages []Message    `json:"suggestedMessages"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// Stats summarizes the funnel performance a plan reacts to.
type Stats struct {
	Leads          int
	Clients        int
	ConversionRate string
}

// Planner produces content plans and growth plans for a niche. The default
// implementation is a deterministic seed catalogue; richer implementations
// can call out to an upstream model.
type Planner interface {
	ContentPlan(ctx context.Context, niche string, days int) ([]SocialPost, error)
	GrowthPlan(ctx context.Context, niche string, stats Stats) (*Plan, error)
}

var ErrNicheRequired = errors.New("growth: niche is required")

// DefaultPlanner cycles a curated post catalogue across the requested days
// and returns a fixed experiment playbook. Output depends only on the inputs.
type DefaultPlanner struct {
	now func() time.Time
}

// NewDefaultPlanner creates the seed-catalogue planner.
func NewDefaultPlanner() *DefaultPlanner {
	return &DefaultPlanner{now: time.Now}
}

// NewDefaultPlannerWithClock fixes the plan timestamp source, for tests.
func NewDefaultPlannerWithClock(now func() time.Time) *DefaultPlanner {
	if now == nil {
		now = time.Now
	}
	return &DefaultPlanner{now: now}
}

func (p *DefaultPlanner) ContentPlan(_ context.Context, niche string, days int) ([]SocialPost, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return nil, ErrNicheRequired
	}
	if days <= 0 {
		days = 30
	}

	catalogue := seedPosts()
	plan := make([]SocialPost, 0, days)
	for day := 1; day <= days; day++ {
		post := catalogue[(day-1)%len(catalogue)]
		post.ID = strconv.Itoa(day)
		post.Day = day
		plan = append(plan, post)
	}
	return plan, nil
}

func (p *DefaultPlanner) GrowthPlan(_ context.Context, niche string, stats Stats) (*Plan, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return nil, ErrNicheRequired
	}

	return &Plan{
		ID:                identity.UUID(fmt.Sprintf("growth-plan:%s:%d:%d", niche, stats.Leads, stats.Clients)),
		Niche:             niche,
		Experiments:       seedExperiments(),
		SuggestedMessages: seedMessages(),
		CreatedAt:         p.now().UTC(),
	}, nil
}

func seedPosts() []SocialPost {
	return []SocialPost{
		{
			Hook: "Stop doing cardio for fat loss.",
			Body: "Strength training burns more calories long-term. Build muscle, boost metabolism, transform your body.",
			CTA:  `DM me "STRENGTH" for the full guide`,
			Type: PostVideo,
			Hashtags: []string{
				"#fitness", "#strengthtraining", "#fatloss", "#buildmuscle", "#fitnesstips",
			},
			ImagePrompt: "Athletic person lifting weights in a modern gym, dramatic lighting",
		},
		{
			Hook: "Why your diet isn't working...",
			Body: "It's not about eating less. It's about eating RIGHT. Protein, timing, consistency.",
			CTA:  `Comment "NUTRITION" for my free meal plan`,
			Type: PostCarousel,
			Hashtags: []string{
				"#nutrition", "#healthyeating", "#mealprep", "#fitnessdiet", "#protein",
			},
			ImagePrompt: "Healthy meal prep containers with colorful vegetables and protein",
		},
		{
			Hook: "The #1 mistake busy professionals make...",
			Body: "Skipping workouts because of time. You need 30 minutes. Not 2 hours.",
			CTA:  "Save this for later",
			Type: PostImage,
			Hashtags: []string{
				"#busyprofessionals", "#timemanagement", "#quickworkouts", "#efficiency", "#productivity",
			},
			ImagePrompt: "Professional in business attire doing a quick workout, split screen showing office and gym",
		},
	}
}

func seedExperiments() []Experiment {
	return []Experiment{
		{
			Title:       `The "Free Transformation Guide" Lead Magnet`,
			Description: "Create a comprehensive PDF guide solving one specific pain point.",
			Steps: []string{
				"Identify the #1 pain point for your audience",
				"Write a 10-page guide with actionable steps",
				"Design a professional PDF",
				"Create landing page with opt-in form",
				"Promote on Instagram Stories and Reels",
			},
			ExpectedImpact: "+50 leads/month",
		},
		{
			Title:       "Instagram Reels Challenge",
			Description: "Run a 7-day fitness challenge to build community.",
			Steps: []string{
				"Design a simple 7-day workout challenge",
				"Create daily Reels with exercises",
				"Use trending audio and hashtags",
				"Encourage participants to tag you",
				"Offer prize for completion",
			},
			ExpectedImpact: "+100 followers, +30 leads",
		},
		{
			Title:       "Referral Program",
			Description: "Incentivize current clients to refer friends.",
			Steps: []string{
				"Create referral reward structure",
				"Design referral cards/links",
				"Email current clients",
				"Track referrals in CRM",
				"Deliver rewards promptly",
			},
			ExpectedImpact: "+20% client growth",
		},
	}
}

func seedMessages() []Message {
	return []Message{
		{
			Channel: "WhatsApp",
			Copy:    "Hey [Name]! 👋 Saw you were interested in getting fit. I'm running a free 7-day challenge starting Monday. Want in?",
			Context: "New Lead Outreach",
		},
		{
			Channel: "Email",
			Copy:    "Subject: Your transformation starts here\n\nHi [Name],\n\nThanks for downloading the guide! I noticed you're interested in [specific goal].\n\nI have 3 spots opening up next week for 1-on-1 coaching. Want to chat about your goals?\n\nBest,\n[Coach Name]",
			Context: "Lead Nurture - Day 3",
		},
		{
			Channel: "SMS",
			Copy:    "Hi [Name], this is [Coach]. Quick question - what's your biggest challenge with fitness right now? (Reply STOP to opt out)",
			Context: "Lead Qualification",
		},
	}
}
