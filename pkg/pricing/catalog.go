package pricing

import "strings"

// Feature is one line on a plan card; excluded features render struck out.
type Feature struct {
	Label    string
	Included bool
}

// Plan is a static pricing tier with its base-currency monthly price.
type Plan struct {
	Name        string
	BasePrice   int64
	Description string
	Features    []Feature
	IsPopular   bool
}

// Cost is an entry in the additional-costs or add-ons tables.
type Cost struct {
	Title    string
	Amount   Amount
	Subtitle string
}

// CustomPlanName names the plan behind the "Request Custom Plan" button.
const CustomPlanName = "Custom"

func included(labels ...string) []Feature {
	out := make([]Feature, 0, len(labels))
	for _, l := range labels {
		out = append(out, Feature{Label: l, Included: true})
	}
	return out
}

var plans = []Plan{
	{
		Name:        "Basic",
		BasePrice:   7599,
		Description: "Perfect for small clinics and practices just getting started.",
		Features: append(included(
			"Access for Patients, Doctors, Receptionists, Admin",
			"Appointment booking system",
			"Medical reports access",
			"Patient history tracking",
			"Basic analytics dashboard",
		),
			Feature{Label: "Pharmacy & lab modules"},
			Feature{Label: "Emergency bed management"},
		),
	},
	{
		Name:        "Pro",
		BasePrice:   12599,
		Description: "For growing healthcare facilities with advanced needs.",
		Features: append(included(
			"All Basic features",
			"Bed management system",
			"Advanced analytics dashboard",
			"Priority support",
		),
			Feature{Label: "Pharmacist module"},
			Feature{Label: "Lab module"},
		),
		IsPopular: true,
	},
	{
		Name:        "Plus",
		BasePrice:   16649,
		Description: "Complete solution for hospitals and medical centers.",
		Features: included(
			"All Pro features",
			"Pharmacist module",
			"Lab module",
			"Test creation & report uploads",
			"Custom reporting tools",
		),
	},
}

var customPlan = Plan{
	Name:        CustomPlanName,
	BasePrice:   0,
	Description: "Tailored solution for your healthcare facility.",
}

var additionalCosts = []Cost{
	{Title: "Subscription Fee", Amount: Label("Included in plan pricing")},
	{Title: "Setup Fee", Amount: Price(4000), Subtitle: "One-time payment for initial setup (Non-Refundable)"},
	{Title: "Data Backup & Restore", Amount: Price(1500), Subtitle: "Per month (optional)"},
	{Title: "Taxes", Amount: Label("18%"), Subtitle: "Per month"},
}

var addOns = []Cost{
	{Title: "Mail Notifications", Amount: Price(299), Subtitle: "After 3000 mails till 15000"},
	{Title: "AI Support", Amount: Price(799), Subtitle: "For patient side AI automation"},
	{Title: "Mobile App", Amount: Price(600), Subtitle: "Maintenance & Auto update"},
}

// Plans returns a copy of the published tiers in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]Feature(nil), p.Features...)
		out[i] = p
	}
	return out
}

// CustomPlan returns the custom-solution pseudo plan.
func CustomPlan() Plan {
	return customPlan
}

// PlanByName finds a published plan or the custom plan, ignoring case.
func PlanByName(name string) (Plan, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, customPlan.Name) {
		return customPlan, true
	}
	for _, p := range Plans() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Plan{}, false
}

func AdditionalCosts() []Cost {
	return append([]Cost(nil), additionalCosts...)
}

func AddOns() []Cost {
	return append([]Cost(nil), addOns...)
}
