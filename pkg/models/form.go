package models

import (
	"net/url"
	"strings"
)

// FormKind identifies which form produced a lead.
type FormKind string

const (
	FormLaunch     FormKind = "launch"
	FormNewsletter FormKind = "newsletter"
	FormDemo       FormKind = "demo"
	FormPlan       FormKind = "plan"
)

// Lead is one submission payload bound for the intake endpoint. Each form
// has its own concrete type.
type Lead interface {
	Form() FormKind
	Contact() string
	Values() url.Values
}

// Represents the launch-gate "notify me" form
type LaunchSignup struct {
	Email string `form:"email" json:"email" validate:"required,leademail"`
}

func (l LaunchSignup) Form() FormKind  { return FormLaunch }
func (l LaunchSignup) Contact() string { return l.Email }

func (l LaunchSignup) Values() url.Values {
	return url.Values{
		"email":  {l.Email},
		"launch": {"true"},
	}
}

// Represents the newsletter section on the home page
type NewsletterSignup struct {
	Email string `form:"email" json:"email" validate:"required,leademail"`
}

func (n NewsletterSignup) Form() FormKind  { return FormNewsletter }
func (n NewsletterSignup) Contact() string { return n.Email }

func (n NewsletterSignup) Values() url.Values {
	return url.Values{"email": {n.Email}}
}

// DemoRequest comes from the demo scheduler. Date and Time are constrained by
// the widgets that produce them and are only checked for presence here.
type DemoRequest struct {
	Name  string `form:"name" json:"name" validate:"required"`
	Email string `form:"email" json:"email" validate:"required,leademail"`
	Date  string `form:"date" json:"date" validate:"required"`
	Time  string `form:"time" json:"time" validate:"required"`
}

func (d DemoRequest) Form() FormKind  { return FormDemo }
func (d DemoRequest) Contact() string { return d.Email }

func (d DemoRequest) Values() url.Values {
	return url.Values{
		"name":  {d.Name},
		"email": {d.Email},
		"date":  {d.Date},
		"time":  {d.Time},
	}
}

// PlanInquiry is the "Get Started" / custom plan request. Plan and Price are
// filled in by the server from the catalog, never taken from the visitor.
type PlanInquiry struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,leademail"`
	Phone   string `form:"phone" json:"phone" validate:"required"`
	Address string `form:"address" json:"address" validate:"required"`
	Purpose string `form:"purpose" json:"purpose" validate:"required"`
	Plan    string `form:"-" json:"plan"`
	Price   string `form:"-" json:"price"`
}

func (p PlanInquiry) Form() FormKind  { return FormPlan }
func (p PlanInquiry) Contact() string { return p.Email }

func (p PlanInquiry) Values() url.Values {
	return url.Values{
		"name":    {p.Name},
		"email":   {p.Email},
		"phone":   {p.Phone},
		"address": {p.Address},
		"purpose": {p.Purpose},
		"plan":    {p.Plan},
		"price":   {p.Price},
	}
}

// Trim strips surrounding whitespace from every visitor-entered field.
func Trim(lead Lead) Lead {
	switch l := lead.(type) {
	case LaunchSignup:
		l.Email = strings.TrimSpace(l.Email)
		return l
	case NewsletterSignup:
		l.Email = strings.TrimSpace(l.Email)
		return l
	case DemoRequest:
		l.Name = strings.TrimSpace(l.Name)
		l.Email = strings.TrimSpace(l.Email)
		l.Date = strings.TrimSpace(l.Date)
		l.Time = strings.TrimSpace(l.Time)
		return l
	case PlanInquiry:
		l.Name = strings.TrimSpace(l.Name)
		l.Email = strings.TrimSpace(l.Email)
		l.Phone = strings.TrimSpace(l.Phone)
		l.Address = strings.TrimSpace(l.Address)
		l.Purpose = strings.TrimSpace(l.Purpose)
		return l
	}
	return lead
}
