package web

import (
	"net/url"
	"strconv"

	"github.com/medireon/site/pkg/disclosure"
	"github.com/medireon/site/pkg/pricing"
)

// Query keys that carry widget state between requests.
const (
	QueryCurrency = "currency"
	QueryFAQ      = "faq"
	QueryRole     = "role"
	QueryPrivacy  = "privacy"
	QueryPolicy   = "policy"
	QueryModal    = "modal"
	QueryPlan     = "plan"
	QueryNotice   = "notice"
)

const (
	ModalDemo = "demo"
	ModalPlan = "plan"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient toast.
type Notice struct {
	Kind    NoticeKind
	Message string
}

var successNotices = map[string]Notice{
	"launch":     {NoticeSuccess, "You're on the list! We'll email you at launch."},
	"newsletter": {NoticeSuccess, "Subscribed successfully!"},
	"demo":       {NoticeSuccess, "Demo scheduled successfully! We'll be in touch."},
	"plan":       {NoticeSuccess, "Thank you for your interest! We'll contact you shortly."},
}

// NoticeFor resolves the notice code carried in a redirect.
func NoticeFor(code string) *Notice {
	n, ok := successNotices[code]
	if !ok {
		return nil
	}
	return &n
}

// FailureNotice is shown when a lead could not be sent.
func FailureNotice(form string) *Notice {
	if form == "newsletter" {
		return &Notice{NoticeError, "Subscription failed. Please try again later."}
	}
	return &Notice{NoticeError, "Something went wrong. Please try again later."}
}

// PendingNotice is shown when the same form is posted again before the
// first send has finished.
func PendingNotice() *Notice {
	return &Notice{NoticeError, "Your previous request is still being sent. Please wait a moment."}
}

// FormState is what a form re-renders with after a rejected submit.
type FormState struct {
	Values url.Values
	Errors map[string]string
}

func (f FormState) Value(field string) string {
	return f.Values.Get(field)
}

func (f FormState) Error(field string) string {
	return f.Errors[field]
}

// LaunchView drives the launch gate.
type LaunchView struct {
	Launched   bool
	Display    string
	Subscribed bool
	Form       FormState
	Notice     *Notice
}

// HomeView drives the home page. Widget state comes from the query string so
// every page is linkable and works without script.
type HomeView struct {
	Query url.Values

	Quote   pricing.Quote
	FAQ     *disclosure.Accordion
	Roles   *disclosure.Carousel
	Privacy bool
	Policy  *disclosure.Accordion

	Modal        string
	SelectedPlan *pricing.PlanQuote

	DemoSlots   []string
	DemoMinDate string

	Subscribed bool
	Newsletter FormState
	Demo       FormState
	PlanForm   FormState
	Notice     *Notice
}

// NewHomeView reads widget state from q.
func NewHomeView(q url.Values) *HomeView {
	code, err := pricing.ParseCurrency(q.Get(QueryCurrency))
	if err != nil {
		code = pricing.BaseCurrency
	}

	v := &HomeView{
		Query:  q,
		Quote:  pricing.NewQuote(code),
		FAQ:    disclosure.NewAccordion(FAQCount()),
		Roles:  disclosure.NewCarousel(RoleCount()),
		Policy: disclosure.NewAccordion(PolicyCount()),
	}

	if i, ok := queryIndex(q, QueryFAQ); ok {
		v.FAQ.Toggle(i)
	}
	if i, ok := queryIndex(q, QueryRole); ok {
		v.Roles.Select(i)
	}
	v.Privacy = q.Get(QueryPrivacy) == "1"
	if i, ok := queryIndex(q, QueryPolicy); ok && v.Privacy {
		v.Policy.Toggle(i)
	}

	switch q.Get(QueryModal) {
	case ModalDemo:
		v.Modal = ModalDemo
	case ModalPlan:
		if p, ok := pricing.PlanByName(q.Get(QueryPlan)); ok {
			quoted := pricing.QuotePlan(p, code)
			v.Modal = ModalPlan
			v.SelectedPlan = &quoted
		}
	}

	v.Notice = NoticeFor(q.Get(QueryNotice))
	return v
}

func queryIndex(q url.Values, key string) (int, bool) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return i, true
}

// PageLink builds a path on top of the current query. Each pair sets a key, an
// empty value removes it. Notices never survive into a new link.
func PageLink(path string, q url.Values, pairs ...string) string {
	next := url.Values{}
	for k, vs := range q {
		if k == QueryNotice {
			continue
		}
		next[k] = append([]string(nil), vs...)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			next.Del(pairs[i])
			continue
		}
		next.Set(pairs[i], pairs[i+1])
	}
	if len(next) == 0 {
		return path
	}
	return path + "?" + next.Encode()
}

func indexParam(i int) string {
	if i < 0 {
		return ""
	}
	return strconv.Itoa(i)
}
