package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	g "maragu.dev/gomponents"

	"github.com/medireon/site/pkg/api/responses"
	"github.com/medireon/site/pkg/config"
	"github.com/medireon/site/pkg/countdown"
	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/logger"
	"github.com/medireon/site/pkg/metrics"
	"github.com/medireon/site/pkg/middleware"
	"github.com/medireon/site/pkg/models"
	"github.com/medireon/site/pkg/pricing"
	"github.com/medireon/site/pkg/services"
	"github.com/medireon/site/pkg/web"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	cfg           *config.Config
	submissions   services.LeadSubmissionService
	subscriptions *services.SubscriptionService
	metrics       *metrics.LeadMetrics
	clock         countdown.Clock
	logg          *logger.Logger

	streams     context.Context
	stopStreams context.CancelFunc
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	cfg *config.Config,
	submissions services.LeadSubmissionService,
	subscriptions *services.SubscriptionService,
	leadMetrics *metrics.LeadMetrics,
	clock countdown.Clock,
	logg *logger.Logger,
) *Handlers {
	if clock == nil {
		clock = countdown.SystemClock
	}
	if logg == nil {
		logg = logger.Nop()
	}
	streams, stopStreams := context.WithCancel(context.Background())
	return &Handlers{
		streams:       streams,
		stopStreams:   stopStreams,
		cfg:           cfg,
		submissions:   submissions,
		subscriptions: subscriptions,
		metrics:       leadMetrics,
		clock:         clock,
		logg:          logg,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Shutdown ends every open countdown stream. Streams never finish on their
// own before launch, so the server calls this before draining connections.
func (h *Handlers) Shutdown() {
	h.stopStreams()
}

func (h *Handlers) NotFound(c *gin.Context) {
	responses.WriteError(c, nil, pkgerrors.New(pkgerrors.CodeNotFound, "no route for "+c.Request.URL.Path))
}

// Home renders the marketing page with widget state taken from the query.
func (h *Handlers) Home(c *gin.Context) {
	v := h.homeView(c, c.Request.URL.Query())
	h.render(c, http.StatusOK, web.HomePage(v))
}

// Launch renders the launch gate with a countdown measured now.
func (h *Handlers) Launch(c *gin.Context) {
	snap := h.newTimer().Measure()
	h.render(c, http.StatusOK, web.LaunchPage(web.LaunchView{
		Launched:   snap.Launched,
		Display:    snap.Display,
		Subscribed: h.subscribed(c),
		Notice:     web.NoticeFor(c.Query(web.QueryNotice)),
	}))
}

// Countdown returns one snapshot.
func (h *Handlers) Countdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.newTimer().Measure())
}

// CountdownStream pushes a "tick" event every interval and a final
// "launched" event once the target passes. Each connection owns its timer;
// it stops when the client goes away.
func (h *Handlers) CountdownStream(c *gin.Context) {
	closed := h.metrics.StreamOpened()
	defer closed()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	stop := context.AfterFunc(h.streams, cancel)
	defer stop()

	snaps := make(chan countdown.Snapshot)
	go func() {
		defer close(snaps)
		h.newTimer().Run(ctx, h.cfg.Launch.TickInterval, func(s countdown.Snapshot) {
			select {
			case snaps <- s:
			case <-ctx.Done():
			}
		})
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		s, ok := <-snaps
		if !ok {
			return false
		}
		if s.Launched {
			c.SSEvent("launched", s)
			return false
		}
		c.SSEvent("tick", s)
		return true
	})
}

// Pricing returns the catalog priced in ?currency=, defaulting to INR.
func (h *Handlers) Pricing(c *gin.Context) {
	code, _ := pricing.ParseCurrency(c.Query(web.QueryCurrency))
	c.JSON(http.StatusOK, pricing.NewQuote(code))
}

func (h *Handlers) SubmitLaunch(c *gin.Context) {
	var lead models.LaunchSignup
	if !h.bind(c, &lead) {
		return
	}
	h.submit(c, lead, leadFlow{
		redirect:  web.PageLink("/launch", nil, web.QueryNotice, string(models.FormLaunch)),
		subscribe: true,
		rerender: func(form web.FormState, notice *web.Notice) g.Node {
			snap := h.newTimer().Measure()
			return web.LaunchPage(web.LaunchView{
				Launched: snap.Launched,
				Display:  snap.Display,
				Form:     form,
				Notice:   notice,
			})
		},
	})
}

func (h *Handlers) SubmitNewsletter(c *gin.Context) {
	var lead models.NewsletterSignup
	if !h.bind(c, &lead) {
		return
	}
	h.submit(c, lead, leadFlow{
		redirect:  web.PageLink("/", nil, web.QueryNotice, string(models.FormNewsletter)) + "#contact",
		subscribe: true,
		rerender: func(form web.FormState, notice *web.Notice) g.Node {
			v := h.homeView(c, nil)
			v.Newsletter = form
			v.Notice = notice
			return web.HomePage(v)
		},
	})
}

func (h *Handlers) SubmitDemo(c *gin.Context) {
	var lead models.DemoRequest
	if !h.bind(c, &lead) {
		return
	}
	h.submit(c, lead, leadFlow{
		redirect: web.PageLink("/", nil, web.QueryNotice, string(models.FormDemo)),
		rerender: func(form web.FormState, notice *web.Notice) g.Node {
			v := h.homeView(c, url.Values{web.QueryModal: {web.ModalDemo}})
			v.Demo = form
			v.Notice = notice
			return web.HomePage(v)
		},
	})
}

// SubmitPlan takes the plan name from the form and prices it server side.
func (h *Handlers) SubmitPlan(c *gin.Context) {
	var lead models.PlanInquiry
	if !h.bind(c, &lead) {
		return
	}

	code, err := pricing.ParseCurrency(c.PostForm("currency"))
	if err != nil {
		code = pricing.BaseCurrency
	}
	plan, ok := pricing.PlanByName(c.PostForm("plan"))
	if !ok {
		notFound := pkgerrors.New(pkgerrors.CodeNotFound, "unknown plan")
		if responses.WantsJSON(c) {
			responses.WriteError(c, h.logg, notFound)
			return
		}
		h.logg.Warn(h.logg.WithField(c.Request.Context(), "plan", c.PostForm("plan")), "request.rejected")
		v := h.homeView(c, url.Values{web.QueryCurrency: {string(code)}})
		v.Notice = web.FailureNotice(string(models.FormPlan))
		h.render(c, responses.StatusFor(notFound), web.HomePage(v))
		return
	}
	lead.Plan = plan.Name
	lead.Price = pricing.FormatPrice(plan.BasePrice, code)

	h.submit(c, lead, leadFlow{
		redirect: web.PageLink("/", url.Values{web.QueryCurrency: {string(code)}}, web.QueryNotice, string(models.FormPlan)),
		rerender: func(form web.FormState, notice *web.Notice) g.Node {
			v := h.homeView(c, url.Values{
				web.QueryModal:    {web.ModalPlan},
				web.QueryPlan:     {plan.Name},
				web.QueryCurrency: {string(code)},
			})
			v.PlanForm = form
			v.Notice = notice
			return web.HomePage(v)
		},
	})
}

// leadFlow describes what a form does around the shared submit path.
type leadFlow struct {
	redirect  string
	subscribe bool
	rerender  func(form web.FormState, notice *web.Notice) g.Node
}

// submit hands the lead to the submission service and waits for the single
// delivery attempt. Field errors, transport failures and duplicate posts
// re-render the form with the visitor's input; success redirects with a notice.
func (h *Handlers) submit(c *gin.Context, lead models.Lead, flow leadFlow) {
	ctx := c.Request.Context()
	visitorID := middleware.VisitorIDFromContext(ctx)

	task, err := h.submissions.Submit(ctx, visitorID, lead)
	if err == nil {
		err = task.Wait(ctx)
		if ctx.Err() != nil {
			// the visitor left; the delivery finishes on its own
			return
		}
	}

	if err != nil {
		h.fail(c, lead, flow, err)
		return
	}

	if flow.subscribe {
		h.markSubscribed(c, visitorID)
	}

	if responses.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.Redirect(http.StatusSeeOther, flow.redirect)
}

func (h *Handlers) fail(c *gin.Context, lead models.Lead, flow leadFlow, err error) {
	code := pkgerrors.CodeOf(err)
	var notice *web.Notice
	switch {
	case responses.WantsJSON(c):
		responses.WriteError(c, h.logg, err)
		return
	case code == pkgerrors.CodeDependency:
		notice = web.FailureNotice(string(lead.Form()))
	case code == pkgerrors.CodeConflict:
		notice = web.PendingNotice()
	case code != pkgerrors.CodeValidation:
		responses.WriteError(c, h.logg, err)
		return
	}

	form := web.FormState{Values: c.Request.PostForm, Errors: pkgerrors.FieldErrors(err)}
	h.render(c, responses.StatusFor(err), flow.rerender(form, notice))
}

func (h *Handlers) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindWith(dst, binding.Form); err != nil {
		responses.WriteError(c, h.logg, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed form body"))
		return false
	}
	return true
}

func (h *Handlers) newTimer() *countdown.Timer {
	return countdown.NewTimer(h.cfg.Launch.At, h.clock)
}

func (h *Handlers) homeView(c *gin.Context, q url.Values) *web.HomeView {
	v := web.NewHomeView(q)
	v.Subscribed = h.subscribed(c)
	v.DemoSlots = models.DemoSlots(h.cfg.Demo.FirstHour, h.cfg.Demo.LastHour, h.cfg.Demo.ZoneName)
	v.DemoMinDate = models.MinDemoDate(h.clock.Now(), h.cfg.Demo.Location())
	return v
}

// subscribed reads the flag once per render: the browser cookie first, then
// the server-side store.
func (h *Handlers) subscribed(c *gin.Context) bool {
	if v, err := c.Cookie(h.cfg.FlagStore.CookieName); err == nil && v == "true" {
		return true
	}
	return h.subscriptions.Subscribed(c.Request.Context(), middleware.VisitorIDFromContext(c.Request.Context()))
}

func (h *Handlers) markSubscribed(c *gin.Context, visitorID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.FlagStore.CookieName, "true", int(h.cfg.FlagStore.CookieMaxAge.Seconds()), "/", "", h.cfg.App.IsProd(), true)
	h.subscriptions.MarkSubscribed(c.Request.Context(), visitorID)
}

func (h *Handlers) render(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil && !errors.Is(err, context.Canceled) {
		h.logg.Error(c.Request.Context(), "render.failed", err)
	}
}
