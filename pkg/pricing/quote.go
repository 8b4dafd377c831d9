package pricing

// PlanQuote is a plan priced in one display currency.
type PlanQuote struct {
	Name        string         `json:"name"`
	Price       string         `json:"price"`
	Description string         `json:"description"`
	Features    []FeatureQuote `json:"features"`
	IsPopular   bool           `json:"is_popular"`
}

type FeatureQuote struct {
	Label    string `json:"label"`
	Included bool   `json:"included"`
}

type CostQuote struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Subtitle string `json:"subtitle,omitempty"`
}

type CurrencyOption struct {
	Code     CurrencyCode `json:"code"`
	Symbol   string       `json:"symbol"`
	Name     string       `json:"name"`
	Selected bool         `json:"selected"`
}

// Quote is the whole catalog rendered in a single currency.
type Quote struct {
	Currency        CurrencyCode     `json:"currency"`
	Currencies      []CurrencyOption `json:"currencies"`
	Plans           []PlanQuote      `json:"plans"`
	AdditionalCosts []CostQuote      `json:"additional_costs"`
	AddOns          []CostQuote      `json:"add_ons"`
}

// QuotePlan prices a single plan in code.
func QuotePlan(p Plan, code CurrencyCode) PlanQuote {
	features := make([]FeatureQuote, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, FeatureQuote{Label: f.Label, Included: f.Included})
	}
	return PlanQuote{
		Name:        p.Name,
		Price:       FormatPrice(p.BasePrice, code),
		Description: p.Description,
		Features:    features,
		IsPopular:   p.IsPopular,
	}
}

func quoteCosts(costs []Cost, code CurrencyCode) []CostQuote {
	out := make([]CostQuote, 0, len(costs))
	for _, c := range costs {
		out = append(out, CostQuote{Title: c.Title, Price: Format(c.Amount, code), Subtitle: c.Subtitle})
	}
	return out
}

// NewQuote renders the catalog in code. Unknown codes fall back to the base currency.
func NewQuote(code CurrencyCode) Quote {
	if _, ok := Lookup(code); !ok {
		code = BaseCurrency
	}

	options := make([]CurrencyOption, 0, len(currencyOrder))
	for _, c := range Currencies() {
		options = append(options, CurrencyOption{Code: c.Code, Symbol: c.Symbol, Name: c.Name, Selected: c.Code == code})
	}

	published := Plans()
	planQuotes := make([]PlanQuote, 0, len(published))
	for _, p := range published {
		planQuotes = append(planQuotes, QuotePlan(p, code))
	}

	return Quote{
		Currency:        code,
		Currencies:      options,
		Plans:           planQuotes,
		AdditionalCosts: quoteCosts(additionalCosts, code),
		AddOns:          quoteCosts(addOns, code),
	}
}
