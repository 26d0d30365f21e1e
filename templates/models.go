// Package templates holds the view models and templ components for all
// server-rendered pages.
package templates

// SelectOption is a single <option> in a form dropdown.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// HeaderData feeds the top navigation bar.
type HeaderData struct {
	Title string
}

// SidebarData feeds the navigation sidebar with per-section record counts.
type SidebarData struct {
	ActiveSection string
	CustomerCount int
	ChemicalCount int
	TdsCount      int
	PartnerCount  int
	PipelineCount int
}

// ── Dashboard ────────────────────────────────────────────────────────────

type StageCount struct {
	Stage string
	Count int
}

type ChurnRiskItem struct {
	PipelineID   string
	CustomerName string
	Stage        string
	DaysInStage  int
}

type ForecastWeek struct {
	WeekStart string
	Value     string
}

type DashboardData struct {
	CustomerCount      int
	ChemicalCount      int
	PartnerCount       int
	OpenPipelineCount  int
	TotalPipelineValue string
	ForecastValue      string
	StageDistribution  []StageCount
	ChurnRisk          []ChurnRiskItem
	ForecastPeriodDays int
	ForecastWeeks      []ForecastWeek
}

// ── Customers ────────────────────────────────────────────────────────────

type CustomerListItem struct {
	ID              string
	DisplayID       string
	Name            string
	SalesStage      string
	StageBadgeClass string
	PipelineCount   int
	CreatedDate     string
}

type CustomerListData struct {
	Items      []CustomerListItem
	TotalCount int
}

type CustomerFormData struct {
	ID     string
	IsEdit bool
	Values map[string]string
	Errors map[string]string
}

type CustomerInteractionItem struct {
	Date      string
	InputText string
	Response  string
}

type CustomerPipelineItem struct {
	ID          string
	ProductName string
	Stage       string
	BadgeClass  string
	Amount      string
}

type CustomerViewData struct {
	ID           string
	DisplayID    string
	Name         string
	SalesStage   string
	Profile      string
	CreatedDate  string
	Interactions []CustomerInteractionItem
	Pipelines    []CustomerPipelineItem
}

// ── Chemicals ────────────────────────────────────────────────────────────

type ChemicalListItem struct {
	ID       string
	Name     string
	Category string
	HSCode   string
	TdsCount int
}

type ChemicalListData struct {
	Items      []ChemicalListItem
	TotalCount int
}

type ChemicalFormData struct {
	ID     string
	IsEdit bool
	Values map[string]string
	Errors map[string]string
}

// ── TDS ──────────────────────────────────────────────────────────────────

type TdsListItem struct {
	ID     string
	Brand  string
	Grade  string
	Owner  string
	Source string
}

type TdsGroup struct {
	ChemicalName string
	Items        []TdsListItem
}

type TdsListData struct {
	Groups     []TdsGroup
	TotalCount int
}

type TdsFormData struct {
	ID              string
	IsEdit          bool
	Values          map[string]string
	Errors          map[string]string
	ChemicalOptions []SelectOption
}

// ── Partners ─────────────────────────────────────────────────────────────

type PartnerListItem struct {
	ID      string
	Name    string
	Country string
}

type PartnerListData struct {
	Items      []PartnerListItem
	TotalCount int
}

type PartnerFormData struct {
	ID     string
	IsEdit bool
	Values map[string]string
	Errors map[string]string
}

// ── Pipelines ────────────────────────────────────────────────────────────

type PipelineListItem struct {
	ID              string
	CustomerName    string
	ProductName     string
	Stage           string
	StageBadgeClass string
	ProgressPct     string
	Amount          string
	TotalValue      string
	GroupSize       int
	UpdatedDate     string
}

type PipelineListData struct {
	Items      []PipelineListItem
	TotalCount int
}

type PipelineFormData struct {
	ID              string
	IsEdit          bool
	Values          map[string]string
	Errors          map[string]string
	CustomerOptions []SelectOption
	ChemicalOptions []SelectOption
	TdsOptions      []SelectOption
	StageOptions    []SelectOption
	CurrencyOptions []SelectOption
	UnitOptions     []SelectOption
	BusinessUnits   []SelectOption
	ForexOptions    []SelectOption
	IncotermOptions []SelectOption
}

type StageHistoryItem struct {
	FromStage     string
	ToStage       string
	ChangedAt     string
	Justification string
}

type AIInteractionItem struct {
	Timestamp string
	UserInput string
	Response  string
}

type PipelineViewData struct {
	ID                string
	CustomerName      string
	ProductName       string
	Stage             string
	StageBadgeClass   string
	ProgressPct       string
	Amount            string
	UnitPrice         string
	TotalAmount       string
	TotalWithVAT      string
	Currency          string
	BusinessModel     string
	BusinessUnit      string
	Forex             string
	Incoterm          string
	LeadSource        string
	ContactPerLead    string
	ExpectedCloseDate string
	CloseReason       string
	History           []StageHistoryItem
	Interactions      []AIInteractionItem
	GroupMembers      []PipelineListItem
	NextStages        []SelectOption
}

// ── Quote ────────────────────────────────────────────────────────────────

type QuoteFormData struct {
	PipelineID    string
	CustomerName  string
	ProductName   string
	FormatOptions []SelectOption
	TermsOptions  []SelectOption
}
