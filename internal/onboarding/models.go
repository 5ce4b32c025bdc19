package onboarding

// Field identifies one input of the onboarding form. The string value is the
// key used in the persisted JSON record and in ErrorSet.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldCompanyName     Field = "companyName"
	FieldIndustry        Field = "industry"
	FieldCompanySize     Field = "companySize"
	FieldTheme           Field = "theme"
	FieldDashboardLayout Field = "dashboardLayout"
)

// Fields lists every editable field in form order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldCompanyName,
	FieldIndustry,
	FieldCompanySize,
	FieldTheme,
	FieldDashboardLayout,
}

// Label returns the human-readable field name used in messages.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldCompanyName:
		return "Company name"
	case FieldIndustry:
		return "Industry"
	case FieldCompanySize:
		return "Company size"
	case FieldTheme:
		return "Theme"
	case FieldDashboardLayout:
		return "Dashboard layout"
	default:
		return string(f)
	}
}

// Valid reports whether f names a form field.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Theme is the dashboard color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists the selectable themes in display order.
var Themes = []Theme{ThemeLight, ThemeDark}

// Layout is the dashboard card layout preference.
type Layout string

const (
	LayoutCompact Layout = "compact"
	LayoutWide    Layout = "wide"
)

// Layouts lists the selectable layouts in display order.
var Layouts = []Layout{LayoutCompact, LayoutWide}

// Option is one entry of a single-select field.
type Option struct {
	Value string
	Label string
}

// IndustryOptions are the choices offered for the industry field.
var IndustryOptions = []Option{
	{Value: "technology", Label: "Technology"},
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "finance", Label: "Finance"},
	{Value: "education", Label: "Education"},
	{Value: "retail", Label: "Retail"},
	{Value: "manufacturing", Label: "Manufacturing"},
	{Value: "other", Label: "Other"},
}

// CompanySizeOptions are the choices offered for the company size field.
var CompanySizeOptions = []Option{
	{Value: "1-10", Label: "1-10 employees"},
	{Value: "11-50", Label: "11-50 employees"},
	{Value: "51-200", Label: "51-200 employees"},
	{Value: "201-1000", Label: "201-1000 employees"},
	{Value: "1000+", Label: "1000+ employees"},
}

// OptionLabel returns the label for value, or value itself when it is not
// one of options.
func OptionLabel(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// FormData is the onboarding record. It doubles as the persisted JSON shape,
// so the tags must stay in sync with what earlier runs wrote to the slot.
type FormData struct {
	// Step 1: personal info
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`

	// Step 2: business info
	CompanyName string `json:"companyName" yaml:"companyName"`
	Industry    string `json:"industry" yaml:"industry"`
	CompanySize string `json:"companySize" yaml:"companySize"`

	// Step 3: preferences
	Theme           Theme  `json:"theme" yaml:"theme"`
	DashboardLayout Layout `json:"dashboardLayout" yaml:"dashboardLayout"`

	// Only meaningful on the persisted copy.
	IsComplete bool `json:"isComplete" yaml:"isComplete"`
}

// NewFormData returns an empty form with default preferences.
func NewFormData() FormData {
	return FormData{
		Theme:           ThemeLight,
		DashboardLayout: LayoutCompact,
	}
}

// Get returns the current value of field.
func (d FormData) Get(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldCompanyName:
		return d.CompanyName
	case FieldIndustry:
		return d.Industry
	case FieldCompanySize:
		return d.CompanySize
	case FieldTheme:
		return string(d.Theme)
	case FieldDashboardLayout:
		return string(d.DashboardLayout)
	default:
		return ""
	}
}

// With returns a copy of d with field set to value.
func (d FormData) With(field Field, value string) (FormData, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldCompanyName:
		d.CompanyName = value
	case FieldIndustry:
		d.Industry = value
	case FieldCompanySize:
		d.CompanySize = value
	case FieldTheme:
		d.Theme = Theme(value)
	case FieldDashboardLayout:
		d.DashboardLayout = Layout(value)
	default:
		return d, NewStateError(ErrUnknownField, string(field))
	}
	return d, nil
}

// EffectiveTheme returns the theme, falling back to light for values the
// dashboard does not know how to draw.
func (d FormData) EffectiveTheme() Theme {
	if d.Theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// EffectiveLayout returns the layout, falling back to compact.
func (d FormData) EffectiveLayout() Layout {
	if d.DashboardLayout == LayoutWide {
		return LayoutWide
	}
	return LayoutCompact
}
