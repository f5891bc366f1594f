package pages

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
	"github.com/blackpdx/ggokka-ot/internal/web/templates/components"
)

// openEvents maps each main screen to the event that opens it
var openEvents = func() map[model.Screen]model.Event {
	m := make(map[model.Screen]model.Event)
	for e, s := range model.NavigationEvents() {
		m[s] = e
	}
	return m
}()

// menuScreens are the main screens reachable from home
func menuScreens() []model.Screen {
	var out []model.Screen
	for _, s := range model.MainScreens() {
		if s != model.ScreenHome {
			out = append(out, s)
		}
	}
	return out
}

func ageGroupOptions(selected *int) []components.Option {
	groups := model.AgeGroups()
	out := make([]components.Option, len(groups))
	for i, g := range groups {
		out[i] = components.Option{
			Value:   strconv.Itoa(g),
			Label:   model.AgeGroupLabel(g),
			Checked: selected != nil && *selected == g,
		}
	}
	return out
}

func genderOptions(selected string) []components.Option {
	out := make([]components.Option, len(forms.Genders))
	for i, g := range forms.Genders {
		out[i] = components.Option{Value: g, Label: genderLabel(g), Checked: g == selected}
	}
	return out
}

func genderLabel(g string) string {
	switch g {
	case "female":
		return "여성"
	case "male":
		return "남성"
	default:
		return "기타"
	}
}

func styleOptions(names []string, selected func(string) bool) []components.StyleOption {
	out := make([]components.StyleOption, len(names))
	for i, n := range names {
		out[i] = components.StyleOption{Name: n, Selected: selected(n)}
	}
	return out
}

func profileStyles(styles []model.StylePreference, f *forms.ProfileForm) []components.StyleOption {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return styleOptions(names, f.Selected)
}

type measurementField struct {
	Label string
	Name  string
	Value string
}

func measurementFields(m forms.Measurements) []measurementField {
	return []measurementField{
		{"키(cm)", "height", m.Height},
		{"몸무게(kg)", "weight", m.Weight},
		{"가슴(cm)", "chest", m.Chest},
		{"허리(cm)", "waist", m.Waist},
		{"엉덩이(cm)", "hip", m.Hip},
	}
}

func appLink(q url.Values) string {
	return "/app?" + q.Encode()
}

func occasionLinks(v DailyView) []components.FilterLink {
	out := make([]components.FilterLink, len(v.Occasions))
	for i, o := range v.Occasions {
		out[i] = components.FilterLink{
			Href:   appLink(url.Values{"occasion": {string(o)}}),
			Value:  string(o),
			Label:  o.Label(),
			Active: o == v.Occasion,
		}
	}
	return out
}

func periodLinks(v ReportView) []components.FilterLink {
	out := make([]components.FilterLink, len(v.Periods))
	for i, p := range v.Periods {
		out[i] = components.FilterLink{
			Href:   appLink(url.Values{"period": {string(p)}}),
			Value:  string(p),
			Label:  p.Label(),
			Active: p == v.Report.Period,
		}
	}
	return out
}

// categoryLinks keeps the search query while switching category
func categoryLinks(v WardrobeView) []components.FilterLink {
	out := make([]components.FilterLink, len(v.Counts))
	for i, c := range v.Counts {
		q := url.Values{"category": {string(c.Category)}}
		if v.Query != "" {
			q.Set("q", v.Query)
		}
		out[i] = components.FilterLink{
			Href:   appLink(q),
			Value:  string(c.Category),
			Label:  c.Category.Label() + " (" + strconv.Itoa(c.Count) + ")",
			Active: c.Category == v.Category,
		}
	}
	return out
}

func shoppingLinks(v ShoppingView) []components.FilterLink {
	out := make([]components.FilterLink, len(v.Categories))
	for i, c := range v.Categories {
		out[i] = components.FilterLink{
			Href:   appLink(url.Values{"category": {string(c)}, "price": {string(v.Price)}}),
			Value:  string(c),
			Label:  c.Label(),
			Active: c == v.Category,
		}
	}
	return out
}

func priceLinks(v ShoppingView) []components.FilterLink {
	ranges := model.PriceRanges()
	out := make([]components.FilterLink, len(ranges))
	for i, p := range ranges {
		out[i] = components.FilterLink{
			Href:   appLink(url.Values{"category": {string(v.Category)}, "price": {string(p)}}),
			Value:  string(p),
			Label:  p.Label(),
			Active: p == v.Price,
		}
	}
	return out
}

// formatWon groups digits by thousands
func formatWon(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func oneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
