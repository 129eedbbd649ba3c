// Package locale resolves script variant and currency from a city and
// renders localized strings and numbers.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Variant is the written script used for UI strings.
type Variant string

// Script variants.
const (
	Hans Variant = "hans"
	Hant Variant = "hant"
)

// Currency is the currency prices are quoted in.
type Currency string

// Currencies.
const (
	CNY Currency = "CNY"
	TWD Currency = "TWD"
)

var traditionalCities = map[string]bool{
	"taibei": true,
	"xinbei": true,
}

var cityLabels = map[string]string{
	"bj":        "北京",
	"beijing":   "北京",
	"sh":        "上海",
	"shanghai":  "上海",
	"gz":        "广州",
	"guangzhou": "广州",
	"sz":        "深圳",
	"shenzhen":  "深圳",
	"tianjin":   "天津",
	"taibei":    "台北",
	"xinbei":    "新北",
}

// Context is the locale derived from the selected city.
type Context struct {
	Tag      language.Tag
	Variant  Variant
	Currency Currency
}

// Resolve maps a city code to its locale. Unknown and empty cities use
// simplified script and CNY.
func Resolve(city string) Context {
	if IsTraditional(city) {
		return Context{Variant: Hant, Currency: TWD, Tag: language.MustParse("zh-Hant-TW")}
	}
	return Context{Variant: Hans, Currency: CNY, Tag: language.MustParse("zh-Hans-CN")}
}

// IsTraditional reports whether city uses traditional script.
func IsTraditional(city string) bool {
	return traditionalCities[strings.ToLower(strings.TrimSpace(city))]
}

// CityName returns the display name for a city code.
func CityName(city string) string {
	k := strings.ToLower(strings.TrimSpace(city))
	if k == "" {
		return "-"
	}
	if name, ok := cityLabels[k]; ok {
		return name
	}
	return k
}

// CityNames joins display names with ", ", or "-" when empty.
func CityNames(cities []string) string {
	if len(cities) == 0 {
		return "-"
	}
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, CityName(c))
	}
	return strings.Join(names, ", ")
}

// T renders key in the context's variant.
func (c Context) T(key Key, vars Vars) string {
	return T(c.Variant, key, vars)
}

// Format returns a number formatter for the context.
func (c Context) Format() Formatter {
	return NewFormatter(c.Tag)
}

// ChartWindow is how many trailing months the trend chart shows.
func (c Context) ChartWindow() int {
	if c.Currency == TWD {
		return 36
	}
	return 12
}

// TrendListSize is how many recent months the trend list shows.
func (c Context) TrendListSize() int {
	if c.Currency == TWD {
		return 12
	}
	return 8
}
