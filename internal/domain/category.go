package domain

import "fmt"

// Category is the single curated category a hook belongs to.
// The zero value is not a valid category.
type Category int

const (
	CategoryAutomation Category = iota + 1
	CategoryCodeQuality
	CategoryNotifications
	CategoryLogging
	CategorySecurity
	CategoryMultiAgent
	CategoryTesting
	CategoryDocumentation
	CategoryGeneral
	// New categories go above this line, with a row in categoryTable.
	categoryEnd

	categoryCount = int(categoryEnd) - 1
)

// categoryInfo binds a category to everything the page needs to show it.
type categoryInfo struct {
	label string
	style string
}

// categoryTable is indexed by Category-1 and lists categories in display order.
var categoryTable = [...]categoryInfo{
	CategoryAutomation - 1:    {"Automation", "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200"},
	CategoryCodeQuality - 1:   {"Code Quality", "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200"},
	CategoryNotifications - 1: {"Notifications", "bg-yellow-100 text-yellow-800 dark:bg-yellow-900 dark:text-yellow-200"},
	CategoryLogging - 1:       {"Logging", "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-200"},
	CategorySecurity - 1:      {"Security", "bg-red-100 text-red-800 dark:bg-red-900 dark:text-red-200"},
	CategoryMultiAgent - 1:    {"Multi-Agent", "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-200"},
	CategoryTesting - 1:       {"Testing", "bg-teal-100 text-teal-800 dark:bg-teal-900 dark:text-teal-200"},
	CategoryDocumentation - 1: {"Documentation", "bg-indigo-100 text-indigo-800 dark:bg-indigo-900 dark:text-indigo-200"},
	CategoryGeneral - 1:       {"General", "bg-slate-100 text-slate-800 dark:bg-slate-900 dark:text-slate-200"},
}

// Compile-time guards: the table must have exactly one row per category.
var (
	_ [len(categoryTable) - categoryCount]struct{}
	_ [categoryCount - len(categoryTable)]struct{}
)

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for i := range categoryTable {
		out = append(out, Category(i+1))
	}
	return out
}

// ParseCategory resolves a label such as "Code Quality" to its Category.
// Matching is exact; labels are a closed set.
func ParseCategory(label string) (Category, bool) {
	for i, info := range categoryTable {
		if info.label == label {
			return Category(i + 1), true
		}
	}
	return 0, false
}

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	return c >= CategoryAutomation && int(c) <= categoryCount
}

// String returns the human-readable label.
func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryTable[c-1].label
}

// Style returns the badge classes for c.
func (c Category) Style() string {
	if !c.IsValid() {
		return ""
	}
	return categoryTable[c-1].style
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category: %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category: %q", string(text))
	}
	*c = parsed
	return nil
}
