package entity

// KeyCategory groups the selectable final keys.
type KeyCategory int

const (
	KeyCategoryAlphanumeric KeyCategory = iota
	KeyCategoryPunctuation
	KeyCategoryFunction
	KeyCategoryWhitespace
	KeyCategoryEditing
	KeyCategoryNavigation
)

// String returns the category name.
func (c KeyCategory) String() string {
	switch c {
	case KeyCategoryAlphanumeric:
		return "alphanumeric"
	case KeyCategoryPunctuation:
		return "punctuation"
	case KeyCategoryFunction:
		return "function"
	case KeyCategoryWhitespace:
		return "whitespace"
	case KeyCategoryEditing:
		return "editing"
	case KeyCategoryNavigation:
		return "navigation"
	default:
		return "unknown"
	}
}

// FinalKey is one entry of the final key list.
type FinalKey struct {
	Name     string
	Category KeyCategory
}

var (
	alphanumericKeys = []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	}
	punctuationKeys = []string{
		"~", "!", "@", "#", "%", "^", "&", "*", "(", ")", "_", "-", "+", "=",
		"{", "}", "[", "]", "|", ";", ":", ",", ".", "<", ">", "/", "?",
	}
	functionKeys = []string{
		"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	}
	whitespaceKeys = []string{"Tab", "Space", "Return"}
	editingKeys    = []string{"BackSpace", "Delete", "Insert"}
	navigationKeys = []string{
		"Home", "End", "Page Up", "Page Down",
		"Left Arrow", "Right Arrow", "Up Arrow", "Down Arrow",
	}
)

// FinalKeyCatalog is the read-only list of final keys offered in basic mode.
type FinalKeyCatalog struct {
	keys       []FinalKey
	categories map[string]KeyCategory
}

// NewFinalKeyCatalog builds the catalog in display order.
func NewFinalKeyCatalog() *FinalKeyCatalog {
	c := &FinalKeyCatalog{categories: make(map[string]KeyCategory, 96)}
	c.add(KeyCategoryAlphanumeric, alphanumericKeys)
	c.add(KeyCategoryPunctuation, punctuationKeys)
	c.add(KeyCategoryFunction, functionKeys)
	c.add(KeyCategoryWhitespace, whitespaceKeys)
	c.add(KeyCategoryEditing, editingKeys)
	c.add(KeyCategoryNavigation, navigationKeys)
	return c
}

func (c *FinalKeyCatalog) add(category KeyCategory, names []string) {
	for _, name := range names {
		c.keys = append(c.keys, FinalKey{Name: name, Category: category})
		c.categories[name] = category
	}
}

// Keys returns a copy of the catalog in display order.
func (c *FinalKeyCatalog) Keys() []FinalKey {
	out := make([]FinalKey, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of keys.
func (c *FinalKeyCatalog) Len() int {
	return len(c.keys)
}

// Contains reports whether name is a catalog key.
func (c *FinalKeyCatalog) Contains(name string) bool {
	_, ok := c.categories[name]
	return ok
}

// Category returns the category of name.
func (c *FinalKeyCatalog) Category(name string) (KeyCategory, bool) {
	category, ok := c.categories[name]
	return category, ok
}

// IsFunctionKey reports whether name is F1..F12.
func (c *FinalKeyCatalog) IsFunctionKey(name string) bool {
	category, ok := c.categories[name]
	return ok && category == KeyCategoryFunction
}

// IsNavigationKey reports whether name is a cursor movement key.
func (c *FinalKeyCatalog) IsNavigationKey(name string) bool {
	category, ok := c.categories[name]
	return ok && category == KeyCategoryNavigation
}
