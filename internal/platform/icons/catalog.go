package icons

// ID identifies one icon in the catalog.
type ID int

const (
	IDUnspecified ID = iota
	IDMenu
	IDThemeLight
	IDThemeDark
	IDDonate
	IDChevronDown
	IDClose
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          IDMenu,
		Name:        "Menu",
		Description: "Opens the mobile navigation sheet.",
	},
	{
		ID:          IDThemeLight,
		Name:        "Light Theme",
		Description: "Shown while the dark theme is active; switches to light.",
	},
	{
		ID:          IDThemeDark,
		Name:        "Dark Theme",
		Description: "Shown while the light theme is active; switches to dark.",
	},
	{
		ID:          IDDonate,
		Name:        "Donate",
		Description: "Buy the maintainers a virtual coffee.",
	},
	{
		ID:          IDChevronDown,
		Name:        "Chevron Down",
		Description: "Marks a navigation entry that opens a dropdown.",
	},
	{
		ID:          IDClose,
		Name:        "Close",
		Description: "Dismisses a sheet or toast.",
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// String returns the catalog name for id.
func (id ID) String() string {
	for _, def := range catalog {
		if def.ID == id {
			return def.Name
		}
	}
	return "Unspecified"
}
