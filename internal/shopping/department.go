package shopping

// Department groups items by store section. Items, staples and recent items
// refer to a department by ID; an empty ID means no department.
type Department struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	SortOrder int
	IsDefault bool
}

// NoDepartment is shown where a department ID is empty or unknown.
const NoDepartment = "-"

// Label renders the department as "icon name". A nil department renders as
// NoDepartment.
func (d *Department) Label() string {
	if d == nil || d.Name == "" {
		return NoDepartment
	}
	if d.Icon == "" {
		return d.Name
	}
	return d.Icon + " " + d.Name
}

// DefaultDepartments is seeded into an empty store and restored after a reset.
var DefaultDepartments = []Department{
	{ID: "produce", Name: "Produce", Icon: "🥬", Color: "#10B981", SortOrder: 0, IsDefault: true},
	{ID: "meat-seafood", Name: "Meat & Seafood", Icon: "🥩", Color: "#EF4444", SortOrder: 1, IsDefault: true},
	{ID: "dairy-eggs", Name: "Dairy & Eggs", Icon: "🥛", Color: "#F59E0B", SortOrder: 2, IsDefault: true},
	{ID: "bakery", Name: "Bakery", Icon: "🍞", Color: "#D97706", SortOrder: 3, IsDefault: true},
	{ID: "frozen-foods", Name: "Frozen Foods", Icon: "❄️", Color: "#3B82F6", SortOrder: 4, IsDefault: true},
	{ID: "canned-goods", Name: "Canned Goods", Icon: "🥫", Color: "#8B5CF6", SortOrder: 5, IsDefault: true},
	{ID: "snacks", Name: "Snacks", Icon: "🍿", Color: "#EC4899", SortOrder: 6, IsDefault: true},
	{ID: "beverages", Name: "Beverages", Icon: "🥤", Color: "#06B6D4", SortOrder: 7, IsDefault: true},
	{ID: "cleaning-supplies", Name: "Cleaning Supplies", Icon: "🧹", Color: "#84CC16", SortOrder: 8, IsDefault: true},
	{ID: "personal-care", Name: "Personal Care", Icon: "🧴", Color: "#A855F7", SortOrder: 9, IsDefault: true},
	{ID: "other", Name: "Other", Icon: "📦", Color: "#6B7280", SortOrder: 10, IsDefault: true},
}

// DepartmentIndex maps department IDs to departments for display lookups.
type DepartmentIndex map[string]Department

func NewDepartmentIndex(departments []Department) DepartmentIndex {
	index := make(DepartmentIndex, len(departments))
	for _, d := range departments {
		index[d.ID] = d
	}
	return index
}

// Label resolves id and falls back to NoDepartment when it is empty or
// unknown.
func (idx DepartmentIndex) Label(id string) string {
	d, ok := idx[id]
	if !ok {
		return NoDepartment
	}
	return d.Label()
}
