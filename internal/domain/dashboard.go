package domain

// DashboardSettings holds the persisted layout of one dashboard.
// Items is the grid content: each row is an ordered list of display names.
type DashboardSettings struct {
	ID    string
	Name  string
	Items [][]string
}
