package domain

// Course is a catalog item. Published controls visibility to users; admins
// always see the full catalog. ID is the hex form of the Mongo ObjectID.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}
