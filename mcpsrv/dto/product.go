package dto

type Product struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Likes      int      `json:"likes"`
	Categories []string `json:"categories"`
	ImageURL   string   `json:"image_url"`
}
