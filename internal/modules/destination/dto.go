package destination

type UpsertDestinationRequest struct {
	Name        string  `json:"name" binding:"required" example:"Kerala"`
	Country     string  `json:"country" binding:"required" example:"India"`
	Description string  `json:"description" example:"Serene backwaters and lush landscapes."`
	Price       float64 `json:"price" binding:"required,gt=0" example:"17999"`
	Category    string  `json:"category" example:"Nature"`
	ImageURL    string  `json:"image_url" example:"https://images.example.com/kerala.jpg"`
	Featured    bool    `json:"featured" example:"false"`
}

type DetailResponse struct {
	ID            int64   `json:"id"`
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	AverageRating float64 `json:"average_rating"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"image_url"`
	Featured      bool    `json:"featured"`
}
