package models

// NewsArticle es una noticia tal como la expone la API.
type NewsArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	PublishedOn int64  `json:"published_on"` // segundos unix
	Source      string `json:"source"`
	ImageURL    string `json:"imageurl"`
}

// NewsResponse es la envoltura que devuelve CryptoCompare en /data/v2/news/
type NewsResponse struct {
	Type    int           `json:"Type"`
	Message string        `json:"Message"`
	Data    []NewsArticle `json:"Data"`
}
