package handlers

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddWatchedRequest struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Ranking int    `json:"ranking"`
}

type SwipeRequest struct {
	Title string `json:"title"`
	Swipe string `json:"swipe"`
}
