package main

// Wire shapes of the REST API. Kept separate from the server's models so the
// WASM build never pulls in database/sql or the sqlite driver.

type User struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Skills    string `json:"skills"`
	Expertise string `json:"expertise"`
	CreatedAt string `json:"created_at"`
}

type Business struct {
	ID           string `json:"id"`
	OwnerUID     string `json:"owner_uid"`
	OwnerName    string `json:"owner_name,omitempty"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Verified     bool   `json:"verified"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
}

type Pitch struct {
	ID             string  `json:"id"`
	BusinessID     string  `json:"business_id"`
	BusinessName   string  `json:"business_name"`
	OwnerUID       string  `json:"owner_uid"`
	PitchTitle     string  `json:"pitch_title"`
	Summary        string  `json:"summary"`
	PitchDetails   string  `json:"pitch_details"`
	FundingGoal    float64 `json:"funding_goal"`
	CurrentFunding float64 `json:"current_funding"`
	EquityOffered  float64 `json:"equity_offered"`
	Status         string  `json:"status"`
	Interested     int     `json:"interested"`
	CreatedAt      string  `json:"created_at"`
}

type Investment struct {
	ID         string  `json:"id"`
	PitchID    string  `json:"pitch_id"`
	PitchTitle string  `json:"pitch_title"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

type ForumPost struct {
	ID         string `json:"id"`
	AuthorUID  string `json:"author_uid"`
	AuthorName string `json:"author_name"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Votes      int    `json:"votes"`
	CreatedAt  string `json:"created_at"`
}

type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	Members     int       `json:"members"`
	Channels    []Channel `json:"channels,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

type Channel struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Name        string `json:"name"`
}

type Conversation struct {
	ChatID             string `json:"chat_id"`
	LastMessageContent string `json:"last_message_content"`
	LastMessageAt      string `json:"last_message_at"`
	OtherUser          struct {
		UID  string `json:"uid"`
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"other_user"`
}

type MentorshipRequest struct {
	ID          string `json:"id"`
	ArtisanUID  string `json:"artisan_uid"`
	ArtisanName string `json:"artisan_name"`
	MentorUID   string `json:"mentor_uid"`
	MentorName  string `json:"mentor_name"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type Scheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Link        string `json:"link"`
}
