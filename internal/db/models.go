package db

type User struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	Skills       string `json:"skills"`
	Expertise    string `json:"expertise"`
	CreatedAt    string `json:"created_at"`
	PasswordHash string `json:"-"`
}

type Business struct {
	ID           string `json:"id"`
	OwnerUID     string `json:"owner_uid"`
	OwnerName    string `json:"owner_name,omitempty"` // joined
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Verified     bool   `json:"verified"`
	VerifiedBy   string `json:"verified_by"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
}

type Pitch struct {
	ID             string  `json:"id"`
	BusinessID     string  `json:"business_id"`
	BusinessName   string  `json:"business_name"` // joined
	OwnerUID       string  `json:"owner_uid"`
	PitchTitle     string  `json:"pitch_title"`
	Summary        string  `json:"summary"`
	PitchDetails   string  `json:"pitch_details"`
	FundingGoal    float64 `json:"funding_goal"`
	CurrentFunding float64 `json:"current_funding"`
	EquityOffered  float64 `json:"equity_offered"`
	Status         string  `json:"status"`
	Interested     int     `json:"interested"` // computed
	CreatedAt      string  `json:"created_at"`
}

type Investment struct {
	ID          string  `json:"id"`
	PitchID     string  `json:"pitch_id"`
	PitchTitle  string  `json:"pitch_title"` // joined
	InvestorUID string  `json:"investor_uid"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

type ForumPost struct {
	ID         string `json:"id"`
	AuthorUID  string `json:"author_uid"`
	AuthorName string `json:"author_name"` // joined
	Title      string `json:"title"`
	Content    string `json:"content"`
	Votes      int    `json:"votes"` // computed
	CreatedAt  string `json:"created_at"`
}

type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	Members     int       `json:"members"`            // computed
	Channels    []Channel `json:"channels,omitempty"` // joined on detail
	CreatedAt   string    `json:"created_at"`
}

type Channel struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Name        string `json:"name"`
}

// Message is the wire shape shared by direct chats and community channels.
type Message struct {
	ID         string `json:"id"`
	SenderUID  string `json:"sender_uid"`
	SenderName string `json:"sender_name,omitempty"` // joined
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
}

type Conversation struct {
	ChatID             string           `json:"chat_id"`
	LastMessageContent string           `json:"last_message_content"`
	LastMessageAt      string           `json:"last_message_at"`
	OtherUser          ConversationPeer `json:"other_user"`
}

type ConversationPeer struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type MentorshipRequest struct {
	ID          string `json:"id"`
	ArtisanUID  string `json:"artisan_uid"`
	ArtisanName string `json:"artisan_name"` // joined
	MentorUID   string `json:"mentor_uid"`
	MentorName  string `json:"mentor_name"` // joined
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
