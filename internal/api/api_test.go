package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	if err := db.Init(t.TempDir()); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(db.Close)

	mux := http.NewServeMux()
	RegisterRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func signup(t *testing.T, ts *httptest.Server, role, name, email string) string {
	t.Helper()
	var got struct {
		UID string `json:"uid"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/signup/"+role,
		map[string]string{"name": name, "email": email, "password": "hunter22"}, &got)
	if status != http.StatusCreated {
		t.Fatalf("signup %s: status %d", email, status)
	}
	if got.UID == "" {
		t.Fatalf("signup %s: empty uid", email)
	}
	return got.UID
}

func TestSignupAndSignin(t *testing.T) {
	ts := newTestServer(t)

	uid := signup(t, ts, "artisan", "Meera", "meera@example.com")

	var dup struct {
		Message string `json:"message"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/signup/artisan",
		map[string]string{"name": "Meera Again", "email": "Meera@Example.com", "password": "x"}, &dup)
	if status != http.StatusConflict {
		t.Fatalf("duplicate signup: status %d, want 409", status)
	}

	var id struct {
		UID  string `json:"uid"`
		Role string `json:"role"`
	}
	status = doJSON(t, "POST", ts.URL+"/api/signin",
		map[string]string{"email": "MEERA@example.com", "password": "hunter22"}, &id)
	if status != http.StatusOK {
		t.Fatalf("signin: status %d", status)
	}
	if id.UID != uid || id.Role != "artisan" {
		t.Fatalf("signin identity = %+v, want uid %s role artisan", id, uid)
	}

	status = doJSON(t, "POST", ts.URL+"/api/signin",
		map[string]string{"email": "meera@example.com", "password": "wrong"}, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("bad password: status %d, want 401", status)
	}

	status = doJSON(t, "POST", ts.URL+"/api/signup/admin",
		map[string]string{"name": "X", "email": "x@example.com", "password": "x"}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("unknown role signup: status %d, want 400", status)
	}
}

func TestChatSendAndFetch(t *testing.T) {
	ts := newTestServer(t)

	alice := signup(t, ts, "artisan", "Alice", "alice@example.com")
	bob := signup(t, ts, "mentor", "Bob", "bob@example.com")

	var sent struct {
		ChatID string `json:"chat_id"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/chat/"+alice+"/send",
		map[string]string{"recipient_uid": bob, "content": "namaste"}, &sent)
	if status != http.StatusCreated {
		t.Fatalf("send: status %d", status)
	}
	if sent.ChatID == "" {
		t.Fatal("send returned empty chat_id")
	}

	// A reply from the other side must land in the same stream.
	var reply struct {
		ChatID string `json:"chat_id"`
	}
	doJSON(t, "POST", ts.URL+"/api/chat/"+bob+"/send",
		map[string]string{"recipient_uid": alice, "content": "namaste back"}, &reply)
	if reply.ChatID != sent.ChatID {
		t.Fatalf("reply chat_id = %s, want %s", reply.ChatID, sent.ChatID)
	}

	var msgs []struct {
		SenderUID string `json:"sender_uid"`
		Content   string `json:"content"`
	}
	status = doJSON(t, "GET", ts.URL+"/api/chat/"+alice+"/get/"+sent.ChatID, nil, &msgs)
	if status != http.StatusOK {
		t.Fatalf("get chat: status %d", status)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Content != "namaste" || msgs[1].Content != "namaste back" {
		t.Fatalf("messages out of order: %+v", msgs)
	}

	var convos []struct {
		ChatID    string `json:"chat_id"`
		OtherUser struct {
			UID string `json:"uid"`
		} `json:"other_user"`
	}
	doJSON(t, "GET", ts.URL+"/api/chat/"+alice+"/conversations", nil, &convos)
	if len(convos) != 1 || convos[0].OtherUser.UID != bob {
		t.Fatalf("conversations = %+v, want one with %s", convos, bob)
	}

	status = doJSON(t, "POST", ts.URL+"/api/chat/"+alice+"/send",
		map[string]string{"recipient_uid": "nobody", "content": "hello?"}, nil)
	if status != http.StatusNotFound {
		t.Fatalf("send to unknown recipient: status %d, want 404", status)
	}
}

func TestForumVoting(t *testing.T) {
	ts := newTestServer(t)

	author := signup(t, ts, "artisan", "Author", "author@example.com")
	voter := signup(t, ts, "mentor", "Voter", "voter@example.com")

	var post struct {
		ID string `json:"id"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/forum/post",
		map[string]string{"uid": author, "title": "Dye techniques", "content": "# Notes"}, &post)
	if status != http.StatusCreated {
		t.Fatalf("create post: status %d", status)
	}

	vote := func(uid, dir string) {
		t.Helper()
		status := doJSON(t, "POST", ts.URL+"/api/forum/post/"+post.ID+"/vote",
			map[string]string{"uid": uid, "vote_type": dir}, nil)
		if status != http.StatusOK {
			t.Fatalf("vote %s by %s: status %d", dir, uid, status)
		}
	}
	vote(author, "up")
	vote(voter, "up")
	// Changing a vote replaces it rather than stacking.
	vote(voter, "down")

	var posts []struct {
		ID    string `json:"id"`
		Votes int    `json:"votes"`
	}
	doJSON(t, "GET", ts.URL+"/api/forum/posts?sort_by=top", nil, &posts)
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Votes != 0 {
		t.Fatalf("votes = %d, want 0 (one up, one down)", posts[0].Votes)
	}

	status = doJSON(t, "DELETE", ts.URL+"/api/forum/post/"+post.ID,
		map[string]string{"uid": voter}, nil)
	if status != http.StatusNotFound {
		t.Fatalf("delete by non-author: status %d, want 404", status)
	}
}

func TestPitchLifecycle(t *testing.T) {
	ts := newTestServer(t)

	artisan := signup(t, ts, "artisan", "Owner", "owner@example.com")
	mentor := signup(t, ts, "mentor", "Reviewer", "reviewer@example.com")
	investor := signup(t, ts, "investor", "Backer", "backer@example.com")

	var biz struct {
		ID string `json:"id"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/artisan/"+artisan+"/business",
		map[string]string{"business_name": "Blue Pottery Works", "category": "pottery"}, &biz)
	if status != http.StatusCreated {
		t.Fatalf("create business: status %d", status)
	}

	pitchReq := map[string]any{
		"uid": artisan, "business_id": biz.ID, "pitch_title": "Scale the kiln",
		"funding_goal": 50000.0, "equity_offered": 10.0,
	}
	status = doJSON(t, "POST", ts.URL+"/api/marketplace/pitch", pitchReq, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("pitch before verification: status %d, want 400", status)
	}

	var review []struct {
		ID string `json:"id"`
	}
	doJSON(t, "GET", ts.URL+"/api/mentor/review", nil, &review)
	if len(review) != 1 || review[0].ID != biz.ID {
		t.Fatalf("review queue = %+v, want the new business", review)
	}

	status = doJSON(t, "POST", ts.URL+"/api/mentor/"+mentor+"/verify/"+biz.ID, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("verify: status %d", status)
	}

	var pitch struct {
		ID string `json:"id"`
	}
	status = doJSON(t, "POST", ts.URL+"/api/marketplace/pitch", pitchReq, &pitch)
	if status != http.StatusCreated {
		t.Fatalf("pitch after verification: status %d", status)
	}

	doJSON(t, "POST", ts.URL+"/api/marketplace/pitch/"+pitch.ID+"/interest",
		map[string]string{"uid": investor}, nil)

	var funded struct {
		CurrentFunding float64 `json:"current_funding"`
		Interested     int     `json:"interested"`
	}
	status = doJSON(t, "POST", ts.URL+"/api/marketplace/pitch/"+pitch.ID+"/fund",
		map[string]any{"uid": investor, "amount": 5000.0}, &funded)
	if status != http.StatusOK {
		t.Fatalf("fund: status %d", status)
	}
	if funded.CurrentFunding != 5000 || funded.Interested != 1 {
		t.Fatalf("funded pitch = %+v, want funding 5000 and 1 interested", funded)
	}

	var portfolio []struct {
		PitchID string  `json:"pitch_id"`
		Amount  float64 `json:"amount"`
	}
	doJSON(t, "GET", ts.URL+"/api/investor/"+investor+"/portfolio", nil, &portfolio)
	if len(portfolio) != 1 || portfolio[0].Amount != 5000 {
		t.Fatalf("portfolio = %+v, want one 5000 investment", portfolio)
	}
}

func TestCommunityChannels(t *testing.T) {
	ts := newTestServer(t)

	founder := signup(t, ts, "artisan", "Founder", "founder@example.com")
	member := signup(t, ts, "mentor", "Member", "member@example.com")

	var c struct {
		ID       string `json:"id"`
		Channels []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"channels"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/communities",
		map[string]string{"uid": founder, "name": "Weavers", "description": "Handloom circle"}, &c)
	if status != http.StatusCreated {
		t.Fatalf("create community: status %d", status)
	}
	if len(c.Channels) != 1 || c.Channels[0].Name != "general" {
		t.Fatalf("channels = %+v, want a single general channel", c.Channels)
	}

	status = doJSON(t, "POST", ts.URL+"/api/community/"+c.ID+"/join",
		map[string]string{"uid": member}, nil)
	if status != http.StatusOK {
		t.Fatalf("join: status %d", status)
	}

	var detail struct {
		Members int `json:"members"`
	}
	doJSON(t, "GET", ts.URL+"/api/community/"+c.ID, nil, &detail)
	if detail.Members != 2 {
		t.Fatalf("members = %d, want 2", detail.Members)
	}

	channel := c.Channels[0].ID
	status = doJSON(t, "POST", ts.URL+"/api/community/"+c.ID+"/"+channel+"/posts",
		map[string]string{"uid": member, "content": "hello weavers"}, nil)
	if status != http.StatusCreated {
		t.Fatalf("channel post: status %d", status)
	}

	var msgs []struct {
		SenderName string `json:"sender_name"`
		Content    string `json:"content"`
	}
	doJSON(t, "GET", ts.URL+"/api/community/"+c.ID+"/"+channel+"/posts", nil, &msgs)
	if len(msgs) != 1 || msgs[0].Content != "hello weavers" || msgs[0].SenderName != "Member" {
		t.Fatalf("channel posts = %+v", msgs)
	}

	var mine []struct {
		ID string `json:"id"`
	}
	doJSON(t, "GET", ts.URL+"/api/user/"+member+"/communities", nil, &mine)
	if len(mine) != 1 || mine[0].ID != c.ID {
		t.Fatalf("member communities = %+v", mine)
	}
}

func TestMentorshipRequests(t *testing.T) {
	ts := newTestServer(t)

	artisan := signup(t, ts, "artisan", "Seeker", "seeker@example.com")
	mentor := signup(t, ts, "mentor", "Guide", "guide@example.com")

	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/mentor/request",
		map[string]string{"artisan_uid": artisan, "mentor_uid": mentor, "message": "please mentor me"}, &req)
	if status != http.StatusCreated {
		t.Fatalf("create request: status %d", status)
	}
	if req.Status != "pending" {
		t.Fatalf("status = %s, want pending", req.Status)
	}

	var pending []struct {
		ID          string `json:"id"`
		ArtisanName string `json:"artisan_name"`
	}
	doJSON(t, "GET", ts.URL+"/api/mentor/"+mentor+"/requests", nil, &pending)
	if len(pending) != 1 || pending[0].ArtisanName != "Seeker" {
		t.Fatalf("pending = %+v", pending)
	}

	status = doJSON(t, "PUT", ts.URL+"/api/mentor/request/"+req.ID,
		map[string]string{"mentor_uid": mentor, "status": "accepted"}, nil)
	if status != http.StatusOK {
		t.Fatalf("accept: status %d", status)
	}

	// Resolving twice is rejected.
	status = doJSON(t, "PUT", ts.URL+"/api/mentor/request/"+req.ID,
		map[string]string{"mentor_uid": mentor, "status": "declined"}, nil)
	if status != http.StatusNotFound {
		t.Fatalf("double resolve: status %d, want 404", status)
	}

	var artisans []struct {
		UID string `json:"uid"`
	}
	doJSON(t, "GET", ts.URL+"/api/mentor/"+mentor+"/artisans", nil, &artisans)
	if len(artisans) != 1 || artisans[0].UID != artisan {
		t.Fatalf("mentor artisans = %+v", artisans)
	}

	var mentors []struct {
		UID string `json:"uid"`
	}
	doJSON(t, "GET", ts.URL+"/api/artisan/"+artisan+"/mentors", nil, &mentors)
	if len(mentors) != 1 || mentors[0].UID != mentor {
		t.Fatalf("artisan mentors = %+v", mentors)
	}
}
