package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	app.Route("/", func() app.Composer { return &LandingView{} })
	app.Route("/auth", func() app.Composer { return &AuthView{} })
	app.Route("/dashboard", func() app.Composer { return &DashboardView{} })
	app.Route("/profile", func() app.Composer { return &ProfileView{} })
	app.Route("/forum", func() app.Composer { return &ForumView{} })
	app.Route("/communities", func() app.Composer { return &CommunitiesView{} })
	app.Route("/chat", func() app.Composer { return &ChatView{} })
	app.Route("/marketplace", func() app.Composer { return &MarketplaceView{} })
	app.Route("/my-business", func() app.Composer { return &MyBusinessView{} })
	app.Route("/discover-mentors", func() app.Composer { return &DiscoverMentorsView{} })
	app.Route("/my-mentors", func() app.Composer { return &MyMentorsView{} })
	app.Route("/discover-artisans", func() app.Composer { return &DiscoverArtisansView{} })
	app.Route("/my-artisans", func() app.Composer { return &MyArtisansView{} })
	app.Route("/portfolio", func() app.Composer { return &PortfolioView{} })
	app.RunWhenOnBrowser()
}
