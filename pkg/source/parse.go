package source

import (
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// pageSummary mirrors the REST page summary payload, the common shape
// shared by the aggregate feed, random and main-page endpoints
type pageSummary struct {
	Titles struct {
		Canonical  string `json:"canonical"`
		Normalized string `json:"normalized"`
		Display    string `json:"display"`
	} `json:"titles"`
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	Coordinates struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coordinates"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Timestamp time.Time `json:"timestamp"`
}

// mostReadArticle extends pageSummary with the view counter
type mostReadArticle struct {
	pageSummary
	Views int64 `json:"views"`
}

// feedDayPayload mirrors the dated aggregate feed endpoint
type feedDayPayload struct {
	TFA      *pageSummary `json:"tfa"`
	MostRead struct {
		Articles []mostReadArticle `json:"articles"`
	} `json:"mostread"`
	News []struct {
		Story string        `json:"story"`
		Links []pageSummary `json:"links"`
	} `json:"news"`
}

func (p *pageSummary) toPreview() domain.ArticlePreview {
	title := p.Titles.Normalized
	if title == "" {
		title = p.Titles.Canonical
	}
	return domain.ArticlePreview{
		URL:          p.ContentURLs.Desktop.Page,
		Title:        title,
		DisplayTitle: p.Titles.Display,
		Extract:      p.Extract,
		ThumbnailURL: p.Thumbnail.Source,
		Published:    p.Timestamp,
		Latitude:     p.Coordinates.Lat,
		Longitude:    p.Coordinates.Lon,
	}
}

func (p *feedDayPayload) toResponse(date time.Time) *domain.FeedDayResponse {
	resp := &domain.FeedDayResponse{Date: date}

	if p.TFA != nil {
		resp.MainPage = &domain.FeaturedArticle{Article: p.TFA.toPreview()}
	}

	for _, a := range p.MostRead.Articles {
		preview := a.toPreview()
		preview.ViewCount = a.Views
		resp.MostRead = append(resp.MostRead, preview)
	}

	for _, n := range p.News {
		story := domain.NewsStory{StoryHTML: n.Story}
		for _, l := range n.Links {
			story.Articles = append(story.Articles, l.toPreview())
		}
		resp.News = append(resp.News, story)
	}

	return resp
}
