package domain

import "time"

// ArticlePreview is a single content entry as shown inside a section
type ArticlePreview struct {
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	DisplayTitle string    `json:"display_title,omitempty"`
	Extract      string    `json:"extract,omitempty"`
	Fragment     string    `json:"fragment,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	ViewCount    int64     `json:"view_count,omitempty"`
	Published    time.Time `json:"published,omitempty"`
	Latitude     float64   `json:"lat,omitempty"`
	Longitude    float64   `json:"lon,omitempty"`
}

// NewsStory is one "in the news" entry, carrying an HTML teaser and the
// articles it references. The first article represents the story.
type NewsStory struct {
	StoryHTML string           `json:"story_html"`
	Articles  []ArticlePreview `json:"articles"`
}

// RepresentativeArticle returns the story's lead article, nil if none
func (s *NewsStory) RepresentativeArticle() *ArticlePreview {
	if len(s.Articles) == 0 {
		return nil
	}
	return &s.Articles[0]
}

// FeaturedArticle of the day from the main-page payload
type FeaturedArticle struct {
	Article ArticlePreview `json:"article"`
}

// FeedDayResponse is the aggregated content for one calendar day.
// Immutable once fetched; cached per date by the feed source.
type FeedDayResponse struct {
	Date     time.Time        `json:"date"`
	MostRead []ArticlePreview `json:"most_read,omitempty"`
	News     []NewsStory      `json:"news,omitempty"`
	Random   *ArticlePreview  `json:"random,omitempty"`
	Nearby   []ArticlePreview `json:"nearby,omitempty"`
	MainPage *FeaturedArticle `json:"main_page,omitempty"`
}

// Items flattens the response into the ordered entries a section of the
// given type shows
func (r *FeedDayResponse) Items(t SectionType) []ArticlePreview {
	switch t {
	case SectionMostRead:
		return r.MostRead
	case SectionNearby:
		return r.Nearby
	case SectionRandom, SectionContinueReading:
		if r.Random == nil {
			return nil
		}
		return []ArticlePreview{*r.Random}
	case SectionMainPage:
		if r.MainPage == nil {
			return nil
		}
		return []ArticlePreview{r.MainPage.Article}
	case SectionNews, SectionRSS:
		res := make([]ArticlePreview, 0, len(r.News))
		for _, s := range r.News {
			if len(s.Articles) > 0 {
				res = append(res, s.Articles[0])
			}
		}
		return res
	default:
		return nil
	}
}
