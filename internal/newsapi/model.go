package newsapi

import (
	"encoding/json"
	"time"
)

// Article is a single news item as returned by the API. Title and URL are
// required; the rest is decoded when present.
type Article struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
}

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON rejects articles without a title or URL. A publishedAt that
// isn't RFC 3339 is dropped rather than failing the whole response.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       *string `json:"title"`
		URL         *string `json:"url"`
		Description string  `json:"description"`
		Author      string  `json:"author"`
		PublishedAt string  `json:"publishedAt"`
		Source      Source  `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Title == nil {
		return missingField("title")
	}
	if raw.URL == nil {
		return missingField("url")
	}
	*a = Article{
		Title:       *raw.Title,
		URL:         *raw.URL,
		Description: raw.Description,
		Author:      raw.Author,
		Source:      raw.Source,
	}
	if t, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
		a.PublishedAt = t
	}
	return nil
}

// Response is the top-level envelope of every API reply. Articles is only
// meaningful when Status is "ok"; otherwise Code names the failure.
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         *string   `json:"code"`
	Message      string    `json:"message"`
}

const StatusOK = "ok"

func (r *Response) OK() bool {
	return r.Status == StatusOK
}

// envelope is Response as it comes off the wire. Pointers tell a missing or
// null field apart from an empty one.
type envelope struct {
	Status       *string    `json:"status"`
	TotalResults int        `json:"totalResults"`
	Articles     *[]Article `json:"articles"`
	Code         *string    `json:"code"`
	Message      string     `json:"message"`
}
