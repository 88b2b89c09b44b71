package yahoo

import (
	"context"
	"net/url"
	"time"

	"yfengine/internal/models"
)

type searchResponse struct {
	News []struct {
		UUID                string `json:"uuid"`
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

// News returns recent news articles for a symbol via the search endpoint.
func (c *Client) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("quotesCount", "0")
	q.Set("newsCount", "10")

	var resp searchResponse
	if err := c.get(ctx, "/v1/finance/search", q, &resp); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(resp.News))
	for _, n := range resp.News {
		items = append(items, models.NewsItem{
			UUID:        n.UUID,
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: time.Unix(n.ProviderPublishTime, 0).UTC(),
		})
	}

	return items, nil
}
