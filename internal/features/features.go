// Package features holds the product feature tour shown beside the login
// form, and the carousel that reveals it.
package features

// Feature is one entry of the tour.
type Feature struct {
	Title       string
	Summary     string
	Description string
}

var defaults = []Feature{
	{
		Title:   "Identify Trendy Topics",
		Summary: "Am I trendy?",
		Description: "Our agent collects the latest trends and articles related to your field of interest and expertise. " +
			"The most popular topics and major headlines are extracted from your selection of news feeds, social networks and content aggregators.\n" +
			"Our algorithm estimates the popularity index of your site or blog before it is published.",
	},
	{
		Title:   "Leverage Media Resources",
		Summary: "A picture (or video) worth a thousand words!",
		Description: "Our agent provides you with a list of royalty and copyright free images, audio & video relevant to your blog or web sites.\n" +
			"The placement and relevancy of multi-media content provides your visitors with a visually rich layout and appealing experience.",
	},
	{
		Title:   "Create Promotional Content",
		Summary: "First impressions always count!",
		Description: "For most of us, creating the right promotional material is time consuming, error prone and frankly dull. " +
			"Our agent generates social messages such as tweets, Facebook updates or blog comments to promote your content or product.\n" +
			"The agent analyzes the response of the promotional campaign to evaluate the optimum format of the message.",
	},
	{
		Title:   "Target Social Media",
		Summary: "Let's be heard!",
		Description: "Finding the right medium to promote your site or blog can be a very long and cumbersome process. " +
			"Our agent suggests the most appropriate combination of social networks, feeds, blog sites and aggregators to promote your content.\n" +
			"The agent analyzes the impact of the promotional campaign and ranks the effectiveness of each social media outlet.",
	},
	{
		Title:   "Track & Manage Impact",
		Summary: "What you do not know may hurt you!",
		Description: "Our tracking and reporting capabilities provide you with the analytics you need to understand and target your audience. " +
			"A successful web presence depends on:\n" +
			"  - Trendiness\n" +
			"  - Format and multi-media support\n" +
			"  - Quality and relevancy of promotional material\n" +
			"  - Properly targeted social media outlets",
	},
}

// Defaults returns the built-in tour.
func Defaults() []Feature {
	out := make([]Feature, len(defaults))
	copy(out, defaults)
	return out
}

// Carousel reveals feature titles one per step. After the last title is
// revealed the first feature is shown. Showing any feature reveals them all.
type Carousel struct {
	features []Feature
	revealed int
	shown    int
}

// NewCarousel creates a carousel with nothing revealed yet.
func NewCarousel(features []Feature) *Carousel {
	return &Carousel{features: features, shown: -1}
}

// Len returns the number of features.
func (c *Carousel) Len() int {
	return len(c.features)
}

// Feature returns the i-th feature.
func (c *Carousel) Feature(i int) Feature {
	return c.features[i]
}

// Revealed returns how many titles are visible.
func (c *Carousel) Revealed() int {
	return c.revealed
}

// Done reports whether every title is revealed.
func (c *Carousel) Done() bool {
	return c.revealed >= len(c.features)
}

// Step reveals the next title. It reports whether more steps remain.
func (c *Carousel) Step() bool {
	if c.Done() {
		return false
	}
	c.revealed++
	if c.Done() {
		c.Show(0)
		return false
	}
	return true
}

// Show displays feature i. Out of range indexes are ignored.
func (c *Carousel) Show(i int) bool {
	if i < 0 || i >= len(c.features) {
		return false
	}
	c.revealed = len(c.features)
	c.shown = i
	return true
}

// Next shows the feature after the current one, wrapping around.
func (c *Carousel) Next() {
	if len(c.features) == 0 {
		return
	}
	c.Show((c.shown + 1) % len(c.features))
}

// Prev shows the feature before the current one, wrapping around.
func (c *Carousel) Prev() {
	n := len(c.features)
	if n == 0 {
		return
	}
	if c.shown < 0 {
		c.Show(n - 1)
		return
	}
	c.Show((c.shown + n - 1) % n)
}

// Shown returns the displayed feature and its index, if any.
func (c *Carousel) Shown() (Feature, int, bool) {
	if c.shown < 0 {
		return Feature{}, -1, false
	}
	return c.features[c.shown], c.shown, true
}
