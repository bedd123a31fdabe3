package registry

import "fmt"

const DefaultVersion = "builtin"

var defaultGroups = []Group{
	{
		Name: "core science",
		Feeds: []string{
			"https://www.quantamagazine.org/feed",
			"https://aeon.co/feed.rss",
			"https://nautil.us/feed",
			"https://undark.org/feed",
			"https://daily.jstor.org/feed",
			"https://www.futurity.org/feed",
			"https://www.bbc.com/future/feed.rss",
			"https://phys.org/rss-feed/",
		},
	},
	{
		Name: "mind & cognition",
		Feeds: []string{
			"https://mindhacks.com/feed",
			"https://digest.bps.org.uk/feed",
			"https://www.psychologicalscience.org/feed",
			"https://www.psychologytoday.com/us/rss",
			"https://neurosciencenews.com/feed/",
		},
	},
	{
		Name: "space, earth & natural phenomena",
		Feeds: []string{
			"http://www.nasa.gov/rss/dyn/image_of_the_day.rss",
			"https://earthsky.org/feed",
			"https://www.earthdata.nasa.gov/learn/rss-feeds/rss.xml",
			"https://phys.org/rss-feed/earth-news/",
			"https://phys.org/rss-feed/space-news/",
			"https://www.sciencedaily.com/rss/top/science.xml",
		},
	},
	{
		Name: "tech & complex systems",
		Feeds: []string{
			"https://www.wired.com/feed/category/science/latest/rss",
			"https://www.technologyreview.com/feed",
			"https://www.sciencedaily.com/rss/computers_math/artificial_intelligence.xml",
			"https://www.sciencedaily.com/rss/computers_math/computer_science.xml",
		},
	},
	{
		Name: "history, culture & documented oddities",
		Feeds: []string{
			"https://www.atlasobscura.com/feeds/latest",
			"https://www.smithsonianmag.com/rss/latest_articles/",
			"https://folklorethursday.com/feed/",
		},
	},
	{
		Name: "fringe-adjacent but evidence-usable",
		Feeds: []string{
			"https://mysteriousuniverse.org/category/news/feed/",
			"https://mysteriousuniverse.org/category/science/feed/",
			"https://thedebrief.org/feed/",
			"https://anomalist.com/rss/portal.xml",
			"https://skepticalinquirer.org/feed/",
		},
	},
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := New(DefaultVersion, defaultGroups)
	if err != nil {
		panic(fmt.Errorf("registry.Default: %w", err))
	}
	return r
}
