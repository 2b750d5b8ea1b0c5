// Package sitemeta holds the descriptive metadata of a blog site: author,
// title, description, locale and pagination size. Consumers such as page
// renderers, feeds and share buttons read it through a validated, read-only
// Site value constructed once at startup.
package sitemeta

// Metadata is the flat site metadata record.
type Metadata struct {
	Author         string `yaml:"author" json:"author"`                 // SITE_AUTHOR
	Title          string `yaml:"title" json:"title"`                   // SITE_TITLE
	Description    string `yaml:"description" json:"description"`       // SITE_DESCRIPTION, used for meta tags
	Lang           string `yaml:"lang" json:"lang"`                     // SITE_LANG, e.g. "en-GB"
	OGLocale       string `yaml:"ogLocale" json:"ogLocale"`             // SITE_OG_LOCALE, e.g. "en_GB"
	ShareMessage   string `yaml:"shareMessage" json:"shareMessage"`     // SITE_SHARE_MESSAGE
	PaginationSize int    `yaml:"paginationSize" json:"paginationSize"` // SITE_PAGINATION_SIZE, posts per page
}

// Default returns the metadata the site ships with.
func Default() Metadata {
	return Metadata{
		Author: "M.F.M Fazrin",
		Title:  "Dotnet evangelist",
		Description: "Dotnet evangelist is a blog website that showcases the latest and greatest of Microsoft tech stack. " +
			"Whether you are a beginner or a seasoned developer, you will find something useful and interesting on this site. " +
			"You will learn how to use various Microsoft technologies, such as .NET, Azure, Visual Studio, JetBrains Rider, C#, " +
			"ASP.NET, Blazor, Xamarin, and more, to create amazing applications for web, mobile, desktop, and cloud. " +
			"You will also get tips and tricks, best practices, tutorials, and code samples from experienced and passionate " +
			"Microsoft evangelists. Dotnetevangelist is your one-stop destination for all things Microsoft. " +
			"Subscribe to the blog and stay updated with the latest news, articles, and resources on Microsoft tech stack.",
		Lang:           "en-GB",
		OGLocale:       "en_GB",
		ShareMessage:   "Share this post",
		PaginationSize: 6,
	}
}

// Site is the validated, immutable holder of a Metadata value. Create it once
// with New and pass it to whatever needs the metadata.
type Site struct {
	meta Metadata
}

// New validates m and returns a Site wrapping it. The returned error matches
// ErrInvalidConfig when any field violates its constraint.
func New(m Metadata) (*Site, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Site{meta: m}, nil
}

// MustNew is like New but panics on invalid metadata.
func MustNew(m Metadata) *Site {
	s, err := New(m)
	if err != nil {
		panic(err)
	}
	return s
}

// Metadata returns a copy of the site metadata. Every call returns the same value.
func (s *Site) Metadata() Metadata {
	return s.meta
}
